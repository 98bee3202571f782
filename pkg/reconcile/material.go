package reconcile

import (
	"context"

	"github.com/gessotrack/backend/pkg/inventory"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// CreateMaterial stores a new material. Its initial quantity is booked as an
// IN movement.
func (o *Orchestrator) CreateMaterial(ctx context.Context, m models.Material) (created models.Material, err error) {
	ctx, span := o.start(ctx, "CreateMaterial")
	defer func() { end(span, err) }()

	if err := m.Validate(); err != nil {
		return models.Material{}, err
	}

	initial := m.Quantity
	m.ID = uuid.Nil
	m.Quantity = decimal.Zero

	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.CreateMaterial(ctx, &m); err != nil {
			return err
		}

		return inventory.New(tx, inventory.WithClock(o.now)).Restore(ctx, m.ID, initial, inventory.Reference{Notes: "initial stock"})
	})
	if err != nil {
		return models.Material{}, err
	}

	return o.repo.GetMaterial(ctx, m.ID)
}

// Material returns a single material.
func (o *Orchestrator) Material(ctx context.Context, id uuid.UUID) (models.Material, error) {
	return o.repo.GetMaterial(ctx, id)
}

// Materials returns all materials, or only those at or below their minimum
// quantity when lowStock is set.
func (o *Orchestrator) Materials(ctx context.Context, lowStock bool) ([]models.Material, error) {
	if lowStock {
		return o.LowStock(ctx)
	}

	return o.repo.ListMaterials(ctx)
}

// RestockMaterial adds quantity units of a material to stock.
func (o *Orchestrator) RestockMaterial(ctx context.Context, id uuid.UUID, quantity decimal.Decimal, notes string) (m models.Material, err error) {
	ctx, span := o.start(ctx, "RestockMaterial", attribute.String("material_id", id.String()))
	defer func() { end(span, err) }()

	if !quantity.IsPositive() {
		return models.Material{}, models.ErrQuantityNotPositive
	}

	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		return inventory.New(tx, inventory.WithClock(o.now)).Restore(ctx, id, quantity, inventory.Reference{Notes: notes})
	})
	if err != nil {
		return models.Material{}, err
	}

	return o.repo.GetMaterial(ctx, id)
}

// Movements returns the stock movements of a material, newest first.
func (o *Orchestrator) Movements(ctx context.Context, materialID uuid.UUID) ([]models.InventoryMovement, error) {
	if _, err := o.repo.GetMaterial(ctx, materialID); err != nil {
		return nil, err
	}

	return o.repo.ListMovements(ctx, materialID)
}

// LowStock returns the materials at or below their minimum quantity.
func (o *Orchestrator) LowStock(ctx context.Context) ([]models.Material, error) {
	return inventory.New(o.repo).LowStock(ctx)
}

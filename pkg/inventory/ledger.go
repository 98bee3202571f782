// Package inventory moves material stock in and out.
//
// Every change of a material's quantity on hand goes through a Ledger and is
// recorded as an InventoryMovement. A Ledger must be bound to a transaction
// scoped store when its changes have to be atomic with other writes.
package inventory

import (
	"context"
	"time"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Store is the persistence needed by the Ledger.
type Store interface {
	GetMaterial(ctx context.Context, id uuid.UUID) (models.Material, error)
	SaveMaterialQuantity(ctx context.Context, id uuid.UUID, quantity decimal.Decimal) error
	CreateMovement(ctx context.Context, m *models.InventoryMovement) error
	ListLowStockMaterials(ctx context.Context) ([]models.Material, error)
}

// Reference links a movement to what caused it.
type Reference struct {
	ProjectID   *uuid.UUID
	CostEntryID *uuid.UUID
	Notes       string
}

// Deduction is the outcome of taking material from stock.
//
// Deducted + Shortfall always equals Requested.
type Deduction struct {
	Requested decimal.Decimal
	Deducted  decimal.Decimal
	Shortfall decimal.Decimal
}

// Ledger applies stock changes.
type Ledger struct {
	store Store
	now   func() time.Time
}

type Option func(*Ledger)

// WithClock sets the clock used for movement dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Deduct takes up to requested units of a material from stock.
//
// Insufficient stock is not an error: the quantity that could not be taken is
// reported as Shortfall and the stock drops to zero.
func (l *Ledger) Deduct(ctx context.Context, materialID uuid.UUID, requested decimal.Decimal, ref Reference) (Deduction, error) {
	if !requested.IsPositive() {
		return Deduction{}, models.ErrQuantityNotPositive
	}

	material, err := l.store.GetMaterial(ctx, materialID)
	if err != nil {
		return Deduction{}, err
	}

	onHand := decimal.Max(material.Quantity, decimal.Zero)
	deducted := decimal.Min(requested, onHand)

	d := Deduction{
		Requested: requested,
		Deducted:  deducted,
		Shortfall: requested.Sub(deducted),
	}

	if !deducted.IsPositive() {
		return d, nil
	}

	err = l.store.SaveMaterialQuantity(ctx, materialID, onHand.Sub(deducted))
	if err != nil {
		return Deduction{}, err
	}

	err = l.record(ctx, materialID, models.MovementOut, deducted, material.PriceCost, ref)
	if err != nil {
		return Deduction{}, err
	}

	return d, nil
}

// Restore puts quantity units of a material back into stock.
func (l *Ledger) Restore(ctx context.Context, materialID uuid.UUID, quantity decimal.Decimal, ref Reference) error {
	if quantity.IsNegative() {
		return models.ErrQuantityNegative
	}

	if quantity.IsZero() {
		return nil
	}

	material, err := l.store.GetMaterial(ctx, materialID)
	if err != nil {
		return err
	}

	err = l.store.SaveMaterialQuantity(ctx, materialID, material.Quantity.Add(quantity))
	if err != nil {
		return err
	}

	return l.record(ctx, materialID, models.MovementIn, quantity, material.PriceCost, ref)
}

// LowStock returns the materials at or below their minimum quantity.
func (l *Ledger) LowStock(ctx context.Context) ([]models.Material, error) {
	return l.store.ListLowStockMaterials(ctx)
}

func (l *Ledger) record(ctx context.Context, materialID uuid.UUID, typ models.MovementType, quantity, unitCost decimal.Decimal, ref Reference) error {
	movement := models.InventoryMovement{
		MaterialID:   materialID,
		MovementType: typ,
		Quantity:     quantity,
		UnitCost:     decimal.NewNullDecimal(unitCost),
		ProjectID:    ref.ProjectID,
		CostEntryID:  ref.CostEntryID,
		Notes:        ref.Notes,
		MovementDate: l.now().In(time.UTC),
	}

	err := l.store.CreateMovement(ctx, &movement)
	if err != nil {
		return err
	}

	log.Debug().
		Str("material_id", materialID.String()).
		Str("movement_type", string(typ)).
		Str("quantity", quantity.String()).
		Msg("recorded inventory movement")

	return nil
}

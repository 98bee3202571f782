package reconcile

import (
	"context"
	"fmt"

	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/costs"
	"github.com/gessotrack/backend/pkg/inventory"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// MaterialCost is the input to AddMaterialCost.
type MaterialCost struct {
	ProjectID  uuid.UUID
	MaterialID uuid.UUID
	Quantity   decimal.Decimal

	// UnitCost overrides the cost price of the material
	UnitCost decimal.NullDecimal

	// Date defaults to today, Description to the name of the material
	Date        types.Date
	Description string
	Notes       string
}

// MaterialCostResult reports how much of the requested quantity came from stock.
//
// A Shortfall is not an error. The entry is recorded for the full quantity and
// Warning describes the missing stock.
type MaterialCostResult struct {
	Entry     models.CostEntry
	Deducted  decimal.Decimal
	Shortfall decimal.Decimal
	Warning   string
}

// NonMaterialCost is the input to AddNonMaterialCost.
type NonMaterialCost struct {
	ProjectID   uuid.UUID
	Type        models.CostType
	Amount      decimal.Decimal
	Date        types.Date
	Description string
	Notes       string
}

// AddMaterialCost records material consumed by a project.
//
// The material is deducted from stock as far as available, the cost entry is
// created for the full requested quantity and the project totals are recomputed.
func (o *Orchestrator) AddMaterialCost(ctx context.Context, in MaterialCost) (res MaterialCostResult, err error) {
	ctx, span := o.start(ctx, "AddMaterialCost",
		attribute.String("project_id", in.ProjectID.String()),
		attribute.String("material_id", in.MaterialID.String()),
	)
	defer func() { end(span, err) }()

	if !in.Quantity.IsPositive() {
		return MaterialCostResult{}, models.ErrQuantityNotPositive
	}

	if in.UnitCost.Valid && !in.UnitCost.Decimal.IsPositive() {
		return MaterialCostResult{}, models.ErrUnitCostNotPositive
	}

	if in.Date.IsZero() {
		in.Date = o.today()
	}

	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		material, err := tx.GetMaterial(ctx, in.MaterialID)
		if err != nil {
			return err
		}

		unitCost := material.PriceCost
		if in.UnitCost.Valid {
			unitCost = in.UnitCost.Decimal
		}

		description := in.Description
		if description == "" {
			description = material.Name
		}

		entry := models.CostEntry{
			DefaultModel: models.DefaultModel{ID: uuid.New()},
			ProjectID:    in.ProjectID,
			Type:         models.CostTypeMaterial,
			Description:  description,
			Amount:       models.RoundMoney(in.Quantity.Mul(unitCost)),
			Date:         in.Date,
			MaterialID:   &material.ID,
			Quantity:     decimal.NewNullDecimal(in.Quantity),
			Notes:        in.Notes,
		}

		// Nothing may change before the entry is known to be valid
		if err := costs.Validate(entry); err != nil {
			return err
		}

		if _, err := tx.GetProject(ctx, in.ProjectID); err != nil {
			return err
		}

		deduction, err := inventory.New(tx, inventory.WithClock(o.now)).Deduct(ctx, material.ID, in.Quantity, inventory.Reference{
			ProjectID:   &in.ProjectID,
			CostEntryID: &entry.ID,
			Notes:       description,
		})
		if err != nil {
			return err
		}

		entry.InventoryDeductedQuantity = decimal.NewNullDecimal(deduction.Deducted)

		if deduction.Shortfall.IsPositive() {
			res.Warning = o.shortfallNote(deduction, unitCost, material)
			entry.Notes = joinNotes(entry.Notes, res.Warning)
		}

		res.Entry, err = costs.New(tx).Add(ctx, entry)
		if err != nil {
			return err
		}

		res.Deducted = deduction.Deducted
		res.Shortfall = deduction.Shortfall
		return nil
	})
	if err != nil {
		return MaterialCostResult{}, err
	}

	if res.Shortfall.IsPositive() {
		log.Warn().
			Str("project_id", in.ProjectID.String()).
			Str("material_id", in.MaterialID.String()).
			Str("requested", in.Quantity.String()).
			Str("shortfall", res.Shortfall.String()).
			Msg("material cost recorded with insufficient stock")
	}

	if _, err := o.recompute(ctx, in.ProjectID); err != nil {
		return res, err
	}

	return res, nil
}

func (o *Orchestrator) shortfallNote(d inventory.Deduction, unitCost decimal.Decimal, m models.Material) string {
	unit := ""
	if m.Unit != "" {
		unit = " " + m.Unit
	}

	return fmt.Sprintf("insufficient stock: %s%s of %s not deducted from inventory (%s)",
		d.Shortfall.String(), unit, m.Name, o.currency.Format(d.Shortfall.Mul(unitCost)))
}

func joinNotes(notes, extra string) string {
	if notes == "" {
		return extra
	}
	return notes + "\n" + extra
}

// AddNonMaterialCost records a LABOR or VEHICLE cost and recomputes the project totals.
func (o *Orchestrator) AddNonMaterialCost(ctx context.Context, in NonMaterialCost) (entry models.CostEntry, err error) {
	ctx, span := o.start(ctx, "AddNonMaterialCost",
		attribute.String("project_id", in.ProjectID.String()),
		attribute.String("type", string(in.Type)),
	)
	defer func() { end(span, err) }()

	if in.Type == models.CostTypeMaterial {
		return models.CostEntry{}, fmt.Errorf("%w, MATERIAL costs are recorded with their material", models.ErrCostTypeInvalid)
	}

	if in.Date.IsZero() {
		in.Date = o.today()
	}

	entry, err = costs.New(o.repo).Add(ctx, models.CostEntry{
		ProjectID:   in.ProjectID,
		Type:        in.Type,
		Description: in.Description,
		Amount:      models.RoundMoney(in.Amount),
		Date:        in.Date,
		Notes:       in.Notes,
	})
	if err != nil {
		return models.CostEntry{}, err
	}

	if _, err := o.recompute(ctx, in.ProjectID); err != nil {
		return entry, err
	}

	return entry, nil
}

// UpdateCost replaces the editable fields of a cost entry and recomputes the
// totals of its project.
//
// Changing the quantity of a MATERIAL entry does not move stock.
func (o *Orchestrator) UpdateCost(ctx context.Context, entry models.CostEntry) (updated models.CostEntry, err error) {
	ctx, span := o.start(ctx, "UpdateCost", attribute.String("cost_entry_id", entry.ID.String()))
	defer func() { end(span, err) }()

	entry.Amount = models.RoundMoney(entry.Amount)

	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		updated, err = costs.New(tx).Update(ctx, entry)
		return err
	})
	if err != nil {
		return models.CostEntry{}, err
	}

	if _, err := o.recompute(ctx, updated.ProjectID); err != nil {
		return updated, err
	}

	return updated, nil
}

// DeleteCost deletes a cost entry and recomputes the totals of its project.
//
// With RestoreDeducted, the deducted quantity of a MATERIAL entry goes back to
// stock in the same transaction.
func (o *Orchestrator) DeleteCost(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := o.start(ctx, "DeleteCost", attribute.String("cost_entry_id", id.String()))
	defer func() { end(span, err) }()

	var deleted models.CostEntry
	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		store := costs.New(tx)

		deleted, err = store.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := store.Delete(ctx, id); err != nil {
			return err
		}

		if o.policy != RestoreDeducted || !deleted.IsMaterial() || deleted.MaterialID == nil {
			return nil
		}

		return inventory.New(tx, inventory.WithClock(o.now)).Restore(ctx, *deleted.MaterialID, deleted.Deducted(), inventory.Reference{
			ProjectID:   &deleted.ProjectID,
			CostEntryID: &deleted.ID,
			Notes:       "cost entry deleted: " + deleted.Description,
		})
	})
	if err != nil {
		return err
	}

	_, err = o.recompute(ctx, deleted.ProjectID)
	return err
}

// ListCostEntries returns the cost entries of a project, newest first.
func (o *Orchestrator) ListCostEntries(ctx context.Context, projectID uuid.UUID, filter costs.Filter) ([]models.CostEntry, error) {
	if _, err := o.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	return costs.New(o.repo).ListByProject(ctx, projectID, filter)
}

// CostEntry returns a single cost entry.
func (o *Orchestrator) CostEntry(ctx context.Context, id uuid.UUID) (models.CostEntry, error) {
	return costs.New(o.repo).Get(ctx, id)
}

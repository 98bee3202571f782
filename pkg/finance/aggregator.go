// Package finance derives the financial state of projects from their cost entries.
package finance

import (
	"context"

	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimelineLength is the number of entries in the timeline of a Report.
const TimelineLength = 5

// Repository is the persistence needed by the Aggregator.
type Repository interface {
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	ListCostEntries(ctx context.Context, projectID uuid.UUID, filter repository.CostEntryFilter) ([]models.CostEntry, error)
	Transaction(ctx context.Context, fn func(*repository.Repository) error) error
}

// Aggregator computes and persists project totals.
type Aggregator struct {
	repo Repository
}

func New(repo Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Breakdown is the spend of a project per cost type.
type Breakdown struct {
	Material decimal.Decimal
	Labor    decimal.Decimal
	Vehicle  decimal.Decimal
}

func (b *Breakdown) add(e models.CostEntry) {
	switch e.Type {
	case models.CostTypeMaterial:
		b.Material = b.Material.Add(e.Amount)
	case models.CostTypeLabor:
		b.Labor = b.Labor.Add(e.Amount)
	case models.CostTypeVehicle:
		b.Vehicle = b.Vehicle.Add(e.Amount)
	}
}

// Report is the financial overview of a project.
type Report struct {
	Project        models.Project
	ConsumptionPct decimal.Decimal
	Health         Health
	Breakdown      Breakdown
	Last7Days      decimal.Decimal
	Last30Days     decimal.Decimal
	EntryCount     int

	// Timeline holds the most recent cost entries, newest first
	Timeline []models.CostEntry
}

// Drift compares the persisted aggregates of a project with its cost entries.
type Drift struct {
	ProjectID            uuid.UUID
	StoredTotalCost      decimal.Decimal
	LedgerTotalCost      decimal.Decimal
	StoredProfitMargin   decimal.Decimal
	ExpectedProfitMargin decimal.Decimal
	InSync               bool
}

// Sum returns the total amount of the entries.
func Sum(entries []models.CostEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Recompute sets total_cost and profit_margin of a project from its cost entries
// and persists them. Calling it again without changes has no effect.
//
// The project is read and written in one transaction and only the derived
// fields are written, so a concurrent budget revision is never reverted.
func (a *Aggregator) Recompute(ctx context.Context, projectID uuid.UUID) (project models.Project, err error) {
	err = a.repo.Transaction(ctx, func(tx *repository.Repository) error {
		project, err = tx.GetProject(ctx, projectID)
		if err != nil {
			return err
		}

		entries, err := tx.ListCostEntries(ctx, projectID, repository.CostEntryFilter{})
		if err != nil {
			return err
		}

		project.TotalCost = models.RoundMoney(Sum(entries))
		project.ProfitMargin = models.RoundMoney(project.TotalValue.Sub(project.TotalCost))

		return tx.SaveProjectTotals(ctx, projectID, project.TotalCost, project.ProfitMargin)
	})
	if err != nil {
		return models.Project{}, err
	}

	return a.repo.GetProject(ctx, projectID)
}

// Report builds the financial overview of a project as of today.
func (a *Aggregator) Report(ctx context.Context, projectID uuid.UUID, today types.Date) (Report, error) {
	project, err := a.repo.GetProject(ctx, projectID)
	if err != nil {
		return Report{}, err
	}

	entries, err := a.repo.ListCostEntries(ctx, projectID, repository.CostEntryFilter{})
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Project:    project,
		EntryCount: len(entries),
		Last7Days:  decimal.Zero,
		Last30Days: decimal.Zero,
	}

	for _, e := range entries {
		r.Breakdown.add(e)

		if e.Date.Within(today, 7) {
			r.Last7Days = r.Last7Days.Add(e.Amount)
		}

		if e.Date.Within(today, 30) {
			r.Last30Days = r.Last30Days.Add(e.Amount)
		}
	}

	totalCost := Sum(entries)
	pct := ConsumptionPct(project.TotalValue, totalCost)
	r.ConsumptionPct = pct.Round(2)
	r.Health = HealthOf(pct)

	r.Timeline = entries[:min(TimelineLength, len(entries))]

	return r, nil
}

// Verify checks the persisted aggregates of a project against its cost entries.
func (a *Aggregator) Verify(ctx context.Context, projectID uuid.UUID) (Drift, error) {
	project, err := a.repo.GetProject(ctx, projectID)
	if err != nil {
		return Drift{}, err
	}

	entries, err := a.repo.ListCostEntries(ctx, projectID, repository.CostEntryFilter{})
	if err != nil {
		return Drift{}, err
	}

	ledger := models.RoundMoney(Sum(entries))
	expected := models.RoundMoney(project.TotalValue.Sub(ledger))

	return Drift{
		ProjectID:            projectID,
		StoredTotalCost:      project.TotalCost,
		LedgerTotalCost:      ledger,
		StoredProfitMargin:   project.ProfitMargin,
		ExpectedProfitMargin: expected,
		InSync:               project.TotalCost.Equal(ledger) && project.ProfitMargin.Equal(expected),
	}, nil
}

package reconcile

import (
	"context"

	"github.com/gessotrack/backend/pkg/finance"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// CreateProject stores a new project. Derived totals are ignored and start
// from an empty cost ledger.
func (o *Orchestrator) CreateProject(ctx context.Context, p models.Project) (created models.Project, err error) {
	ctx, span := o.start(ctx, "CreateProject")
	defer func() { end(span, err) }()

	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}

	p.ID = uuid.Nil
	p.TotalValue = models.RoundMoney(p.TotalValue)
	p.TotalCost = decimal.Zero
	p.ProfitMargin = p.TotalValue

	if err := o.repo.CreateProject(ctx, &p); err != nil {
		return models.Project{}, err
	}

	return o.repo.GetProject(ctx, p.ID)
}

// Project returns a project with its persisted aggregates.
func (o *Orchestrator) Project(ctx context.Context, id uuid.UUID) (models.Project, error) {
	return o.repo.GetProject(ctx, id)
}

// Financials returns the financial report of a project as of today.
func (o *Orchestrator) Financials(ctx context.Context, id uuid.UUID) (r finance.Report, err error) {
	ctx, span := o.start(ctx, "Financials", attribute.String("project_id", id.String()))
	defer func() { end(span, err) }()

	return finance.New(o.repo).Report(ctx, id, o.today())
}

// Verify reports whether the persisted aggregates of a project match its cost entries.
func (o *Orchestrator) Verify(ctx context.Context, id uuid.UUID) (d finance.Drift, err error) {
	ctx, span := o.start(ctx, "Verify", attribute.String("project_id", id.String()))
	defer func() { end(span, err) }()

	return finance.New(o.repo).Verify(ctx, id)
}

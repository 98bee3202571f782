package reconcile

import (
	"context"
	"strings"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/gessotrack/backend/pkg/revisions"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// BudgetEpsilon is the largest change of a budget that is treated as no change.
var BudgetEpsilon = decimal.RequireFromString("0.009")

// BudgetRevisionResult is the outcome of ReviseBudget. Revision is nil when
// the new value was within BudgetEpsilon of the current budget.
type BudgetRevisionResult struct {
	Project  models.Project
	Revision *models.BudgetRevision
}

// ReviseBudget changes the contracted value of a project and appends the
// change to its revision history.
func (o *Orchestrator) ReviseBudget(ctx context.Context, projectID uuid.UUID, newValue decimal.Decimal, reason string) (res BudgetRevisionResult, err error) {
	ctx, span := o.start(ctx, "ReviseBudget", attribute.String("project_id", projectID.String()))
	defer func() { end(span, err) }()

	err = o.repo.Transaction(ctx, func(tx *repository.Repository) error {
		project, err := tx.GetProject(ctx, projectID)
		if err != nil {
			return err
		}

		res.Project = project
		if newValue.Sub(project.TotalValue).Abs().LessThanOrEqual(BudgetEpsilon) {
			return nil
		}

		if strings.TrimSpace(reason) == "" {
			return models.ErrRevisionReasonEmpty
		}

		newValue = models.RoundMoney(newValue)

		if newValue.IsNegative() {
			return models.ErrRevisionValueNegative
		}

		revision, err := revisions.New(tx, revisions.WithClock(o.now)).Record(ctx, projectID, project.TotalValue, newValue, reason)
		if err != nil {
			return err
		}

		project.TotalValue = newValue
		if err := tx.SaveProject(ctx, project); err != nil {
			return err
		}

		res.Project = project
		res.Revision = &revision
		return nil
	})
	if err != nil {
		return BudgetRevisionResult{}, err
	}

	if res.Revision == nil {
		return res, nil
	}

	updated, err := o.recompute(ctx, projectID)
	if err != nil {
		return res, err
	}

	res.Project = updated
	return res, nil
}

// ListBudgetRevisions returns the budget history of a project, newest first.
func (o *Orchestrator) ListBudgetRevisions(ctx context.Context, projectID uuid.UUID) ([]models.BudgetRevision, error) {
	if _, err := o.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	return revisions.New(o.repo).ListByProject(ctx, projectID)
}

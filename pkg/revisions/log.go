// Package revisions keeps the append-only history of project budget changes.
package revisions

import (
	"context"
	"strings"
	"time"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the persistence needed by the Log.
type Repository interface {
	CreateBudgetRevision(ctx context.Context, r *models.BudgetRevision) error
	ListBudgetRevisions(ctx context.Context, projectID uuid.UUID) ([]models.BudgetRevision, error)
}

// Log records budget revisions. It has no update or delete operations.
type Log struct {
	repo Repository
	now  func() time.Time
}

type Option func(*Log)

// WithClock sets the clock used for the changed_at timestamp.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func New(repo Repository, opts ...Option) *Log {
	l := &Log{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Record appends a revision from previous to next to the history of a project.
func (l *Log) Record(ctx context.Context, projectID uuid.UUID, previous, next decimal.Decimal, reason string) (models.BudgetRevision, error) {
	if strings.TrimSpace(reason) == "" {
		return models.BudgetRevision{}, models.ErrRevisionReasonEmpty
	}

	if previous.IsNegative() || next.IsNegative() {
		return models.BudgetRevision{}, models.ErrRevisionValueNegative
	}

	if previous.Equal(next) {
		return models.BudgetRevision{}, models.ErrRevisionUnchanged
	}

	revision := models.BudgetRevision{
		ProjectID:     projectID,
		PreviousValue: previous,
		NewValue:      next,
		Reason:        reason,
		ChangedAt:     l.now().In(time.UTC),
	}

	if err := l.repo.CreateBudgetRevision(ctx, &revision); err != nil {
		return models.BudgetRevision{}, err
	}

	return revision, nil
}

// ListByProject returns the revisions of a project, newest first.
func (l *Log) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.BudgetRevision, error) {
	return l.repo.ListBudgetRevisions(ctx, projectID)
}

// Package reconcile keeps cost entries, inventory, budget revisions and project
// aggregates consistent with each other.
//
// Every mutating operation writes in a single transaction and recomputes the
// aggregates of the affected project after the transaction committed. When the
// recomputation fails, the write stays committed and the operation returns its
// result together with an error wrapping ErrAggregatesStale.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gessotrack/backend/internal/currency"
	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/finance"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrAggregatesStale is returned when a write committed but the totals of the
// project could not be recomputed. Callers can retry with Recompute.
var ErrAggregatesStale = errors.New("the change was saved but the project totals could not be updated")

// Orchestrator runs the reconciliation operations.
type Orchestrator struct {
	repo     *repository.Repository
	policy   RestorePolicy
	now      func() time.Time
	currency currency.Formatter
	tracer   trace.Tracer
}

type Option func(*Orchestrator)

// WithRestorePolicy sets what happens to deducted stock when a material cost is deleted.
func WithRestorePolicy(p RestorePolicy) Option {
	return func(o *Orchestrator) {
		o.policy = p
	}
}

// WithClock sets the clock for default dates, movements and revisions.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithCurrency sets the currency used in shortfall notes and warnings.
func WithCurrency(f currency.Formatter) Option {
	return func(o *Orchestrator) {
		o.currency = f
	}
}

func New(repo *repository.Repository, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		repo:     repo,
		policy:   RestoreNone,
		now:      time.Now,
		currency: currency.MustNew("BRL"),
		tracer:   otel.Tracer("github.com/gessotrack/backend/pkg/reconcile"),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Policy returns the configured restore policy.
func (o *Orchestrator) Policy() RestorePolicy {
	return o.policy
}

func (o *Orchestrator) today() types.Date {
	return types.DateOf(o.now())
}

func (o *Orchestrator) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "reconcile."+name, trace.WithAttributes(attrs...))
}

func end(span trace.Span, err error) {
	if err != nil && !errors.Is(err, models.ErrValidation) && !errors.Is(err, models.ErrResourceNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recompute refreshes the aggregates of a project after a committed write.
func (o *Orchestrator) recompute(ctx context.Context, projectID uuid.UUID) (models.Project, error) {
	project, err := finance.New(o.repo).Recompute(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Str("project_id", projectID.String()).Msg("recomputing project aggregates failed, totals are stale")
		return models.Project{}, fmt.Errorf("%w: %w", ErrAggregatesStale, err)
	}

	return project, nil
}

// Recompute recalculates the aggregates of a project from its cost entries.
func (o *Orchestrator) Recompute(ctx context.Context, projectID uuid.UUID) (p models.Project, err error) {
	ctx, span := o.start(ctx, "Recompute", attribute.String("project_id", projectID.String()))
	defer func() { end(span, err) }()

	return finance.New(o.repo).Recompute(ctx, projectID)
}

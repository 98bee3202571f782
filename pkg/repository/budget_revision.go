package repository

import (
	"context"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

func (r *Repository) CreateBudgetRevision(ctx context.Context, b *models.BudgetRevision) error {
	return r.conn(ctx).Omit(clause.Associations).Create(b).Error
}

// ListBudgetRevisions returns the budget revisions of a project, newest first.
func (r *Repository) ListBudgetRevisions(ctx context.Context, projectID uuid.UUID) ([]models.BudgetRevision, error) {
	var revisions []models.BudgetRevision
	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("changed_at DESC, id DESC").
		Find(&revisions).Error
	return revisions, err
}

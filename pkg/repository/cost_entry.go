package repository

import (
	"context"
	"fmt"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// CostEntryFilter restricts the cost entries returned by ListCostEntries.
type CostEntryFilter struct {
	Type models.CostType
}

func (r *Repository) CreateCostEntry(ctx context.Context, c *models.CostEntry) error {
	return r.conn(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *Repository) GetCostEntry(ctx context.Context, id uuid.UUID) (models.CostEntry, error) {
	var c models.CostEntry
	err := r.conn(ctx).First(&c, "id = ?", id).Error
	return c, err
}

// SaveCostEntry writes all editable fields of an existing cost entry.
func (r *Repository) SaveCostEntry(ctx context.Context, c *models.CostEntry) error {
	tx := r.conn(ctx).
		Model(c).
		Select("Type", "Description", "Amount", "Date", "Quantity", "Notes").
		Omit(clause.Associations).
		Updates(c)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w cost entry matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// DeleteCostEntry soft deletes a cost entry.
func (r *Repository) DeleteCostEntry(ctx context.Context, id uuid.UUID) error {
	tx := r.conn(ctx).Delete(&models.CostEntry{DefaultModel: models.DefaultModel{ID: id}})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w cost entry matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// ListCostEntries returns the cost entries of a project ordered by date
// descending, ties broken by id descending.
func (r *Repository) ListCostEntries(ctx context.Context, projectID uuid.UUID, filter CostEntryFilter) ([]models.CostEntry, error) {
	var entries []models.CostEntry

	query := r.conn(ctx).Where("project_id = ?", projectID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	err := query.Order("date DESC, id DESC").Find(&entries).Error
	return entries, err
}

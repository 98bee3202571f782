package repository

import (
	"context"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

func (r *Repository) CreateProject(ctx context.Context, p *models.Project) error {
	return r.conn(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	var p models.Project
	err := r.conn(ctx).First(&p, "id = ?", id).Error
	return p, err
}

// SaveProject persists the budget and the derived financial fields of a project.
// All other fields are left untouched.
func (r *Repository) SaveProject(ctx context.Context, p models.Project) error {
	return r.conn(ctx).
		Model(&p).
		Select("TotalValue", "TotalCost", "ProfitMargin").
		Updates(&p).Error
}

// SaveProjectTotals persists total_cost and profit_margin of a project.
// The budget is never written here.
func (r *Repository) SaveProjectTotals(ctx context.Context, id uuid.UUID, totalCost, profitMargin decimal.Decimal) error {
	return r.conn(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Select("TotalCost", "ProfitMargin").
		Updates(models.Project{
			TotalCost:    models.RoundMoney(totalCost),
			ProfitMargin: models.RoundMoney(profitMargin),
		}).Error
}

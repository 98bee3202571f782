package repository

import (
	"context"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

func (r *Repository) CreateMaterial(ctx context.Context, m *models.Material) error {
	return r.conn(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *Repository) GetMaterial(ctx context.Context, id uuid.UUID) (models.Material, error) {
	var m models.Material
	err := r.conn(ctx).First(&m, "id = ?", id).Error
	return m, err
}

// SaveMaterialQuantity sets the quantity on hand of a material.
func (r *Repository) SaveMaterialQuantity(ctx context.Context, id uuid.UUID, quantity decimal.Decimal) error {
	return r.conn(ctx).
		Model(&models.Material{DefaultModel: models.DefaultModel{ID: id}}).
		Update("quantity", quantity).Error
}

// ListMaterials returns all materials ordered by name.
func (r *Repository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	err := r.conn(ctx).Order("name ASC, id ASC").Find(&materials).Error
	return materials, err
}

// ListLowStockMaterials returns the materials whose quantity on hand reached
// their minimum quantity.
func (r *Repository) ListLowStockMaterials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	err := r.conn(ctx).Where("quantity <= min_quantity").Order("name ASC, id ASC").Find(&materials).Error
	return materials, err
}

func (r *Repository) CreateMovement(ctx context.Context, m *models.InventoryMovement) error {
	return r.conn(ctx).Omit(clause.Associations).Create(m).Error
}

// ListMovements returns the stock movements of a material, newest first.
func (r *Repository) ListMovements(ctx context.Context, materialID uuid.UUID) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	err := r.conn(ctx).
		Where("material_id = ?", materialID).
		Order("movement_date DESC, created_at DESC").
		Find(&movements).Error
	return movements, err
}

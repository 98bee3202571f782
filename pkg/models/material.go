package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Material is a stock item that can be consumed by projects.
type Material struct {
	DefaultModel
	Name        string
	Unit        string
	Supplier    string
	PriceCost   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8);check:quantity_non_negative,quantity >= 0"`
	MinQuantity decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (m *Material) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Unit = strings.TrimSpace(m.Unit)
	m.Supplier = strings.TrimSpace(m.Supplier)

	return nil
}

// LowStock reports if the quantity on hand reached the minimum quantity.
func (m Material) LowStock() bool {
	return m.Quantity.LessThanOrEqual(m.MinQuantity)
}

// Validate checks the fields callers may set on a material.
func (m Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMaterialNameEmpty
	}

	if m.Quantity.IsNegative() || m.MinQuantity.IsNegative() {
		return ErrMaterialQuantityNegative
	}

	if m.PriceCost.IsNegative() {
		return ErrUnitCostNegative
	}

	return nil
}

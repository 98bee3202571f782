package models

import (
	"strings"

	"github.com/gessotrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostType classifies a cost entry.
type CostType string

const (
	CostTypeMaterial CostType = "MATERIAL"
	CostTypeLabor    CostType = "LABOR"
	CostTypeVehicle  CostType = "VEHICLE"
)

// CostTypes lists all cost types in display order.
var CostTypes = []CostType{CostTypeMaterial, CostTypeLabor, CostTypeVehicle}

// Valid reports if the type is one of the known cost types.
func (t CostType) Valid() bool {
	return t == CostTypeMaterial || t == CostTypeLabor || t == CostTypeVehicle
}

// CostEntry is a single expense recorded against a project.
//
// Quantity, MaterialID and InventoryDeductedQuantity are only set on MATERIAL
// entries. InventoryDeductedQuantity is the part of Quantity that was actually
// taken from stock, the remainder was a shortfall.
type CostEntry struct {
	DefaultModel
	ProjectID                 uuid.UUID `gorm:"type:char(36);index"`
	Project                   Project
	Type                      CostType `gorm:"index"`
	Description               string
	Amount                    decimal.Decimal `gorm:"type:DECIMAL(20,8);check:amount_positive,amount > 0"`
	Date                      types.Date      `gorm:"index"`
	MaterialID                *uuid.UUID `gorm:"type:char(36)"`
	Material                  *Material
	Quantity                  decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	InventoryDeductedQuantity decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Notes                     string
}

func (CostEntry) TableName() string {
	return "project_costs"
}

func (c *CostEntry) BeforeSave(_ *gorm.DB) error {
	c.Description = strings.TrimSpace(c.Description)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Amount = RoundMoney(c.Amount)

	return nil
}

// IsMaterial reports if the entry consumed inventory.
func (c CostEntry) IsMaterial() bool {
	return c.Type == CostTypeMaterial
}

// Deducted returns the quantity taken from stock, zero if none.
func (c CostEntry) Deducted() decimal.Decimal {
	if !c.InventoryDeductedQuantity.Valid {
		return decimal.Zero
	}
	return c.InventoryDeductedQuantity.Decimal
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovementType is the direction of a stock change.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// InventoryMovement records a single change of the quantity on hand of a material.
//
// CostEntryID is a plain reference without a foreign key since the movement is
// written before the cost entry that caused it.
type InventoryMovement struct {
	DefaultModel
	MaterialID   uuid.UUID `gorm:"type:char(36);index"`
	Material     Material
	MovementType MovementType
	Quantity     decimal.Decimal     `gorm:"type:DECIMAL(20,8);check:movement_quantity_positive,quantity > 0"`
	UnitCost     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	ProjectID    *uuid.UUID          `gorm:"type:char(36)"`
	Project      *Project
	CostEntryID  *uuid.UUID `gorm:"type:char(36);index"`
	Notes        string
	MovementDate time.Time `gorm:"index"`
}

func (m *InventoryMovement) BeforeSave(_ *gorm.DB) error {
	m.Notes = strings.TrimSpace(m.Notes)
	m.MovementDate = m.MovementDate.In(time.UTC)

	return nil
}

func (m *InventoryMovement) AfterFind(tx *gorm.DB) error {
	m.MovementDate = m.MovementDate.In(time.UTC)
	return m.DefaultModel.AfterFind(tx)
}

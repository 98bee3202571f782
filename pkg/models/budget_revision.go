package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetRevision records a change of the contracted value of a project.
//
// Revisions are append-only.
type BudgetRevision struct {
	DefaultModel
	ProjectID     uuid.UUID `gorm:"type:char(36);index"`
	Project       Project
	PreviousValue decimal.Decimal `gorm:"type:DECIMAL(20,8);check:revision_values_non_negative,previous_value >= 0 AND new_value >= 0"`
	NewValue      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Reason        string
	ChangedAt     time.Time `gorm:"index"`
}

func (BudgetRevision) TableName() string {
	return "project_budget_revisions"
}

func (r *BudgetRevision) BeforeSave(_ *gorm.DB) error {
	r.Reason = strings.TrimSpace(r.Reason)
	r.PreviousValue = RoundMoney(r.PreviousValue)
	r.NewValue = RoundMoney(r.NewValue)
	r.ChangedAt = r.ChangedAt.In(time.UTC)

	return nil
}

// BeforeUpdate rejects every update of an existing revision.
func (r *BudgetRevision) BeforeUpdate(_ *gorm.DB) error {
	return ErrRevisionImmutable
}

// BeforeDelete rejects deletion of revisions.
func (r *BudgetRevision) BeforeDelete(_ *gorm.DB) error {
	return ErrRevisionImmutable
}

func (r *BudgetRevision) AfterFind(tx *gorm.DB) error {
	r.ChangedAt = r.ChangedAt.In(time.UTC)
	return r.DefaultModel.AfterFind(tx)
}

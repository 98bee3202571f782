package models

import (
	"strings"

	"github.com/gessotrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusQuote      ProjectStatus = "Orçamento"
	ProjectStatusApproved   ProjectStatus = "Aprovado"
	ProjectStatusInProgress ProjectStatus = "Em Andamento"
	ProjectStatusDone       ProjectStatus = "Concluído"
	ProjectStatusCancelled  ProjectStatus = "Cancelado"
)

// Valid reports if the status is one of the known states.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusQuote, ProjectStatusApproved, ProjectStatusInProgress, ProjectStatusDone, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a construction job with a contracted budget.
//
// TotalCost and ProfitMargin are derived from the cost entries of the project
// and only written by the financial aggregator.
type Project struct {
	DefaultModel
	Title        string
	ClientName   string
	Address      string
	Status       ProjectStatus
	StartDate    *types.Date
	EndDate      *types.Date
	TotalValue   decimal.Decimal `gorm:"type:DECIMAL(20,8);check:total_value_non_negative,total_value >= 0"`
	TotalCost    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ProfitMargin decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Title = strings.TrimSpace(p.Title)
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.Address = strings.TrimSpace(p.Address)

	if p.Status == "" {
		p.Status = ProjectStatusQuote
	}

	p.TotalValue = RoundMoney(p.TotalValue)
	p.TotalCost = RoundMoney(p.TotalCost)
	p.ProfitMargin = RoundMoney(p.ProfitMargin)

	return nil
}

// Validate checks the fields callers may set on a project.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrProjectTitleEmpty
	}

	if p.TotalValue.IsNegative() {
		return ErrProjectValueNegative
	}

	if !p.Status.Valid() && p.Status != "" {
		return ErrProjectStatusInvalid
	}

	return nil
}

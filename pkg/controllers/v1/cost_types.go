package v1

import (
	"fmt"

	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostEntryEditable is a LABOR or VEHICLE cost.
type CostEntryEditable struct {
	Type        models.CostType `json:"type" example:"LABOR"`                                   // LABOR or VEHICLE. Material costs are created at the material-costs endpoint
	Description string          `json:"description" example:"Diária do gesseiro"`               // What the cost was for
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"120.00"`           // Amount spent, must be positive
	Date        types.Date      `json:"date" swaggertype:"string" example:"2025-09-15"`         // Date of the cost. Defaults to today
	Notes       string          `json:"notes" example:"Acabamento da sanca"`                    // Free text notes
}

func (editable CostEntryEditable) input(projectID uuid.UUID) reconcile.NonMaterialCost {
	return reconcile.NonMaterialCost{
		ProjectID:   projectID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
		Notes:       editable.Notes,
	}
}

// MaterialCostEditable records material consumed by a project.
type MaterialCostEditable struct {
	MaterialID  uuid.UUID           `json:"material_id" binding:"required" example:"0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11"` // The consumed material
	Quantity    decimal.Decimal     `json:"quantity" swaggertype:"string" example:"15"`                                    // Consumed quantity in the unit of the material
	UnitCost    decimal.NullDecimal `json:"unit_cost" swaggertype:"string" example:"5.00"`                                 // Price per unit. Defaults to the cost price of the material
	Date        types.Date          `json:"date" swaggertype:"string" example:"2025-09-15"`                                // Date of the cost. Defaults to today
	Description string              `json:"description" example:"Placas para o forro da sala"`                             // Defaults to the name of the material
	Notes       string              `json:"notes" example:""`                                                              // Free text notes
}

func (editable MaterialCostEditable) input(projectID uuid.UUID) reconcile.MaterialCost {
	return reconcile.MaterialCost{
		ProjectID:   projectID,
		MaterialID:  editable.MaterialID,
		Quantity:    editable.Quantity,
		UnitCost:    editable.UnitCost,
		Date:        editable.Date,
		Description: editable.Description,
		Notes:       editable.Notes,
	}
}

// CostEntryPatch holds the fields to change on a cost entry. Fields that
// are not set keep their value.
//
// ProjectID, MaterialID and InventoryDeductedQuantity cannot be changed, a
// request that tries to is rejected.
type CostEntryPatch struct {
	ProjectID                 *uuid.UUID       `json:"project_id"`
	MaterialID                *uuid.UUID       `json:"material_id"`
	InventoryDeductedQuantity *decimal.Decimal `json:"inventory_deducted_quantity" swaggertype:"string"`
	Type                      *models.CostType `json:"type" example:"VEHICLE"`
	Description               *string          `json:"description" example:"Frete das placas"`
	Amount                    *decimal.Decimal `json:"amount" swaggertype:"string" example:"80.00"`
	Date                      *types.Date      `json:"date" swaggertype:"string" example:"2025-09-16"`
	Quantity                  *decimal.Decimal `json:"quantity" swaggertype:"string" example:"12"`
	Notes                     *string          `json:"notes"`
}

// apply returns the entry with all set fields of the patch applied.
func (patch CostEntryPatch) apply(entry models.CostEntry) models.CostEntry {
	if patch.ProjectID != nil {
		entry.ProjectID = *patch.ProjectID
	}
	if patch.MaterialID != nil {
		entry.MaterialID = patch.MaterialID
	}
	if patch.InventoryDeductedQuantity != nil {
		entry.InventoryDeductedQuantity = decimal.NewNullDecimal(*patch.InventoryDeductedQuantity)
	}
	if patch.Type != nil {
		entry.Type = *patch.Type
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Amount != nil {
		entry.Amount = *patch.Amount
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Quantity != nil {
		entry.Quantity = decimal.NewNullDecimal(*patch.Quantity)
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}

	return entry
}

type CostEntryLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/costs/3c1a7f0e-5d7b-4c59-b0a4-8f2d6a1e9b33"`       // The cost entry itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"` // The project the cost belongs to
}

// CostEntry is the API v1 representation of a cost entry.
type CostEntry struct {
	models.DefaultModel
	ProjectID                 uuid.UUID           `json:"project_id" example:"5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"`
	Type                      models.CostType     `json:"type" example:"MATERIAL"`
	Description               string              `json:"description" example:"Placa de gesso ST"`
	Amount                    decimal.Decimal     `json:"amount" swaggertype:"string" example:"75.00"`
	Date                      types.Date          `json:"date" swaggertype:"string" example:"2025-09-15"`
	MaterialID                *uuid.UUID          `json:"material_id" example:"0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11"`
	Quantity                  decimal.NullDecimal `json:"quantity" swaggertype:"string" example:"15"`                    // Consumed quantity, MATERIAL only
	InventoryDeductedQuantity decimal.NullDecimal `json:"inventory_deducted_quantity" swaggertype:"string" example:"10"` // Part of the quantity taken from stock, MATERIAL only
	Notes                     string              `json:"notes" example:""`
	Links                     CostEntryLinks      `json:"links"`
}

func newCostEntry(c *gin.Context, model models.CostEntry) CostEntry {
	url := httputil.BaseURL(c)

	return CostEntry{
		DefaultModel:              model.DefaultModel,
		ProjectID:                 model.ProjectID,
		Type:                      model.Type,
		Description:               model.Description,
		Amount:                    model.Amount,
		Date:                      model.Date,
		MaterialID:                model.MaterialID,
		Quantity:                  model.Quantity,
		InventoryDeductedQuantity: model.InventoryDeductedQuantity,
		Notes:                     model.Notes,
		Links: CostEntryLinks{
			Self:    fmt.Sprintf("%s/v1/costs/%s", url, model.ID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type CostEntryResponse struct {
	Data  *CostEntry `json:"data"`                                                          // Data for the cost entry
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CostEntryListResponse struct {
	Data  []CostEntry `json:"data"`                                                          // Cost entries, newest first
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CostEntryQueryFilter struct {
	Type        string `form:"type"`        // By cost type
	Description string `form:"description"` // Case and accent insensitive match on the description
}

// MaterialCost is the outcome of recording consumed material.
//
// Shortfall is the part of the quantity that was not in stock. The cost entry
// is recorded for the full quantity regardless.
type MaterialCost struct {
	CostEntry CostEntry       `json:"cost_entry"`
	Deducted  decimal.Decimal `json:"deducted" swaggertype:"string" example:"10"`                                                                 // Quantity taken from stock
	Shortfall decimal.Decimal `json:"shortfall" swaggertype:"string" example:"5"`                                                                 // Quantity missing in stock
	Warning   string          `json:"warning" example:"insufficient stock: 5 un of Placa de gesso ST not deducted from inventory (R$25,00)"` // Set when there was a shortfall
}

func newMaterialCost(c *gin.Context, result reconcile.MaterialCostResult) MaterialCost {
	return MaterialCost{
		CostEntry: newCostEntry(c, result.Entry),
		Deducted:  result.Deducted,
		Shortfall: result.Shortfall,
		Warning:   result.Warning,
	}
}

type MaterialCostResponse struct {
	Data  *MaterialCost `json:"data"`
	Error *string       `json:"error" example:"the quantity must be positive"` // The error, if any occurred
}

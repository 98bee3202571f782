package v1

import (
	"fmt"
	"time"

	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaterialEditable struct {
	Name        string          `json:"name" example:"Placa de gesso ST"`                            // Name of the material
	Unit        string          `json:"unit" example:"un"`                                           // Unit the quantities are counted in
	Supplier    string          `json:"supplier" example:"Gesso Forte Ltda"`                         // Where the material is bought
	PriceCost   decimal.Decimal `json:"price_cost" swaggertype:"string" example:"5.00"`              // Cost price per unit
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"10"`                  // Quantity on hand. On creation, the initial stock
	MinQuantity decimal.Decimal `json:"min_quantity" swaggertype:"string" example:"2"`               // Quantity at or below which the material is low on stock
}

// model returns the database resource for the editable fields
func (editable MaterialEditable) model() models.Material {
	return models.Material{
		Name:        editable.Name,
		Unit:        editable.Unit,
		Supplier:    editable.Supplier,
		PriceCost:   editable.PriceCost,
		Quantity:    editable.Quantity,
		MinQuantity: editable.MinQuantity,
	}
}

type MaterialLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/materials/0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11"`                // The material itself
	Movements string `json:"movements" example:"https://example.com/api/v1/materials/0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11/movements"` // Stock movements of the material
	Restock   string `json:"restock" example:"https://example.com/api/v1/materials/0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11/restock"`     // Endpoint to add stock
}

// Material is the API v1 representation of a Material.
type Material struct {
	models.DefaultModel
	MaterialEditable
	LowStock bool          `json:"low_stock" example:"false"` // Is the quantity on hand at or below the minimum?
	Links    MaterialLinks `json:"links"`
}

func newMaterial(c *gin.Context, model models.Material) Material {
	url := fmt.Sprintf("%s/v1/materials/%s", httputil.BaseURL(c), model.ID)

	return Material{
		DefaultModel: model.DefaultModel,
		MaterialEditable: MaterialEditable{
			Name:        model.Name,
			Unit:        model.Unit,
			Supplier:    model.Supplier,
			PriceCost:   model.PriceCost,
			Quantity:    model.Quantity,
			MinQuantity: model.MinQuantity,
		},
		LowStock: model.LowStock(),
		Links: MaterialLinks{
			Self:      url,
			Movements: url + "/movements",
			Restock:   url + "/restock",
		},
	}
}

type MaterialResponse struct {
	Data  *Material `json:"data"`                                                          // Data for the material
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MaterialListResponse struct {
	Data  []Material `json:"data"`                                                          // List of materials
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MaterialQueryFilter struct {
	LowStock bool `form:"lowStock"` // Only materials at or below their minimum quantity
}

type RestockEditable struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"20"` // Quantity added to stock, must be positive
	Notes    string          `json:"notes" example:"NF 4512"`                    // Free text notes for the movement
}

// InventoryMovement is the API v1 representation of a stock movement.
type InventoryMovement struct {
	models.DefaultModel
	MaterialID   uuid.UUID           `json:"material_id" example:"0f0e5a9e-2b0c-4f7e-8a1c-2d9a3b6c7e11"`
	MovementType models.MovementType `json:"movement_type" example:"OUT"`                 // IN or OUT
	Quantity     decimal.Decimal     `json:"quantity" swaggertype:"string" example:"10"`  // Moved quantity, always positive
	UnitCost     decimal.NullDecimal `json:"unit_cost" swaggertype:"string" example:"5"`  // Unit cost at the time of the movement
	ProjectID    *uuid.UUID          `json:"project_id"`                                  // Project that consumed the material, if any
	CostEntryID  *uuid.UUID          `json:"cost_entry_id"`                               // Cost entry that caused the movement, if any
	Notes        string              `json:"notes" example:"Placas para o forro da sala"` // Free text notes
	MovementDate time.Time           `json:"movement_date" example:"2025-09-15T10:00:00Z"`
}

func newInventoryMovement(model models.InventoryMovement) InventoryMovement {
	return InventoryMovement{
		DefaultModel: model.DefaultModel,
		MaterialID:   model.MaterialID,
		MovementType: model.MovementType,
		Quantity:     model.Quantity,
		UnitCost:     model.UnitCost,
		ProjectID:    model.ProjectID,
		CostEntryID:  model.CostEntryID,
		Notes:        model.Notes,
		MovementDate: model.MovementDate,
	}
}

type InventoryMovementListResponse struct {
	Data  []InventoryMovement `json:"data"`                                                          // Stock movements, newest first
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

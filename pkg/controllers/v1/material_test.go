package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/gessotrack/backend/pkg/controllers/v1"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMaterialsCreate() {
	m := suite.createTestMaterial(v1.MaterialEditable{
		Name:        " Placa de gesso ST ",
		Unit:        "un",
		Supplier:    "Gesso Forte Ltda",
		PriceCost:   decimal.NewFromInt(5),
		Quantity:    decimal.NewFromInt(10),
		MinQuantity: decimal.NewFromInt(2),
	})

	suite.Require().NotNil(m.Data)
	suite.Assert().Equal("Placa de gesso ST", m.Data.Name)
	suite.decimalEqual("10", m.Data.Quantity)
	suite.Assert().False(m.Data.LowStock)
	suite.Assert().Equal(baseURL+"/v1/materials/"+m.Data.ID.String(), m.Data.Links.Self)
	suite.Assert().Equal(m.Data.Links.Self+"/movements", m.Data.Links.Movements)
	suite.Assert().Equal(m.Data.Links.Self+"/restock", m.Data.Links.Restock)

	// The initial quantity is booked as a movement
	movements := suite.getMovements(m.Data.ID.String())
	suite.Require().Len(movements, 1)
	suite.Assert().Equal(models.MovementIn, movements[0].MovementType)
	suite.decimalEqual("10", movements[0].Quantity)
	suite.Assert().Equal("initial stock", movements[0].Notes)

	// Without stock, there is nothing to book
	empty := suite.createTestMaterial(v1.MaterialEditable{Name: "Gesso em pó"})
	suite.Assert().Empty(suite.getMovements(empty.Data.ID.String()))
	suite.Assert().True(empty.Data.LowStock)
}

func (suite *TestSuiteStandard) TestMaterialsCreateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Broken JSON", `{ "name": `, "un-parseable"},
		{"No name", map[string]any{"name": " ", "quantity": "1"}, models.ErrMaterialNameEmpty.Error()},
		{"Negative quantity", map[string]any{"name": "Sisal", "quantity": "-1"}, models.ErrMaterialQuantityNegative.Error()},
		{"Negative minimum", map[string]any{"name": "Sisal", "min_quantity": "-1"}, models.ErrMaterialQuantityNegative.Error()},
		{"Negative price", map[string]any{"name": "Sisal", "price_cost": "-0.5"}, models.ErrUnitCostNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "/v1/materials", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.MaterialResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestMaterialsGet() {
	m := suite.createTestMaterial(v1.MaterialEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing material", "/v1/materials/" + m.Data.ID.String(), http.StatusOK},
		{"No material with this ID", "/v1/materials/" + uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "/v1/materials/NotParseableAsUUID", http.StatusBadRequest},
		{"Movements of unknown material", "/v1/materials/" + uuid.New().String() + "/movements", http.StatusNotFound},
		{"Movements with invalid UUID", "/v1/materials/NotParseableAsUUID/movements", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMaterialsList() {
	suite.createTestMaterial(v1.MaterialEditable{Name: "Placa de gesso ST", Quantity: decimal.NewFromInt(50), MinQuantity: decimal.NewFromInt(10)})
	suite.createTestMaterial(v1.MaterialEditable{Name: "Sisal", Quantity: decimal.NewFromInt(3), MinQuantity: decimal.NewFromInt(5)})
	suite.createTestMaterial(v1.MaterialEditable{Name: "Arame", Quantity: decimal.NewFromInt(5), MinQuantity: decimal.NewFromInt(5)})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All", "", []string{"Arame", "Placa de gesso ST", "Sisal"}},
		{"Low stock", "?lowStock=true", []string{"Arame", "Sisal"}},
		{"Low stock off", "?lowStock=false", []string{"Arame", "Placa de gesso ST", "Sisal"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, "/v1/materials"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MaterialListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, m := range response.Data {
				names = append(names, m.Name)
			}
			assert.ElementsMatch(t, tt.names, names)
		})
	}

	r := suite.request(http.MethodGet, "/v1/materials?lowStock=perhaps", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMaterialsRestock() {
	m := suite.createTestMaterial(v1.MaterialEditable{Quantity: decimal.NewFromInt(1), MinQuantity: decimal.NewFromInt(5)})
	suite.Require().True(m.Data.LowStock)

	path := "/v1/materials/" + m.Data.ID.String() + "/restock"

	r := suite.request(http.MethodPost, path, v1.RestockEditable{Quantity: decimal.NewFromInt(20), Notes: "NF 4512"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MaterialResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.decimalEqual("21", response.Data.Quantity)
	suite.Assert().False(response.Data.LowStock)

	movements := suite.getMovements(m.Data.ID.String())
	suite.Require().Len(movements, 2)
	suite.Assert().Equal("NF 4512", movements[0].Notes)
	suite.Assert().Nil(movements[0].ProjectID)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Zero quantity", path, v1.RestockEditable{}, http.StatusBadRequest},
		{"Negative quantity", path, map[string]any{"quantity": "-3"}, http.StatusBadRequest},
		{"No material with this ID", "/v1/materials/" + uuid.New().String() + "/restock", map[string]any{"quantity": "3"}, http.StatusNotFound},
		{"Not a valid UUID", "/v1/materials/NotParseableAsUUID/restock", map[string]any{"quantity": "3"}, http.StatusBadRequest},
		{"Empty body", path, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	suite.decimalEqual("21", suite.getMaterial(m.Data.ID.String()).Quantity)
}

func (suite *TestSuiteStandard) TestMaterialCostsCreate() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	m := suite.createTestMaterial(v1.MaterialEditable{
		Unit:      "un",
		PriceCost: decimal.NewFromInt(5),
		Quantity:  decimal.NewFromInt(10),
	})

	mc := suite.createTestMaterialCost(p.Data.ID.String(), m.Data.ID, "4")
	suite.Require().NotNil(mc.Data)
	suite.Assert().Nil(mc.Error)
	suite.decimalEqual("4", mc.Data.Deducted)
	suite.decimalEqual("0", mc.Data.Shortfall)
	suite.Assert().Empty(mc.Data.Warning)
	suite.Assert().Equal(models.CostTypeMaterial, mc.Data.CostEntry.Type)
	suite.Assert().Equal("Placa de gesso ST", mc.Data.CostEntry.Description, "description defaults to the material name")
	suite.decimalEqual("20", mc.Data.CostEntry.Amount)
	suite.Require().NotNil(mc.Data.CostEntry.MaterialID)
	suite.Assert().Equal(m.Data.ID, *mc.Data.CostEntry.MaterialID)
	suite.decimalEqual("4", mc.Data.CostEntry.Quantity.Decimal)
	suite.decimalEqual("4", mc.Data.CostEntry.InventoryDeductedQuantity.Decimal)

	suite.decimalEqual("6", suite.getMaterial(m.Data.ID.String()).Quantity)

	// Overriding the unit cost
	r := suite.request(http.MethodPost, "/v1/projects/"+p.Data.ID.String()+"/material-costs", map[string]any{
		"material_id": m.Data.ID.String(),
		"quantity":    "2",
		"unit_cost":   "7.5",
		"description": "Placas da cozinha",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var override v1.MaterialCostResponse
	test.DecodeResponse(suite.T(), &r, &override)
	suite.decimalEqual("15", override.Data.CostEntry.Amount)
	suite.Assert().Equal("Placas da cozinha", override.Data.CostEntry.Description)

	report := suite.getProject(p.Data.ID.String())
	suite.decimalEqual("35", report.Project.TotalCost)
	suite.decimalEqual("35", report.Breakdown.Material)
}

// TestMaterialCostsShortfall records the full cost even when stock runs out.
func (suite *TestSuiteStandard) TestMaterialCostsShortfall() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	m := suite.createTestMaterial(v1.MaterialEditable{
		Unit:      "un",
		PriceCost: decimal.NewFromInt(5),
		Quantity:  decimal.NewFromInt(10),
	})

	mc := suite.createTestMaterialCost(p.Data.ID.String(), m.Data.ID, "15")
	suite.Assert().Nil(mc.Error)
	suite.decimalEqual("10", mc.Data.Deducted)
	suite.decimalEqual("5", mc.Data.Shortfall)
	suite.decimalEqual("75", mc.Data.CostEntry.Amount)
	suite.decimalEqual("15", mc.Data.CostEntry.Quantity.Decimal)
	suite.decimalEqual("10", mc.Data.CostEntry.InventoryDeductedQuantity.Decimal)
	suite.Assert().Equal("insufficient stock: 5 un of Placa de gesso ST not deducted from inventory (R$25,00)", mc.Data.Warning)
	suite.Assert().Contains(mc.Data.CostEntry.Notes, mc.Data.Warning)

	material := suite.getMaterial(m.Data.ID.String())
	suite.decimalEqual("0", material.Quantity)
	suite.Assert().True(material.LowStock)

	movements := suite.getMovements(m.Data.ID.String())
	suite.Require().Len(movements, 2)
	suite.Assert().Equal(models.MovementOut, movements[0].MovementType)
	suite.decimalEqual("10", movements[0].Quantity)
	suite.Assert().Equal(p.Data.ID, *movements[0].ProjectID)
	suite.Assert().Equal(mc.Data.CostEntry.ID, *movements[0].CostEntryID)

	suite.decimalEqual("75", suite.getProject(p.Data.ID.String()).Project.TotalCost)

	// Stock is empty now, nothing is deducted
	empty := suite.createTestMaterialCost(p.Data.ID.String(), m.Data.ID, "2")
	suite.decimalEqual("0", empty.Data.Deducted)
	suite.decimalEqual("2", empty.Data.Shortfall)
	suite.Assert().Len(suite.getMovements(m.Data.ID.String()), 2)
}

func (suite *TestSuiteStandard) TestMaterialCostsCreateFails() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	m := suite.createTestMaterial(v1.MaterialEditable{PriceCost: decimal.NewFromInt(5), Quantity: decimal.NewFromInt(10)})
	path := "/v1/projects/" + p.Data.ID.String() + "/material-costs"

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"No material", path, map[string]any{"quantity": "1"}, http.StatusBadRequest, "is required"},
		{"Zero quantity", path, map[string]any{"material_id": m.Data.ID.String(), "quantity": "0"}, http.StatusBadRequest, models.ErrQuantityNotPositive.Error()},
		{"Zero unit cost", path, map[string]any{"material_id": m.Data.ID.String(), "quantity": "1", "unit_cost": "0"}, http.StatusBadRequest, models.ErrUnitCostNotPositive.Error()},
		{"Unknown material", path, map[string]any{"material_id": uuid.New().String(), "quantity": "1"}, http.StatusNotFound, "there is no material"},
		{"Unknown project", "/v1/projects/" + uuid.New().String() + "/material-costs", map[string]any{"material_id": m.Data.ID.String(), "quantity": "1"}, http.StatusNotFound, "there is no project"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MaterialCostResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	// Failed requests leave stock and ledger untouched
	suite.decimalEqual("10", suite.getMaterial(m.Data.ID.String()).Quantity)
	suite.Assert().Len(suite.getMovements(m.Data.ID.String()), 1)
	suite.Assert().Equal(0, suite.getProject(p.Data.ID.String()).EntryCount)
}

func (suite *TestSuiteStandard) TestMaterialsOptions() {
	m := suite.createTestMaterial(v1.MaterialEditable{})
	id := m.Data.ID.String()

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "/v1/materials", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Material exists", "/v1/materials/" + id, http.StatusNoContent, "OPTIONS, GET"},
		{"No material with this ID", "/v1/materials/" + uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "/v1/materials/NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Restock", "/v1/materials/" + id + "/restock", http.StatusNoContent, "OPTIONS, POST"},
		{"Movements", "/v1/materials/" + id + "/movements", http.StatusNoContent, "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gessotrack/backend/internal/types"
	v1 "github.com/gessotrack/backend/pkg/controllers/v1"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gessotrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCostsCreate() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})

	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária do gesseiro",
		Amount:      decimal.RequireFromString("120.005"),
	})

	suite.Require().NotNil(c.Data)
	suite.Assert().Equal(p.Data.ID, c.Data.ProjectID)
	suite.Assert().Equal(models.CostTypeLabor, c.Data.Type)
	suite.decimalEqual("120.01", c.Data.Amount)
	suite.Assert().Equal(types.NewDate(2025, 9, 15), c.Data.Date, "date defaults to today")
	suite.Assert().Nil(c.Data.MaterialID)
	suite.Assert().False(c.Data.Quantity.Valid)
	suite.Assert().Equal(p.Data.Links.Self, c.Data.Links.Project)
	suite.Assert().Equal(baseURL+"/v1/costs/"+c.Data.ID.String(), c.Data.Links.Self)

	report := suite.getProject(p.Data.ID.String())
	suite.decimalEqual("120.01", report.Project.TotalCost)
	suite.decimalEqual("879.99", report.Project.ProfitMargin)
}

func (suite *TestSuiteStandard) TestCostsCreateFails() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	path := "/v1/projects/" + p.Data.ID.String() + "/costs"

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"Broken JSON", path, `{ "amount": 12 `, http.StatusBadRequest, "un-parseable"},
		{"Zero amount", path, v1.CostEntryEditable{Type: models.CostTypeLabor, Description: "Diária"}, http.StatusBadRequest, models.ErrCostAmountNotPositive.Error()},
		{"Negative amount", path, map[string]any{"type": "VEHICLE", "description": "Frete", "amount": "-5"}, http.StatusBadRequest, models.ErrCostAmountNotPositive.Error()},
		{"No description", path, map[string]any{"type": "LABOR", "amount": "10"}, http.StatusBadRequest, models.ErrCostDescriptionEmpty.Error()},
		{"Unknown type", path, map[string]any{"type": "FOOD", "description": "Almoço", "amount": "10"}, http.StatusBadRequest, models.ErrCostTypeInvalid.Error()},
		{"Material type", path, map[string]any{"type": "MATERIAL", "description": "Placas", "amount": "10"}, http.StatusBadRequest, models.ErrCostTypeInvalid.Error()},
		{"Broken date", path, map[string]any{"type": "LABOR", "description": "Diária", "amount": "10", "date": "15/09/2025"}, http.StatusBadRequest, ""},
		{"No project", "/v1/projects/" + uuid.New().String() + "/costs", map[string]any{"type": "LABOR", "description": "Diária", "amount": "10"}, http.StatusNotFound, "there is no project"},
		{"Invalid project ID", "/v1/projects/NotParseableAsUUID/costs", map[string]any{"type": "LABOR", "description": "Diária", "amount": "10"}, http.StatusBadRequest, "not a valid UUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CostEntryResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	report := suite.getProject(p.Data.ID.String())
	suite.Assert().Equal(0, report.EntryCount)
	suite.decimalEqual("0", report.Project.TotalCost)
}

func (suite *TestSuiteStandard) TestCostsGet() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeVehicle,
		Description: "Frete",
		Amount:      decimal.NewFromInt(80),
	})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing entry", c.Data.ID.String(), http.StatusOK},
		{"No entry with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, "/v1/costs/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CostEntryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, c.Data.ID, response.Data.ID)
				assert.Equal(t, "Frete", response.Data.Description)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCostsList() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(5000)})
	id := p.Data.ID.String()

	suite.createTestCost(id, v1.CostEntryEditable{Type: models.CostTypeLabor, Description: "Instalação da sanca", Amount: decimal.NewFromInt(100), Date: types.NewDate(2025, 9, 1)})
	suite.createTestCost(id, v1.CostEntryEditable{Type: models.CostTypeVehicle, Description: "Frete Gesso Pó", Amount: decimal.NewFromInt(50), Date: types.NewDate(2025, 9, 10)})
	suite.createTestCost(id, v1.CostEntryEditable{Type: models.CostTypeLabor, Description: "Acabamento da SANCA", Amount: decimal.NewFromInt(70), Date: types.NewDate(2025, 9, 12)})

	tests := []struct {
		name         string
		query        url.Values
		descriptions []string
	}{
		{"All, newest first", url.Values{}, []string{"Acabamento da SANCA", "Frete Gesso Pó", "Instalação da sanca"}},
		{"By type", url.Values{"type": {"LABOR"}}, []string{"Acabamento da SANCA", "Instalação da sanca"}},
		{"Accent and case insensitive", url.Values{"description": {"gesso po"}}, []string{"Frete Gesso Pó"}},
		{"Matches anywhere", url.Values{"description": {"sanca"}}, []string{"Acabamento da SANCA", "Instalação da sanca"}},
		{"Glob", url.Values{"description": {"instalacao*"}}, []string{"Instalação da sanca"}},
		{"Type and description", url.Values{"type": {"VEHICLE"}, "description": {"sanca"}}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := "/v1/projects/" + id + "/costs"
			if len(tt.query) > 0 {
				path += "?" + tt.query.Encode()
			}

			r := suite.request(http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CostEntryListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0, len(response.Data))
			for _, c := range response.Data {
				descriptions = append(descriptions, c.Description)
			}
			assert.Equal(t, tt.descriptions, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestCostsListFails() {
	p := suite.createTestProject(v1.ProjectEditable{})

	r := suite.request(http.MethodGet, "/v1/projects/"+p.Data.ID.String()+"/costs?type=FOOD", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "/v1/projects/"+uuid.New().String()+"/costs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCostsUpdate() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária",
		Amount:      decimal.NewFromInt(100),
		Notes:       "Sábado",
	})

	r := suite.request(http.MethodPatch, "/v1/costs/"+c.Data.ID.String(), map[string]any{
		"type":   "VEHICLE",
		"amount": "250",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CostEntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Error)
	suite.Assert().Equal(models.CostTypeVehicle, response.Data.Type)
	suite.decimalEqual("250", response.Data.Amount)
	suite.Assert().Equal("Diária", response.Data.Description, "fields not in the body are kept")
	suite.Assert().Equal("Sábado", response.Data.Notes)

	report := suite.getProject(p.Data.ID.String())
	suite.decimalEqual("250", report.Project.TotalCost)
	suite.decimalEqual("750", report.Project.ProfitMargin)
	suite.decimalEqual("250", report.Breakdown.Vehicle)
	suite.decimalEqual("0", report.Breakdown.Labor)
}

func (suite *TestSuiteStandard) TestCostsUpdateFails() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	other := suite.createTestProject(v1.ProjectEditable{Title: "Drywall - Loja 4"})
	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária",
		Amount:      decimal.NewFromInt(100),
	})
	path := "/v1/costs/" + c.Data.ID.String()

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"Move to other project", path, map[string]any{"project_id": other.Data.ID.String()}, http.StatusBadRequest, models.ErrCostImmutableField.Error()},
		{"Switch to MATERIAL", path, map[string]any{"type": "MATERIAL"}, http.StatusBadRequest, models.ErrCostMaterialTypeChange.Error()},
		{"Zero amount", path, map[string]any{"amount": "0"}, http.StatusBadRequest, models.ErrCostAmountNotPositive.Error()},
		{"Empty description", path, map[string]any{"description": "  "}, http.StatusBadRequest, models.ErrCostDescriptionEmpty.Error()},
		{"Material fields", path, map[string]any{"quantity": "3"}, http.StatusBadRequest, models.ErrCostMaterialFields.Error()},
		{"Broken JSON", path, `{ "amount": `, http.StatusBadRequest, "un-parseable"},
		{"No entry with this ID", "/v1/costs/" + uuid.New().String(), map[string]any{"amount": "10"}, http.StatusNotFound, "there is no cost entry"},
		{"Not a valid UUID", "/v1/costs/NotParseableAsUUID", map[string]any{"amount": "10"}, http.StatusBadRequest, "not a valid UUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CostEntryResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	// Nothing changed
	report := suite.getProject(p.Data.ID.String())
	suite.decimalEqual("100", report.Project.TotalCost)
	suite.Assert().Equal(1, report.EntryCount)
}

func (suite *TestSuiteStandard) TestCostsDelete() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária",
		Amount:      decimal.NewFromInt(100),
	})

	r := suite.request(http.MethodDelete, "/v1/costs/"+c.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/costs/"+c.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "/v1/costs/"+c.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "/v1/costs/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	report := suite.getProject(p.Data.ID.String())
	suite.decimalEqual("0", report.Project.TotalCost)
	suite.decimalEqual("1000", report.Project.ProfitMargin)
}

func (suite *TestSuiteStandard) TestCostsDeleteMaterialKeepsStock() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	m := suite.createTestMaterial(v1.MaterialEditable{PriceCost: decimal.NewFromInt(5), Quantity: decimal.NewFromInt(10)})

	mc := suite.createTestMaterialCost(p.Data.ID.String(), m.Data.ID, "4")

	r := suite.request(http.MethodDelete, "/v1/costs/"+mc.Data.CostEntry.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.decimalEqual("6", suite.getMaterial(m.Data.ID.String()).Quantity)
	suite.decimalEqual("0", suite.getProject(p.Data.ID.String()).Project.TotalCost)
}

func (suite *TestSuiteStandard) TestCostsDeleteMaterialRestoresStock() {
	suite.useOrchestrator(reconcile.WithRestorePolicy(reconcile.RestoreDeducted))

	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	m := suite.createTestMaterial(v1.MaterialEditable{PriceCost: decimal.NewFromInt(5), Quantity: decimal.NewFromInt(10)})

	// Only 10 of 15 come from stock, so only 10 go back
	mc := suite.createTestMaterialCost(p.Data.ID.String(), m.Data.ID, "15")
	suite.decimalEqual("0", suite.getMaterial(m.Data.ID.String()).Quantity)

	r := suite.request(http.MethodDelete, "/v1/costs/"+mc.Data.CostEntry.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.decimalEqual("10", suite.getMaterial(m.Data.ID.String()).Quantity)

	movements := suite.getMovements(m.Data.ID.String())
	suite.Require().Len(movements, 3)
	suite.Assert().Equal(models.MovementIn, movements[0].MovementType)
	suite.decimalEqual("10", movements[0].Quantity)
	suite.Assert().Equal(mc.Data.CostEntry.ID, *movements[0].CostEntryID)
}

func (suite *TestSuiteStandard) TestCostsOptions() {
	p := suite.createTestProject(v1.ProjectEditable{})
	c := suite.createTestCost(p.Data.ID.String(), v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária",
		Amount:      decimal.NewFromInt(100),
	})

	r := suite.request(http.MethodOptions, "/v1/costs/"+c.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/v1/costs/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodOptions, "/v1/costs/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

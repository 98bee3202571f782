package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gessotrack/backend/internal/types"
	v1 "github.com/gessotrack/backend/pkg/controllers/v1"
	"github.com/gessotrack/backend/pkg/finance"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProjectsCreate() {
	p := suite.createTestProject(v1.ProjectEditable{
		Title:      "  Forro de gesso - Apto 302 ",
		ClientName: "Maria Souza",
		TotalValue: decimal.RequireFromString("1000.004"),
	})

	suite.Require().NotNil(p.Data)
	suite.Assert().Nil(p.Error)
	suite.Assert().Equal("Forro de gesso - Apto 302", p.Data.Title)
	suite.Assert().Equal(models.ProjectStatusQuote, p.Data.Status)
	suite.decimalEqual("1000", p.Data.TotalValue)
	suite.decimalEqual("0", p.Data.TotalCost)
	suite.decimalEqual("1000", p.Data.ProfitMargin)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/projects/%s", baseURL, p.Data.ID), p.Data.Links.Self)
	suite.Assert().Equal(p.Data.Links.Self+"/costs", p.Data.Links.Costs)
}

func (suite *TestSuiteStandard) TestProjectsCreateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Broken JSON", `{ "title": `, "un-parseable"},
		{"Empty body", "", "must not be empty"},
		{"No title", v1.ProjectEditable{Title: " ", TotalValue: decimal.NewFromInt(10)}, models.ErrProjectTitleEmpty.Error()},
		{"Negative value", map[string]any{"title": "Sanca", "total_value": "-1"}, models.ErrProjectValueNegative.Error()},
		{"Unknown status", map[string]any{"title": "Sanca", "status": "Pausado"}, models.ErrProjectStatusInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "/v1/projects", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ProjectResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsGet() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing project", p.Data.ID.String(), http.StatusOK},
		{"No project with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, "/v1/projects/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProjectFinancialsResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.Nil(t, response.Data)
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, p.Data.ID, response.Data.Project.ID)
			assert.Equal(t, finance.HealthHealthy, response.Data.Health)
			assert.Equal(t, 0, response.Data.EntryCount)
			assert.NotNil(t, response.Data.Timeline)
		})
	}
}

// TestProjectsFinancials walks a project through the health buckets.
func (suite *TestSuiteStandard) TestProjectsFinancials() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	id := p.Data.ID.String()

	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária do gesseiro",
		Amount:      decimal.NewFromInt(300),
		Date:        types.NewDate(2025, 9, 14),
	})
	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeVehicle,
		Description: "Frete das placas",
		Amount:      decimal.NewFromInt(150),
		Date:        types.NewDate(2025, 8, 1),
	})

	report := suite.getProject(id)
	suite.decimalEqual("450", report.Project.TotalCost)
	suite.decimalEqual("550", report.Project.ProfitMargin)
	suite.decimalEqual("45", report.ConsumptionPct)
	suite.Assert().Equal(finance.HealthHealthy, report.Health)
	suite.decimalEqual("300", report.Breakdown.Labor)
	suite.decimalEqual("150", report.Breakdown.Vehicle)
	suite.decimalEqual("0", report.Breakdown.Material)
	suite.decimalEqual("300", report.Last7Days)
	suite.decimalEqual("300", report.Last30Days)
	suite.Assert().Equal(2, report.EntryCount)
	suite.Require().Len(report.Timeline, 2)
	suite.Assert().Equal("Diária do gesseiro", report.Timeline[0].Description)

	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Acabamento",
		Amount:      decimal.NewFromInt(500),
		Date:        types.NewDate(2025, 9, 15),
	})

	report = suite.getProject(id)
	suite.decimalEqual("95", report.ConsumptionPct)
	suite.Assert().Equal(finance.HealthWarning, report.Health)

	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Retrabalho",
		Amount:      decimal.NewFromInt(100),
		Date:        types.NewDate(2025, 9, 15),
	})

	report = suite.getProject(id)
	suite.decimalEqual("-50", report.Project.ProfitMargin)
	suite.Assert().Equal(finance.HealthOverBudget, report.Health)
}

func (suite *TestSuiteStandard) TestProjectsReviseBudget() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	id := p.Data.ID.String()

	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeLabor,
		Description: "Diária do gesseiro",
		Amount:      decimal.NewFromInt(950),
		Date:        types.NewDate(2025, 9, 15),
	})

	// No reason
	r := suite.request(http.MethodPut, "/v1/projects/"+id+"/budget", v1.BudgetEditable{TotalValue: decimal.NewFromInt(800)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Same value within tolerance, no reason needed
	r = suite.request(http.MethodPut, "/v1/projects/"+id+"/budget", v1.BudgetEditable{TotalValue: decimal.RequireFromString("1000.009")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unchanged v1.BudgetChangeResponse
	test.DecodeResponse(suite.T(), &r, &unchanged)
	suite.Assert().Nil(unchanged.Data.Revision)
	suite.decimalEqual("1000", unchanged.Data.Project.TotalValue)

	r = suite.request(http.MethodPut, "/v1/projects/"+id+"/budget", v1.BudgetEditable{
		TotalValue: decimal.NewFromInt(800),
		Reason:     "Cliente reduziu o escopo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var changed v1.BudgetChangeResponse
	test.DecodeResponse(suite.T(), &r, &changed)
	suite.Require().NotNil(changed.Data.Revision)
	suite.decimalEqual("1000", changed.Data.Revision.PreviousValue)
	suite.decimalEqual("800", changed.Data.Revision.NewValue)
	suite.Assert().Equal("Cliente reduziu o escopo", changed.Data.Revision.Reason)
	suite.decimalEqual("800", changed.Data.Project.TotalValue)
	suite.decimalEqual("-150", changed.Data.Project.ProfitMargin)

	r = suite.request(http.MethodGet, "/v1/projects/"+id+"/budget-revisions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var revisions v1.BudgetRevisionListResponse
	test.DecodeResponse(suite.T(), &r, &revisions)
	suite.Require().Len(revisions.Data, 1)
	suite.Assert().Equal(changed.Data.Revision.ID, revisions.Data[0].ID)
	suite.Assert().Equal(p.Data.Links.Self, revisions.Data[0].Links.Project)

	suite.Assert().Equal(finance.HealthOverBudget, suite.getProject(id).Health)
}

func (suite *TestSuiteStandard) TestProjectsBudgetRevisionsNotFound() {
	r := suite.request(http.MethodGet, "/v1/projects/"+uuid.New().String()+"/budget-revisions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodPut, "/v1/projects/"+uuid.New().String()+"/budget", v1.BudgetEditable{
		TotalValue: decimal.NewFromInt(800),
		Reason:     "Aditivo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectsRecomputeAndReconciliation() {
	p := suite.createTestProject(v1.ProjectEditable{TotalValue: decimal.NewFromInt(1000)})
	id := p.Data.ID.String()

	suite.createTestCost(id, v1.CostEntryEditable{
		Type:        models.CostTypeVehicle,
		Description: "Frete",
		Amount:      decimal.NewFromInt(80),
		Date:        types.NewDate(2025, 9, 15),
	})

	r := suite.request(http.MethodGet, "/v1/projects/"+id+"/reconciliation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var drift v1.DriftResponse
	test.DecodeResponse(suite.T(), &r, &drift)
	suite.Assert().True(drift.Data.InSync)
	suite.decimalEqual("80", drift.Data.LedgerTotalCost)
	suite.decimalEqual("80", drift.Data.StoredTotalCost)

	r = suite.request(http.MethodPost, "/v1/projects/"+id+"/recompute", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var project v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &project)
	suite.decimalEqual("80", project.Data.TotalCost)
	suite.decimalEqual("920", project.Data.ProfitMargin)

	r = suite.request(http.MethodPost, "/v1/projects/"+uuid.New().String()+"/recompute", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	suite.CloseDB()

	r := suite.request(http.MethodPost, "/v1/projects", v1.ProjectEditable{Title: "Sanca"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(strings.Contains(*response.Error, models.ErrGeneral.Error()), *response.Error)
}

func (suite *TestSuiteStandard) TestProjectsOptions() {
	p := suite.createTestProject(v1.ProjectEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "/v1/projects", http.StatusNoContent, "OPTIONS, POST"},
		{"Project exists", "/v1/projects/" + p.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET"},
		{"No project with this ID", "/v1/projects/" + uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "/v1/projects/NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Budget", "/v1/projects/" + p.Data.ID.String() + "/budget", http.StatusNoContent, "OPTIONS, PUT"},
		{"Costs", "/v1/projects/" + p.Data.ID.String() + "/costs", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Material costs", "/v1/projects/" + p.Data.ID.String() + "/material-costs", http.StatusNoContent, "OPTIONS, POST"},
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

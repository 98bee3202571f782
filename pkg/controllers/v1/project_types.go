package v1

import (
	"fmt"
	"time"

	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/finance"
	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectEditable struct {
	Title      string               `json:"title" example:"Forro de gesso - Apto 302"`                         // Title of the project
	ClientName string               `json:"client_name" example:"Maria Souza"`                                // Name of the client
	Address    string               `json:"address" example:"Rua das Flores, 120"`                            // Address of the construction site
	Status     models.ProjectStatus `json:"status" example:"Aprovado" default:"Orçamento"`                    // Status of the project
	StartDate  *types.Date          `json:"start_date" swaggertype:"string" example:"2025-09-01"`             // Start of the works
	EndDate    *types.Date          `json:"end_date" swaggertype:"string" example:"2025-10-15"`               // Planned end of the works
	TotalValue decimal.Decimal      `json:"total_value" swaggertype:"string" example:"1000.00" minimum:"0"` // Contracted value of the project
}

// model returns the database resource for the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Title:      editable.Title,
		ClientName: editable.ClientName,
		Address:    editable.Address,
		Status:     editable.Status,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
		TotalValue: editable.TotalValue,
	}
}

type ProjectLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"`                           // The project itself
	Costs           string `json:"costs" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/costs"`                    // Cost entries of the project
	MaterialCosts   string `json:"material_costs" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/material-costs"`  // Endpoint to record consumed material
	Budget          string `json:"budget" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/budget"`                  // Endpoint to revise the budget
	BudgetRevisions string `json:"budget_revisions" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/budget-revisions"` // Budget history
	Recompute       string `json:"recompute" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/recompute"`            // Endpoint to recompute the totals
	Reconciliation  string `json:"reconciliation" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2/reconciliation"`  // Drift between stored totals and cost entries
}

// Project is the API v1 representation of a Project.
type Project struct {
	models.DefaultModel
	ProjectEditable
	TotalCost    decimal.Decimal `json:"total_cost" swaggertype:"string" example:"450.00"`    // Sum of all cost entries
	ProfitMargin decimal.Decimal `json:"profit_margin" swaggertype:"string" example:"550.00"` // Total value minus total cost
	Links        ProjectLinks    `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := fmt.Sprintf("%s/v1/projects/%s", httputil.BaseURL(c), model.ID)

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Title:      model.Title,
			ClientName: model.ClientName,
			Address:    model.Address,
			Status:     model.Status,
			StartDate:  model.StartDate,
			EndDate:    model.EndDate,
			TotalValue: model.TotalValue,
		},
		TotalCost:    model.TotalCost,
		ProfitMargin: model.ProfitMargin,
		Links: ProjectLinks{
			Self:            url,
			Costs:           url + "/costs",
			MaterialCosts:   url + "/material-costs",
			Budget:          url + "/budget",
			BudgetRevisions: url + "/budget-revisions",
			Recompute:       url + "/recompute",
			Reconciliation:  url + "/reconciliation",
		},
	}
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // Data for the project
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type Breakdown struct {
	Material decimal.Decimal `json:"material" swaggertype:"string" example:"300.00"` // Spend on MATERIAL entries
	Labor    decimal.Decimal `json:"labor" swaggertype:"string" example:"120.00"`    // Spend on LABOR entries
	Vehicle  decimal.Decimal `json:"vehicle" swaggertype:"string" example:"30.00"`   // Spend on VEHICLE entries
}

// ProjectFinancials is a project together with its financial report.
type ProjectFinancials struct {
	Project        Project         `json:"project"`
	ConsumptionPct decimal.Decimal `json:"consumption_pct" swaggertype:"string" example:"45.00"` // Share of the budget spent, in percent
	Health         finance.Health  `json:"health" example:"healthy"`                             // One of healthy, warning, over-budget
	Breakdown      Breakdown       `json:"breakdown"`
	Last7Days      decimal.Decimal `json:"last_7_days" swaggertype:"string" example:"75.00"`   // Spend dated within the last 7 days
	Last30Days     decimal.Decimal `json:"last_30_days" swaggertype:"string" example:"450.00"` // Spend dated within the last 30 days
	EntryCount     int             `json:"entry_count" example:"6"`                            // Number of cost entries
	Timeline       []CostEntry     `json:"timeline"`                                           // Most recent cost entries, newest first
}

func newProjectFinancials(c *gin.Context, report finance.Report) ProjectFinancials {
	timeline := make([]CostEntry, 0, len(report.Timeline))
	for _, entry := range report.Timeline {
		timeline = append(timeline, newCostEntry(c, entry))
	}

	return ProjectFinancials{
		Project:        newProject(c, report.Project),
		ConsumptionPct: report.ConsumptionPct,
		Health:         report.Health,
		Breakdown: Breakdown{
			Material: report.Breakdown.Material,
			Labor:    report.Breakdown.Labor,
			Vehicle:  report.Breakdown.Vehicle,
		},
		Last7Days:  report.Last7Days,
		Last30Days: report.Last30Days,
		EntryCount: report.EntryCount,
		Timeline:   timeline,
	}
}

type ProjectFinancialsResponse struct {
	Data  *ProjectFinancials `json:"data"`                                                          // Project and financial report
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetEditable struct {
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string" example:"800.00"`      // New contracted value
	Reason     string          `json:"reason" example:"Cliente reduziu o escopo do forro"` // Why the budget changes. Required unless the value stays the same
}

// BudgetRevision is the API v1 representation of a budget change.
type BudgetRevision struct {
	models.DefaultModel
	ProjectID     uuid.UUID           `json:"project_id" example:"5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"`
	PreviousValue decimal.Decimal     `json:"previous_value" swaggertype:"string" example:"1000.00"`
	NewValue      decimal.Decimal     `json:"new_value" swaggertype:"string" example:"800.00"`
	Reason        string              `json:"reason" example:"Cliente reduziu o escopo do forro"`
	ChangedAt     time.Time           `json:"changed_at" example:"2025-09-15T10:00:00Z"`
	Links         BudgetRevisionLinks `json:"links"`
}

type BudgetRevisionLinks struct {
	Project string `json:"project" example:"https://example.com/api/v1/projects/5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"` // The project the revision belongs to
}

func newBudgetRevision(c *gin.Context, model models.BudgetRevision) BudgetRevision {
	return BudgetRevision{
		DefaultModel:  model.DefaultModel,
		ProjectID:     model.ProjectID,
		PreviousValue: model.PreviousValue,
		NewValue:      model.NewValue,
		Reason:        model.Reason,
		ChangedAt:     model.ChangedAt,
		Links: BudgetRevisionLinks{
			Project: fmt.Sprintf("%s/v1/projects/%s", httputil.BaseURL(c), model.ProjectID),
		},
	}
}

// BudgetChange is the outcome of a budget revision. Revision is null when
// the budget did not change.
type BudgetChange struct {
	Project  Project         `json:"project"`
	Revision *BudgetRevision `json:"revision"`
}

type BudgetChangeResponse struct {
	Data  *BudgetChange `json:"data"`
	Error *string       `json:"error" example:"a reason is required to change the budget of a project"` // The error, if any occurred
}

type BudgetRevisionListResponse struct {
	Data  []BudgetRevision `json:"data"`                                                          // Budget revisions, newest first
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Drift compares the stored totals of a project with its cost entries.
type Drift struct {
	ProjectID            uuid.UUID       `json:"project_id" example:"5b9d4e1c-8a4f-4d1e-9a55-41c1f9a4e7a2"`
	StoredTotalCost      decimal.Decimal `json:"stored_total_cost" swaggertype:"string" example:"450.00"`
	LedgerTotalCost      decimal.Decimal `json:"ledger_total_cost" swaggertype:"string" example:"450.00"`
	StoredProfitMargin   decimal.Decimal `json:"stored_profit_margin" swaggertype:"string" example:"550.00"`
	ExpectedProfitMargin decimal.Decimal `json:"expected_profit_margin" swaggertype:"string" example:"550.00"`
	InSync               bool            `json:"in_sync" example:"true"`
}

func newDrift(d finance.Drift) Drift {
	return Drift{
		ProjectID:            d.ProjectID,
		StoredTotalCost:      d.StoredTotalCost,
		LedgerTotalCost:      d.LedgerTotalCost,
		StoredProfitMargin:   d.StoredProfitMargin,
		ExpectedProfitMargin: d.ExpectedProfitMargin,
		InSync:               d.InSync,
	}
}

type DriftResponse struct {
	Data  *Drift  `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

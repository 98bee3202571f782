package v1

import (
	"errors"
	"net/http"

	"github.com/gessotrack/backend/pkg/costs"
	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gin-gonic/gin"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func (co Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.POST("", co.CreateProject)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", co.OptionsProjectDetail)
		r.GET("/:id", co.GetProject)

		r.OPTIONS("/:id/budget", httputil.OptionsPut)
		r.PUT("/:id/budget", co.ReviseBudget)

		r.OPTIONS("/:id/budget-revisions", httputil.OptionsGet)
		r.GET("/:id/budget-revisions", co.GetBudgetRevisions)

		r.OPTIONS("/:id/costs", httputil.OptionsGetPost)
		r.GET("/:id/costs", co.GetProjectCosts)
		r.POST("/:id/costs", co.CreateCost)

		r.OPTIONS("/:id/material-costs", httputil.OptionsPost)
		r.POST("/:id/material-costs", co.CreateMaterialCost)

		r.OPTIONS("/:id/recompute", httputil.OptionsPost)
		r.POST("/:id/recompute", co.RecomputeProject)

		r.OPTIONS("/:id/reconciliation", httputil.OptionsGet)
		r.GET("/:id/reconciliation", co.GetReconciliation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id} [options]
func (co Controller) OptionsProjectDetail(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		abortOptions(c, err)
		return
	}

	if _, err := co.Orchestrator.Project(c.Request.Context(), id); err != nil {
		abortOptions(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create project
// @Description	Creates a new project. The total cost starts at zero and the profit margin at the total value.
// @Tags			Projects
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func (co Controller) CreateProject(c *gin.Context) {
	var editable ProjectEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), ProjectResponse{Error: errorText(c, err)})
		return
	}

	project, err := co.Orchestrator.CreateProject(c.Request.Context(), editable.model())
	if err != nil {
		c.JSON(status(err), ProjectResponse{Error: errorText(c, err)})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Get project
// @Description	Returns a project together with its financial report
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectFinancialsResponse
// @Failure		400	{object}	ProjectFinancialsResponse
// @Failure		404	{object}	ProjectFinancialsResponse
// @Failure		500	{object}	ProjectFinancialsResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id} [get]
func (co Controller) GetProject(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), ProjectFinancialsResponse{Error: errorText(c, err)})
		return
	}

	report, err := co.Orchestrator.Financials(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), ProjectFinancialsResponse{Error: errorText(c, err)})
		return
	}

	data := newProjectFinancials(c, report)
	c.JSON(http.StatusOK, ProjectFinancialsResponse{Data: &data})
}

// @Summary		Revise budget
// @Description	Changes the total value of a project. A change requires a reason and is appended to the budget history.
// @Description	Values within 0.009 of the current budget leave the project unchanged.
// @Tags			Projects
// @Produce		json
// @Success		200		{object}	BudgetChangeResponse
// @Failure		400		{object}	BudgetChangeResponse
// @Failure		404		{object}	BudgetChangeResponse
// @Failure		500		{object}	BudgetChangeResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/projects/{id}/budget [put]
func (co Controller) ReviseBudget(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), BudgetChangeResponse{Error: errorText(c, err)})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), BudgetChangeResponse{Error: errorText(c, err)})
		return
	}

	result, err := co.Orchestrator.ReviseBudget(c.Request.Context(), id, editable.TotalValue, editable.Reason)
	if err != nil && !errors.Is(err, reconcile.ErrAggregatesStale) {
		c.JSON(status(err), BudgetChangeResponse{Error: errorText(c, err)})
		return
	}

	data := BudgetChange{Project: newProject(c, result.Project)}
	if result.Revision != nil {
		revision := newBudgetRevision(c, *result.Revision)
		data.Revision = &revision
	}

	response := BudgetChangeResponse{Data: &data}
	code := http.StatusOK
	if err != nil {
		response.Error = errorText(c, err)
		code = status(err)
	}

	c.JSON(code, response)
}

// @Summary		List budget revisions
// @Description	Returns the budget history of a project, newest first
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	BudgetRevisionListResponse
// @Failure		400	{object}	BudgetRevisionListResponse
// @Failure		404	{object}	BudgetRevisionListResponse
// @Failure		500	{object}	BudgetRevisionListResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id}/budget-revisions [get]
func (co Controller) GetBudgetRevisions(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), BudgetRevisionListResponse{Error: errorText(c, err)})
		return
	}

	revisions, err := co.Orchestrator.ListBudgetRevisions(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), BudgetRevisionListResponse{Error: errorText(c, err)})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]BudgetRevision, 0, len(revisions))
	for _, revision := range revisions {
		data = append(data, newBudgetRevision(c, revision))
	}

	c.JSON(http.StatusOK, BudgetRevisionListResponse{Data: data})
}

// @Summary		List cost entries
// @Description	Returns the cost entries of a project, newest first
// @Tags			Projects
// @Produce		json
// @Success		200			{object}	CostEntryListResponse
// @Failure		400			{object}	CostEntryListResponse
// @Failure		404			{object}	CostEntryListResponse
// @Failure		500			{object}	CostEntryListResponse
// @Param			id			path		string	true	"ID formatted as string"
// @Param			type		query		string	false	"Filter by cost type (MATERIAL, LABOR, VEHICLE)"
// @Param			description	query		string	false	"Filter by description. Case and accent insensitive, supports * as wildcard"
// @Router			/v1/projects/{id}/costs [get]
func (co Controller) GetProjectCosts(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), CostEntryListResponse{Error: errorText(c, err)})
		return
	}

	var filter CostEntryQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CostEntryListResponse{Error: errorText(c, httputil.ErrInvalidQuery)})
		return
	}

	entries, err := co.Orchestrator.ListCostEntries(c.Request.Context(), id, costs.Filter{
		Type:        models.CostType(filter.Type),
		Description: filter.Description,
	})
	if err != nil {
		c.JSON(status(err), CostEntryListResponse{Error: errorText(c, err)})
		return
	}

	data := make([]CostEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newCostEntry(c, entry))
	}

	c.JSON(http.StatusOK, CostEntryListResponse{Data: data})
}

// @Summary		Recompute totals
// @Description	Recomputes the total cost and profit margin of a project from its cost entries
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id}/recompute [post]
func (co Controller) RecomputeProject(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), ProjectResponse{Error: errorText(c, err)})
		return
	}

	project, err := co.Orchestrator.Recompute(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), ProjectResponse{Error: errorText(c, err)})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Check totals
// @Description	Compares the stored totals of a project with the sum of its cost entries
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	DriftResponse
// @Failure		400	{object}	DriftResponse
// @Failure		404	{object}	DriftResponse
// @Failure		500	{object}	DriftResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id}/reconciliation [get]
func (co Controller) GetReconciliation(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), DriftResponse{Error: errorText(c, err)})
		return
	}

	drift, err := co.Orchestrator.Verify(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), DriftResponse{Error: errorText(c, err)})
		return
	}

	data := newDrift(drift)
	c.JSON(http.StatusOK, DriftResponse{Data: &data})
}

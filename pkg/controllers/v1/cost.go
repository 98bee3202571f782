package v1

import (
	"errors"
	"net/http"

	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gin-gonic/gin"
)

// RegisterCostRoutes registers the routes for single cost entries with
// the RouterGroup that is passed.
func (co Controller) RegisterCostRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", co.OptionsCostDetail)
	r.GET("/:id", co.GetCost)
	r.PATCH("/:id", co.UpdateCost)
	r.DELETE("/:id", co.DeleteCost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/costs/{id} [options]
func (co Controller) OptionsCostDetail(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		abortOptions(c, err)
		return
	}

	if _, err := co.Orchestrator.CostEntry(c.Request.Context(), id); err != nil {
		abortOptions(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create cost
// @Description	Records a LABOR or VEHICLE cost for a project and updates the project totals
// @Tags			Costs
// @Produce		json
// @Success		201		{object}	CostEntryResponse
// @Failure		400		{object}	CostEntryResponse
// @Failure		404		{object}	CostEntryResponse
// @Failure		500		{object}	CostEntryResponse
// @Param			id		path		string				true	"ID of the project"
// @Param			cost	body		CostEntryEditable	true	"Cost"
// @Router			/v1/projects/{id}/costs [post]
func (co Controller) CreateCost(c *gin.Context) {
	projectID, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	var editable CostEntryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	entry, err := co.Orchestrator.AddNonMaterialCost(c.Request.Context(), editable.input(projectID))
	if err != nil && !errors.Is(err, reconcile.ErrAggregatesStale) {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	data := newCostEntry(c, entry)
	response := CostEntryResponse{Data: &data}
	code := http.StatusCreated
	if err != nil {
		response.Error = errorText(c, err)
		code = status(err)
	}

	c.JSON(code, response)
}

// @Summary		Create material cost
// @Description	Records material consumed by a project. Stock is deducted as far as available, the cost is recorded for the full quantity.
// @Description	A shortfall is reported in the response and is not an error.
// @Tags			Costs
// @Produce		json
// @Success		201		{object}	MaterialCostResponse
// @Failure		400		{object}	MaterialCostResponse
// @Failure		404		{object}	MaterialCostResponse
// @Failure		500		{object}	MaterialCostResponse
// @Param			id		path		string					true	"ID of the project"
// @Param			cost	body		MaterialCostEditable	true	"Material cost"
// @Router			/v1/projects/{id}/material-costs [post]
func (co Controller) CreateMaterialCost(c *gin.Context) {
	projectID, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), MaterialCostResponse{Error: errorText(c, err)})
		return
	}

	var editable MaterialCostEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), MaterialCostResponse{Error: errorText(c, err)})
		return
	}

	result, err := co.Orchestrator.AddMaterialCost(c.Request.Context(), editable.input(projectID))
	if err != nil && !errors.Is(err, reconcile.ErrAggregatesStale) {
		c.JSON(status(err), MaterialCostResponse{Error: errorText(c, err)})
		return
	}

	data := newMaterialCost(c, result)
	response := MaterialCostResponse{Data: &data}
	code := http.StatusCreated
	if err != nil {
		response.Error = errorText(c, err)
		code = status(err)
	}

	c.JSON(code, response)
}

// @Summary		Get cost
// @Description	Returns a specific cost entry
// @Tags			Costs
// @Produce		json
// @Success		200	{object}	CostEntryResponse
// @Failure		400	{object}	CostEntryResponse
// @Failure		404	{object}	CostEntryResponse
// @Failure		500	{object}	CostEntryResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/costs/{id} [get]
func (co Controller) GetCost(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	entry, err := co.Orchestrator.CostEntry(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	data := newCostEntry(c, entry)
	c.JSON(http.StatusOK, CostEntryResponse{Data: &data})
}

// @Summary		Update cost
// @Description	Updates a cost entry and the totals of its project. Only values specified in the request body are updated.
// @Description	Changing the quantity of a MATERIAL entry does not move stock.
// @Tags			Costs
// @Produce		json
// @Success		200		{object}	CostEntryResponse
// @Failure		400		{object}	CostEntryResponse
// @Failure		404		{object}	CostEntryResponse
// @Failure		500		{object}	CostEntryResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			cost	body		CostEntryPatch	true	"Cost"
// @Router			/v1/costs/{id} [patch]
func (co Controller) UpdateCost(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	entry, err := co.Orchestrator.CostEntry(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	var patch CostEntryPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	updated, err := co.Orchestrator.UpdateCost(c.Request.Context(), patch.apply(entry))
	if err != nil && !errors.Is(err, reconcile.ErrAggregatesStale) {
		c.JSON(status(err), CostEntryResponse{Error: errorText(c, err)})
		return
	}

	data := newCostEntry(c, updated)
	response := CostEntryResponse{Data: &data}
	code := http.StatusOK
	if err != nil {
		response.Error = errorText(c, err)
		code = status(err)
	}

	c.JSON(code, response)
}

// @Summary		Delete cost
// @Description	Deletes a cost entry and updates the totals of its project.
// @Description	Deducted stock is restored only if the server runs with COST_DELETE_RESTORE_POLICY=restore-deducted.
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/costs/{id} [delete]
func (co Controller) DeleteCost(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: *errorText(c, err)})
		return
	}

	if err := co.Orchestrator.DeleteCost(c.Request.Context(), id); err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: *errorText(c, err)})
		return
	}

	c.Status(http.StatusNoContent)
}

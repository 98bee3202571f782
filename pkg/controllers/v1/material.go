package v1

import (
	"net/http"

	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterMaterialRoutes registers the routes for materials with
// the RouterGroup that is passed.
func (co Controller) RegisterMaterialRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMaterialList)
		r.GET("", co.GetMaterials)
		r.POST("", co.CreateMaterial)
	}

	// Material with ID
	{
		r.OPTIONS("/:id", co.OptionsMaterialDetail)
		r.GET("/:id", co.GetMaterial)

		r.OPTIONS("/:id/restock", httputil.OptionsPost)
		r.POST("/:id/restock", co.RestockMaterial)

		r.OPTIONS("/:id/movements", httputil.OptionsGet)
		r.GET("/:id/movements", co.GetMaterialMovements)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Router			/v1/materials [options]
func OptionsMaterialList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/materials/{id} [options]
func (co Controller) OptionsMaterialDetail(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		abortOptions(c, err)
		return
	}

	if _, err := co.Orchestrator.Material(c.Request.Context(), id); err != nil {
		abortOptions(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create material
// @Description	Creates a new material. The quantity is booked as an initial stock movement.
// @Tags			Materials
// @Produce		json
// @Success		201			{object}	MaterialResponse
// @Failure		400			{object}	MaterialResponse
// @Failure		500			{object}	MaterialResponse
// @Param			material	body		MaterialEditable	true	"Material"
// @Router			/v1/materials [post]
func (co Controller) CreateMaterial(c *gin.Context) {
	var editable MaterialEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	material, err := co.Orchestrator.CreateMaterial(c.Request.Context(), editable.model())
	if err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	data := newMaterial(c, material)
	c.JSON(http.StatusCreated, MaterialResponse{Data: &data})
}

// @Summary		List materials
// @Description	Returns a list of materials ordered by name
// @Tags			Materials
// @Produce		json
// @Success		200			{object}	MaterialListResponse
// @Failure		400			{object}	MaterialListResponse
// @Failure		500			{object}	MaterialListResponse
// @Param			lowStock	query		bool	false	"Only materials at or below their minimum quantity"
// @Router			/v1/materials [get]
func (co Controller) GetMaterials(c *gin.Context) {
	var filter MaterialQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, MaterialListResponse{Error: errorText(c, httputil.ErrInvalidQuery)})
		return
	}

	materials, err := co.Orchestrator.Materials(c.Request.Context(), filter.LowStock)
	if err != nil {
		c.JSON(status(err), MaterialListResponse{Error: errorText(c, err)})
		return
	}

	data := make([]Material, 0, len(materials))
	for _, material := range materials {
		data = append(data, newMaterial(c, material))
	}

	c.JSON(http.StatusOK, MaterialListResponse{Data: data})
}

// @Summary		Get material
// @Description	Returns a specific material
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialResponse
// @Failure		400	{object}	MaterialResponse
// @Failure		404	{object}	MaterialResponse
// @Failure		500	{object}	MaterialResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/materials/{id} [get]
func (co Controller) GetMaterial(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	material, err := co.Orchestrator.Material(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	data := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &data})
}

// @Summary		Restock material
// @Description	Adds stock to a material and records an IN movement
// @Tags			Materials
// @Produce		json
// @Success		200		{object}	MaterialResponse
// @Failure		400		{object}	MaterialResponse
// @Failure		404		{object}	MaterialResponse
// @Failure		500		{object}	MaterialResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			restock	body		RestockEditable	true	"Restock"
// @Router			/v1/materials/{id}/restock [post]
func (co Controller) RestockMaterial(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	var editable RestockEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	material, err := co.Orchestrator.RestockMaterial(c.Request.Context(), id, editable.Quantity, editable.Notes)
	if err != nil {
		c.JSON(status(err), MaterialResponse{Error: errorText(c, err)})
		return
	}

	data := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &data})
}

// @Summary		List stock movements
// @Description	Returns the stock movements of a material, newest first
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	InventoryMovementListResponse
// @Failure		400	{object}	InventoryMovementListResponse
// @Failure		404	{object}	InventoryMovementListResponse
// @Failure		500	{object}	InventoryMovementListResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/materials/{id}/movements [get]
func (co Controller) GetMaterialMovements(c *gin.Context) {
	id, err := httputil.ParamUUID(c, "id")
	if err != nil {
		c.JSON(status(err), InventoryMovementListResponse{Error: errorText(c, err)})
		return
	}

	movements, err := co.Orchestrator.Movements(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), InventoryMovementListResponse{Error: errorText(c, err)})
		return
	}

	data := make([]InventoryMovement, 0, len(movements))
	for _, movement := range movements {
		data = append(data, newInventoryMovement(movement))
	}

	c.JSON(http.StatusOK, InventoryMovementListResponse{Data: data})
}

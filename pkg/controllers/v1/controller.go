package v1

import (
	"net/http"

	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gin-gonic/gin"
)

// Controller serves the v1 API on top of the reconciliation orchestrator.
type Controller struct {
	Orchestrator *reconcile.Orchestrator
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterProjectRoutes(r.Group("/projects"))
	co.RegisterCostRoutes(r.Group("/costs"))
	co.RegisterMaterialRoutes(r.Group("/materials"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Projects  string `json:"projects" example:"https://example.com/api/v1/projects"`   // URL of Project collection endpoint
	Materials string `json:"materials" example:"https://example.com/api/v1/materials"` // URL of Material collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Projects:  url + "/v1/projects",
			Materials: url + "/v1/materials",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrAggregatesStale), errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// errorText returns the message of err for a response body. Server errors
// are logged with the request id.
func errorText(c *gin.Context, err error) *string {
	if status(err) == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	s := err.Error()
	return &s
}

// abortOptions renders the error for an OPTIONS request on a resource that
// cannot be served.
func abortOptions(c *gin.Context, err error) {
	c.JSON(status(err), httputil.HTTPError{
		Error: *errorText(c, err),
	})
}

package httputil

import (
	"fmt"

	"github.com/gessotrack/backend/pkg/models"
)

var (
	ErrInvalidBody      = fmt.Errorf("%w: the body of your request contains invalid or un-parseable data. Please check and try again", models.ErrValidation)
	ErrRequestBodyEmpty = fmt.Errorf("%w: the request body must not be empty", models.ErrValidation)
	ErrInvalidUUID      = fmt.Errorf("%w: the specified resource ID is not a valid UUID", models.ErrValidation)
	ErrInvalidQuery     = fmt.Errorf("%w: the query string contains unparseable data. Please check the values", models.ErrValidation)
)

// HTTPError is the body of error responses without data.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

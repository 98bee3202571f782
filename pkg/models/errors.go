package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")

	// ErrReferenceNotFound is returned when a foreign key does not identify an existing resource.
	ErrReferenceNotFound = fmt.Errorf("%w resource for an ID you referenced", ErrResourceNotFound)
)

// Validation errors. All of them wrap ErrValidation.
var (
	ErrProjectValueNegative     = validationError("the total value of a project must not be negative")
	ErrProjectTitleEmpty        = validationError("the title of a project must not be empty")
	ErrProjectStatusInvalid     = validationError("the status must be one of Orçamento, Aprovado, Em Andamento, Concluído, Cancelado")
	ErrCostAmountNotPositive    = validationError("the amount of a cost entry must be positive")
	ErrCostDescriptionEmpty     = validationError("the description of a cost entry must not be empty")
	ErrCostTypeInvalid          = validationError("the cost type must be one of MATERIAL, LABOR, VEHICLE")
	ErrCostDateMissing          = validationError("the date of a cost entry must be set")
	ErrCostMaterialFields       = validationError("material, quantity and deducted quantity can only be set on MATERIAL cost entries")
	ErrCostDeductedExceeds      = validationError("the deducted inventory quantity must not exceed the quantity of the cost entry")
	ErrCostImmutableField       = validationError("the project, material and deducted quantity of a cost entry cannot be changed")
	ErrCostMaterialTypeChange   = validationError("a cost entry cannot be switched into or out of MATERIAL")
	ErrQuantityNotPositive      = validationError("the quantity must be positive")
	ErrQuantityNegative         = validationError("the quantity must not be negative")
	ErrUnitCostNotPositive      = validationError("the unit cost must be positive")
	ErrUnitCostNegative         = validationError("the cost price of a material must not be negative")
	ErrMaterialQuantityNegative = validationError("the quantity on hand of a material must not be negative")
	ErrMaterialNameEmpty        = validationError("the name of a material must not be empty")
	ErrRevisionReasonEmpty      = validationError("a reason is required to change the budget of a project")
	ErrRevisionUnchanged        = validationError("a budget revision must change the budget")
	ErrRevisionValueNegative    = validationError("budget values must not be negative")
	ErrRevisionImmutable        = validationError("budget revisions cannot be changed or deleted")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

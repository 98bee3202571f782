package reconcile

import (
	"fmt"

	"github.com/gessotrack/backend/pkg/models"
)

// RestorePolicy decides whether deleting a MATERIAL cost entry returns the
// deducted quantity to stock.
type RestorePolicy string

const (
	// RestoreNone leaves the stock untouched.
	RestoreNone RestorePolicy = "none"

	// RestoreDeducted puts inventory_deducted_quantity back into stock.
	RestoreDeducted RestorePolicy = "restore-deducted"
)

// ParseRestorePolicy parses the name of a policy. The empty string is RestoreNone.
func ParseRestorePolicy(s string) (RestorePolicy, error) {
	switch RestorePolicy(s) {
	case "", RestoreNone:
		return RestoreNone, nil
	case RestoreDeducted:
		return RestoreDeducted, nil
	}

	return "", fmt.Errorf("%w: unknown restore policy %q", models.ErrValidation, s)
}

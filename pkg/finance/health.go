package finance

import "github.com/shopspring/decimal"

// Health buckets the budget consumption of a project.
type Health string

const (
	HealthHealthy    Health = "healthy"
	HealthWarning    Health = "warning"
	HealthOverBudget Health = "over-budget"
)

var (
	hundred = decimal.NewFromInt(100)

	// WarningThreshold is the consumption percentage from which a project is at risk.
	WarningThreshold = decimal.NewFromInt(80)

	// OverBudgetThreshold is the consumption percentage above which a project lost money.
	OverBudgetThreshold = hundred
)

// ConsumptionPct returns the share of the budget already spent, in percent.
// A project without budget has a consumption of zero.
func ConsumptionPct(totalValue, totalCost decimal.Decimal) decimal.Decimal {
	if !totalValue.IsPositive() {
		return decimal.Zero
	}

	return totalCost.Div(totalValue).Mul(hundred)
}

// HealthOf maps a consumption percentage to its Health bucket.
func HealthOf(pct decimal.Decimal) Health {
	switch {
	case pct.GreaterThan(OverBudgetThreshold):
		return HealthOverBudget
	case pct.GreaterThanOrEqual(WarningThreshold):
		return HealthWarning
	default:
		return HealthHealthy
	}
}

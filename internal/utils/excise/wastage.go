package excise

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// TransitTolerance is the allowable transit loss, 0.5% of advised AL.
	TransitTolerance = decimal.RequireFromString("0.005")
	// ProductionTolerance is the allowable bottling loss, 0.1% of metered AL.
	ProductionTolerance = decimal.RequireFromString("0.001")
)

// AnalyzeWastage classifies the gap between an expected and an actual quantity.
// A shortfall is wastage, of which the part above expected*tolerance is
// chargeable; a surplus is an increase and never chargeable.
func AnalyzeWastage(expected, actual, tolerance decimal.Decimal) domain.WastageAnalysis {
	diff := Round2(expected.Sub(actual))
	result := domain.WastageAnalysis{
		DifferenceFound:   diff,
		Wastage:           decimal.Zero,
		Increase:          decimal.Zero,
		AllowableWastage:  decimal.Zero,
		ChargeableWastage: decimal.Zero,
		PercentageWastage: decimal.Zero,
	}

	if diff.IsPositive() {
		result.Wastage = diff
		result.AllowableWastage = Round2(expected.Mul(tolerance))
		result.ChargeableWastage = maxZero(Round2(diff.Sub(result.AllowableWastage)))
		result.IsChargeable = result.ChargeableWastage.IsPositive()
	} else {
		result.Increase = diff.Neg()
	}

	if expected.IsPositive() {
		result.PercentageWastage = Round2(result.Wastage.Div(expected).Mul(hundred))
	}
	return result
}

package domain

import "github.com/shopspring/decimal"

// WastageReason classifies a recorded loss. Free-text reasons are not accepted.
type WastageReason string

const (
	ReasonEvaporation WastageReason = "EVAPORATION"
	ReasonLeakage     WastageReason = "LEAKAGE"
	ReasonHandling    WastageReason = "HANDLING"
	ReasonSampling    WastageReason = "SAMPLING"
	ReasonStockAudit  WastageReason = "STOCK_AUDIT"
	ReasonOther       WastageReason = "OTHER"
)

// WastageReasons lists every accepted reason.
var WastageReasons = []WastageReason{
	ReasonEvaporation, ReasonLeakage, ReasonHandling, ReasonSampling, ReasonStockAudit, ReasonOther,
}

// IsValid reports whether r is a known reason.
func (r WastageReason) IsValid() bool {
	for _, known := range WastageReasons {
		if r == known {
			return true
		}
	}
	return false
}

// WastageAnalysis is the tolerance classification of expected vs. actual quantity.
type WastageAnalysis struct {
	DifferenceFound   decimal.Decimal `json:"differenceFound"`
	Wastage           decimal.Decimal `json:"wastage"`
	Increase          decimal.Decimal `json:"increase"`
	AllowableWastage  decimal.Decimal `json:"allowableWastage"`
	ChargeableWastage decimal.Decimal `json:"chargeableWastage"`
	IsChargeable      bool            `json:"isChargeable"`
	PercentageWastage decimal.Decimal `json:"percentageWastage"`
}

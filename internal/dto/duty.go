package dto

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDutyRateRequest adds a row to the rate schedule.
type CreateDutyRateRequest struct {
	Category      string           `json:"category" binding:"required"`
	Subcategory   string           `json:"subcategory" binding:"required"`
	RatePerUnit   *decimal.Decimal `json:"ratePerUnit" binding:"required" swaggertype:"number"`
	EffectiveFrom *Date            `json:"effectiveFrom" binding:"required" swaggertype:"string" format:"date"`
	EffectiveTo   *Date            `json:"effectiveTo,omitempty" swaggertype:"string" format:"date"`
}

// ToRate converts the request into an unsaved, active rate. Missing values
// are left zero for the schedule validation to report.
func (r CreateDutyRateRequest) ToRate() domain.DutyRate {
	rate := domain.DutyRate{
		Category:    domain.NormalizeDutyKey(r.Category),
		Subcategory: domain.NormalizeDutyKey(r.Subcategory),
		RatePerUnit: orZero(r.RatePerUnit),
		IsActive:    true,
	}
	if r.EffectiveFrom != nil {
		rate.EffectiveFrom = domain.TruncateToDate(r.EffectiveFrom.Time)
	}
	if r.EffectiveTo != nil {
		to := domain.TruncateToDate(r.EffectiveTo.Time)
		rate.EffectiveTo = &to
	}
	return rate
}

// CurrentRateParams selects the rate in effect on a date.
type CurrentRateParams struct {
	Category    string `form:"category" binding:"required"`
	Subcategory string `form:"subcategory" binding:"required"`
	Date        string `form:"date"` // YYYY-MM-DD, defaults to today
}

// CreateDutyLedgerRequest opens the duty account of a month.
type CreateDutyLedgerRequest struct {
	MonthYear        string           `json:"monthYear" binding:"required" example:"2025-01"`
	Category         string           `json:"category" binding:"required"`
	Subcategory      string           `json:"subcategory" binding:"required"`
	TotalUnitsIssued *decimal.Decimal `json:"totalUnitsIssued" binding:"required,gte=0" swaggertype:"number"`
}

// RecordDutyPaymentRequest is a challan paid against a ledger entry.
type RecordDutyPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"number"`
	PaymentDate *Date            `json:"paymentDate" binding:"required" swaggertype:"string" format:"date"`
	ChallanNo   string           `json:"challanNo" binding:"required"`
}

// DutyLedgerResponse is a ledger entry with its payments.
type DutyLedgerResponse struct {
	Entry    domain.DutyLedgerEntry `json:"entry"`
	Payments []domain.DutyPayment   `json:"payments"`
}

// ListDutyLedgerResponse is one page of monthly ledger entries.
type ListDutyLedgerResponse struct {
	Entries   []domain.DutyLedgerEntry `json:"entries"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

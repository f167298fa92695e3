package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DutyRate is one row of the excise duty rate schedule.
type DutyRate struct {
	RateID        string          `json:"rateID"`
	Category      string          `json:"category"`    // e.g. "CL"
	Subcategory   string          `json:"subcategory"` // strength band, e.g. "50UP"
	RatePerUnit   decimal.Decimal `json:"ratePerUnit"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
	EffectiveTo   *time.Time      `json:"effectiveTo,omitempty"` // nil means open-ended
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// NormalizeDutyKey canonicalises a category or subcategory: trimmed and upper case.
func NormalizeDutyKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Covers reports whether the rate is in effect on date.
func (r DutyRate) Covers(date time.Time) bool {
	d := TruncateToDate(date)
	if TruncateToDate(r.EffectiveFrom).After(d) {
		return false
	}
	return r.EffectiveTo == nil || !TruncateToDate(*r.EffectiveTo).Before(d)
}

// PaymentStatus of a monthly duty ledger entry.
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "PENDING"
	PaymentPartialPaid PaymentStatus = "PARTIAL_PAID"
	PaymentFullyPaid   PaymentStatus = "FULLY_PAID"
)

// DutyLedgerEntry is the monthly duty account for one category/subcategory.
type DutyLedgerEntry struct {
	EntryID          string          `json:"entryID"`
	MonthYear        string          `json:"monthYear"` // YYYY-MM
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory"`
	TotalUnitsIssued decimal.Decimal `json:"totalUnitsIssued"`
	AppliedRate      decimal.Decimal `json:"appliedRate"`
	AppliedRateID    string          `json:"appliedRateID"`
	DutyAccrued      decimal.Decimal `json:"dutyAccrued"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	TotalPayments    decimal.Decimal `json:"totalPayments"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	Status           PaymentStatus   `json:"status"`
	AuditFields
}

// DutyPayment is a challan paid against a ledger entry.
type DutyPayment struct {
	PaymentID     string          `json:"paymentID"`
	LedgerEntryID string          `json:"ledgerEntryID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	ChallanNo     string          `json:"challanNo"`
	AuditFields
}

// MonthYearLayout is the time layout of DutyLedgerEntry.MonthYear.
const MonthYearLayout = "2006-01"

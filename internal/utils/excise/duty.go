package excise

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var statusTolerance = decimal.RequireFromString("0.01")

// GetCurrentRate picks, among active rates for the category and subcategory
// (both already normalised, see domain.NormalizeDutyKey)
// that cover date, the one with the latest EffectiveFrom. Ties go to the most
// recently created row.
func GetCurrentRate(rates []domain.DutyRate, category, subcategory string, date time.Time) (domain.DutyRate, bool) {
	var best domain.DutyRate
	found := false
	for _, r := range rates {
		if !r.IsActive || r.Category != category || r.Subcategory != subcategory {
			continue
		}
		if !r.Covers(date) {
			continue
		}
		if !found || r.EffectiveFrom.After(best.EffectiveFrom) ||
			(r.EffectiveFrom.Equal(best.EffectiveFrom) && r.CreatedAt.After(best.CreatedAt)) {
			best = r
			found = true
		}
	}
	return best, found
}

// ValidateDutyRate checks a schedule row on its own.
func ValidateDutyRate(r domain.DutyRate) error {
	var errs apperrors.ValidationErrors
	if strings.TrimSpace(r.Category) == "" {
		errs.Add("category", "is required")
	}
	if strings.TrimSpace(r.Subcategory) == "" {
		errs.Add("subcategory", "is required")
	}
	if r.RatePerUnit.IsNegative() {
		errs.Add("ratePerUnit", "must not be negative, got %s", r.RatePerUnit.String())
	}
	if r.EffectiveFrom.IsZero() {
		errs.Add("effectiveFrom", "is required")
	}
	if r.EffectiveTo != nil && r.EffectiveTo.Before(r.EffectiveFrom) {
		errs.Add("effectiveTo", "must not be before effectiveFrom")
	}
	return errs.Err()
}

// RatesOverlap reports whether two active rows for the same category and
// subcategory cover at least one common date.
func RatesOverlap(a, b domain.DutyRate) bool {
	if !a.IsActive || !b.IsActive {
		return false
	}
	if a.Category != b.Category || a.Subcategory != b.Subcategory {
		return false
	}
	aEndsBeforeB := a.EffectiveTo != nil && domain.TruncateToDate(*a.EffectiveTo).Before(domain.TruncateToDate(b.EffectiveFrom))
	bEndsBeforeA := b.EffectiveTo != nil && domain.TruncateToDate(*b.EffectiveTo).Before(domain.TruncateToDate(a.EffectiveFrom))
	return !aEndsBeforeB && !bEndsBeforeA
}

// DutyAccrued is units × rate; negative inputs are rejected.
func DutyAccrued(units, rate decimal.Decimal) (decimal.Decimal, error) {
	var errs apperrors.ValidationErrors
	if units.IsNegative() {
		errs.Add("totalUnitsIssued", "must not be negative, got %s", units.String())
	}
	if rate.IsNegative() {
		errs.Add("appliedRate", "must not be negative, got %s", rate.String())
	}
	if err := errs.Err(); err != nil {
		return decimal.Zero, err
	}
	return Round2(units.Mul(rate)), nil
}

// ClosingBalance is opening + accrued − payments.
func ClosingBalance(opening, accrued, payments decimal.Decimal) decimal.Decimal {
	return Round2(opening.Add(accrued).Sub(payments))
}

// PaymentStatusFor derives the status from the balances alone.
func PaymentStatusFor(opening, accrued, closing decimal.Decimal) domain.PaymentStatus {
	liability := opening.Add(accrued)
	switch {
	case !closing.IsPositive():
		return domain.PaymentFullyPaid
	case closing.Sub(liability).Abs().LessThan(statusTolerance):
		return domain.PaymentPending
	case closing.LessThan(liability):
		return domain.PaymentPartialPaid
	}
	return domain.PaymentPending
}

// RecomputeDutyLedger refreshes accrued duty, closing balance and status from
// the entry's units, rate, opening balance and payments.
func RecomputeDutyLedger(e *domain.DutyLedgerEntry) error {
	if e.OpeningBalance.IsNegative() {
		var errs apperrors.ValidationErrors
		errs.Add("openingBalance", "must not be negative, got %s", e.OpeningBalance.String())
		return errs
	}
	if e.TotalPayments.IsNegative() {
		var errs apperrors.ValidationErrors
		errs.Add("totalPayments", "must not be negative, got %s", e.TotalPayments.String())
		return errs
	}

	accrued, err := DutyAccrued(e.TotalUnitsIssued, e.AppliedRate)
	if err != nil {
		return err
	}
	e.DutyAccrued = accrued
	e.ClosingBalance = ClosingBalance(e.OpeningBalance, accrued, e.TotalPayments)
	e.Status = PaymentStatusFor(e.OpeningBalance, accrued, e.ClosingBalance)
	return nil
}

// MonthStart parses a YYYY-MM month into its first day.
func MonthStart(monthYear string) (time.Time, error) {
	t, err := time.Parse(domain.MonthYearLayout, monthYear)
	if err != nil {
		var errs apperrors.ValidationErrors
		errs.Add("monthYear", "must be formatted as YYYY-MM, got %q", monthYear)
		return time.Time{}, errs
	}
	return t, nil
}

// PreviousMonth returns the YYYY-MM month before monthYear.
func PreviousMonth(monthYear string) (string, error) {
	start, err := MonthStart(monthYear)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, -1, 0).Format(domain.MonthYearLayout), nil
}

// MissingRateError reports that no rate covers the request.
func MissingRateError(category, subcategory string, date time.Time) error {
	return fmt.Errorf("%w: %s/%s on %s", apperrors.ErrMissingRate, category, subcategory, date.Format(time.DateOnly))
}

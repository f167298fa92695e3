package excise

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateVatEvent checks a Reg-74 event against the earlier events of the
// same vat. An ISSUE needs a QC clearance no older than the last receipt,
// both counted up to the issue's own date.
func ValidateVatEvent(ev domain.VatEvent, history []domain.VatEvent) error {
	var errs apperrors.ValidationErrors
	if strings.TrimSpace(ev.VatCode) == "" {
		errs.Add("vatCode", "is required")
	}
	if ev.EventDate.IsZero() {
		errs.Add("eventDate", "is required")
	}
	if !ev.EventType.IsValid() {
		errs.Add("eventType", "unsupported event type %q", ev.EventType)
	}
	for field, v := range map[string]decimal.Decimal{
		"quantityBl":  ev.QuantityBl,
		"quantityAl":  ev.QuantityAl,
		"deadStockBl": ev.DeadStockBl,
		"deadStockAl": ev.DeadStockAl,
		"mfmAl":       ev.MfmAl,
	} {
		if v.IsNegative() {
			errs.Add(field, "must not be negative, got %s", v.String())
		}
	}

	switch ev.EventType {
	case domain.VatAdjustment:
		if ev.AdjustmentType != domain.AdjustmentWastage && ev.AdjustmentType != domain.AdjustmentIncrease {
			errs.Add("adjustmentType", "must be WAST or INCR, got %q", ev.AdjustmentType)
		}
		if !ev.Reason.IsValid() {
			errs.Add("reason", "unsupported wastage reason %q", ev.Reason)
		}
	case domain.VatIssue:
		if strings.TrimSpace(ev.BatchID) == "" {
			errs.Add("batchID", "is required for an issue")
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if ev.EventType == domain.VatIssue && !hasCurrentQCClearance(ev.VatCode, ev.EventDate, history) {
		return apperrors.NewPreconditionError(fmt.Sprintf("vat %s has no QC clearance since its last receipt; issue not allowed", ev.VatCode))
	}
	return nil
}

func hasCurrentQCClearance(vatCode string, issueDate time.Time, history []domain.VatEvent) bool {
	cutoff := domain.TruncateToDate(issueDate)
	var lastReceipt, lastQC *domain.VatEvent
	for i := range history {
		ev := &history[i]
		if ev.VatCode != vatCode || domain.TruncateToDate(ev.EventDate).After(cutoff) {
			continue
		}
		switch ev.EventType {
		case domain.VatReceipt:
			if lastReceipt == nil || eventAfter(*ev, *lastReceipt) {
				lastReceipt = ev
			}
		case domain.VatQCClearance:
			if lastQC == nil || eventAfter(*ev, *lastQC) {
				lastQC = ev
			}
		}
	}
	if lastQC == nil {
		return false
	}
	return lastReceipt == nil || !eventAfter(*lastReceipt, *lastQC)
}

func eventAfter(a, b domain.VatEvent) bool {
	da, db := domain.TruncateToDate(a.EventDate), domain.TruncateToDate(b.EventDate)
	if !da.Equal(db) {
		return da.After(db)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// SumIssuedMfm totals the metered AL of the ISSUE events feeding a batch.
func SumIssuedMfm(events []domain.VatEvent, batchID string) (decimal.Decimal, int) {
	total := decimal.Zero
	n := 0
	for _, ev := range events {
		if ev.EventType == domain.VatIssue && ev.BatchID == batchID {
			total = total.Add(ev.MfmAl)
			n++
		}
	}
	return Round2(total), n
}

package excise

import (
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultReconciliationThreshold is the variance, in percent, within which a day reconciles.
var DefaultReconciliationThreshold = decimal.NewFromInt(1)

// MasterLedgerInput is everything the daily rollup reads. Previous is the most
// recent ledger entry before Date, nil on the first day.
type MasterLedgerInput struct {
	Date        time.Time
	Previous    *domain.MasterLedgerEntry
	Receipts    []domain.SpiritReceiptEntry
	Productions []domain.BottlingProductionEntry
	VatEvents   []domain.VatEvent
}

// AggregateMasterLedger projects the Reg-78 balance for one date. Source rows
// dated elsewhere, and productions that are not COMPLETED, are ignored, so the
// result depends only on the committed source data.
func AggregateMasterLedger(in MasterLedgerInput) domain.MasterLedgerEntry {
	date := domain.TruncateToDate(in.Date)
	e := domain.MasterLedgerEntry{
		EntryDate: date,
		OpeningBl: decimal.Zero,
		OpeningAl: decimal.Zero,
		WastageBreakdown: domain.WastageBreakdown{
			TransitBl:    decimal.Zero,
			TransitAl:    decimal.Zero,
			VatBl:        decimal.Zero,
			VatAl:        decimal.Zero,
			DeadStockBl:  decimal.Zero,
			DeadStockAl:  decimal.Zero,
			ProductionBl: decimal.Zero,
			ProductionAl: decimal.Zero,
			VatByReason:  map[domain.WastageReason]decimal.Decimal{},
		},
	}
	if in.Previous != nil {
		e.OpeningBl = in.Previous.ClosingBl
		e.OpeningAl = in.Previous.ClosingAl
	}

	receiptBl, receiptAl := decimal.Zero, decimal.Zero
	wb := &e.WastageBreakdown
	for _, r := range in.Receipts {
		if !domain.TruncateToDate(r.ReceiptDate).Equal(date) {
			continue
		}
		receiptBl = receiptBl.Add(r.ReceivedBl)
		receiptAl = receiptAl.Add(r.ReceivedAl)
		// A BL surplus is already inside receiptBl; only a shortfall is wastage.
		wb.TransitBl = wb.TransitBl.Add(maxZero(r.TransitWastageBl))
		wb.TransitAl = wb.TransitAl.Add(r.TransitWastageAl)
	}

	issueBl, issueAl := decimal.Zero, decimal.Zero
	for _, p := range in.Productions {
		if p.Status != domain.ProductionCompleted || !domain.TruncateToDate(p.ProductionDate).Equal(date) {
			continue
		}
		issueBl = issueBl.Add(p.SpiritBottledBl)
		issueAl = issueAl.Add(p.SpiritBottledAl)
		wb.ProductionAl = wb.ProductionAl.Add(p.ChargeableWastage)
		wb.ProductionBl = wb.ProductionBl.Add(AbsoluteToVolume(p.ChargeableWastage, p.AvgStrength))
	}

	for _, ev := range in.VatEvents {
		if !domain.TruncateToDate(ev.EventDate).Equal(date) {
			continue
		}
		switch {
		case ev.IsWastageAdjustment():
			wb.VatBl = wb.VatBl.Add(ev.QuantityBl)
			wb.VatAl = wb.VatAl.Add(ev.QuantityAl)
			reason := ev.Reason
			if !reason.IsValid() {
				reason = domain.ReasonOther
			}
			wb.VatByReason[reason] = Round2(wb.VatByReason[reason].Add(ev.QuantityAl))
		case ev.EventType == domain.VatProduction:
			wb.DeadStockBl = wb.DeadStockBl.Add(ev.DeadStockBl)
			wb.DeadStockAl = wb.DeadStockAl.Add(ev.DeadStockAl)
		}
	}

	roundBreakdown(wb)

	e.ReceiptBl = Round2(receiptBl)
	e.ReceiptAl = Round2(receiptAl)
	e.IssueBl = Round2(issueBl)
	e.IssueAl = Round2(issueAl)
	e.WastageBl = Round2(wb.TransitBl.Add(wb.VatBl).Add(wb.DeadStockBl).Add(wb.ProductionBl))
	e.WastageAl = Round2(wb.TransitAl.Add(wb.VatAl).Add(wb.DeadStockAl).Add(wb.ProductionAl))
	e.ClosingBl = Round2(e.OpeningBl.Add(e.ReceiptBl).Sub(e.IssueBl).Sub(e.WastageBl))
	e.ClosingAl = Round2(e.OpeningAl.Add(e.ReceiptAl).Sub(e.IssueAl).Sub(e.WastageAl))
	e.Variance = decimal.Zero
	return e
}

func roundBreakdown(wb *domain.WastageBreakdown) {
	wb.TransitBl = Round2(wb.TransitBl)
	wb.TransitAl = Round2(wb.TransitAl)
	wb.VatBl = Round2(wb.VatBl)
	wb.VatAl = Round2(wb.VatAl)
	wb.DeadStockBl = Round2(wb.DeadStockBl)
	wb.DeadStockAl = Round2(wb.DeadStockAl)
	wb.ProductionBl = Round2(wb.ProductionBl)
	wb.ProductionAl = Round2(wb.ProductionAl)
}

// VariancePercent is (actual − calculated) / calculated × 100, zero when calculated is zero.
func VariancePercent(actual, calculated decimal.Decimal) decimal.Decimal {
	if calculated.IsZero() {
		return decimal.Zero
	}
	return Round2(actual.Sub(calculated).Div(calculated).Mul(hundred))
}

// ReconcileMasterLedger compares the physically verified closing stock with
// the calculated closing. The variance is taken on AL, the duty basis.
func ReconcileMasterLedger(e *domain.MasterLedgerEntry, physicalBl, physicalAl, thresholdPercent decimal.Decimal, by string, at time.Time) {
	bl := Round2(physicalBl)
	al := Round2(physicalAl)
	e.PhysicalClosingBl = &bl
	e.PhysicalClosingAl = &al
	e.Variance = VariancePercent(al, e.ClosingAl)
	e.IsReconciled = !e.Variance.Abs().GreaterThan(thresholdPercent)
	e.ReconciledBy = by
	reconciledAt := at
	e.ReconciledAt = &reconciledAt
}

// CarryReconciliation keeps the physical figures of a previous run on a
// re-aggregated entry. The flag is cleared because the calculated closing may
// have moved; reconciliation must be run again explicitly.
func CarryReconciliation(fresh *domain.MasterLedgerEntry, previous domain.MasterLedgerEntry) {
	fresh.EntryID = previous.EntryID
	fresh.AuditFields = previous.AuditFields
	fresh.PhysicalClosingBl = previous.PhysicalClosingBl
	fresh.PhysicalClosingAl = previous.PhysicalClosingAl
	if previous.PhysicalClosingAl != nil {
		fresh.Variance = VariancePercent(*previous.PhysicalClosingAl, fresh.ClosingAl)
	}
	fresh.IsReconciled = false
}

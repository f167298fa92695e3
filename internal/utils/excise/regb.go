package excise

import (
	"fmt"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// RegBFeePerBottle is the flat production fee charged per issued bottle.
	RegBFeePerBottle = decimal.RequireFromString("3.0")
	// RegBBalanceTolerance is the largest BL difference accepted by the balance equation.
	RegBBalanceTolerance = decimal.RequireFromString("0.01")
)

var regBSections = []domain.RegBSection{domain.SectionOpening, domain.SectionReceipt, domain.SectionIssue, domain.SectionWastage}

// strengthBandRanges maps an average v/v strength to a band; the lower bound
// is inclusive and the upper exclusive except for the top range.
var strengthBandRanges = []struct {
	band     domain.StrengthBand
	min, max decimal.Decimal
}{
	{domain.Band50UP, decimal.NewFromInt(25), decimal.NewFromInt(30)},
	{domain.Band60UP, decimal.NewFromInt(20), decimal.NewFromInt(25)},
	{domain.Band70UP, decimal.NewFromInt(15), decimal.NewFromInt(20)},
	{domain.Band80UP, decimal.NewFromInt(10), decimal.NewFromInt(15)},
}

// SectionTotals sums one section over the 24 combinations.
func SectionTotals(counts domain.BandCounts) domain.SectionTotal {
	bl := decimal.Zero
	al := decimal.Zero
	for _, c := range domain.RegBCombinations {
		n := counts.Count(c.Band, c.Size)
		if n == 0 {
			continue
		}
		volume := decimal.NewFromInt(n).Mul(c.Size.Liters())
		bl = bl.Add(volume)
		al = al.Add(volume.Mul(c.Band.Strength()).Div(hundred))
	}
	return domain.SectionTotal{Bl: Round2(bl), Al: Round2(al)}
}

// CalculateAllRegBTotals computes every section total and the closing balance.
func CalculateAllRegBTotals(e *domain.CountryLiquorIssueEntry) domain.RegBTotals {
	t := domain.RegBTotals{
		Opening: SectionTotals(e.Opening),
		Receipt: SectionTotals(e.Receipt),
		Issue:   SectionTotals(e.Issue),
		Wastage: SectionTotals(e.Wastage),
	}
	t.Closing = domain.SectionTotal{
		Bl: Round2(t.Opening.Bl.Add(t.Receipt.Bl).Sub(t.Issue.Bl).Sub(t.Wastage.Bl)),
		Al: Round2(t.Opening.Al.Add(t.Receipt.Al).Sub(t.Issue.Al).Sub(t.Wastage.Al)),
	}
	return t
}

// ValidateBalance checks opening+receipt against issue+wastage+closing in BL.
func ValidateBalance(t domain.RegBTotals) domain.BalanceCheck {
	in := t.Opening.Bl.Add(t.Receipt.Bl)
	out := t.Issue.Bl.Add(t.Wastage.Bl).Add(t.Closing.Bl)
	diff := Round2(in.Sub(out).Abs())
	return domain.BalanceCheck{
		Difference: diff,
		IsBalanced: diff.LessThan(RegBBalanceTolerance),
	}
}

// ProductionFees is the flat per-bottle fee on every issued bottle.
func ProductionFees(issue domain.BandCounts) decimal.Decimal {
	var bottles int64
	for _, c := range domain.RegBCombinations {
		bottles += issue.Count(c.Band, c.Size)
	}
	return Round2(decimal.NewFromInt(bottles).Mul(RegBFeePerBottle))
}

// ValidateRegBCounts rejects unknown bands or sizes and negative counts in any section.
func ValidateRegBCounts(e *domain.CountryLiquorIssueEntry) error {
	var errs apperrors.ValidationErrors
	if e.EntryDate.IsZero() {
		errs.Add("entryDate", "is required")
	}
	for _, section := range regBSections {
		for band, row := range e.Section(section) {
			if !band.IsValid() {
				errs.Add(string(section), "unsupported strength band %d", int(band))
				continue
			}
			for size, n := range row {
				field := fmt.Sprintf("%s.count%d_%d", section, int(band), int(size))
				if !size.IsValid() {
					errs.Add(field, "unsupported bottle size")
				} else if n < 0 {
					errs.Add(field, "must not be negative, got %d", n)
				}
			}
		}
	}
	return errs.Err()
}

// BuildRegB validates the counts, derives totals and fees, and enforces the
// balance equation. An unbalanced or overdrawn register is rejected, never corrected.
// When declaredClosingBl is given it replaces the computed closing in the check.
func BuildRegB(e *domain.CountryLiquorIssueEntry, declaredClosingBl *decimal.Decimal) error {
	if err := ValidateRegBCounts(e); err != nil {
		return err
	}

	totals := CalculateAllRegBTotals(e)
	if totals.Closing.Bl.IsNegative() {
		var errs apperrors.ValidationErrors
		errs.Add("issue", "issue and wastage of %s BL exceed available stock of %s BL",
			totals.Issue.Bl.Add(totals.Wastage.Bl).String(), totals.Opening.Bl.Add(totals.Receipt.Bl).String())
		return errs
	}

	checked := totals
	if declaredClosingBl != nil {
		checked.Closing.Bl = *declaredClosingBl
	}
	if check := ValidateBalance(checked); !check.IsBalanced {
		return &apperrors.BalanceError{Difference: check.Difference.StringFixed(2), Tolerance: RegBBalanceTolerance.StringFixed(2)}
	}

	e.Totals = totals
	e.ProductionFees = ProductionFees(e.Issue)
	return nil
}

// StrengthBandFor maps an average strength to its band; ok is false outside every range.
func StrengthBandFor(avgStrength decimal.Decimal) (band domain.StrengthBand, ok bool) {
	for i, r := range strengthBandRanges {
		if avgStrength.LessThan(r.min) {
			continue
		}
		if avgStrength.LessThan(r.max) || (i == 0 && avgStrength.Equal(r.max)) {
			return r.band, true
		}
	}
	return 0, false
}

// AutoFillFromCompletedRegA adds a completed session's bottle counts to the
// receipt section under the band matching its strength. Counts the caller
// already entered for that band are kept and summed with the session's.
func AutoFillFromCompletedRegA(e *domain.CountryLiquorIssueEntry, src domain.BottlingProductionEntry) error {
	if src.Status != domain.ProductionCompleted {
		return apperrors.NewPreconditionError(fmt.Sprintf("production entry %s is %s; only COMPLETED sessions can feed Reg-B", src.EntryID, src.Status))
	}

	band, ok := StrengthBandFor(src.AvgStrength)
	if !ok {
		var errs apperrors.ValidationErrors
		errs.Add("avgStrength", "strength %s%% does not map to a country-liquor band", src.AvgStrength.String())
		return errs
	}

	if e.Receipt == nil {
		e.Receipt = domain.BandCounts{}
	}
	for _, size := range domain.BottleSizes {
		if n := src.BottleCounts[size]; n != 0 {
			e.Receipt.Set(band, size, e.Receipt.Count(band, size)+n)
		}
	}
	e.SourceRegAEntryID = src.EntryID
	return nil
}

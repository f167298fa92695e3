package excise

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/statemachine"
	"github.com/shopspring/decimal"
)

// FinalizeRoles may verify and complete a production session.
var FinalizeRoles = []domain.Role{domain.RoleAdmin, domain.RoleExcise}

// ValidateBottleCounts rejects unknown sizes and negative counts.
func ValidateBottleCounts(errs *apperrors.ValidationErrors, field string, counts domain.BottleCounts) {
	for size, n := range counts {
		if !size.IsValid() {
			errs.Add(field, "unsupported bottle size %d ml", int(size))
			continue
		}
		if n < 0 {
			errs.Add(field, "count for %d ml must not be negative, got %d", int(size), n)
		}
	}
}

// DeclareProduction records bottle counts and strength on a PLANNED or ACTIVE
// session and computes the bottled BL/AL. A COMPLETED session is rejected.
func DeclareProduction(ctx context.Context, e *domain.BottlingProductionEntry, counts domain.BottleCounts, avgStrength decimal.Decimal) error {
	if e.IsTerminal() {
		return apperrors.NewStateTransitionError(fmt.Sprintf("batch %s session %d is COMPLETED; bottle counts cannot be changed", e.BatchID, e.SessionNo))
	}

	var errs apperrors.ValidationErrors
	ValidateBottleCounts(&errs, "bottleCounts", counts)
	hasBottles := false
	for _, n := range counts {
		if n > 0 {
			hasBottles = true
			break
		}
	}
	if !hasBottles {
		errs.Add("bottleCounts", "at least one bottle size must have a count greater than 0")
	}
	if !avgStrength.IsPositive() || avgStrength.GreaterThan(hundred) {
		errs.Add("avgStrength", "must be greater than 0 and at most 100, got %s", avgStrength.String())
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if err := statemachine.NewProductionFSM(e).Declare(ctx); err != nil {
		return err
	}

	declared := make(domain.BottleCounts, len(counts))
	for size, n := range counts {
		declared[size] = n
	}
	e.BottleCounts = declared
	e.AvgStrength = avgStrength
	e.SpiritBottledBl = BottlesToVolume(declared)
	e.SpiritBottledAl = VolumeToAbsolute(e.SpiritBottledBl, avgStrength)
	return nil
}

// LinkMeterReading attaches the meter-verified AL to a session that is not yet completed.
func LinkMeterReading(e *domain.BottlingProductionEntry, mfmTotalAl decimal.Decimal) error {
	if e.IsTerminal() {
		return apperrors.NewStateTransitionError(fmt.Sprintf("batch %s session %d is COMPLETED; meter data cannot be relinked", e.BatchID, e.SessionNo))
	}
	if mfmTotalAl.IsNegative() {
		var errs apperrors.ValidationErrors
		errs.Add("mfmTotalAl", "must not be negative, got %s", mfmTotalAl.String())
		return errs
	}
	linked := Round2(mfmTotalAl)
	e.MfmTotalAl = &linked
	return nil
}

// FinalizeProduction verifies bottled AL against the meter reading at the
// production tolerance and moves the session to COMPLETED.
func FinalizeProduction(ctx context.Context, e *domain.BottlingProductionEntry, role domain.Role, verifiedBy string, now time.Time) error {
	if e.IsTerminal() {
		return apperrors.NewStateTransitionError(fmt.Sprintf("batch %s session %d is already COMPLETED", e.BatchID, e.SessionNo))
	}
	if !role.In(FinalizeRoles...) {
		return fmt.Errorf("%w: role %q may not finalize production", apperrors.ErrForbidden, role)
	}
	if e.Status != domain.ProductionActive {
		return apperrors.NewPreconditionError("cannot finalize before bottle counts are declared")
	}
	if e.MfmTotalAl == nil {
		return apperrors.NewPreconditionError("cannot finalize without linked meter data")
	}

	analysis := AnalyzeWastage(*e.MfmTotalAl, e.SpiritBottledAl, ProductionTolerance)

	if err := statemachine.NewProductionFSM(e).Finalize(ctx); err != nil {
		return err
	}

	e.DifferenceFoundAl = analysis.DifferenceFound
	e.ProductionWastage = analysis.Wastage
	e.ProductionIncrease = analysis.Increase
	e.AllowableWastage = analysis.AllowableWastage
	e.ChargeableWastage = analysis.ChargeableWastage
	e.IsChargeable = analysis.IsChargeable
	e.VerifiedBy = verifiedBy
	completedAt := now
	e.CompletedAt = &completedAt
	return nil
}

package excise

import (
	"strings"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateSpiritReceipt checks a Reg-76 input before anything is computed or persisted.
// All problems are reported together.
func ValidateSpiritReceipt(in domain.SpiritReceiptInput) error {
	var errs apperrors.ValidationErrors

	if in.ReceiptDate == nil || in.ReceiptDate.IsZero() {
		errs.Add("receiptDate", "is required")
	}
	requireText(&errs, "permitNo", in.PermitNo)
	requireText(&errs, "vehicleNo", in.VehicleNo)
	requireText(&errs, "consignorName", in.ConsignorName)

	requireNonNegative(&errs, "advisedBl", in.AdvisedBl, true)
	requireNonNegative(&errs, "advisedAl", in.AdvisedAl, true)
	requireNonNegative(&errs, "advisedMassKg", in.AdvisedMassKg, false)
	requireNonNegative(&errs, "ladenWeightKg", in.LadenWeightKg, true)
	requireNonNegative(&errs, "unladenWeightKg", in.UnladenWeightKg, true)
	requireStrength(&errs, "advisedStrength", in.AdvisedStrength, true)
	requireStrength(&errs, "receivedStrength", in.ReceivedStrength, true)

	if in.AvgDensity == nil {
		errs.Add("avgDensity", "is required")
	} else if !in.AvgDensity.IsPositive() {
		errs.Add("avgDensity", "must be greater than 0, got %s", in.AvgDensity.String())
	}

	if in.LadenWeightKg != nil && in.UnladenWeightKg != nil && !in.LadenWeightKg.GreaterThan(*in.UnladenWeightKg) {
		errs.Add("ladenWeightKg", "invalid weighbridge reading: laden weight %s must exceed unladen weight %s",
			in.LadenWeightKg.String(), in.UnladenWeightKg.String())
	}

	if in.ArrivalDate != nil && in.ReceiptDate != nil &&
		domain.TruncateToDate(*in.ArrivalDate).After(domain.TruncateToDate(*in.ReceiptDate)) {
		errs.Add("arrivalDate", "must not be after receiptDate")
	}

	return errs.Err()
}

// BuildSpiritReceipt validates the input, applies the documented defaults and
// computes every derived field.
func BuildSpiritReceipt(in domain.SpiritReceiptInput) (domain.SpiritReceiptEntry, error) {
	if err := ValidateSpiritReceipt(in); err != nil {
		return domain.SpiritReceiptEntry{}, err
	}

	e := domain.SpiritReceiptEntry{
		ReceiptDate:      domain.TruncateToDate(*in.ReceiptDate),
		PermitNo:         strings.TrimSpace(*in.PermitNo),
		VehicleNo:        strings.TrimSpace(*in.VehicleNo),
		ConsignorName:    strings.TrimSpace(*in.ConsignorName),
		SpiritType:       stringOrEmpty(in.SpiritType),
		AdvisedBl:        *in.AdvisedBl,
		AdvisedAl:        *in.AdvisedAl,
		AdvisedStrength:  *in.AdvisedStrength,
		AdvisedMassKg:    decimalOrZero(in.AdvisedMassKg),
		LadenWeightKg:    *in.LadenWeightKg,
		UnladenWeightKg:  *in.UnladenWeightKg,
		AvgDensity:       *in.AvgDensity,
		AvgTemperature:   decimalOrZero(in.AvgTemperature),
		ReceivedStrength: *in.ReceivedStrength,
	}
	if in.ArrivalDate != nil {
		arrival := domain.TruncateToDate(*in.ArrivalDate)
		e.ArrivalDate = &arrival
	}

	if err := ComputeReceived(&e); err != nil {
		return domain.SpiritReceiptEntry{}, err
	}
	ComputeTransitWastage(&e)
	return e, nil
}

// AmendSpiritReceipt merges patch onto existing and recomputes every derived
// field. Identity and audit fields are carried over; the reason is mandatory.
func AmendSpiritReceipt(existing domain.SpiritReceiptEntry, patch domain.SpiritReceiptInput, reason string) (domain.SpiritReceiptEntry, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		var errs apperrors.ValidationErrors
		errs.Add("reason", "is required for an amendment")
		return domain.SpiritReceiptEntry{}, errs
	}

	merged := domain.InputFromSpiritReceipt(existing).Merge(patch)
	amended, err := BuildSpiritReceipt(merged)
	if err != nil {
		return domain.SpiritReceiptEntry{}, err
	}

	amended.EntryID = existing.EntryID
	amended.AuditFields = existing.AuditFields
	amended.AmendmentReason = reason
	return amended, nil
}

// ComputeReceived derives received mass, BL and AL from weighbridge data.
func ComputeReceived(e *domain.SpiritReceiptEntry) error {
	mass := Round2(e.LadenWeightKg.Sub(e.UnladenWeightKg))
	if !mass.IsPositive() {
		var errs apperrors.ValidationErrors
		errs.Add("ladenWeightKg", "invalid weighbridge reading: received mass %s kg", mass.String())
		return errs
	}

	e.ReceivedMassKg = mass
	e.ReceivedBl = MassToVolume(mass, e.AvgDensity)
	e.ReceivedAl = VolumeToAbsolute(e.ReceivedBl, e.ReceivedStrength)
	return nil
}

// ComputeTransitWastage classifies advised vs. received AL against the transit
// tolerance. The BL difference is recorded as-is for information only.
func ComputeTransitWastage(e *domain.SpiritReceiptEntry) domain.WastageAnalysis {
	analysis := AnalyzeWastage(e.AdvisedAl, e.ReceivedAl, TransitTolerance)

	e.TransitWastageBl = Round2(e.AdvisedBl.Sub(e.ReceivedBl))
	e.TransitWastageAl = analysis.Wastage
	e.TransitIncreaseAl = analysis.Increase
	e.AllowableWastage = analysis.AllowableWastage
	e.ChargeableWastage = analysis.ChargeableWastage
	e.IsChargeable = analysis.IsChargeable
	return analysis
}

func requireText(errs *apperrors.ValidationErrors, field string, v *string) {
	if v == nil || strings.TrimSpace(*v) == "" {
		errs.Add(field, "is required")
	}
}

func requireNonNegative(errs *apperrors.ValidationErrors, field string, v *decimal.Decimal, mandatory bool) {
	if v == nil {
		if mandatory {
			errs.Add(field, "is required")
		}
		return
	}
	if v.IsNegative() {
		errs.Add(field, "must not be negative, got %s", v.String())
	}
}

func requireStrength(errs *apperrors.ValidationErrors, field string, v *decimal.Decimal, mandatory bool) {
	if v == nil {
		if mandatory {
			errs.Add(field, "is required")
		}
		return
	}
	if v.IsNegative() || v.GreaterThan(hundred) {
		errs.Add(field, "must be between 0 and 100, got %s", v.String())
	}
}

func decimalOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

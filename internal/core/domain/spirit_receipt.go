package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpiritReceiptEntry is a Reg-76 record of one tanker receipt.
type SpiritReceiptEntry struct {
	EntryID       string     `json:"entryID"`
	ReceiptDate   time.Time  `json:"receiptDate"`
	ArrivalDate   *time.Time `json:"arrivalDate,omitempty"`
	PermitNo      string     `json:"permitNo"`
	VehicleNo     string     `json:"vehicleNo"`
	ConsignorName string     `json:"consignorName"`
	SpiritType    string     `json:"spiritType"`

	AdvisedBl        decimal.Decimal `json:"advisedBl"`
	AdvisedAl        decimal.Decimal `json:"advisedAl"`
	AdvisedStrength  decimal.Decimal `json:"advisedStrength"`
	AdvisedMassKg    decimal.Decimal `json:"advisedMassKg"`
	LadenWeightKg    decimal.Decimal `json:"ladenWeightKg"`
	UnladenWeightKg  decimal.Decimal `json:"unladenWeightKg"`
	AvgDensity       decimal.Decimal `json:"avgDensity"` // gm/cc
	AvgTemperature   decimal.Decimal `json:"avgTemperature"`
	ReceivedStrength decimal.Decimal `json:"receivedStrength"`

	// Derived
	ReceivedMassKg    decimal.Decimal `json:"receivedMassKg"`
	ReceivedBl        decimal.Decimal `json:"receivedBl"`
	ReceivedAl        decimal.Decimal `json:"receivedAl"`
	TransitWastageBl  decimal.Decimal `json:"transitWastageBl"` // informational, may be negative
	TransitWastageAl  decimal.Decimal `json:"transitWastageAl"`
	TransitIncreaseAl decimal.Decimal `json:"transitIncreaseAl"`
	AllowableWastage  decimal.Decimal `json:"allowableWastage"`
	ChargeableWastage decimal.Decimal `json:"chargeableWastage"`
	IsChargeable      bool            `json:"isChargeable"`

	AmendmentReason string `json:"amendmentReason,omitempty"`
	AuditFields
}

// SpiritReceiptInput carries raw Reg-76 measurements as submitted.
// A nil field is "not supplied"; mandatory fields must be non-nil, the rest
// default as documented on the field.
type SpiritReceiptInput struct {
	ReceiptDate   *time.Time
	ArrivalDate   *time.Time // optional
	PermitNo      *string
	VehicleNo     *string
	ConsignorName *string
	SpiritType    *string // optional, defaults to ""

	AdvisedBl        *decimal.Decimal
	AdvisedAl        *decimal.Decimal
	AdvisedStrength  *decimal.Decimal
	AdvisedMassKg    *decimal.Decimal // optional, defaults to 0
	LadenWeightKg    *decimal.Decimal
	UnladenWeightKg  *decimal.Decimal
	AvgDensity       *decimal.Decimal
	AvgTemperature   *decimal.Decimal // optional, defaults to 0
	ReceivedStrength *decimal.Decimal
}

// InputFromSpiritReceipt returns a fully populated input for e, the base that
// an amendment is merged onto.
func InputFromSpiritReceipt(e SpiritReceiptEntry) SpiritReceiptInput {
	in := SpiritReceiptInput{
		ReceiptDate:      &e.ReceiptDate,
		PermitNo:         &e.PermitNo,
		VehicleNo:        &e.VehicleNo,
		ConsignorName:    &e.ConsignorName,
		SpiritType:       &e.SpiritType,
		AdvisedBl:        &e.AdvisedBl,
		AdvisedAl:        &e.AdvisedAl,
		AdvisedStrength:  &e.AdvisedStrength,
		AdvisedMassKg:    &e.AdvisedMassKg,
		LadenWeightKg:    &e.LadenWeightKg,
		UnladenWeightKg:  &e.UnladenWeightKg,
		AvgDensity:       &e.AvgDensity,
		AvgTemperature:   &e.AvgTemperature,
		ReceivedStrength: &e.ReceivedStrength,
	}
	if e.ArrivalDate != nil {
		arrival := *e.ArrivalDate
		in.ArrivalDate = &arrival
	}
	return in
}

// Merge overlays every non-nil field of patch onto in.
func (in SpiritReceiptInput) Merge(patch SpiritReceiptInput) SpiritReceiptInput {
	if patch.ReceiptDate != nil {
		in.ReceiptDate = patch.ReceiptDate
	}
	if patch.ArrivalDate != nil {
		in.ArrivalDate = patch.ArrivalDate
	}
	if patch.PermitNo != nil {
		in.PermitNo = patch.PermitNo
	}
	if patch.VehicleNo != nil {
		in.VehicleNo = patch.VehicleNo
	}
	if patch.ConsignorName != nil {
		in.ConsignorName = patch.ConsignorName
	}
	if patch.SpiritType != nil {
		in.SpiritType = patch.SpiritType
	}
	if patch.AdvisedBl != nil {
		in.AdvisedBl = patch.AdvisedBl
	}
	if patch.AdvisedAl != nil {
		in.AdvisedAl = patch.AdvisedAl
	}
	if patch.AdvisedStrength != nil {
		in.AdvisedStrength = patch.AdvisedStrength
	}
	if patch.AdvisedMassKg != nil {
		in.AdvisedMassKg = patch.AdvisedMassKg
	}
	if patch.LadenWeightKg != nil {
		in.LadenWeightKg = patch.LadenWeightKg
	}
	if patch.UnladenWeightKg != nil {
		in.UnladenWeightKg = patch.UnladenWeightKg
	}
	if patch.AvgDensity != nil {
		in.AvgDensity = patch.AvgDensity
	}
	if patch.AvgTemperature != nil {
		in.AvgTemperature = patch.AvgTemperature
	}
	if patch.ReceivedStrength != nil {
		in.ReceivedStrength = patch.ReceivedStrength
	}
	return in
}

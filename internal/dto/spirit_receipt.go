package dto

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSpiritReceiptRequest is the Reg-76 tanker receipt as submitted at the gate.
type CreateSpiritReceiptRequest struct {
	ReceiptDate   *Date   `json:"receiptDate" binding:"required" swaggertype:"string" format:"date"`
	ArrivalDate   *Date   `json:"arrivalDate,omitempty" swaggertype:"string" format:"date"`
	PermitNo      *string `json:"permitNo" binding:"required"`
	VehicleNo     *string `json:"vehicleNo" binding:"required"`
	ConsignorName *string `json:"consignorName" binding:"required"`
	SpiritType    *string `json:"spiritType,omitempty"`

	AdvisedBl        *decimal.Decimal `json:"advisedBl" binding:"required" swaggertype:"number"`
	AdvisedAl        *decimal.Decimal `json:"advisedAl" binding:"required" swaggertype:"number"`
	AdvisedStrength  *decimal.Decimal `json:"advisedStrength" binding:"required,strength" swaggertype:"number"`
	AdvisedMassKg    *decimal.Decimal `json:"advisedMassKg,omitempty" swaggertype:"number"`
	LadenWeightKg    *decimal.Decimal `json:"ladenWeightKg" binding:"required" swaggertype:"number"`
	UnladenWeightKg  *decimal.Decimal `json:"unladenWeightKg" binding:"required" swaggertype:"number"`
	AvgDensity       *decimal.Decimal `json:"avgDensity" binding:"required" swaggertype:"number"`
	AvgTemperature   *decimal.Decimal `json:"avgTemperature,omitempty" swaggertype:"number"`
	ReceivedStrength *decimal.Decimal `json:"receivedStrength" binding:"required,strength" swaggertype:"number"`
}

// ToInput converts the request into engine input.
func (r CreateSpiritReceiptRequest) ToInput() domain.SpiritReceiptInput {
	return domain.SpiritReceiptInput{
		ReceiptDate:      r.ReceiptDate.TimePtr(),
		ArrivalDate:      r.ArrivalDate.TimePtr(),
		PermitNo:         r.PermitNo,
		VehicleNo:        r.VehicleNo,
		ConsignorName:    r.ConsignorName,
		SpiritType:       r.SpiritType,
		AdvisedBl:        r.AdvisedBl,
		AdvisedAl:        r.AdvisedAl,
		AdvisedStrength:  r.AdvisedStrength,
		AdvisedMassKg:    r.AdvisedMassKg,
		LadenWeightKg:    r.LadenWeightKg,
		UnladenWeightKg:  r.UnladenWeightKg,
		AvgDensity:       r.AvgDensity,
		AvgTemperature:   r.AvgTemperature,
		ReceivedStrength: r.ReceivedStrength,
	}
}

// AmendSpiritReceiptRequest patches a receipt. Omitted fields keep their stored value.
type AmendSpiritReceiptRequest struct {
	Reason string `json:"reason" binding:"required"`

	ReceiptDate   *Date   `json:"receiptDate,omitempty" swaggertype:"string" format:"date"`
	ArrivalDate   *Date   `json:"arrivalDate,omitempty" swaggertype:"string" format:"date"`
	PermitNo      *string `json:"permitNo,omitempty"`
	VehicleNo     *string `json:"vehicleNo,omitempty"`
	ConsignorName *string `json:"consignorName,omitempty"`
	SpiritType    *string `json:"spiritType,omitempty"`

	AdvisedBl        *decimal.Decimal `json:"advisedBl,omitempty" swaggertype:"number"`
	AdvisedAl        *decimal.Decimal `json:"advisedAl,omitempty" swaggertype:"number"`
	AdvisedStrength  *decimal.Decimal `json:"advisedStrength,omitempty" binding:"omitempty,strength" swaggertype:"number"`
	AdvisedMassKg    *decimal.Decimal `json:"advisedMassKg,omitempty" swaggertype:"number"`
	LadenWeightKg    *decimal.Decimal `json:"ladenWeightKg,omitempty" swaggertype:"number"`
	UnladenWeightKg  *decimal.Decimal `json:"unladenWeightKg,omitempty" swaggertype:"number"`
	AvgDensity       *decimal.Decimal `json:"avgDensity,omitempty" swaggertype:"number"`
	AvgTemperature   *decimal.Decimal `json:"avgTemperature,omitempty" swaggertype:"number"`
	ReceivedStrength *decimal.Decimal `json:"receivedStrength,omitempty" binding:"omitempty,strength" swaggertype:"number"`
}

// ToPatch converts the request into an engine patch.
func (r AmendSpiritReceiptRequest) ToPatch() domain.SpiritReceiptInput {
	return CreateSpiritReceiptRequest{
		ReceiptDate:      r.ReceiptDate,
		ArrivalDate:      r.ArrivalDate,
		PermitNo:         r.PermitNo,
		VehicleNo:        r.VehicleNo,
		ConsignorName:    r.ConsignorName,
		SpiritType:       r.SpiritType,
		AdvisedBl:        r.AdvisedBl,
		AdvisedAl:        r.AdvisedAl,
		AdvisedStrength:  r.AdvisedStrength,
		AdvisedMassKg:    r.AdvisedMassKg,
		LadenWeightKg:    r.LadenWeightKg,
		UnladenWeightKg:  r.UnladenWeightKg,
		AvgDensity:       r.AvgDensity,
		AvgTemperature:   r.AvgTemperature,
		ReceivedStrength: r.ReceivedStrength,
	}.ToInput()
}

// ListSpiritReceiptsResponse is one page of Reg-76 entries.
type ListSpiritReceiptsResponse struct {
	Receipts  []domain.SpiritReceiptEntry `json:"receipts"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

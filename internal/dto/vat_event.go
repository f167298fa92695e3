package dto

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordVatEventRequest is one Reg-74 vat operation.
type RecordVatEventRequest struct {
	VatCode        string           `json:"vatCode" binding:"required"`
	EventDate      *Date            `json:"eventDate" binding:"required" swaggertype:"string" format:"date"`
	EventType      string           `json:"eventType" binding:"required,oneof=RECEIPT TRANSFER ADJUSTMENT QC_CLEARANCE ISSUE PRODUCTION"`
	AdjustmentType string           `json:"adjustmentType,omitempty" binding:"omitempty,oneof=WAST INCR"`
	Reason         string           `json:"reason,omitempty"`
	QuantityBl     *decimal.Decimal `json:"quantityBl,omitempty" swaggertype:"number"`
	QuantityAl     *decimal.Decimal `json:"quantityAl,omitempty" swaggertype:"number"`
	DeadStockBl    *decimal.Decimal `json:"deadStockBl,omitempty" swaggertype:"number"`
	DeadStockAl    *decimal.Decimal `json:"deadStockAl,omitempty" swaggertype:"number"`
	BatchID        string           `json:"batchID,omitempty"`
	MfmAl          *decimal.Decimal `json:"mfmAl,omitempty" swaggertype:"number"`
	Remarks        string           `json:"remarks,omitempty"`
}

// ToEvent converts the request into an unsaved event.
func (r RecordVatEventRequest) ToEvent() domain.VatEvent {
	ev := domain.VatEvent{
		VatCode:        r.VatCode,
		EventType:      domain.VatEventType(r.EventType),
		AdjustmentType: domain.AdjustmentType(r.AdjustmentType),
		Reason:         domain.WastageReason(r.Reason),
		QuantityBl:     orZero(r.QuantityBl),
		QuantityAl:     orZero(r.QuantityAl),
		DeadStockBl:    orZero(r.DeadStockBl),
		DeadStockAl:    orZero(r.DeadStockAl),
		BatchID:        r.BatchID,
		MfmAl:          orZero(r.MfmAl),
		Remarks:        r.Remarks,
	}
	if r.EventDate != nil {
		ev.EventDate = domain.TruncateToDate(r.EventDate.Time)
	}
	return ev
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ListVatEventsResponse is one page of Reg-74 events.
type ListVatEventsResponse struct {
	Events    []domain.VatEvent `json:"events"`
	NextToken *string           `json:"nextToken,omitempty"`
}

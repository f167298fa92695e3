package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatEventType is the kind of Reg-74 vat operation.
type VatEventType string

const (
	VatReceipt     VatEventType = "RECEIPT"
	VatTransfer    VatEventType = "TRANSFER"
	VatAdjustment  VatEventType = "ADJUSTMENT"
	VatQCClearance VatEventType = "QC_CLEARANCE"
	VatIssue       VatEventType = "ISSUE"
	VatProduction  VatEventType = "PRODUCTION"
)

// IsValid reports whether t is a known event type.
func (t VatEventType) IsValid() bool {
	switch t {
	case VatReceipt, VatTransfer, VatAdjustment, VatQCClearance, VatIssue, VatProduction:
		return true
	}
	return false
}

// AdjustmentType distinguishes a stock loss from a stock gain.
type AdjustmentType string

const (
	AdjustmentWastage  AdjustmentType = "WAST"
	AdjustmentIncrease AdjustmentType = "INCR"
)

// VatEvent is one Reg-74 vat operation.
type VatEvent struct {
	EventID        string          `json:"eventID"`
	VatCode        string          `json:"vatCode"`
	EventDate      time.Time       `json:"eventDate"`
	EventType      VatEventType    `json:"eventType"`
	AdjustmentType AdjustmentType  `json:"adjustmentType,omitempty"`
	Reason         WastageReason   `json:"reason,omitempty"`
	QuantityBl     decimal.Decimal `json:"quantityBl"`
	QuantityAl     decimal.Decimal `json:"quantityAl"`
	DeadStockBl    decimal.Decimal `json:"deadStockBl"`
	DeadStockAl    decimal.Decimal `json:"deadStockAl"`
	BatchID        string          `json:"batchID,omitempty"`
	MfmAl          decimal.Decimal `json:"mfmAl"`
	Remarks        string          `json:"remarks,omitempty"`
	AuditFields
}

// IsWastageAdjustment reports whether the event is a WAST-typed adjustment.
func (e VatEvent) IsWastageAdjustment() bool {
	return e.EventType == VatAdjustment && e.AdjustmentType == AdjustmentWastage
}

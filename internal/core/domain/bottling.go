package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionStatus is the lifecycle state of a Reg-A production session.
type ProductionStatus string

const (
	ProductionPlanned   ProductionStatus = "PLANNED"
	ProductionActive    ProductionStatus = "ACTIVE"
	ProductionCompleted ProductionStatus = "COMPLETED"
)

// BottlingProductionEntry is a Reg-A blending and bottling session.
type BottlingProductionEntry struct {
	EntryID        string           `json:"entryID"`
	BatchID        string           `json:"batchID"`
	SessionNo      int              `json:"sessionNo"`
	ProductionDate time.Time        `json:"productionDate"`
	ProductName    string           `json:"productName"`
	Status         ProductionStatus `json:"status"`

	BottleCounts BottleCounts     `json:"bottleCounts"`
	AvgStrength  decimal.Decimal  `json:"avgStrength"`
	MfmTotalAl   *decimal.Decimal `json:"mfmTotalAl,omitempty"`

	// Derived
	SpiritBottledBl    decimal.Decimal `json:"spiritBottledBl"`
	SpiritBottledAl    decimal.Decimal `json:"spiritBottledAl"`
	DifferenceFoundAl  decimal.Decimal `json:"differenceFoundAl"`
	ProductionWastage  decimal.Decimal `json:"productionWastage"`
	ProductionIncrease decimal.Decimal `json:"productionIncrease"`
	AllowableWastage   decimal.Decimal `json:"allowableWastage"`
	ChargeableWastage  decimal.Decimal `json:"chargeableWastage"`
	IsChargeable       bool            `json:"isChargeable"`

	VerifiedBy  string     `json:"verifiedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	AuditFields
}

// IsTerminal reports whether the entry can no longer be edited.
func (e BottlingProductionEntry) IsTerminal() bool {
	return e.Status == ProductionCompleted
}

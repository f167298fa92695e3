package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MasterLedgerEntry is the Reg-78 daily spirit balance. It is a projection of
// the source registers and can be recomputed at any time.
type MasterLedgerEntry struct {
	EntryID   string    `json:"entryID"`
	EntryDate time.Time `json:"entryDate"`

	OpeningBl decimal.Decimal `json:"openingBl"`
	OpeningAl decimal.Decimal `json:"openingAl"`
	ReceiptBl decimal.Decimal `json:"receiptBl"`
	ReceiptAl decimal.Decimal `json:"receiptAl"`
	IssueBl   decimal.Decimal `json:"issueBl"`
	IssueAl   decimal.Decimal `json:"issueAl"`
	WastageBl decimal.Decimal `json:"wastageBl"`
	WastageAl decimal.Decimal `json:"wastageAl"`
	ClosingBl decimal.Decimal `json:"closingBl"`
	ClosingAl decimal.Decimal `json:"closingAl"`

	WastageBreakdown WastageBreakdown `json:"wastageBreakdown"`

	PhysicalClosingBl *decimal.Decimal `json:"physicalClosingBl,omitempty"`
	PhysicalClosingAl *decimal.Decimal `json:"physicalClosingAl,omitempty"`
	Variance          decimal.Decimal  `json:"variance"` // percent, AL basis
	IsReconciled      bool             `json:"isReconciled"`
	ReconciledBy      string           `json:"reconciledBy,omitempty"`
	ReconciledAt      *time.Time       `json:"reconciledAt,omitempty"`
	AuditFields
}

// WastageBreakdown splits a day's wastage by source.
type WastageBreakdown struct {
	TransitBl    decimal.Decimal                   `json:"transitBl"`
	TransitAl    decimal.Decimal                   `json:"transitAl"`
	VatBl        decimal.Decimal                   `json:"vatBl"`
	VatAl        decimal.Decimal                   `json:"vatAl"`
	DeadStockBl  decimal.Decimal                   `json:"deadStockBl"`
	DeadStockAl  decimal.Decimal                   `json:"deadStockAl"`
	ProductionBl decimal.Decimal                   `json:"productionBl"`
	ProductionAl decimal.Decimal                   `json:"productionAl"`
	VatByReason  map[WastageReason]decimal.Decimal `json:"vatByReason,omitempty"` // AL
}

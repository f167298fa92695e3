package dto

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBottlingRequest plans a Reg-A session.
type CreateBottlingRequest struct {
	BatchID        string `json:"batchID" binding:"required"`
	SessionNo      int    `json:"sessionNo" binding:"required,min=1"`
	ProductionDate *Date  `json:"productionDate" binding:"required" swaggertype:"string" format:"date"`
	ProductName    string `json:"productName" binding:"required"`
}

// DeclareBottlingRequest records bottle counts and blend strength.
// Bottle counts are keyed by size in ml, e.g. {"750": 1000}.
type DeclareBottlingRequest struct {
	BottleCounts domain.BottleCounts `json:"bottleCounts" binding:"required" swaggertype:"object"`
	AvgStrength  *decimal.Decimal    `json:"avgStrength" binding:"required,strength" swaggertype:"number"`
}

// LinkMeterRequest supplies the MFM reading for a session. Without a manual
// value the Reg-74 ISSUE events of the batch are summed.
type LinkMeterRequest struct {
	MfmTotalAl *decimal.Decimal `json:"mfmTotalAl,omitempty" binding:"omitempty,gte=0" swaggertype:"number"`
}

// ListBottlingResponse is one page of Reg-A sessions.
type ListBottlingResponse struct {
	Sessions  []domain.BottlingProductionEntry `json:"sessions"`
	NextToken *string                          `json:"nextToken,omitempty"`
}

package dto

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconcileMasterLedgerRequest carries the physical stock count for a day.
type ReconcileMasterLedgerRequest struct {
	PhysicalClosingBl *decimal.Decimal `json:"physicalClosingBl" binding:"required,gte=0" swaggertype:"number"`
	PhysicalClosingAl *decimal.Decimal `json:"physicalClosingAl" binding:"required,gte=0" swaggertype:"number"`
}

// ListMasterLedgerResponse is one page of Reg-78 days.
type ListMasterLedgerResponse struct {
	Entries   []domain.MasterLedgerEntry `json:"entries"`
	NextToken *string                    `json:"nextToken,omitempty"`
}

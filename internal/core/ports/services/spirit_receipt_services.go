package services

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// SpiritReceiptReaderSvc defines read operations for Reg-76 receipts
type SpiritReceiptReaderSvc interface {
	GetSpiritReceipt(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error)
	ListSpiritReceipts(ctx context.Context, params dto.ListParams) (*dto.ListSpiritReceiptsResponse, error)
}

// SpiritReceiptWriterSvc defines write operations for Reg-76 receipts
type SpiritReceiptWriterSvc interface {
	// CreateSpiritReceipt validates the measurements and stores the receipt with all derived fields.
	CreateSpiritReceipt(ctx context.Context, req dto.CreateSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error)

	// AmendSpiritReceipt patches a stored receipt and recomputes it. ADMIN only.
	AmendSpiritReceipt(ctx context.Context, entryID string, req dto.AmendSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error)
}

// SpiritReceiptSvcFacade combines all Reg-76 service interfaces
type SpiritReceiptSvcFacade interface {
	SpiritReceiptReaderSvc
	SpiritReceiptWriterSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// SpiritReceiptReader defines read operations for Reg-76 receipts
type SpiritReceiptReader interface {
	// FindSpiritReceiptByID retrieves a receipt, or apperrors.ErrNotFound.
	FindSpiritReceiptByID(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error)

	// ListSpiritReceiptsByDate returns every receipt dated on the given day.
	ListSpiritReceiptsByDate(ctx context.Context, date time.Time) ([]domain.SpiritReceiptEntry, error)

	// ListSpiritReceipts pages through receipts, newest first.
	ListSpiritReceipts(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (Page[domain.SpiritReceiptEntry], error)
}

// SpiritReceiptWriter defines write operations for Reg-76 receipts
type SpiritReceiptWriter interface {
	SaveSpiritReceipt(ctx context.Context, entry domain.SpiritReceiptEntry) error

	// UpdateSpiritReceipt overwrites the measurements and derived fields of an amended receipt.
	UpdateSpiritReceipt(ctx context.Context, entry domain.SpiritReceiptEntry) error
}

// SpiritReceiptRepositoryFacade combines all Reg-76 repository interfaces
type SpiritReceiptRepositoryFacade interface {
	SpiritReceiptReader
	SpiritReceiptWriter
}

// SpiritReceiptRepositoryWithTx extends SpiritReceiptRepositoryFacade with transaction capabilities
type SpiritReceiptRepositoryWithTx interface {
	SpiritReceiptRepositoryFacade
	TransactionManager
}

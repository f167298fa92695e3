package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// MasterLedgerReader defines read operations for the Reg-78 daily ledger
type MasterLedgerReader interface {
	// FindMasterLedgerByDate returns the entry for a day, or apperrors.ErrNotFound.
	FindMasterLedgerByDate(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error)

	// FindLatestMasterLedgerBefore returns the most recent entry strictly before date, or apperrors.ErrNotFound.
	FindLatestMasterLedgerBefore(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error)

	ListMasterLedger(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (Page[domain.MasterLedgerEntry], error)
}

// MasterLedgerWriter defines write operations for the Reg-78 daily ledger
type MasterLedgerWriter interface {
	// UpsertMasterLedger writes the entry for its date, replacing any existing one.
	UpsertMasterLedger(ctx context.Context, entry domain.MasterLedgerEntry) error
}

// MasterLedgerRepositoryFacade combines all Reg-78 repository interfaces
type MasterLedgerRepositoryFacade interface {
	MasterLedgerReader
	MasterLedgerWriter
}

// MasterLedgerRepositoryWithTx extends MasterLedgerRepositoryFacade with transaction capabilities
type MasterLedgerRepositoryWithTx interface {
	MasterLedgerRepositoryFacade
	TransactionManager
}

package repositories

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// DutyRateReader defines read operations for the duty rate schedule
type DutyRateReader interface {
	// ListDutyRates returns every schedule row for a category and subcategory, active or not.
	ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error)
}

// DutyRateWriter defines write operations for the duty rate schedule
type DutyRateWriter interface {
	SaveDutyRate(ctx context.Context, rate domain.DutyRate) error
}

// DutyRateRepositoryFacade combines all duty rate repository interfaces
type DutyRateRepositoryFacade interface {
	DutyRateReader
	DutyRateWriter
}

// DutyLedgerReader defines read operations for monthly duty ledgers and their payments
type DutyLedgerReader interface {
	FindDutyLedgerByID(ctx context.Context, entryID string) (*domain.DutyLedgerEntry, error)

	// FindDutyLedgerByMonth looks up the entry for one month and category, or apperrors.ErrNotFound.
	FindDutyLedgerByMonth(ctx context.Context, monthYear, category, subcategory string) (*domain.DutyLedgerEntry, error)

	ListDutyLedgerEntries(ctx context.Context, limit int, nextToken *string) (Page[domain.DutyLedgerEntry], error)
	ListDutyPayments(ctx context.Context, ledgerEntryID string) ([]domain.DutyPayment, error)
}

// DutyLedgerWriter defines write operations for monthly duty ledgers
type DutyLedgerWriter interface {
	// SaveDutyLedgerEntry inserts a month; an existing (month, category, subcategory) yields apperrors.ErrDuplicate.
	SaveDutyLedgerEntry(ctx context.Context, entry domain.DutyLedgerEntry) error

	// SaveDutyPayment locks the ledger entry, appends the challan to its stored payments,
	// lets apply recompute the entry and persists both in one transaction.
	SaveDutyPayment(ctx context.Context, payment domain.DutyPayment, apply DutyPaymentApplier) (*domain.DutyLedgerEntry, []domain.DutyPayment, error)
}

// DutyPaymentApplier recomputes a locked ledger entry from its full payment list, new challan included.
type DutyPaymentApplier func(entry *domain.DutyLedgerEntry, payments []domain.DutyPayment) error

// DutyLedgerRepositoryFacade combines all duty ledger repository interfaces
type DutyLedgerRepositoryFacade interface {
	DutyLedgerReader
	DutyLedgerWriter
}

// DutyLedgerRepositoryWithTx extends DutyLedgerRepositoryFacade with transaction capabilities
type DutyLedgerRepositoryWithTx interface {
	DutyLedgerRepositoryFacade
	TransactionManager
}

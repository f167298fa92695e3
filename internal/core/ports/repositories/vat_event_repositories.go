package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// VatEventReader defines read operations for Reg-74 vat events
type VatEventReader interface {
	// ListVatEventsByVat returns the full history of one vat, oldest first.
	ListVatEventsByVat(ctx context.Context, vatCode string) ([]domain.VatEvent, error)

	ListVatEventsByDate(ctx context.Context, date time.Time) ([]domain.VatEvent, error)

	// ListVatEventsByBatch returns the events tagged with a production batch.
	ListVatEventsByBatch(ctx context.Context, batchID string) ([]domain.VatEvent, error)

	ListVatEvents(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (Page[domain.VatEvent], error)
}

// VatEventWriter defines write operations for Reg-74 vat events
type VatEventWriter interface {
	SaveVatEvent(ctx context.Context, event domain.VatEvent) error
}

// VatEventRepositoryFacade combines all Reg-74 repository interfaces
type VatEventRepositoryFacade interface {
	VatEventReader
	VatEventWriter
}

// VatEventRepositoryWithTx extends VatEventRepositoryFacade with transaction capabilities
type VatEventRepositoryWithTx interface {
	VatEventRepositoryFacade
	TransactionManager
}

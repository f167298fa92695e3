package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// BottlingReader defines read operations for Reg-A production sessions
type BottlingReader interface {
	FindBottlingByID(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error)

	// FindBottlingBySession looks a session up by its natural key.
	FindBottlingBySession(ctx context.Context, batchID string, sessionNo int) (*domain.BottlingProductionEntry, error)

	// ListCompletedBottlingByDate returns the COMPLETED sessions produced on the given day.
	ListCompletedBottlingByDate(ctx context.Context, date time.Time) ([]domain.BottlingProductionEntry, error)

	ListBottling(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (Page[domain.BottlingProductionEntry], error)
}

// BottlingWriter defines write operations for Reg-A production sessions
type BottlingWriter interface {
	// SaveBottling inserts a new session; a taken (batchID, sessionNo) yields apperrors.ErrDuplicate.
	SaveBottling(ctx context.Context, entry domain.BottlingProductionEntry) error

	// UpdateBottling persists a state change. It refuses to touch a row that is already COMPLETED.
	UpdateBottling(ctx context.Context, entry domain.BottlingProductionEntry) error
}

// BottlingRepositoryFacade combines all Reg-A repository interfaces
type BottlingRepositoryFacade interface {
	BottlingReader
	BottlingWriter
}

// BottlingRepositoryWithTx extends BottlingRepositoryFacade with transaction capabilities
type BottlingRepositoryWithTx interface {
	BottlingRepositoryFacade
	TransactionManager
}

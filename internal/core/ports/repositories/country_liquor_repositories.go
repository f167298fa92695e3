package repositories

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// CountryLiquorReader defines read operations for Reg-B issue entries
type CountryLiquorReader interface {
	FindCountryLiquorIssueByID(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error)
	ListCountryLiquorIssues(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (Page[domain.CountryLiquorIssueEntry], error)
}

// CountryLiquorWriter defines write operations for Reg-B issue entries
type CountryLiquorWriter interface {
	SaveCountryLiquorIssue(ctx context.Context, entry domain.CountryLiquorIssueEntry) error
}

// CountryLiquorRepositoryFacade combines all Reg-B repository interfaces
type CountryLiquorRepositoryFacade interface {
	CountryLiquorReader
	CountryLiquorWriter
}

// CountryLiquorRepositoryWithTx extends CountryLiquorRepositoryFacade with transaction capabilities
type CountryLiquorRepositoryWithTx interface {
	CountryLiquorRepositoryFacade
	TransactionManager
}

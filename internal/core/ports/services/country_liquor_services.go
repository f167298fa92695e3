package services

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// CountryLiquorReaderSvc defines read operations for Reg-B entries
type CountryLiquorReaderSvc interface {
	GetCountryLiquorIssue(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error)
	ListCountryLiquorIssues(ctx context.Context, params dto.ListParams) (*dto.ListCountryLiquorIssuesResponse, error)
}

// CountryLiquorWriterSvc defines write operations for Reg-B entries
type CountryLiquorWriterSvc interface {
	// CreateCountryLiquorIssue totals the sections, checks the balance and stores the entry.
	CreateCountryLiquorIssue(ctx context.Context, req dto.CreateCountryLiquorIssueRequest, actor domain.Actor) (*domain.CountryLiquorIssueEntry, error)
}

// CountryLiquorSvcFacade combines all Reg-B service interfaces
type CountryLiquorSvcFacade interface {
	CountryLiquorReaderSvc
	CountryLiquorWriterSvc
}

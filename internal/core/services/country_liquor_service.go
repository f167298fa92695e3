package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/utils/excise"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const registerRegB = "regb"

// countryLiquorService implements the CountryLiquorSvcFacade interface
type countryLiquorService struct {
	BaseService
	issueRepo    portsrepo.CountryLiquorRepositoryFacade
	bottlingRepo portsrepo.BottlingReader
}

// NewCountryLiquorService creates the Reg-B service. The bottling reader
// resolves the Reg-A session an entry is pre-filled from.
func NewCountryLiquorService(repo portsrepo.CountryLiquorRepositoryFacade, bottlingRepo portsrepo.BottlingReader, options ...ServiceOption) portssvc.CountryLiquorSvcFacade {
	svc := &countryLiquorService{issueRepo: repo, bottlingRepo: bottlingRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CountryLiquorSvcFacade = (*countryLiquorService)(nil)

func (s *countryLiquorService) CreateCountryLiquorIssue(ctx context.Context, req dto.CreateCountryLiquorIssueRequest, actor domain.Actor) (*domain.CountryLiquorIssueEntry, error) {
	entry, err := req.ToEntry()
	if err != nil {
		return nil, s.Reject(ctx, registerRegB, err)
	}

	if entry.SourceRegAEntryID != "" {
		src, err := s.bottlingRepo.FindBottlingByID(ctx, entry.SourceRegAEntryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load source production session %s: %w", entry.SourceRegAEntryID, err)
		}
		if err := excise.AutoFillFromCompletedRegA(&entry, *src); err != nil {
			return nil, s.Reject(ctx, registerRegB, err, slog.String("source_entry_id", src.EntryID))
		}
	}

	if err := excise.BuildRegB(&entry, req.DeclaredClosingBl); err != nil {
		return nil, s.Reject(ctx, registerRegB, err, slog.Time("entry_date", entry.EntryDate))
	}

	entry.EntryID = uuid.NewString()
	entry.AuditFields = newAudit(actor, s.Now())

	if err := s.issueRepo.SaveCountryLiquorIssue(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save country liquor issue", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save country liquor issue: %w", err)
	}

	s.Metrics.RecordEntry(registerRegB, "create")
	s.LogInfo(ctx, "Country liquor issue recorded",
		slog.String("entry_id", entry.EntryID),
		slog.Time("entry_date", entry.EntryDate),
		slog.String("closing_bl", entry.Totals.Closing.Bl.String()),
		slog.String("production_fees", entry.ProductionFees.String()))
	return &entry, nil
}

func (s *countryLiquorService) GetCountryLiquorIssue(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error) {
	entry, err := s.issueRepo.FindCountryLiquorIssueByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get country liquor issue: %w", err)
	}
	return entry, nil
}

func (s *countryLiquorService) ListCountryLiquorIssues(ctx context.Context, params dto.ListParams) (*dto.ListCountryLiquorIssuesResponse, error) {
	rng, err := listRange(params)
	if err != nil {
		return nil, err
	}
	page, err := s.issueRepo.ListCountryLiquorIssues(ctx, rng, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list country liquor issues")
		return nil, fmt.Errorf("failed to list country liquor issues: %w", err)
	}
	return &dto.ListCountryLiquorIssuesResponse{Entries: nonNil(page.Items), NextToken: page.NextToken}, nil
}

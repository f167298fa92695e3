package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/utils/excise"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const registerReg78 = "reg78"

// masterLedgerService implements the MasterLedgerSvcFacade interface
type masterLedgerService struct {
	BaseService
	ledgerRepo   portsrepo.MasterLedgerRepositoryFacade
	receiptRepo  portsrepo.SpiritReceiptReader
	bottlingRepo portsrepo.BottlingReader
	vatRepo      portsrepo.VatEventReader
	threshold    decimal.Decimal
}

// MasterLedgerOption configures the Reg-78 service beyond the shared options.
type MasterLedgerOption func(*masterLedgerService)

// WithReconciliationThreshold sets the variance percentage within which a day reconciles.
func WithReconciliationThreshold(percent decimal.Decimal) MasterLedgerOption {
	return func(s *masterLedgerService) {
		s.threshold = percent
	}
}

// WithLedgerServiceOptions applies shared service options to the Reg-78 service.
func WithLedgerServiceOptions(options ...ServiceOption) MasterLedgerOption {
	return func(s *masterLedgerService) {
		applyOptions(&s.BaseService, options)
	}
}

// NewMasterLedgerService creates the Reg-78 service over the registers it projects.
func NewMasterLedgerService(
	ledgerRepo portsrepo.MasterLedgerRepositoryFacade,
	receiptRepo portsrepo.SpiritReceiptReader,
	bottlingRepo portsrepo.BottlingReader,
	vatRepo portsrepo.VatEventReader,
	options ...MasterLedgerOption,
) portssvc.MasterLedgerSvcFacade {
	svc := &masterLedgerService{
		ledgerRepo:   ledgerRepo,
		receiptRepo:  receiptRepo,
		bottlingRepo: bottlingRepo,
		vatRepo:      vatRepo,
		threshold:    excise.DefaultReconciliationThreshold,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MasterLedgerSvcFacade = (*masterLedgerService)(nil)

func (s *masterLedgerService) AggregateMasterLedger(ctx context.Context, date time.Time, actor domain.Actor) (*domain.MasterLedgerEntry, error) {
	date = domain.TruncateToDate(date)
	entry, err := s.aggregate(ctx, date, actor)
	s.Metrics.RecordAggregation(err == nil)
	if err != nil {
		s.LogError(ctx, err, "Master ledger aggregation failed", slog.Time("entry_date", date))
		return nil, err
	}

	s.Metrics.RecordEntry(registerReg78, "aggregate")
	s.LogInfo(ctx, "Master ledger aggregated",
		slog.String("entry_id", entry.EntryID),
		slog.Time("entry_date", date),
		slog.String("closing_bl", entry.ClosingBl.String()),
		slog.String("closing_al", entry.ClosingAl.String()),
		slog.String("wastage_al", entry.WastageAl.String()))
	return entry, nil
}

func (s *masterLedgerService) aggregate(ctx context.Context, date time.Time, actor domain.Actor) (*domain.MasterLedgerEntry, error) {
	in := excise.MasterLedgerInput{Date: date}

	previous, err := s.ledgerRepo.FindLatestMasterLedgerBefore(ctx, date)
	switch {
	case err == nil:
		in.Previous = previous
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load previous master ledger entry: %w", err)
	}

	if in.Receipts, err = s.receiptRepo.ListSpiritReceiptsByDate(ctx, date); err != nil {
		return nil, fmt.Errorf("failed to load spirit receipts: %w", err)
	}
	if in.Productions, err = s.bottlingRepo.ListCompletedBottlingByDate(ctx, date); err != nil {
		return nil, fmt.Errorf("failed to load completed production sessions: %w", err)
	}
	if in.VatEvents, err = s.vatRepo.ListVatEventsByDate(ctx, date); err != nil {
		return nil, fmt.Errorf("failed to load vat events: %w", err)
	}

	fresh := excise.AggregateMasterLedger(in)
	now := s.Now()

	stored, err := s.ledgerRepo.FindMasterLedgerByDate(ctx, date)
	switch {
	case err == nil:
		excise.CarryReconciliation(&fresh, *stored)
		touch(&fresh.AuditFields, actor, now)
	case errors.Is(err, apperrors.ErrNotFound):
		fresh.EntryID = uuid.NewString()
		fresh.AuditFields = newAudit(actor, now)
	default:
		return nil, fmt.Errorf("failed to load master ledger entry: %w", err)
	}

	if err := s.ledgerRepo.UpsertMasterLedger(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to save master ledger entry: %w", err)
	}
	return &fresh, nil
}

func (s *masterLedgerService) ReconcileMasterLedger(ctx context.Context, date time.Time, req dto.ReconcileMasterLedgerRequest, actor domain.Actor) (*domain.MasterLedgerEntry, error) {
	if err := s.AuthorizeRole(ctx, actor, "reconcile the master ledger", domain.RoleAdmin, domain.RoleExcise); err != nil {
		return nil, err
	}

	var errs apperrors.ValidationErrors
	if req.PhysicalClosingBl == nil || req.PhysicalClosingBl.IsNegative() {
		errs.Add("physicalClosingBl", "is required and must not be negative")
	}
	if req.PhysicalClosingAl == nil || req.PhysicalClosingAl.IsNegative() {
		errs.Add("physicalClosingAl", "is required and must not be negative")
	}
	if err := errs.Err(); err != nil {
		return nil, s.Reject(ctx, registerReg78, err)
	}

	date = domain.TruncateToDate(date)
	entry, err := s.ledgerRepo.FindMasterLedgerByDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.Reject(ctx, registerReg78,
				apperrors.NewPreconditionError(fmt.Sprintf("no master ledger entry for %s; aggregate the day first", date.Format(time.DateOnly))))
		}
		return nil, fmt.Errorf("failed to load master ledger entry: %w", err)
	}

	now := s.Now()
	excise.ReconcileMasterLedger(entry, *req.PhysicalClosingBl, *req.PhysicalClosingAl, s.threshold, actor.UserID, now)
	touch(&entry.AuditFields, actor, now)

	if err := s.ledgerRepo.UpsertMasterLedger(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save reconciliation", slog.Time("entry_date", date))
		return nil, fmt.Errorf("failed to save reconciliation: %w", err)
	}

	s.Metrics.RecordReconciliation(entry.IsReconciled)
	logArgs := []any{
		slog.Time("entry_date", date),
		slog.String("variance_percent", entry.Variance.String()),
		slog.String("threshold_percent", s.threshold.String()),
		slog.Bool("is_reconciled", entry.IsReconciled),
	}
	if entry.IsReconciled {
		s.LogInfo(ctx, "Master ledger reconciled", logArgs...)
	} else {
		s.LogWarn(ctx, "Master ledger variance exceeds threshold", logArgs...)
	}
	return entry, nil
}

func (s *masterLedgerService) GetMasterLedger(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	entry, err := s.ledgerRepo.FindMasterLedgerByDate(ctx, domain.TruncateToDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to get master ledger entry: %w", err)
	}
	return entry, nil
}

func (s *masterLedgerService) ListMasterLedger(ctx context.Context, params dto.ListParams) (*dto.ListMasterLedgerResponse, error) {
	rng, err := listRange(params)
	if err != nil {
		return nil, err
	}
	page, err := s.ledgerRepo.ListMasterLedger(ctx, rng, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list master ledger entries")
		return nil, fmt.Errorf("failed to list master ledger entries: %w", err)
	}
	return &dto.ListMasterLedgerResponse{Entries: nonNil(page.Items), NextToken: page.NextToken}, nil
}

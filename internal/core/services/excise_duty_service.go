package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

const registerDuty = "duty"

// exciseDutyService implements the ExciseDutySvcFacade interface
type exciseDutyService struct {
	BaseService
	rateRepo   portsrepo.DutyRateRepositoryFacade
	ledgerRepo portsrepo.DutyLedgerRepositoryFacade
}

// NewExciseDutyService creates the duty rate and ledger service.
func NewExciseDutyService(rateRepo portsrepo.DutyRateRepositoryFacade, ledgerRepo portsrepo.DutyLedgerRepositoryFacade, options ...ServiceOption) portssvc.ExciseDutySvcFacade {
	svc := &exciseDutyService{rateRepo: rateRepo, ledgerRepo: ledgerRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ExciseDutySvcFacade = (*exciseDutyService)(nil)

func (s *exciseDutyService) CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest, actor domain.Actor) (*domain.DutyRate, error) {
	if err := s.AuthorizeRole(ctx, actor, "create duty rates", domain.RoleAdmin, domain.RoleExcise); err != nil {
		return nil, err
	}

	rate := req.ToRate()
	if err := excise.ValidateDutyRate(rate); err != nil {
		return nil, s.Reject(ctx, registerDuty, err)
	}

	existing, err := s.rateRepo.ListDutyRates(ctx, rate.Category, rate.Subcategory)
	if err != nil {
		s.LogError(ctx, err, "Failed to load duty rate schedule",
			slog.String("category", rate.Category),
			slog.String("subcategory", rate.Subcategory))
		return nil, fmt.Errorf("failed to load duty rate schedule: %w", err)
	}
	for _, other := range existing {
		if excise.RatesOverlap(rate, other) {
			err := fmt.Errorf("%w: rate %s for %s/%s already covers part of this period",
				apperrors.ErrDuplicate, other.RateID, other.Category, other.Subcategory)
			return nil, s.Reject(ctx, registerDuty, err)
		}
	}

	rate.RateID = uuid.NewString()
	rate.AuditFields = newAudit(actor, s.Now())
	if err := s.rateRepo.SaveDutyRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save duty rate", slog.String("rate_id", rate.RateID))
		return nil, fmt.Errorf("failed to save duty rate: %w", err)
	}

	s.Metrics.RecordEntry(registerDuty, "create_rate")
	s.LogInfo(ctx, "Duty rate created",
		slog.String("rate_id", rate.RateID),
		slog.String("category", rate.Category),
		slog.String("subcategory", rate.Subcategory),
		slog.String("rate_per_unit", rate.RatePerUnit.String()))
	return &rate, nil
}

func (s *exciseDutyService) GetCurrentRate(ctx context.Context, category, subcategory string, date time.Time) (*domain.DutyRate, error) {
	category, subcategory = domain.NormalizeDutyKey(category), domain.NormalizeDutyKey(subcategory)
	rates, err := s.rateRepo.ListDutyRates(ctx, category, subcategory)
	if err != nil {
		s.LogError(ctx, err, "Failed to load duty rate schedule",
			slog.String("category", category),
			slog.String("subcategory", subcategory))
		return nil, fmt.Errorf("failed to load duty rate schedule: %w", err)
	}
	rate, ok := excise.GetCurrentRate(rates, category, subcategory, date)
	if !ok {
		return nil, excise.MissingRateError(category, subcategory, date)
	}
	return &rate, nil
}

func (s *exciseDutyService) ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error) {
	rates, err := s.rateRepo.ListDutyRates(ctx, domain.NormalizeDutyKey(category), domain.NormalizeDutyKey(subcategory))
	if err != nil {
		return nil, fmt.Errorf("failed to list duty rates: %w", err)
	}
	return nonNil(rates), nil
}

func (s *exciseDutyService) CreateDutyLedger(ctx context.Context, req dto.CreateDutyLedgerRequest, actor domain.Actor) (*domain.DutyLedgerEntry, error) {
	category := domain.NormalizeDutyKey(req.Category)
	subcategory := domain.NormalizeDutyKey(req.Subcategory)

	monthStart, err := excise.MonthStart(req.MonthYear)
	if err != nil {
		return nil, s.Reject(ctx, registerDuty, err)
	}
	prevMonth, _ := excise.PreviousMonth(req.MonthYear)

	rate, err := s.GetCurrentRate(ctx, category, subcategory, monthStart)
	if err != nil {
		if isRejection(err) {
			return nil, s.Reject(ctx, registerDuty, err, slog.String("month_year", req.MonthYear))
		}
		return nil, err
	}

	opening := decimal.Zero
	prev, err := s.ledgerRepo.FindDutyLedgerByMonth(ctx, prevMonth, category, subcategory)
	switch {
	case err == nil:
		opening = prev.ClosingBalance
		if opening.IsNegative() {
			s.LogWarn(ctx, "Previous month closed in credit; opening balance starts at zero",
				slog.String("previous_entry_id", prev.EntryID),
				slog.String("closing_balance", prev.ClosingBalance.String()))
			opening = decimal.Zero
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.LogError(ctx, err, "Failed to load previous month ledger", slog.String("month_year", prevMonth))
		return nil, fmt.Errorf("failed to load previous month ledger: %w", err)
	}

	entry := domain.DutyLedgerEntry{
		EntryID:          uuid.NewString(),
		MonthYear:        monthStart.Format(domain.MonthYearLayout),
		Category:         category,
		Subcategory:      subcategory,
		TotalUnitsIssued: orZero(req.TotalUnitsIssued),
		AppliedRate:      rate.RatePerUnit,
		AppliedRateID:    rate.RateID,
		OpeningBalance:   opening,
		TotalPayments:    decimal.Zero,
		AuditFields:      newAudit(actor, s.Now()),
	}
	if err := excise.RecomputeDutyLedger(&entry); err != nil {
		return nil, s.Reject(ctx, registerDuty, err)
	}

	if err := s.ledgerRepo.SaveDutyLedgerEntry(ctx, entry); err != nil {
		if isRejection(err) {
			return nil, s.Reject(ctx, registerDuty, err, slog.String("month_year", entry.MonthYear))
		}
		s.LogError(ctx, err, "Failed to save duty ledger entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save duty ledger entry: %w", err)
	}

	s.Metrics.RecordEntry(registerDuty, "create_ledger")
	s.LogInfo(ctx, "Duty ledger opened",
		slog.String("entry_id", entry.EntryID),
		slog.String("month_year", entry.MonthYear),
		slog.String("duty_accrued", entry.DutyAccrued.String()),
		slog.String("opening_balance", entry.OpeningBalance.String()))
	return &entry, nil
}

func (s *exciseDutyService) RecordDutyPayment(ctx context.Context, entryID string, req dto.RecordDutyPaymentRequest, actor domain.Actor) (*dto.DutyLedgerResponse, error) {
	var errs apperrors.ValidationErrors
	amount := orZero(req.Amount)
	if !amount.IsPositive() {
		errs.Add("amount", "must be greater than 0, got %s", amount.String())
	}
	if strings.TrimSpace(req.ChallanNo) == "" {
		errs.Add("challanNo", "is required")
	}
	if req.PaymentDate == nil || req.PaymentDate.IsZero() {
		errs.Add("paymentDate", "is required")
	}
	if err := errs.Err(); err != nil {
		return nil, s.Reject(ctx, registerDuty, err)
	}

	now := s.Now()
	payment := domain.DutyPayment{
		PaymentID:     uuid.NewString(),
		LedgerEntryID: entryID,
		Amount:        excise.Round2(amount),
		PaymentDate:   domain.TruncateToDate(req.PaymentDate.Time),
		ChallanNo:     strings.TrimSpace(req.ChallanNo),
		AuditFields:   newAudit(actor, now),
	}

	// The total is summed from the stored challans while the entry is locked.
	var recomputeErr error
	ledger, payments, err := s.ledgerRepo.SaveDutyPayment(ctx, payment, func(entry *domain.DutyLedgerEntry, all []domain.DutyPayment) error {
		total := decimal.Zero
		for _, p := range all {
			total = total.Add(p.Amount)
		}
		entry.TotalPayments = excise.Round2(total)
		if recomputeErr = excise.RecomputeDutyLedger(entry); recomputeErr != nil {
			return recomputeErr
		}
		touch(&entry.AuditFields, actor, now)
		return nil
	})
	if recomputeErr != nil {
		return nil, s.Reject(ctx, registerDuty, recomputeErr, slog.String("entry_id", entryID))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save duty payment",
			slog.String("entry_id", entryID),
			slog.String("challan_no", payment.ChallanNo))
		return nil, fmt.Errorf("failed to save duty payment: %w", err)
	}

	s.Metrics.RecordEntry(registerDuty, "payment")
	s.LogInfo(ctx, "Duty payment recorded",
		slog.String("entry_id", entryID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("closing_balance", ledger.ClosingBalance.String()),
		slog.String("status", string(ledger.Status)))
	return &dto.DutyLedgerResponse{Entry: *ledger, Payments: payments}, nil
}

func (s *exciseDutyService) GetDutyLedger(ctx context.Context, entryID string) (*dto.DutyLedgerResponse, error) {
	ledger, err := s.ledgerRepo.FindDutyLedgerByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty ledger entry: %w", err)
	}
	payments, err := s.ledgerRepo.ListDutyPayments(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty payments: %w", err)
	}
	return &dto.DutyLedgerResponse{Entry: *ledger, Payments: nonNil(payments)}, nil
}

func (s *exciseDutyService) ListDutyLedger(ctx context.Context, params dto.ListParams) (*dto.ListDutyLedgerResponse, error) {
	page, err := s.ledgerRepo.ListDutyLedgerEntries(ctx, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list duty ledger entries")
		return nil, fmt.Errorf("failed to list duty ledger entries: %w", err)
	}
	return &dto.ListDutyLedgerResponse{Entries: nonNil(page.Items), NextToken: page.NextToken}, nil
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

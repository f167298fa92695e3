package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

const registerRegA = "rega"

// bottlingService implements the BottlingSvcFacade interface
type bottlingService struct {
	BaseService
	bottlingRepo portsrepo.BottlingRepositoryFacade
	vatRepo      portsrepo.VatEventReader
}

// NewBottlingService creates the Reg-A service. Vat events are read to sum
// the meter readings of a batch.
func NewBottlingService(repo portsrepo.BottlingRepositoryFacade, vatRepo portsrepo.VatEventReader, options ...ServiceOption) portssvc.BottlingSvcFacade {
	svc := &bottlingService{bottlingRepo: repo, vatRepo: vatRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.BottlingSvcFacade = (*bottlingService)(nil)

func (s *bottlingService) CreateBottling(ctx context.Context, req dto.CreateBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	var errs apperrors.ValidationErrors
	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		errs.Add("batchID", "is required")
	}
	if req.SessionNo < 1 {
		errs.Add("sessionNo", "must be at least 1, got %d", req.SessionNo)
	}
	if req.ProductionDate == nil || req.ProductionDate.IsZero() {
		errs.Add("productionDate", "is required")
	}
	if err := errs.Err(); err != nil {
		return nil, s.Reject(ctx, registerRegA, err)
	}

	now := s.Now()
	entry := domain.BottlingProductionEntry{
		EntryID:        uuid.NewString(),
		BatchID:        batchID,
		SessionNo:      req.SessionNo,
		ProductionDate: domain.TruncateToDate(req.ProductionDate.Time),
		ProductName:    strings.TrimSpace(req.ProductName),
		Status:         domain.ProductionPlanned,
		BottleCounts:   domain.BottleCounts{},
		AuditFields:    newAudit(actor, now),
	}

	if err := s.bottlingRepo.SaveBottling(ctx, entry); err != nil {
		if isRejection(err) {
			return nil, s.Reject(ctx, registerRegA, err,
				slog.String("batch_id", batchID),
				slog.Int("session_no", req.SessionNo))
		}
		s.LogError(ctx, err, "Failed to save production session",
			slog.String("batch_id", batchID),
			slog.Int("session_no", req.SessionNo))
		return nil, fmt.Errorf("failed to save production session: %w", err)
	}

	s.Metrics.RecordEntry(registerRegA, "create")
	s.LogInfo(ctx, "Production session planned",
		slog.String("entry_id", entry.EntryID),
		slog.String("batch_id", batchID),
		slog.Int("session_no", req.SessionNo))
	return &entry, nil
}

func (s *bottlingService) DeclareBottling(ctx context.Context, entryID string, req dto.DeclareBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	entry, err := s.bottlingRepo.FindBottlingByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load production session %s: %w", entryID, err)
	}

	strength := decimal.Zero
	if req.AvgStrength != nil {
		strength = *req.AvgStrength
	}
	if err := excise.DeclareProduction(ctx, entry, req.BottleCounts, strength); err != nil {
		return nil, s.Reject(ctx, registerRegA, err, slog.String("entry_id", entryID))
	}
	touch(&entry.AuditFields, actor, s.Now())

	if err := s.update(ctx, entry); err != nil {
		return nil, err
	}

	s.Metrics.RecordEntry(registerRegA, "declare")
	s.LogInfo(ctx, "Production counts declared",
		slog.String("entry_id", entryID),
		slog.String("status", string(entry.Status)),
		slog.String("spirit_bottled_al", entry.SpiritBottledAl.String()))
	return entry, nil
}

func (s *bottlingService) LinkMeterReading(ctx context.Context, entryID string, req dto.LinkMeterRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	entry, err := s.bottlingRepo.FindBottlingByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load production session %s: %w", entryID, err)
	}

	source := "manual"
	var reading decimal.Decimal
	if req.MfmTotalAl != nil {
		reading = *req.MfmTotalAl
	} else {
		events, err := s.vatRepo.ListVatEventsByBatch(ctx, entry.BatchID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load vat issues for batch", slog.String("batch_id", entry.BatchID))
			return nil, fmt.Errorf("failed to load vat issues for batch %s: %w", entry.BatchID, err)
		}
		total, n := excise.SumIssuedMfm(events, entry.BatchID)
		if n == 0 {
			return nil, s.Reject(ctx, registerRegA,
				apperrors.NewPreconditionError(fmt.Sprintf("no Reg-74 issue events recorded for batch %s", entry.BatchID)),
				slog.String("entry_id", entryID))
		}
		reading = total
		source = "reg74"
	}

	if err := excise.LinkMeterReading(entry, reading); err != nil {
		return nil, s.Reject(ctx, registerRegA, err, slog.String("entry_id", entryID))
	}
	touch(&entry.AuditFields, actor, s.Now())

	if err := s.update(ctx, entry); err != nil {
		return nil, err
	}

	s.Metrics.RecordEntry(registerRegA, "link_meter")
	s.LogInfo(ctx, "Meter reading linked",
		slog.String("entry_id", entryID),
		slog.String("source", source),
		slog.String("mfm_total_al", entry.MfmTotalAl.String()))
	return entry, nil
}

func (s *bottlingService) FinalizeBottling(ctx context.Context, entryID string, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	if err := s.AuthorizeRole(ctx, actor, "finalize production", excise.FinalizeRoles...); err != nil {
		return nil, err
	}

	entry, err := s.bottlingRepo.FindBottlingByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load production session %s: %w", entryID, err)
	}

	now := s.Now()
	if err := excise.FinalizeProduction(ctx, entry, actor.Role, actor.UserID, now); err != nil {
		return nil, s.Reject(ctx, registerRegA, err, slog.String("entry_id", entryID))
	}
	touch(&entry.AuditFields, actor, now)

	if err := s.update(ctx, entry); err != nil {
		return nil, err
	}

	s.Metrics.RecordEntry(registerRegA, "finalize")
	if entry.IsChargeable {
		s.Metrics.RecordChargeableWastage(registerRegA)
	}
	s.LogInfo(ctx, "Production session finalized",
		slog.String("entry_id", entryID),
		slog.String("verified_by", actor.UserID),
		slog.String("chargeable_wastage", entry.ChargeableWastage.String()),
		slog.Bool("is_chargeable", entry.IsChargeable))
	return entry, nil
}

func (s *bottlingService) update(ctx context.Context, entry *domain.BottlingProductionEntry) error {
	if err := s.bottlingRepo.UpdateBottling(ctx, *entry); err != nil {
		if isRejection(err) {
			return s.Reject(ctx, registerRegA, err, slog.String("entry_id", entry.EntryID))
		}
		s.LogError(ctx, err, "Failed to update production session", slog.String("entry_id", entry.EntryID))
		return fmt.Errorf("failed to update production session: %w", err)
	}
	return nil
}

func (s *bottlingService) GetBottling(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error) {
	entry, err := s.bottlingRepo.FindBottlingByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get production session: %w", err)
	}
	return entry, nil
}

func (s *bottlingService) ListBottling(ctx context.Context, params dto.ListParams) (*dto.ListBottlingResponse, error) {
	rng, err := listRange(params)
	if err != nil {
		return nil, err
	}
	page, err := s.bottlingRepo.ListBottling(ctx, rng, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list production sessions")
		return nil, fmt.Errorf("failed to list production sessions: %w", err)
	}
	return &dto.ListBottlingResponse{Sessions: nonNil(page.Items), NextToken: page.NextToken}, nil
}

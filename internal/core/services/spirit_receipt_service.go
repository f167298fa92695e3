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

const registerReg76 = "reg76"

// spiritReceiptService implements the SpiritReceiptSvcFacade interface
type spiritReceiptService struct {
	BaseService
	receiptRepo portsrepo.SpiritReceiptRepositoryFacade
}

// NewSpiritReceiptService creates the Reg-76 service.
func NewSpiritReceiptService(repo portsrepo.SpiritReceiptRepositoryFacade, options ...ServiceOption) portssvc.SpiritReceiptSvcFacade {
	svc := &spiritReceiptService{receiptRepo: repo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.SpiritReceiptSvcFacade = (*spiritReceiptService)(nil)

func (s *spiritReceiptService) CreateSpiritReceipt(ctx context.Context, req dto.CreateSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error) {
	entry, err := excise.BuildSpiritReceipt(req.ToInput())
	if err != nil {
		return nil, s.Reject(ctx, registerReg76, err, slog.String("user_id", actor.UserID))
	}

	now := s.Now()
	entry.EntryID = uuid.NewString()
	entry.AuditFields = newAudit(actor, now)

	if err := s.receiptRepo.SaveSpiritReceipt(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save spirit receipt",
			slog.String("entry_id", entry.EntryID),
			slog.String("permit_no", entry.PermitNo))
		return nil, fmt.Errorf("failed to save spirit receipt: %w", err)
	}

	s.Metrics.RecordEntry(registerReg76, "create")
	if entry.IsChargeable {
		s.Metrics.RecordChargeableWastage(registerReg76)
	}
	s.LogInfo(ctx, "Spirit receipt recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("permit_no", entry.PermitNo),
		slog.String("received_al", entry.ReceivedAl.String()),
		slog.Bool("is_chargeable", entry.IsChargeable))
	return &entry, nil
}

func (s *spiritReceiptService) AmendSpiritReceipt(ctx context.Context, entryID string, req dto.AmendSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error) {
	if err := s.AuthorizeRole(ctx, actor, "amend a spirit receipt", domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.receiptRepo.FindSpiritReceiptByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spirit receipt %s: %w", entryID, err)
	}

	amended, err := excise.AmendSpiritReceipt(*existing, req.ToPatch(), req.Reason)
	if err != nil {
		return nil, s.Reject(ctx, registerReg76, err, slog.String("entry_id", entryID))
	}
	touch(&amended.AuditFields, actor, s.Now())

	if err := s.receiptRepo.UpdateSpiritReceipt(ctx, amended); err != nil {
		s.LogError(ctx, err, "Failed to update spirit receipt", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update spirit receipt: %w", err)
	}

	s.Metrics.RecordEntry(registerReg76, "amend")
	s.LogInfo(ctx, "Spirit receipt amended",
		slog.String("entry_id", entryID),
		slog.String("amended_by", actor.UserID),
		slog.String("reason", amended.AmendmentReason))
	return &amended, nil
}

func (s *spiritReceiptService) GetSpiritReceipt(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error) {
	entry, err := s.receiptRepo.FindSpiritReceiptByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spirit receipt: %w", err)
	}
	return entry, nil
}

func (s *spiritReceiptService) ListSpiritReceipts(ctx context.Context, params dto.ListParams) (*dto.ListSpiritReceiptsResponse, error) {
	rng, err := listRange(params)
	if err != nil {
		return nil, err
	}
	page, err := s.receiptRepo.ListSpiritReceipts(ctx, rng, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list spirit receipts")
		return nil, fmt.Errorf("failed to list spirit receipts: %w", err)
	}
	return &dto.ListSpiritReceiptsResponse{Receipts: nonNil(page.Items), NextToken: page.NextToken}, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/utils/excise"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const registerReg74 = "reg74"

// vatEventService implements the VatEventSvcFacade interface
type vatEventService struct {
	BaseService
	vatRepo portsrepo.VatEventRepositoryFacade
}

// NewVatEventService creates the Reg-74 service.
func NewVatEventService(repo portsrepo.VatEventRepositoryFacade, options ...ServiceOption) portssvc.VatEventSvcFacade {
	svc := &vatEventService{vatRepo: repo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.VatEventSvcFacade = (*vatEventService)(nil)

func (s *vatEventService) RecordVatEvent(ctx context.Context, req dto.RecordVatEventRequest, actor domain.Actor) (*domain.VatEvent, error) {
	event := req.ToEvent()
	event.VatCode = strings.TrimSpace(event.VatCode)
	event.BatchID = strings.TrimSpace(event.BatchID)

	var history []domain.VatEvent
	if event.EventType == domain.VatIssue && event.VatCode != "" {
		var err error
		history, err = s.vatRepo.ListVatEventsByVat(ctx, event.VatCode)
		if err != nil {
			s.LogError(ctx, err, "Failed to load vat history", slog.String("vat_code", event.VatCode))
			return nil, fmt.Errorf("failed to load vat history: %w", err)
		}
	}

	if err := excise.ValidateVatEvent(event, history); err != nil {
		return nil, s.Reject(ctx, registerReg74, err,
			slog.String("vat_code", event.VatCode),
			slog.String("event_type", string(event.EventType)))
	}

	event.EventID = uuid.NewString()
	event.AuditFields = newAudit(actor, s.Now())
	if err := s.vatRepo.SaveVatEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save vat event",
			slog.String("vat_code", event.VatCode),
			slog.String("event_type", string(event.EventType)))
		return nil, fmt.Errorf("failed to save vat event: %w", err)
	}

	s.Metrics.RecordEntry(registerReg74, strings.ToLower(string(event.EventType)))
	s.LogInfo(ctx, "Vat event recorded",
		slog.String("event_id", event.EventID),
		slog.String("vat_code", event.VatCode),
		slog.String("event_type", string(event.EventType)),
		slog.String("quantity_al", event.QuantityAl.String()))
	return &event, nil
}

func (s *vatEventService) ListVatHistory(ctx context.Context, vatCode string) ([]domain.VatEvent, error) {
	events, err := s.vatRepo.ListVatEventsByVat(ctx, vatCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list vat history: %w", err)
	}
	return nonNil(events), nil
}

func (s *vatEventService) ListVatEvents(ctx context.Context, params dto.ListParams) (*dto.ListVatEventsResponse, error) {
	rng, err := listRange(params)
	if err != nil {
		return nil, err
	}
	page, err := s.vatRepo.ListVatEvents(ctx, rng, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vat events")
		return nil, fmt.Errorf("failed to list vat events: %w", err)
	}
	return &dto.ListVatEventsResponse{Events: nonNil(page.Items), NextToken: page.NextToken}, nil
}

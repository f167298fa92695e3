package services

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// VatEventReaderSvc defines read operations for Reg-74 events
type VatEventReaderSvc interface {
	ListVatEvents(ctx context.Context, params dto.ListParams) (*dto.ListVatEventsResponse, error)
	ListVatHistory(ctx context.Context, vatCode string) ([]domain.VatEvent, error)
}

// VatEventWriterSvc defines write operations for Reg-74 events
type VatEventWriterSvc interface {
	// RecordVatEvent validates an event against the vat's history and stores it.
	RecordVatEvent(ctx context.Context, req dto.RecordVatEventRequest, actor domain.Actor) (*domain.VatEvent, error)
}

// VatEventSvcFacade combines all Reg-74 service interfaces
type VatEventSvcFacade interface {
	VatEventReaderSvc
	VatEventWriterSvc
}

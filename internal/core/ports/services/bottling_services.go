package services

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// BottlingReaderSvc defines read operations for Reg-A sessions
type BottlingReaderSvc interface {
	GetBottling(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error)
	ListBottling(ctx context.Context, params dto.ListParams) (*dto.ListBottlingResponse, error)
}

// BottlingWriterSvc defines the Reg-A lifecycle operations
type BottlingWriterSvc interface {
	// CreateBottling plans a session. A taken (batchID, sessionNo) yields apperrors.ErrDuplicate.
	CreateBottling(ctx context.Context, req dto.CreateBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error)

	// DeclareBottling records the bottle counts, moving a PLANNED session to ACTIVE.
	DeclareBottling(ctx context.Context, entryID string, req dto.DeclareBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error)

	// LinkMeterReading stores the MFM total, either supplied or summed from the batch's Reg-74 issues.
	LinkMeterReading(ctx context.Context, entryID string, req dto.LinkMeterRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error)

	// FinalizeBottling computes production wastage and completes the session. ADMIN or EXCISE only.
	FinalizeBottling(ctx context.Context, entryID string, actor domain.Actor) (*domain.BottlingProductionEntry, error)
}

// BottlingSvcFacade combines all Reg-A service interfaces
type BottlingSvcFacade interface {
	BottlingReaderSvc
	BottlingWriterSvc
}

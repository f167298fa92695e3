package services

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// DutyRateSvc defines operations on the duty rate schedule
type DutyRateSvc interface {
	// CreateDutyRate adds a schedule row. ADMIN or EXCISE only; an overlapping active row yields apperrors.ErrDuplicate.
	CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest, actor domain.Actor) (*domain.DutyRate, error)

	// GetCurrentRate returns the rate in effect on date, or an apperrors.ErrMissingRate error.
	GetCurrentRate(ctx context.Context, category, subcategory string, date time.Time) (*domain.DutyRate, error)

	ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error)
}

// DutyLedgerSvc defines operations on the monthly duty ledger
type DutyLedgerSvc interface {
	// CreateDutyLedger opens a month, carrying the previous month's closing balance.
	CreateDutyLedger(ctx context.Context, req dto.CreateDutyLedgerRequest, actor domain.Actor) (*domain.DutyLedgerEntry, error)

	// RecordDutyPayment stores a challan and recomputes the ledger entry.
	RecordDutyPayment(ctx context.Context, entryID string, req dto.RecordDutyPaymentRequest, actor domain.Actor) (*dto.DutyLedgerResponse, error)

	GetDutyLedger(ctx context.Context, entryID string) (*dto.DutyLedgerResponse, error)
	ListDutyLedger(ctx context.Context, params dto.ListParams) (*dto.ListDutyLedgerResponse, error)
}

// ExciseDutySvcFacade combines all duty service interfaces
type ExciseDutySvcFacade interface {
	DutyRateSvc
	DutyLedgerSvc
}

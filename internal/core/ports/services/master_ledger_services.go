package services

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
)

// MasterLedgerReaderSvc defines read operations for the Reg-78 ledger
type MasterLedgerReaderSvc interface {
	GetMasterLedger(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error)
	ListMasterLedger(ctx context.Context, params dto.ListParams) (*dto.ListMasterLedgerResponse, error)
}

// MasterLedgerWriterSvc defines write operations for the Reg-78 ledger
type MasterLedgerWriterSvc interface {
	// AggregateMasterLedger recomputes a day from the source registers and upserts it.
	AggregateMasterLedger(ctx context.Context, date time.Time, actor domain.Actor) (*domain.MasterLedgerEntry, error)

	// ReconcileMasterLedger records a physical count against an aggregated day. ADMIN or EXCISE only.
	ReconcileMasterLedger(ctx context.Context, date time.Time, req dto.ReconcileMasterLedgerRequest, actor domain.Actor) (*domain.MasterLedgerEntry, error)
}

// MasterLedgerSvcFacade combines all Reg-78 service interfaces
type MasterLedgerSvcFacade interface {
	MasterLedgerReaderSvc
	MasterLedgerWriterSvc
}

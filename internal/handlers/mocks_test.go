package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockSpiritReceiptService struct {
	mock.Mock
}

func (m *MockSpiritReceiptService) GetSpiritReceipt(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpiritReceiptEntry), args.Error(1)
}

func (m *MockSpiritReceiptService) ListSpiritReceipts(ctx context.Context, params dto.ListParams) (*dto.ListSpiritReceiptsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSpiritReceiptsResponse), args.Error(1)
}

func (m *MockSpiritReceiptService) CreateSpiritReceipt(ctx context.Context, req dto.CreateSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpiritReceiptEntry), args.Error(1)
}

func (m *MockSpiritReceiptService) AmendSpiritReceipt(ctx context.Context, entryID string, req dto.AmendSpiritReceiptRequest, actor domain.Actor) (*domain.SpiritReceiptEntry, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpiritReceiptEntry), args.Error(1)
}

type MockBottlingService struct {
	mock.Mock
}

func (m *MockBottlingService) GetBottling(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingService) ListBottling(ctx context.Context, params dto.ListParams) (*dto.ListBottlingResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBottlingResponse), args.Error(1)
}

func (m *MockBottlingService) CreateBottling(ctx context.Context, req dto.CreateBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingService) DeclareBottling(ctx context.Context, entryID string, req dto.DeclareBottlingRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingService) LinkMeterReading(ctx context.Context, entryID string, req dto.LinkMeterRequest, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingService) FinalizeBottling(ctx context.Context, entryID string, actor domain.Actor) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, entryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

type MockCountryLiquorService struct {
	mock.Mock
}

func (m *MockCountryLiquorService) GetCountryLiquorIssue(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountryLiquorIssueEntry), args.Error(1)
}

func (m *MockCountryLiquorService) ListCountryLiquorIssues(ctx context.Context, params dto.ListParams) (*dto.ListCountryLiquorIssuesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCountryLiquorIssuesResponse), args.Error(1)
}

func (m *MockCountryLiquorService) CreateCountryLiquorIssue(ctx context.Context, req dto.CreateCountryLiquorIssueRequest, actor domain.Actor) (*domain.CountryLiquorIssueEntry, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountryLiquorIssueEntry), args.Error(1)
}

type MockExciseDutyService struct {
	mock.Mock
}

func (m *MockExciseDutyService) CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest, actor domain.Actor) (*domain.DutyRate, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyRate), args.Error(1)
}

func (m *MockExciseDutyService) GetCurrentRate(ctx context.Context, category, subcategory string, date time.Time) (*domain.DutyRate, error) {
	args := m.Called(ctx, category, subcategory, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyRate), args.Error(1)
}

func (m *MockExciseDutyService) ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error) {
	args := m.Called(ctx, category, subcategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyRate), args.Error(1)
}

func (m *MockExciseDutyService) CreateDutyLedger(ctx context.Context, req dto.CreateDutyLedgerRequest, actor domain.Actor) (*domain.DutyLedgerEntry, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyLedgerEntry), args.Error(1)
}

func (m *MockExciseDutyService) RecordDutyPayment(ctx context.Context, entryID string, req dto.RecordDutyPaymentRequest, actor domain.Actor) (*dto.DutyLedgerResponse, error) {
	args := m.Called(ctx, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DutyLedgerResponse), args.Error(1)
}

func (m *MockExciseDutyService) GetDutyLedger(ctx context.Context, entryID string) (*dto.DutyLedgerResponse, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DutyLedgerResponse), args.Error(1)
}

func (m *MockExciseDutyService) ListDutyLedger(ctx context.Context, params dto.ListParams) (*dto.ListDutyLedgerResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDutyLedgerResponse), args.Error(1)
}

type MockMasterLedgerService struct {
	mock.Mock
}

func (m *MockMasterLedgerService) GetMasterLedger(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterLedgerEntry), args.Error(1)
}

func (m *MockMasterLedgerService) ListMasterLedger(ctx context.Context, params dto.ListParams) (*dto.ListMasterLedgerResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListMasterLedgerResponse), args.Error(1)
}

func (m *MockMasterLedgerService) AggregateMasterLedger(ctx context.Context, date time.Time, actor domain.Actor) (*domain.MasterLedgerEntry, error) {
	args := m.Called(ctx, date, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterLedgerEntry), args.Error(1)
}

func (m *MockMasterLedgerService) ReconcileMasterLedger(ctx context.Context, date time.Time, req dto.ReconcileMasterLedgerRequest, actor domain.Actor) (*domain.MasterLedgerEntry, error) {
	args := m.Called(ctx, date, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterLedgerEntry), args.Error(1)
}

type MockVatEventService struct {
	mock.Mock
}

func (m *MockVatEventService) ListVatEvents(ctx context.Context, params dto.ListParams) (*dto.ListVatEventsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVatEventsResponse), args.Error(1)
}

func (m *MockVatEventService) ListVatHistory(ctx context.Context, vatCode string) ([]domain.VatEvent, error) {
	args := m.Called(ctx, vatCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatEvent), args.Error(1)
}

func (m *MockVatEventService) RecordVatEvent(ctx context.Context, req dto.RecordVatEventRequest, actor domain.Actor) (*domain.VatEvent, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatEvent), args.Error(1)
}

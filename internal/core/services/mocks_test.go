package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Reg-76 ---

type MockSpiritReceiptRepository struct {
	mock.Mock
}

func (m *MockSpiritReceiptRepository) FindSpiritReceiptByID(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpiritReceiptEntry), args.Error(1)
}

func (m *MockSpiritReceiptRepository) ListSpiritReceiptsByDate(ctx context.Context, date time.Time) ([]domain.SpiritReceiptEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpiritReceiptEntry), args.Error(1)
}

func (m *MockSpiritReceiptRepository) ListSpiritReceipts(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.SpiritReceiptEntry], error) {
	args := m.Called(ctx, rng, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.SpiritReceiptEntry]), args.Error(1)
}

func (m *MockSpiritReceiptRepository) SaveSpiritReceipt(ctx context.Context, entry domain.SpiritReceiptEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSpiritReceiptRepository) UpdateSpiritReceipt(ctx context.Context, entry domain.SpiritReceiptEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Reg-A ---

type MockBottlingRepository struct {
	mock.Mock
}

func (m *MockBottlingRepository) FindBottlingByID(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingRepository) FindBottlingBySession(ctx context.Context, batchID string, sessionNo int) (*domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, batchID, sessionNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingRepository) ListCompletedBottlingByDate(ctx context.Context, date time.Time) ([]domain.BottlingProductionEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BottlingProductionEntry), args.Error(1)
}

func (m *MockBottlingRepository) ListBottling(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.BottlingProductionEntry], error) {
	args := m.Called(ctx, rng, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.BottlingProductionEntry]), args.Error(1)
}

func (m *MockBottlingRepository) SaveBottling(ctx context.Context, entry domain.BottlingProductionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBottlingRepository) UpdateBottling(ctx context.Context, entry domain.BottlingProductionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Reg-B ---

type MockCountryLiquorRepository struct {
	mock.Mock
}

func (m *MockCountryLiquorRepository) FindCountryLiquorIssueByID(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountryLiquorIssueEntry), args.Error(1)
}

func (m *MockCountryLiquorRepository) ListCountryLiquorIssues(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.CountryLiquorIssueEntry], error) {
	args := m.Called(ctx, rng, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.CountryLiquorIssueEntry]), args.Error(1)
}

func (m *MockCountryLiquorRepository) SaveCountryLiquorIssue(ctx context.Context, entry domain.CountryLiquorIssueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Duty ---

type MockDutyRateRepository struct {
	mock.Mock
}

func (m *MockDutyRateRepository) ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error) {
	args := m.Called(ctx, category, subcategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyRate), args.Error(1)
}

func (m *MockDutyRateRepository) SaveDutyRate(ctx context.Context, rate domain.DutyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

type MockDutyLedgerRepository struct {
	mock.Mock
	stored         *domain.DutyLedgerEntry
	storedPayments []domain.DutyPayment
}

func (m *MockDutyLedgerRepository) FindDutyLedgerByID(ctx context.Context, entryID string) (*domain.DutyLedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyLedgerEntry), args.Error(1)
}

func (m *MockDutyLedgerRepository) FindDutyLedgerByMonth(ctx context.Context, monthYear, category, subcategory string) (*domain.DutyLedgerEntry, error) {
	args := m.Called(ctx, monthYear, category, subcategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyLedgerEntry), args.Error(1)
}

func (m *MockDutyLedgerRepository) ListDutyLedgerEntries(ctx context.Context, limit int, nextToken *string) (portsrepo.Page[domain.DutyLedgerEntry], error) {
	args := m.Called(ctx, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.DutyLedgerEntry]), args.Error(1)
}

func (m *MockDutyLedgerRepository) ListDutyPayments(ctx context.Context, ledgerEntryID string) ([]domain.DutyPayment, error) {
	args := m.Called(ctx, ledgerEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyPayment), args.Error(1)
}

func (m *MockDutyLedgerRepository) SaveDutyLedgerEntry(ctx context.Context, entry domain.DutyLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// SaveDutyPayment runs apply against the stored entry and payments set with SetStoredLedger,
// standing in for the locked read the database does.
func (m *MockDutyLedgerRepository) SaveDutyPayment(ctx context.Context, payment domain.DutyPayment, apply portsrepo.DutyPaymentApplier) (*domain.DutyLedgerEntry, []domain.DutyPayment, error) {
	args := m.Called(ctx, payment)
	if err := args.Error(0); err != nil {
		return nil, nil, err
	}
	if m.stored == nil {
		return nil, nil, apperrors.NewNotFoundError("duty ledger " + payment.LedgerEntryID + " not found")
	}
	entry := *m.stored
	payments := append(append([]domain.DutyPayment{}, m.storedPayments...), payment)
	if err := apply(&entry, payments); err != nil {
		return nil, nil, err
	}
	m.stored, m.storedPayments = &entry, payments
	return &entry, payments, nil
}

func (m *MockDutyLedgerRepository) SetStoredLedger(entry domain.DutyLedgerEntry, payments ...domain.DutyPayment) {
	m.stored, m.storedPayments = &entry, payments
}

// --- Reg-78 ---

type MockMasterLedgerRepository struct {
	mock.Mock
}

func (m *MockMasterLedgerRepository) FindMasterLedgerByDate(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterLedgerEntry), args.Error(1)
}

func (m *MockMasterLedgerRepository) FindLatestMasterLedgerBefore(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterLedgerEntry), args.Error(1)
}

func (m *MockMasterLedgerRepository) ListMasterLedger(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.MasterLedgerEntry], error) {
	args := m.Called(ctx, rng, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.MasterLedgerEntry]), args.Error(1)
}

func (m *MockMasterLedgerRepository) UpsertMasterLedger(ctx context.Context, entry domain.MasterLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Reg-74 ---

type MockVatEventRepository struct {
	mock.Mock
}

func (m *MockVatEventRepository) ListVatEventsByVat(ctx context.Context, vatCode string) ([]domain.VatEvent, error) {
	args := m.Called(ctx, vatCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatEvent), args.Error(1)
}

func (m *MockVatEventRepository) ListVatEventsByDate(ctx context.Context, date time.Time) ([]domain.VatEvent, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatEvent), args.Error(1)
}

func (m *MockVatEventRepository) ListVatEventsByBatch(ctx context.Context, batchID string) ([]domain.VatEvent, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatEvent), args.Error(1)
}

func (m *MockVatEventRepository) ListVatEvents(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.VatEvent], error) {
	args := m.Called(ctx, rng, limit, nextToken)
	return args.Get(0).(portsrepo.Page[domain.VatEvent]), args.Error(1)
}

func (m *MockVatEventRepository) SaveVatEvent(ctx context.Context, event domain.VatEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

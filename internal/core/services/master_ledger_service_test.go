package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/core/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MasterLedgerServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockMasterLedgerRepository
	mockReceipts *MockSpiritReceiptRepository
	mockBottling *MockBottlingRepository
	mockVat      *MockVatEventRepository
	service      portssvc.MasterLedgerSvcFacade
}

func (suite *MasterLedgerServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockMasterLedgerRepository)
	suite.mockReceipts = new(MockSpiritReceiptRepository)
	suite.mockBottling = new(MockBottlingRepository)
	suite.mockVat = new(MockVatEventRepository)
	suite.service = suite.newService()
}

func (suite *MasterLedgerServiceTestSuite) newService(options ...services.MasterLedgerOption) portssvc.MasterLedgerSvcFacade {
	options = append(options, services.WithLedgerServiceOptions(services.WithClock(clock)))
	return services.NewMasterLedgerService(suite.mockLedger, suite.mockReceipts, suite.mockBottling, suite.mockVat, options...)
}

var ledgerDay = day(2025, 1, 15)

// expectSources wires one day of source data: a surplus tanker and an evaporation loss.
func (suite *MasterLedgerServiceTestSuite) expectSources(ctx context.Context) {
	suite.mockLedger.On("FindLatestMasterLedgerBefore", ctx, ledgerDay).
		Return(&domain.MasterLedgerEntry{EntryDate: day(2025, 1, 14), ClosingBl: dec("10000"), ClosingAl: dec("4000")}, nil).Once()
	suite.mockReceipts.On("ListSpiritReceiptsByDate", ctx, ledgerDay).Return([]domain.SpiritReceiptEntry{{
		ReceiptDate:      ledgerDay,
		ReceivedBl:       dec("5434.78"),
		ReceivedAl:       dec("2309.78"),
		TransitWastageBl: dec("-434.78"),
		TransitWastageAl: dec("0"),
	}}, nil).Once()
	suite.mockBottling.On("ListCompletedBottlingByDate", ctx, ledgerDay).Return([]domain.BottlingProductionEntry{}, nil).Once()
	suite.mockVat.On("ListVatEventsByDate", ctx, ledgerDay).Return([]domain.VatEvent{{
		EventDate:      ledgerDay,
		EventType:      domain.VatAdjustment,
		AdjustmentType: domain.AdjustmentWastage,
		Reason:         domain.ReasonEvaporation,
		QuantityBl:     dec("10"),
		QuantityAl:     dec("4.28"),
	}}, nil).Once()
}

func (suite *MasterLedgerServiceTestSuite) TestAggregate_NewDay() {
	ctx := context.Background()
	suite.expectSources(ctx)
	suite.mockLedger.On("FindMasterLedgerByDate", ctx, ledgerDay).Return(nil, apperrors.NewNotFoundError("master ledger")).Once()
	suite.mockLedger.On("UpsertMasterLedger", ctx, mock.AnythingOfType("domain.MasterLedgerEntry")).Return(nil).Once()

	entry, err := suite.service.AggregateMasterLedger(ctx, ledgerDay.Add(13*time.Hour), operatorActor)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	assertDec(suite.T(), "10000", entry.OpeningBl)
	assertDec(suite.T(), "15424.78", entry.ClosingBl)
	assertDec(suite.T(), "6305.5", entry.ClosingAl)
	assertDec(suite.T(), "0", entry.WastageBreakdown.TransitBl, "a BL surplus is not wastage")
	assertDec(suite.T(), "4.28", entry.WastageBreakdown.VatByReason[domain.ReasonEvaporation])
	suite.Equal(fixedNow, entry.CreatedAt)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *MasterLedgerServiceTestSuite) TestAggregate_ReRunClearsReconciliation() {
	ctx := context.Background()
	suite.expectSources(ctx)
	physicalBl, physicalAl := dec("15420"), dec("6300")
	stored := &domain.MasterLedgerEntry{
		EntryID:           "m-1",
		EntryDate:         ledgerDay,
		PhysicalClosingBl: &physicalBl,
		PhysicalClosingAl: &physicalAl,
		IsReconciled:      true,
		ReconciledBy:      "u-excise",
		AuditFields:       domain.AuditFields{CreatedBy: "u-first"},
	}
	suite.mockLedger.On("FindMasterLedgerByDate", ctx, ledgerDay).Return(stored, nil).Once()
	suite.mockLedger.On("UpsertMasterLedger", ctx, mock.MatchedBy(func(e domain.MasterLedgerEntry) bool {
		return e.EntryID == "m-1" && !e.IsReconciled
	})).Return(nil).Once()

	entry, err := suite.service.AggregateMasterLedger(ctx, ledgerDay, operatorActor)

	suite.Require().NoError(err)
	suite.Equal("m-1", entry.EntryID)
	suite.False(entry.IsReconciled)
	suite.Require().NotNil(entry.PhysicalClosingAl)
	assertDec(suite.T(), "6300", *entry.PhysicalClosingAl)
	assertDec(suite.T(), "-0.09", entry.Variance)
	suite.Equal("u-first", entry.CreatedBy)
	suite.Equal(operatorActor.UserID, entry.LastUpdatedBy)
}

func (suite *MasterLedgerServiceTestSuite) TestAggregate_SourceFailure() {
	ctx := context.Background()
	suite.mockLedger.On("FindLatestMasterLedgerBefore", ctx, ledgerDay).Return(nil, apperrors.NewNotFoundError("master ledger")).Once()
	suite.mockReceipts.On("ListSpiritReceiptsByDate", ctx, ledgerDay).Return(nil, assert.AnError).Once()

	_, err := suite.service.AggregateMasterLedger(ctx, ledgerDay, operatorActor)

	suite.ErrorIs(err, assert.AnError)
	suite.mockLedger.AssertNotCalled(suite.T(), "UpsertMasterLedger", mock.Anything, mock.Anything)
}

func aggregatedDay() *domain.MasterLedgerEntry {
	return &domain.MasterLedgerEntry{
		EntryID:   "m-1",
		EntryDate: ledgerDay,
		ClosingBl: dec("15424.78"),
		ClosingAl: dec("6305.5"),
	}
}

func (suite *MasterLedgerServiceTestSuite) TestReconcile_WithinThreshold() {
	ctx := context.Background()
	suite.mockLedger.On("FindMasterLedgerByDate", ctx, ledgerDay).Return(aggregatedDay(), nil).Once()
	suite.mockLedger.On("UpsertMasterLedger", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.ReconcileMasterLedger(ctx, ledgerDay, dto.ReconcileMasterLedgerRequest{
		PhysicalClosingBl: decPtr("15420"),
		PhysicalClosingAl: decPtr("6300"),
	}, exciseActor)

	suite.Require().NoError(err)
	suite.True(entry.IsReconciled)
	assertDec(suite.T(), "-0.09", entry.Variance)
	suite.Equal(exciseActor.UserID, entry.ReconciledBy)
	suite.Require().NotNil(entry.ReconciledAt)
	suite.Equal(fixedNow, *entry.ReconciledAt)
}

func (suite *MasterLedgerServiceTestSuite) TestReconcile_ConfiguredThreshold() {
	ctx := context.Background()
	svc := suite.newService(services.WithReconciliationThreshold(dec("0.05")))
	suite.mockLedger.On("FindMasterLedgerByDate", ctx, ledgerDay).Return(aggregatedDay(), nil).Once()
	suite.mockLedger.On("UpsertMasterLedger", ctx, mock.Anything).Return(nil).Once()

	entry, err := svc.ReconcileMasterLedger(ctx, ledgerDay, dto.ReconcileMasterLedgerRequest{
		PhysicalClosingBl: decPtr("15420"),
		PhysicalClosingAl: decPtr("6300"),
	}, adminActor)

	suite.Require().NoError(err)
	suite.False(entry.IsReconciled)
}

func (suite *MasterLedgerServiceTestSuite) TestReconcile_BeforeAggregation() {
	ctx := context.Background()
	suite.mockLedger.On("FindMasterLedgerByDate", ctx, ledgerDay).Return(nil, apperrors.NewNotFoundError("master ledger")).Once()

	_, err := suite.service.ReconcileMasterLedger(ctx, ledgerDay, dto.ReconcileMasterLedgerRequest{
		PhysicalClosingBl: decPtr("1"),
		PhysicalClosingAl: decPtr("1"),
	}, adminActor)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *MasterLedgerServiceTestSuite) TestReconcile_OperatorForbidden() {
	_, err := suite.service.ReconcileMasterLedger(context.Background(), ledgerDay, dto.ReconcileMasterLedgerRequest{}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestMasterLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MasterLedgerServiceTestSuite))
}

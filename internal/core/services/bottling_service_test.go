package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/core/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BottlingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBottlingRepository
	mockVat  *MockVatEventRepository
	service  portssvc.BottlingSvcFacade
}

func (suite *BottlingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBottlingRepository)
	suite.mockVat = new(MockVatEventRepository)
	suite.service = services.NewBottlingService(suite.mockRepo, suite.mockVat, services.WithClock(clock))
}

func plannedEntry() *domain.BottlingProductionEntry {
	return &domain.BottlingProductionEntry{
		EntryID:        "a-1",
		BatchID:        "B-100",
		SessionNo:      1,
		ProductionDate: day(2025, 1, 15),
		Status:         domain.ProductionPlanned,
		BottleCounts:   domain.BottleCounts{},
	}
}

func (suite *BottlingServiceTestSuite) activeEntry(mfm string) *domain.BottlingProductionEntry {
	e := plannedEntry()
	suite.mockRepo.On("FindBottlingByID", mock.Anything, "a-1").Return(e, nil).Once()
	suite.mockRepo.On("UpdateBottling", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := suite.service.DeclareBottling(context.Background(), "a-1", dto.DeclareBottlingRequest{
		BottleCounts: domain.BottleCounts{domain.Size750: 1000, domain.Size375: 400},
		AvgStrength:  decPtr("42.8"),
	}, operatorActor)
	suite.Require().NoError(err)
	if mfm != "" {
		m := dec(mfm)
		e.MfmTotalAl = &m
	}
	return e
}

func (suite *BottlingServiceTestSuite) TestCreateBottling_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBottling", ctx, mock.MatchedBy(func(e domain.BottlingProductionEntry) bool {
		return e.BatchID == "B-100" && e.SessionNo == 2 && e.Status == domain.ProductionPlanned
	})).Return(nil).Once()

	entry, err := suite.service.CreateBottling(ctx, dto.CreateBottlingRequest{
		BatchID:        " B-100 ",
		SessionNo:      2,
		ProductionDate: datePtr(2025, 1, 15),
		ProductName:    "Royal Blend",
	}, operatorActor)

	suite.Require().NoError(err)
	suite.Equal(domain.ProductionPlanned, entry.Status)
	suite.Equal(day(2025, 1, 15), entry.ProductionDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BottlingServiceTestSuite) TestCreateBottling_DuplicateSession() {
	ctx := context.Background()
	dup := fmt.Errorf("%w: batch B-100 session 1", apperrors.ErrDuplicate)
	suite.mockRepo.On("SaveBottling", ctx, mock.Anything).Return(dup).Once()

	_, err := suite.service.CreateBottling(ctx, dto.CreateBottlingRequest{
		BatchID: "B-100", SessionNo: 1, ProductionDate: datePtr(2025, 1, 15), ProductName: "Royal Blend",
	}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *BottlingServiceTestSuite) TestCreateBottling_Validation() {
	_, err := suite.service.CreateBottling(context.Background(), dto.CreateBottlingRequest{SessionNo: 0}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBottling", mock.Anything, mock.Anything)
}

func (suite *BottlingServiceTestSuite) TestDeclareBottling_ComputesVolumes() {
	e := suite.activeEntry("")

	suite.Equal(domain.ProductionActive, e.Status)
	assertDec(suite.T(), "900", e.SpiritBottledBl)
	assertDec(suite.T(), "385.2", e.SpiritBottledAl)
	suite.Equal(operatorActor.UserID, e.LastUpdatedBy)
}

func (suite *BottlingServiceTestSuite) TestLinkMeterReading_SumsReg74Issues() {
	ctx := context.Background()
	e := suite.activeEntry("")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil).Once()
	suite.mockVat.On("ListVatEventsByBatch", ctx, "B-100").Return([]domain.VatEvent{
		{EventType: domain.VatIssue, BatchID: "B-100", MfmAl: dec("200.125")},
		{EventType: domain.VatIssue, BatchID: "B-100", MfmAl: dec("186.5")},
		{EventType: domain.VatTransfer, BatchID: "B-100", MfmAl: dec("999")},
	}, nil).Once()
	suite.mockRepo.On("UpdateBottling", ctx, mock.Anything).Return(nil).Once()

	linked, err := suite.service.LinkMeterReading(ctx, "a-1", dto.LinkMeterRequest{}, operatorActor)

	suite.Require().NoError(err)
	suite.Require().NotNil(linked.MfmTotalAl)
	assertDec(suite.T(), "386.63", *linked.MfmTotalAl)
}

func (suite *BottlingServiceTestSuite) TestLinkMeterReading_ManualValue() {
	ctx := context.Background()
	e := suite.activeEntry("")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil).Once()
	suite.mockRepo.On("UpdateBottling", ctx, mock.Anything).Return(nil).Once()

	linked, err := suite.service.LinkMeterReading(ctx, "a-1", dto.LinkMeterRequest{MfmTotalAl: decPtr("386.2")}, operatorActor)

	suite.Require().NoError(err)
	assertDec(suite.T(), "386.2", *linked.MfmTotalAl)
	suite.mockVat.AssertNotCalled(suite.T(), "ListVatEventsByBatch", mock.Anything, mock.Anything)
}

func (suite *BottlingServiceTestSuite) TestLinkMeterReading_NoIssuesRecorded() {
	ctx := context.Background()
	e := suite.activeEntry("")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil).Once()
	suite.mockVat.On("ListVatEventsByBatch", ctx, "B-100").Return([]domain.VatEvent{}, nil).Once()

	_, err := suite.service.LinkMeterReading(ctx, "a-1", dto.LinkMeterRequest{}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *BottlingServiceTestSuite) TestFinalizeBottling_ChargeableWastage() {
	ctx := context.Background()
	e := suite.activeEntry("389.2")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil).Once()
	suite.mockRepo.On("UpdateBottling", ctx, mock.MatchedBy(func(u domain.BottlingProductionEntry) bool {
		return u.Status == domain.ProductionCompleted
	})).Return(nil).Once()

	done, err := suite.service.FinalizeBottling(ctx, "a-1", exciseActor)

	suite.Require().NoError(err)
	suite.Equal(domain.ProductionCompleted, done.Status)
	assertDec(suite.T(), "4", done.ProductionWastage)
	suite.True(done.IsChargeable)
	suite.Equal(exciseActor.UserID, done.VerifiedBy)
	suite.Require().NotNil(done.CompletedAt)
	suite.Equal(fixedNow, *done.CompletedAt)
}

func (suite *BottlingServiceTestSuite) TestFinalizeBottling_OperatorForbidden() {
	_, err := suite.service.FinalizeBottling(context.Background(), "a-1", operatorActor)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBottlingByID", mock.Anything, mock.Anything)
}

func (suite *BottlingServiceTestSuite) TestFinalizeBottling_WithoutMeter() {
	ctx := context.Background()
	e := suite.activeEntry("")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil).Once()

	_, err := suite.service.FinalizeBottling(ctx, "a-1", adminActor)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.Contains(err.Error(), "cannot finalize without linked meter data")
}

func (suite *BottlingServiceTestSuite) TestCompletedSessionIsImmutable() {
	ctx := context.Background()
	e := suite.activeEntry("385.2")
	suite.mockRepo.On("FindBottlingByID", ctx, "a-1").Return(e, nil)
	suite.mockRepo.On("UpdateBottling", ctx, mock.Anything).Return(nil).Once()
	_, err := suite.service.FinalizeBottling(ctx, "a-1", adminActor)
	suite.Require().NoError(err)

	_, err = suite.service.DeclareBottling(ctx, "a-1", dto.DeclareBottlingRequest{
		BottleCounts: domain.BottleCounts{domain.Size180: 10},
		AvgStrength:  decPtr("28.5"),
	}, adminActor)
	suite.ErrorIs(err, apperrors.ErrStateTransition)

	_, err = suite.service.LinkMeterReading(ctx, "a-1", dto.LinkMeterRequest{MfmTotalAl: decPtr("1")}, adminActor)
	suite.ErrorIs(err, apperrors.ErrStateTransition)

	_, err = suite.service.FinalizeBottling(ctx, "a-1", adminActor)
	suite.ErrorIs(err, apperrors.ErrStateTransition)
}

func TestBottlingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BottlingServiceTestSuite))
}

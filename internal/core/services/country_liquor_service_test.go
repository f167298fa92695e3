package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/core/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CountryLiquorServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCountryLiquorRepository
	mockBottling *MockBottlingRepository
	service      portssvc.CountryLiquorSvcFacade
}

func (suite *CountryLiquorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCountryLiquorRepository)
	suite.mockBottling = new(MockBottlingRepository)
	suite.service = services.NewCountryLiquorService(suite.mockRepo, suite.mockBottling, services.WithClock(clock))
}

func sampleRegBRequest() dto.CreateCountryLiquorIssueRequest {
	return dto.CreateCountryLiquorIssueRequest{
		EntryDate: datePtr(2025, 1, 15),
		Opening:   dto.RegBSectionCounts{"count50_750": 100},
		Receipt:   dto.RegBSectionCounts{"count60_180": 1000},
		Issue:     dto.RegBSectionCounts{"count50_750": 40},
		Wastage:   dto.RegBSectionCounts{"count60_180": 10},
	}
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_Balanced() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCountryLiquorIssue", ctx, mock.AnythingOfType("domain.CountryLiquorIssueEntry")).Return(nil).Once()

	entry, err := suite.service.CreateCountryLiquorIssue(ctx, sampleRegBRequest(), operatorActor)

	suite.Require().NoError(err)
	assertDec(suite.T(), "223.2", entry.Totals.Closing.Bl)
	assertDec(suite.T(), "53.46", entry.Totals.Closing.Al)
	assertDec(suite.T(), "120", entry.ProductionFees)
	suite.Equal(day(2025, 1, 15), entry.EntryDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_DeclaredClosingOutOfBalance() {
	req := sampleRegBRequest()
	req.DeclaredClosingBl = decPtr("223.25")

	_, err := suite.service.CreateCountryLiquorIssue(context.Background(), req, operatorActor)

	suite.ErrorIs(err, apperrors.ErrBalanceViolation)
	var balErr *apperrors.BalanceError
	suite.Require().ErrorAs(err, &balErr)
	suite.Equal("0.05", balErr.Difference)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCountryLiquorIssue", mock.Anything, mock.Anything)
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_UnknownColumn() {
	req := sampleRegBRequest()
	req.Issue = dto.RegBSectionCounts{"count55_750": 1}

	_, err := suite.service.CreateCountryLiquorIssue(context.Background(), req, operatorActor)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "issue.count55_750")
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_AutoFillFromCompletedRegA() {
	ctx := context.Background()
	src := &domain.BottlingProductionEntry{
		EntryID:      "a-9",
		Status:       domain.ProductionCompleted,
		AvgStrength:  dec("28.5"),
		BottleCounts: domain.BottleCounts{domain.Size180: 1000},
	}
	suite.mockBottling.On("FindBottlingByID", ctx, "a-9").Return(src, nil).Once()
	suite.mockRepo.On("SaveCountryLiquorIssue", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateCountryLiquorIssue(ctx, dto.CreateCountryLiquorIssueRequest{
		EntryDate:         datePtr(2025, 1, 15),
		SourceRegAEntryID: strPtr("a-9"),
	}, operatorActor)

	suite.Require().NoError(err)
	suite.Equal(int64(1000), entry.Receipt.Count(domain.Band50UP, domain.Size180))
	suite.Equal("a-9", entry.SourceRegAEntryID)
	assertDec(suite.T(), "180", entry.Totals.Closing.Bl)
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_AutoFillAddsToEnteredReceipt() {
	ctx := context.Background()
	src := &domain.BottlingProductionEntry{
		EntryID:      "a-9",
		Status:       domain.ProductionCompleted,
		AvgStrength:  dec("28.5"),
		BottleCounts: domain.BottleCounts{domain.Size180: 1000},
	}
	suite.mockBottling.On("FindBottlingByID", ctx, "a-9").Return(src, nil).Once()
	suite.mockRepo.On("SaveCountryLiquorIssue", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateCountryLiquorIssue(ctx, dto.CreateCountryLiquorIssueRequest{
		EntryDate:         datePtr(2025, 1, 15),
		Receipt:           dto.RegBSectionCounts{"count50_180": 200},
		SourceRegAEntryID: strPtr("a-9"),
	}, operatorActor)

	suite.Require().NoError(err)
	suite.Equal(int64(1200), entry.Receipt.Count(domain.Band50UP, domain.Size180))
	assertDec(suite.T(), "216", entry.Totals.Closing.Bl)
}

func (suite *CountryLiquorServiceTestSuite) TestCreate_AutoFillRequiresCompletedSession() {
	ctx := context.Background()
	src := &domain.BottlingProductionEntry{EntryID: "a-9", Status: domain.ProductionActive}
	suite.mockBottling.On("FindBottlingByID", ctx, "a-9").Return(src, nil).Once()

	_, err := suite.service.CreateCountryLiquorIssue(ctx, dto.CreateCountryLiquorIssueRequest{
		EntryDate:         datePtr(2025, 1, 15),
		SourceRegAEntryID: strPtr("a-9"),
	}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func TestCountryLiquorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CountryLiquorServiceTestSuite))
}

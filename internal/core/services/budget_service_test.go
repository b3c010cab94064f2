package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgets *MockBudgetRepository
	mockStreams *MockStreamRepository
	service     portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgets = new(MockBudgetRepository)
	suite.mockStreams = new(MockStreamRepository)
	suite.service = services.NewBudgetService(suite.mockBudgets, suite.mockStreams)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_Success() {
	ctx := context.Background()
	req := dto.UpsertBudgetRequest{
		StreamID:      "str-1",
		Year:          2025,
		AnnualAmount:  decimal.NewFromInt(999_999),
		MonthlyTarget: decimal.NewFromInt(100_000),
	}

	suite.mockStreams.On("FindStreamByID", ctx, "str-1").Return(&domain.RevenueStream{StreamID: "str-1", Name: "Market Fees", IsActive: true}, nil).Once()
	suite.mockBudgets.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.BudgetTarget) bool {
		// The annual figure is stored as entered, never derived from the monthly one.
		return b.StreamID == "str-1" && b.Year == 2025 &&
			b.AnnualAmount.Equal(decimal.NewFromInt(999_999)) &&
			b.MonthlyTarget.Equal(decimal.NewFromInt(100_000)) &&
			b.CreatedBy == "admin-1"
	})).Return(&domain.BudgetTarget{
		BudgetID: "bud-1", StreamID: "str-1", Year: 2025,
		AnnualAmount: decimal.NewFromInt(999_999), MonthlyTarget: decimal.NewFromInt(100_000),
	}, nil).Once()

	saved, err := suite.service.UpsertBudget(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("bud-1", saved.BudgetID)
	suite.mockBudgets.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_NegativeRejected() {
	ctx := context.Background()
	req := dto.UpsertBudgetRequest{
		StreamID:      "str-1",
		Year:          2025,
		AnnualAmount:  decimal.NewFromInt(-1),
		MonthlyTarget: decimal.NewFromInt(100),
	}

	saved, err := suite.service.UpsertBudget(ctx, req, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
	suite.mockBudgets.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_UnknownStream() {
	ctx := context.Background()
	req := dto.UpsertBudgetRequest{
		StreamID:      "str-missing",
		Year:          2025,
		AnnualAmount:  decimal.NewFromInt(100),
		MonthlyTarget: decimal.NewFromInt(10),
	}

	suite.mockStreams.On("FindStreamByID", ctx, "str-missing").Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.UpsertBudget(ctx, req, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(saved)
}

func (suite *BudgetServiceTestSuite) TestListBudgetsForYear_EmptyNotNil() {
	ctx := context.Background()

	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return(nil, nil).Once()

	budgets, err := suite.service.ListBudgetsForYear(ctx, 2025)

	suite.Require().NoError(err)
	suite.NotNil(budgets)
	suite.Empty(budgets)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLocations   *MockLocationRepository
	mockStreams     *MockStreamRepository
	mockBudgets     *MockBudgetRepository
	mockCollections *MockCollectionRepository
	mockAssignments *MockAssignmentRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLocations = new(MockLocationRepository)
	suite.mockStreams = new(MockStreamRepository)
	suite.mockBudgets = new(MockBudgetRepository)
	suite.mockCollections = new(MockCollectionRepository)
	suite.mockAssignments = new(MockAssignmentRepository)
	suite.service = services.NewReportingService(
		suite.mockLocations,
		suite.mockStreams,
		suite.mockBudgets,
		suite.mockCollections,
		suite.mockAssignments,
	)
}

func (suite *ReportingServiceTestSuite) adminScope() portssvc.ReportScope {
	return portssvc.ReportScope{UserID: "admin-1", Role: domain.RoleAdmin}
}

func (suite *ReportingServiceTestSuite) referenceData() ([]domain.Location, []domain.RevenueStream, []domain.RevenueCode) {
	locations := []domain.Location{
		{LocationID: "loc-1", Name: "Lere", Kind: domain.LocationLGA, IsActive: true},
		{LocationID: "loc-2", Name: "Funtua", Kind: domain.LocationLGA, IsActive: true},
	}
	streams := []domain.RevenueStream{
		{StreamID: "str-1", Name: "Market Fees", IsActive: true},
		{StreamID: "str-2", Name: "Shop Permits", IsActive: true},
	}
	codes := []domain.RevenueCode{
		{CodeID: "code-1", StreamID: "str-1", Code: "MF-01", Name: "Daily toll", IsActive: true},
		{CodeID: "code-2", StreamID: "str-2", Code: "SP-01", Name: "Kiosk permit", IsActive: true},
	}
	return locations, streams, codes
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_Success() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{
		{StreamID: "str-1", Year: 2025, AnnualAmount: decimal.NewFromInt(1_200_000), MonthlyTarget: decimal.NewFromInt(100_000)},
	}, nil).Once()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return([]domain.CollectionEvent{
		{OfficerID: "off-1", LocationID: "loc-1", CodeID: "code-1", Period: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(75_000)},
	}, nil).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(2025, report.Year)
	suite.Empty(report.Warning)
	suite.Len(report.Rows, 4)
	suite.Equal(uint64(1), report.Sequence)

	var lereMarket *domain.MatrixRow
	for i := range report.Rows {
		if report.Rows[i].LocationID == "loc-1" && report.Rows[i].StreamID == "str-1" {
			lereMarket = &report.Rows[i]
		}
	}
	suite.Require().NotNil(lereMarket)
	suite.True(lereMarket.Collected[2].Equal(decimal.NewFromInt(75_000)))
	suite.True(lereMarket.Budget[0].Equal(decimal.NewFromInt(100_000)))
	suite.True(lereMarket.BudgetTotal.Equal(decimal.NewFromInt(1_200_000)))

	suite.mockLocations.AssertExpectations(suite.T())
	suite.mockCollections.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_SequenceIncreases() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Twice()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Twice()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Twice()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{}, nil).Twice()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return([]domain.CollectionEvent{}, nil).Twice()

	first, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())
	suite.Require().NoError(err)
	second, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())
	suite.Require().NoError(err)

	suite.Greater(second.Sequence, first.Sequence)
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_BudgetFetchFailureDegrades() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return(nil, errors.New("db down")).Once()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return([]domain.CollectionEvent{}, nil).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())

	suite.Require().NoError(err)
	suite.NotEmpty(report.Warning)
	suite.Len(report.Rows, 4)
	for _, row := range report.Rows {
		suite.True(row.BudgetTotal.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_CollectionFetchFailureDegrades() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{}, nil).Once()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return(nil, errors.New("db down")).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())

	suite.Require().NoError(err)
	suite.NotEmpty(report.Warning)
	for _, row := range report.Rows {
		suite.True(row.CollectedTotal.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_ReferenceFetchFailureAborts() {
	ctx := context.Background()

	suite.mockLocations.On("ListLocations", ctx, true).Return(nil, errors.New("db down")).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())

	suite.Require().Error(err)
	suite.Nil(report)
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_OfficerScopedToAssignments() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()
	streamID := "str-1"

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockAssignments.On("ListAssignmentsByOfficer", ctx, "off-1", true).Return([]domain.OfficerAssignment{
		{AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", StreamID: &streamID, IsActive: true},
	}, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{}, nil).Once()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return([]domain.CollectionEvent{}, nil).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, portssvc.ReportScope{UserID: "off-1", Role: domain.RoleOfficer})

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("loc-1", report.Rows[0].LocationID)
	suite.Equal("str-1", report.Rows[0].StreamID)
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_OfficerPostingsDoNotCross() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()
	str1, str2 := "str-1", "str-2"

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockAssignments.On("ListAssignmentsByOfficer", ctx, "off-1", true).Return([]domain.OfficerAssignment{
		{AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", StreamID: &str1, IsActive: true},
		{AssignmentID: "asg-2", OfficerID: "off-1", LocationID: "loc-2", StreamID: &str2, IsActive: true},
	}, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{}, nil).Once()
	// Another officer's figure on a pair off-1 was never posted for.
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return([]domain.CollectionEvent{
		{OfficerID: "off-2", LocationID: "loc-1", CodeID: "code-2", Period: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(500_000)},
	}, nil).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, portssvc.ReportScope{UserID: "off-1", Role: domain.RoleOfficer})

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	pairs := make(map[string]bool, len(report.Rows))
	for _, row := range report.Rows {
		pairs[row.LocationID+"/"+row.StreamID] = true
	}
	suite.True(pairs["loc-1/str-1"])
	suite.True(pairs["loc-2/str-2"])
	suite.False(pairs["loc-1/str-2"])
	suite.False(pairs["loc-2/str-1"])
}

func (suite *ReportingServiceTestSuite) TestAnnualMatrix_BothFetchFailuresJoinWarnings() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return(nil, errors.New("db down")).Once()
	suite.mockCollections.On("ListCollectionsForYear", ctx, 2025).Return(nil, errors.New("db down")).Once()

	report, err := suite.service.AnnualMatrix(ctx, 2025, suite.adminScope())

	suite.Require().NoError(err)
	suite.Contains(report.Warning, "budget targets")
	suite.Contains(report.Warning, "collection figures")
	for _, row := range report.Rows {
		suite.True(row.BudgetTotal.IsZero())
		suite.True(row.CollectedTotal.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestMonthlyLocationReport_OfficerUnassignedLocationForbidden() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()

	suite.mockLocations.On("FindLocationByID", ctx, "loc-2").Return(&locations[1], nil).Once()
	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockAssignments.On("ListAssignmentsByOfficer", ctx, "off-1", true).Return([]domain.OfficerAssignment{
		{AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", IsActive: true},
	}, nil).Once()

	period := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	report, err := suite.service.MonthlyLocationReport(ctx, "loc-2", period, portssvc.ReportScope{UserID: "off-1", Role: domain.RoleOfficer})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(report)
	suite.mockCollections.AssertNotCalled(suite.T(), "ListCollectionsForLocationMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestMonthlyLocationReport_Success() {
	ctx := context.Background()
	locations, streams, codes := suite.referenceData()
	period := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(&locations[0], nil).Once()
	suite.mockLocations.On("ListLocations", ctx, true).Return(locations, nil).Once()
	suite.mockStreams.On("ListStreams", ctx, true).Return(streams, nil).Once()
	suite.mockStreams.On("ListCodes", ctx, true).Return(codes, nil).Once()
	suite.mockBudgets.On("ListBudgetsForYear", ctx, 2025).Return([]domain.BudgetTarget{
		{StreamID: "str-1", Year: 2025, AnnualAmount: decimal.NewFromInt(1_200_000), MonthlyTarget: decimal.NewFromInt(100_000)},
	}, nil).Once()
	suite.mockCollections.On("ListCollectionsForLocationMonth", ctx, "loc-1", period).Return([]domain.CollectionEvent{
		{OfficerID: "off-1", LocationID: "loc-1", CodeID: "code-1", Period: period, Amount: decimal.NewFromInt(40_000)},
	}, nil).Once()
	suite.mockAssignments.On("ListAssignmentsByLocation", ctx, "loc-1").Return([]domain.OfficerAssignment{
		{AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", IsActive: true},
		{AssignmentID: "asg-2", OfficerID: "off-1", LocationID: "loc-1", IsActive: true},
		{AssignmentID: "asg-3", OfficerID: "off-2", LocationID: "loc-1", IsActive: false},
	}, nil).Once()

	report, err := suite.service.MonthlyLocationReport(ctx, "loc-1", period, suite.adminScope())

	suite.Require().NoError(err)
	suite.Equal("loc-1", report.Location.LocationID)
	suite.Len(report.Rows, 2)
	suite.True(report.Total.Equal(decimal.NewFromInt(40_000)))
	suite.Equal(1, report.Officers)

	var codeRow *domain.CodeRollupRow
	for i := range report.Codes {
		if report.Codes[i].Code == "MF-01" {
			codeRow = &report.Codes[i]
		}
	}
	suite.Require().NotNil(codeRow)
	suite.True(codeRow.Collected.Equal(decimal.NewFromInt(40_000)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

type CollectionServiceTestSuite struct {
	suite.Suite
	mockCollections *MockCollectionRepository
	mockAssignments *MockAssignmentRepository
	mockStreams     *MockStreamRepository
	mockLocations   *MockLocationRepository
	service         portssvc.CollectionSvcFacade
}

func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.mockCollections = new(MockCollectionRepository)
	suite.mockAssignments = new(MockAssignmentRepository)
	suite.mockStreams = new(MockStreamRepository)
	suite.mockLocations = new(MockLocationRepository)
	suite.service = services.NewCollectionService(
		suite.mockCollections,
		suite.mockAssignments,
		suite.mockStreams,
		suite.mockLocations,
	)
}

func (suite *CollectionServiceTestSuite) activeLocation() *domain.Location {
	return &domain.Location{LocationID: "loc-1", Name: "Lere", Kind: domain.LocationLGA, IsActive: true}
}

func (suite *CollectionServiceTestSuite) activeCode() *domain.RevenueCode {
	return &domain.RevenueCode{CodeID: "code-1", StreamID: "str-1", Code: "MF-01", Name: "Daily toll", IsActive: true}
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_Success() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(75_000)}},
	}

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(suite.activeLocation(), nil).Once()
	suite.mockStreams.On("FindCodeByID", ctx, "code-1").Return(suite.activeCode(), nil).Once()
	suite.mockAssignments.On("FindActiveAssignment", ctx, "off-1", "loc-1", "str-1").Return(&domain.OfficerAssignment{
		AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", IsActive: true,
	}, nil).Once()
	suite.mockCollections.On("UpsertCollections", ctx, mock.MatchedBy(func(evs []domain.CollectionEvent) bool {
		return len(evs) == 1 &&
			evs[0].OfficerID == "off-1" &&
			evs[0].LocationID == "loc-1" &&
			evs[0].CodeID == "code-1" &&
			evs[0].Period.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			evs[0].Amount.Equal(decimal.NewFromInt(75_000))
	})).Return([]domain.CollectionEvent{
		{CollectionID: "col-1", OfficerID: "off-1", LocationID: "loc-1", CodeID: "code-1",
			Period: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(75_000)},
	}, nil).Once()

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 1)
	suite.Equal("col-1", saved[0].CollectionID)
	suite.mockCollections.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_NotPostedForbidden() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(10)}},
	}

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(suite.activeLocation(), nil).Once()
	suite.mockStreams.On("FindCodeByID", ctx, "code-1").Return(suite.activeCode(), nil).Once()
	suite.mockAssignments.On("FindActiveAssignment", ctx, "off-1", "loc-1", "str-1").Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(saved)
	suite.mockCollections.AssertNotCalled(suite.T(), "UpsertCollections", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_WholeMonthSubmittedAsOneBatch() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries: []dto.CollectionEntry{
			{CodeID: "code-1", Amount: decimal.NewFromInt(75_000)},
			{CodeID: "code-2", Amount: decimal.NewFromInt(12_500)},
		},
	}
	otherCode := &domain.RevenueCode{CodeID: "code-2", StreamID: "str-1", Code: "MF-02", Name: "Stall rent", IsActive: true}

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(suite.activeLocation(), nil).Once()
	suite.mockStreams.On("FindCodeByID", ctx, "code-1").Return(suite.activeCode(), nil).Once()
	suite.mockStreams.On("FindCodeByID", ctx, "code-2").Return(otherCode, nil).Once()
	suite.mockAssignments.On("FindActiveAssignment", ctx, "off-1", "loc-1", "str-1").Return(&domain.OfficerAssignment{
		AssignmentID: "asg-1", OfficerID: "off-1", LocationID: "loc-1", IsActive: true,
	}, nil).Twice()
	suite.mockCollections.On("UpsertCollections", ctx, mock.MatchedBy(func(evs []domain.CollectionEvent) bool {
		return len(evs) == 2 && evs[0].CodeID == "code-1" && evs[1].CodeID == "code-2"
	})).Return([]domain.CollectionEvent{
		{CollectionID: "col-1", CodeID: "code-1"},
		{CollectionID: "col-2", CodeID: "code-2"},
	}, nil).Once()

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().NoError(err)
	suite.Len(saved, 2)
	suite.mockCollections.AssertNumberOfCalls(suite.T(), "UpsertCollections", 1)
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(-5)}},
	}

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(suite.activeLocation(), nil).Once()

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_BadPeriodRejected() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "03-2025",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(10)}},
	}

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
	suite.mockLocations.AssertNotCalled(suite.T(), "FindLocationByID", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestRecordCollections_InactiveCodeRejected() {
	ctx := context.Background()
	req := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(10)}},
	}
	inactive := suite.activeCode()
	inactive.IsActive = false

	suite.mockLocations.On("FindLocationByID", ctx, "loc-1").Return(suite.activeLocation(), nil).Once()
	suite.mockStreams.On("FindCodeByID", ctx, "code-1").Return(inactive, nil).Once()

	saved, err := suite.service.RecordCollections(ctx, "off-1", req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
}

func (suite *CollectionServiceTestSuite) TestListOfficerCollections_Success() {
	ctx := context.Background()
	events := []domain.CollectionEvent{
		{CollectionID: "col-1", OfficerID: "off-1", LocationID: "loc-1", CodeID: "code-1",
			Period: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(5_000)},
	}

	suite.mockCollections.On("ListOfficerCollections", ctx, "off-1", "loc-1", "", 2025).Return(events, nil).Once()

	out, err := suite.service.ListOfficerCollections(ctx, "off-1", dto.ListOfficerCollectionsParams{LocationID: "loc-1", Year: 2025})

	suite.Require().NoError(err)
	suite.Len(out, 1)
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}

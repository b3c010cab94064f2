package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID, passwordHash, updatedBy string) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy)
	return args.Error(0)
}

// --- Mock LocationRepository ---
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

// --- Mock StreamRepository ---
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) SaveStream(ctx context.Context, stream domain.RevenueStream) error {
	args := m.Called(ctx, stream)
	return args.Error(0)
}

func (m *MockStreamRepository) FindStreamByID(ctx context.Context, streamID string) (*domain.RevenueStream, error) {
	args := m.Called(ctx, streamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueStream), args.Error(1)
}

func (m *MockStreamRepository) ListStreams(ctx context.Context, activeOnly bool) ([]domain.RevenueStream, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueStream), args.Error(1)
}

func (m *MockStreamRepository) UpdateStream(ctx context.Context, stream domain.RevenueStream) error {
	args := m.Called(ctx, stream)
	return args.Error(0)
}

func (m *MockStreamRepository) SaveCode(ctx context.Context, code domain.RevenueCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockStreamRepository) FindCodeByID(ctx context.Context, codeID string) (*domain.RevenueCode, error) {
	args := m.Called(ctx, codeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueCode), args.Error(1)
}

func (m *MockStreamRepository) ListCodes(ctx context.Context, activeOnly bool) ([]domain.RevenueCode, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueCode), args.Error(1)
}

func (m *MockStreamRepository) ListCodesByStream(ctx context.Context, streamID string) ([]domain.RevenueCode, error) {
	args := m.Called(ctx, streamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueCode), args.Error(1)
}

func (m *MockStreamRepository) UpdateCode(ctx context.Context, code domain.RevenueCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.BudgetTarget) (*domain.BudgetTarget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetTarget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudget(ctx context.Context, streamID string, year int) (*domain.BudgetTarget, error) {
	args := m.Called(ctx, streamID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetTarget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsForYear(ctx context.Context, year int) ([]domain.BudgetTarget, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetTarget), args.Error(1)
}

// --- Mock CollectionRepository ---
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) UpsertCollections(ctx context.Context, events []domain.CollectionEvent) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

func (m *MockCollectionRepository) ListCollectionsForYear(ctx context.Context, year int) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

func (m *MockCollectionRepository) ListCollectionsForLocationMonth(ctx context.Context, locationID string, period time.Time) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, locationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

func (m *MockCollectionRepository) ListOfficerCollections(ctx context.Context, officerID, locationID, streamID string, year int) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, officerID, locationID, streamID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.OfficerAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeactivateAssignment(ctx context.Context, assignmentID, updatedBy string) error {
	args := m.Called(ctx, assignmentID, updatedBy)
	return args.Error(0)
}

func (m *MockAssignmentRepository) ListAssignmentsByOfficer(ctx context.Context, officerID string, activeOnly bool) ([]domain.OfficerAssignment, error) {
	args := m.Called(ctx, officerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfficerAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsByLocation(ctx context.Context, locationID string) ([]domain.OfficerAssignment, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfficerAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindActiveAssignment(ctx context.Context, officerID, locationID, streamID string) (*domain.OfficerAssignment, error) {
	args := m.Called(ctx, officerID, locationID, streamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfficerAssignment), args.Error(1)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountActiveLocations(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountActiveStreams(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountActiveCodes(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountActiveOfficers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) SumCollectedForPeriod(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

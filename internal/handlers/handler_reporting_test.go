package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/handlers"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/platform/config"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AnnualMatrix(ctx context.Context, year int, scope portssvc.ReportScope) (*domain.AnnualReport, error) {
	args := m.Called(ctx, year, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualReport), args.Error(1)
}

func (m *MockReportingService) MonthlyLocationReport(ctx context.Context, locationID string, period time.Time, scope portssvc.ReportScope) (*domain.MonthlyLocationReport, error) {
	args := m.Called(ctx, locationID, period, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyLocationReport), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock CollectionService ---
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) RecordCollections(ctx context.Context, officerID string, req dto.RecordCollectionsRequest) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, officerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

func (m *MockCollectionService) ListOfficerCollections(ctx context.Context, officerID string, params dto.ListOfficerCollectionsParams) ([]domain.CollectionEvent, error) {
	args := m.Called(ctx, officerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEvent), args.Error(1)
}

var _ portssvc.CollectionSvcFacade = (*MockCollectionService)(nil)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	cfg                   *config.Config
	mockReportingService  *MockReportingService
	mockCollectionService *MockCollectionService
}

// token issues a signed test JWT carrying the given role.
func (suite *ReportingHandlerTestSuite) token(userID string, role domain.Role) string {
	signed, _, err := utils.GenerateJWT(userID, string(role), suite.cfg.JWTSecret, time.Hour, "ktirs-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:        "test-secret-key-that-is-long-enough",
		LoginRateLimit:   "10-M",
		ExportLetterhead: []string{"Katsina State Internal Revenue Service"},
	}

	suite.mockReportingService = new(MockReportingService)
	suite.mockCollectionService = new(MockCollectionService)

	services := &portssvc.ServiceContainer{
		Reporting:  suite.mockReportingService,
		Collection: suite.mockCollectionService,
	}
	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

func (suite *ReportingHandlerTestSuite) get(url, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestGetAnnualMatrix_Success() {
	row := domain.MatrixRow{
		LocationID:   "loc-1",
		LocationName: "Funtua",
		StreamID:     "str-1",
		StreamName:   "Shop Permits",
	}
	row.Collected[0] = decimal.NewFromInt(10_000)
	row.CollectedTotal = decimal.NewFromInt(10_000)
	row.BudgetTotal = decimal.NewFromInt(500_000)
	report := &domain.AnnualReport{Year: 2025, Sequence: 3, Rows: []domain.MatrixRow{row}}

	suite.mockReportingService.On("AnnualMatrix",
		mock.Anything, 2025,
		mock.MatchedBy(func(s portssvc.ReportScope) bool {
			return s.UserID == "admin-1" && s.Role == domain.RoleAdmin
		}),
	).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/annual?year=2025", suite.token("admin-1", domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AnnualMatrixResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(2025, body.Year)
	suite.Equal(uint64(3), body.Sequence)
	suite.Len(body.Rows, 1)
	suite.True(body.Totals.Collected.Equal(decimal.NewFromInt(10_000)))
	suite.True(body.Totals.Budget.Equal(decimal.NewFromInt(500_000)))

	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetAnnualMatrix_OfficerScopePassedThrough() {
	report := &domain.AnnualReport{Year: 2025, Sequence: 1}
	suite.mockReportingService.On("AnnualMatrix",
		mock.Anything, 2025,
		mock.MatchedBy(func(s portssvc.ReportScope) bool {
			return s.UserID == "officer-1" && s.Role == domain.RoleOfficer
		}),
	).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/annual?year=2025", suite.token("officer-1", domain.RoleOfficer))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetAnnualMatrix_MissingYear() {
	w := suite.get("/api/v1/reports/annual", suite.token("admin-1", domain.RoleAdmin))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "AnnualMatrix")
}

func (suite *ReportingHandlerTestSuite) TestGetAnnualMatrix_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/annual?year=2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestExportAnnualMatrix_CSV() {
	row := domain.MatrixRow{
		LocationID:   "loc-1",
		LocationName: "Funtua",
		StreamID:     "str-1",
		StreamName:   "Shop Permits",
	}
	report := &domain.AnnualReport{Year: 2025, Sequence: 4, Rows: []domain.MatrixRow{row}}
	suite.mockReportingService.On("AnnualMatrix", mock.Anything, 2025, mock.Anything).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/annual/export?year=2025&format=csv&view=collected", suite.token("mda-1", domain.RoleMDAUser))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "revenue-report-2025.csv")
	suite.Contains(w.Body.String(), "Katsina State Internal Revenue Service")
	suite.Contains(w.Body.String(), "Funtua")
}

func (suite *ReportingHandlerTestSuite) TestExportAnnualMatrix_OfficerForbidden() {
	w := suite.get("/api/v1/reports/annual/export?year=2025&format=csv", suite.token("officer-1", domain.RoleOfficer))
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "AnnualMatrix")
}

func (suite *ReportingHandlerTestSuite) TestExportAnnualMatrix_BadFormat() {
	w := suite.get("/api/v1/reports/annual/export?year=2025&format=docx", suite.token("admin-1", domain.RoleAdmin))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "AnnualMatrix")
}

func (suite *ReportingHandlerTestSuite) TestRecordCollections_OfficerOnly() {
	payload := dto.RecordCollectionsRequest{
		LocationID: "loc-1",
		Period:     "2025-03",
		Entries:    []dto.CollectionEntry{{CodeID: "code-1", Amount: decimal.NewFromInt(5_000)}},
	}
	body, _ := json.Marshal(payload)

	// An admin must not be able to submit figures.
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/collections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token("admin-1", domain.RoleAdmin))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusForbidden, w.Code)

	saved := []domain.CollectionEvent{{
		CollectionID: "col-1",
		OfficerID:    "officer-1",
		LocationID:   "loc-1",
		CodeID:       "code-1",
		Period:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(5_000),
	}}
	suite.mockCollectionService.On("RecordCollections", mock.Anything, "officer-1", mock.Anything).Return(saved, nil).Once()

	req, _ = http.NewRequest(http.MethodPost, "/api/v1/collections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token("officer-1", domain.RoleOfficer))
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ListCollectionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Collections, 1)
	suite.Equal("2025-03", resp.Collections[0].Period)

	suite.mockCollectionService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestRecordCollections_BadPeriodRejectedByBinding() {
	payload := map[string]any{
		"locationID": "loc-1",
		"period":     "03-2025",
		"entries":    []map[string]any{{"codeID": "code-1", "amount": "1000"}},
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/collections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token("officer-1", domain.RoleOfficer))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.Contains(w.Body.String(), "yearmonth") || strings.Contains(w.Body.String(), "Invalid"))
	suite.mockCollectionService.AssertNotCalled(suite.T(), "RecordCollections")
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

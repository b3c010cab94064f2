package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/reporting"
)

const (
	warnBudgetsUnavailable     = "budget targets could not be loaded; budget columns show zero"
	warnCollectionsUnavailable = "collection figures could not be loaded; collected columns show zero"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	locationRepo   portsrepo.LocationRepository
	streamRepo     portsrepo.StreamRepository
	budgetRepo     portsrepo.BudgetRepository
	collectionRepo portsrepo.CollectionRepository
	assignmentRepo portsrepo.AssignmentRepository
	seq            *reporting.Sequencer
}

// NewReportingService creates a new reporting service
func NewReportingService(
	locationRepo portsrepo.LocationRepository,
	streamRepo portsrepo.StreamRepository,
	budgetRepo portsrepo.BudgetRepository,
	collectionRepo portsrepo.CollectionRepository,
	assignmentRepo portsrepo.AssignmentRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		locationRepo:   locationRepo,
		streamRepo:     streamRepo,
		budgetRepo:     budgetRepo,
		collectionRepo: collectionRepo,
		assignmentRepo: assignmentRepo,
		seq:            &reporting.Sequencer{},
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// AnnualMatrix builds the year's location-by-stream report. Reference
// data is mandatory; a failure there aborts the report. Budget or
// collection fetch failures degrade to zero columns with a warning so
// the rest of the report still renders. For an officer the rows are
// limited to the (location, stream) pairs their active postings cover.
func (s *reportingService) AnnualMatrix(ctx context.Context, year int, scope portssvc.ReportScope) (*domain.AnnualReport, error) {
	locations, streams, codes, assignments, err := s.fetchReferenceData(ctx, scope)
	if err != nil {
		return nil, err
	}

	var warnings []string

	budgets, err := s.budgetRepo.ListBudgetsForYear(ctx, year)
	if err != nil {
		s.LogWarn(ctx, "Budget fetch failed, degrading to zero budgets", slog.Int("year", year), slog.String("error", err.Error()))
		budgets = nil
		warnings = append(warnings, warnBudgetsUnavailable)
	}

	collections, err := s.collectionRepo.ListCollectionsForYear(ctx, year)
	if err != nil {
		s.LogWarn(ctx, "Collection fetch failed, degrading to zero collections", slog.Int("year", year), slog.String("error", err.Error()))
		collections = nil
		warnings = append(warnings, warnCollectionsUnavailable)
	}

	rows, err := reporting.BuildMatrix(locations, streams, codes, budgets, collections, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to build annual matrix", slog.Int("year", year))
		return nil, fmt.Errorf("failed to build annual report for %d: %w", year, err)
	}
	if scope.Role == domain.RoleOfficer {
		rows = scopeMatrixRows(rows, assignments)
	}

	report := &domain.AnnualReport{
		Year:     year,
		Sequence: s.seq.Next(),
		Warning:  strings.Join(warnings, "; "),
		Rows:     rows,
	}

	s.LogInfo(ctx, "Annual report built",
		slog.Int("year", year),
		slog.Int("rows", len(rows)),
		slog.Uint64("sequence", report.Sequence))
	return report, nil
}

// MonthlyLocationReport builds the single-month report for one location,
// with the per-code breakdown and the count of officers posted there.
// An officer may only request locations they hold an active posting at;
// their stream rows are limited to the streams those postings cover.
func (s *reportingService) MonthlyLocationReport(ctx context.Context, locationID string, period time.Time, scope portssvc.ReportScope) (*domain.MonthlyLocationReport, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find location %s for report: %w", locationID, err)
	}

	_, streams, codes, assignments, err := s.fetchReferenceData(ctx, scope)
	if err != nil {
		return nil, err
	}

	if scope.Role == domain.RoleOfficer {
		if !assignmentsCoverLocation(assignments, locationID) {
			s.LogWarn(ctx, "Officer requested report for unassigned location",
				slog.String("officer_id", scope.UserID),
				slog.String("location_id", locationID))
			return nil, fmt.Errorf("officer is not posted to location %s: %w", locationID, apperrors.ErrForbidden)
		}
		scoped := make([]domain.RevenueStream, 0, len(streams))
		for _, st := range streams {
			if assignmentsCover(assignments, locationID, st.StreamID) {
				scoped = append(scoped, st)
			}
		}
		streams = scoped
	}

	var warnings []string

	budgets, err := s.budgetRepo.ListBudgetsForYear(ctx, period.Year())
	if err != nil {
		s.LogWarn(ctx, "Budget fetch failed, degrading to zero budgets", slog.String("error", err.Error()))
		budgets = nil
		warnings = append(warnings, warnBudgetsUnavailable)
	}

	collections, err := s.collectionRepo.ListCollectionsForLocationMonth(ctx, locationID, period)
	if err != nil {
		s.LogWarn(ctx, "Collection fetch failed, degrading to zero collections", slog.String("error", err.Error()))
		collections = nil
		warnings = append(warnings, warnCollectionsUnavailable)
	}

	rows, total, err := reporting.BuildSingleMonthRollup([]domain.Location{*location}, streams, codes, budgets, collections, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly report", slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to build monthly report for %s: %w", locationID, err)
	}

	codeRows := reporting.BuildCodeRollup(streams, codes, collections, period)

	officers := 0
	assignmentsAtLocation, err := s.assignmentRepo.ListAssignmentsByLocation(ctx, locationID)
	if err != nil {
		s.LogWarn(ctx, "Assignment fetch failed, omitting officer count", slog.String("error", err.Error()))
	} else {
		seen := make(map[string]struct{}, len(assignmentsAtLocation))
		for _, a := range assignmentsAtLocation {
			if a.IsActive {
				seen[a.OfficerID] = struct{}{}
			}
		}
		officers = len(seen)
	}

	report := &domain.MonthlyLocationReport{
		Location: *location,
		Period:   period,
		Sequence: s.seq.Next(),
		Warning:  strings.Join(warnings, "; "),
		Rows:     rows,
		Codes:    codeRows,
		Total:    total,
		Officers: officers,
	}

	s.LogInfo(ctx, "Monthly location report built",
		slog.String("location_id", locationID),
		slog.String("period", period.Format("2006-01")),
		slog.Int("rows", len(rows)))
	return report, nil
}

// fetchReferenceData loads the active location, stream and code sets.
// For an officer it also loads their active assignments and narrows
// locations and streams to the ones the postings mention. The narrowed
// sets are per-axis supersets of the postings; callers still have to
// drop (location, stream) pairs no single assignment covers. Any
// failure here aborts the report.
func (s *reportingService) fetchReferenceData(ctx context.Context, scope portssvc.ReportScope) ([]domain.Location, []domain.RevenueStream, []domain.RevenueCode, []domain.OfficerAssignment, error) {
	locations, err := s.locationRepo.ListLocations(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load locations for report")
		return nil, nil, nil, nil, fmt.Errorf("failed to load locations: %w", err)
	}

	streams, err := s.streamRepo.ListStreams(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load streams for report")
		return nil, nil, nil, nil, fmt.Errorf("failed to load streams: %w", err)
	}

	codes, err := s.streamRepo.ListCodes(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load revenue codes for report")
		return nil, nil, nil, nil, fmt.Errorf("failed to load revenue codes: %w", err)
	}

	if scope.Role != domain.RoleOfficer {
		return locations, streams, codes, nil, nil
	}

	assignments, err := s.assignmentRepo.ListAssignmentsByOfficer(ctx, scope.UserID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assignments for officer scope", slog.String("officer_id", scope.UserID))
		return nil, nil, nil, nil, fmt.Errorf("failed to load officer assignments: %w", err)
	}

	scopedLocations := make([]domain.Location, 0, len(locations))
	for _, loc := range locations {
		if assignmentsCoverLocation(assignments, loc.LocationID) {
			scopedLocations = append(scopedLocations, loc)
		}
	}

	scopedStreams := make([]domain.RevenueStream, 0, len(streams))
	for _, st := range streams {
		for _, a := range assignments {
			if a.CoversStream(st.StreamID) {
				scopedStreams = append(scopedStreams, st)
				break
			}
		}
	}

	return scopedLocations, scopedStreams, codes, assignments, nil
}

// scopeMatrixRows keeps only the rows whose (location, stream) pair some
// assignment covers. Postings need not form a full grid, so the matrix
// built from the narrowed axes can still hold pairs the officer was
// never posted for.
func scopeMatrixRows(rows []domain.MatrixRow, assignments []domain.OfficerAssignment) []domain.MatrixRow {
	scoped := make([]domain.MatrixRow, 0, len(rows))
	for _, row := range rows {
		if assignmentsCover(assignments, row.LocationID, row.StreamID) {
			scoped = append(scoped, row)
		}
	}
	return scoped
}

// assignmentsCover reports whether any assignment grants the pair.
func assignmentsCover(assignments []domain.OfficerAssignment, locationID, streamID string) bool {
	for _, a := range assignments {
		if a.LocationID == locationID && a.CoversStream(streamID) {
			return true
		}
	}
	return false
}

func assignmentsCoverLocation(assignments []domain.OfficerAssignment, locationID string) bool {
	for _, a := range assignments {
		if a.LocationID == locationID {
			return true
		}
	}
	return false
}

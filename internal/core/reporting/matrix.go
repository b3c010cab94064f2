// Package reporting implements the budget-vs-collection reconciliation
// aggregator: pure transformations from raw collection events and budget
// targets into the (location x stream) matrices that back every report
// surface and export. Nothing in this package performs I/O.
package reporting

import (
	"fmt"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrMissingReferenceData is returned when locations or streams are absent.
// Rows cannot be constructed without them, so this is a caller fault rather
// than dirty data.
var ErrMissingReferenceData = fmt.Errorf("%w: locations and streams are required", apperrors.ErrValidation)

type pairKey struct {
	locationID string
	streamID   string
}

// BuildMatrix produces one MatrixRow per (location x stream) pair in the
// cartesian product of the two input sets, with twelve collected buckets
// accumulated from the collection events and twelve budget buckets seeded
// from the stream's monthly target for the year.
//
// Callers pass the active location and stream sets and collections already
// scoped to the year. Events whose code is unknown, whose pair is outside
// the cartesian set, or whose period falls outside the twelve months are
// skipped; a single corrupt row must not blank the report. Rows with no
// activity are kept so "no activity" stays distinguishable from "no such
// combination".
func BuildMatrix(
	locations []domain.Location,
	streams []domain.RevenueStream,
	codes []domain.RevenueCode,
	budgets []domain.BudgetTarget,
	collections []domain.CollectionEvent,
	year int,
) ([]domain.MatrixRow, error) {
	if len(locations) == 0 || len(streams) == 0 {
		return nil, ErrMissingReferenceData
	}

	streamByCode := make(map[string]string, len(codes))
	for _, c := range codes {
		streamByCode[c.CodeID] = c.StreamID
	}

	budgetByStream := make(map[string]domain.BudgetTarget, len(budgets))
	for _, b := range budgets {
		if b.Year == year {
			budgetByStream[b.StreamID] = b
		}
	}

	rows := make([]domain.MatrixRow, 0, len(locations)*len(streams))
	index := make(map[pairKey]int, len(locations)*len(streams))

	for _, loc := range locations {
		for _, s := range streams {
			row := domain.MatrixRow{
				LocationID:   loc.LocationID,
				LocationName: loc.Name,
				StreamID:     s.StreamID,
				StreamName:   s.Name,
			}
			if b, ok := budgetByStream[s.StreamID]; ok {
				for m := 0; m < 12; m++ {
					row.Budget[m] = b.MonthlyTarget
				}
				row.BudgetTotal = b.AnnualAmount
			}
			index[pairKey{loc.LocationID, s.StreamID}] = len(rows)
			rows = append(rows, row)
		}
	}

	for _, ev := range collections {
		streamID, ok := streamByCode[ev.CodeID]
		if !ok {
			continue
		}
		i, ok := index[pairKey{ev.LocationID, streamID}]
		if !ok {
			// Stray data for an inactive pair is excluded, not an error.
			continue
		}
		m, ok := monthIndex(ev.Period, year)
		if !ok {
			continue
		}
		rows[i].Collected[m] = rows[i].Collected[m].Add(ev.Amount)
		rows[i].CollectedTotal = rows[i].CollectedTotal.Add(ev.Amount)
	}

	return rows, nil
}

// BuildSingleMonthRollup is the single-period variant used by per-location
// monthly reports: the same join logic as BuildMatrix, but each row carries
// one scalar collected total for the month in scope. The grand total across
// all rows is returned alongside.
func BuildSingleMonthRollup(
	locations []domain.Location,
	streams []domain.RevenueStream,
	codes []domain.RevenueCode,
	budgets []domain.BudgetTarget,
	collections []domain.CollectionEvent,
	yearMonth time.Time,
) ([]domain.RollupRow, decimal.Decimal, error) {
	if len(locations) == 0 || len(streams) == 0 {
		return nil, decimal.Zero, ErrMissingReferenceData
	}

	streamByCode := make(map[string]string, len(codes))
	codesPerStream := make(map[string]int, len(streams))
	for _, c := range codes {
		streamByCode[c.CodeID] = c.StreamID
		codesPerStream[c.StreamID]++
	}

	budgetByStream := make(map[string]domain.BudgetTarget, len(budgets))
	for _, b := range budgets {
		if b.Year == yearMonth.Year() {
			budgetByStream[b.StreamID] = b
		}
	}

	rows := make([]domain.RollupRow, 0, len(locations)*len(streams))
	index := make(map[pairKey]int, len(locations)*len(streams))

	for _, loc := range locations {
		for _, s := range streams {
			row := domain.RollupRow{
				LocationID:   loc.LocationID,
				LocationName: loc.Name,
				StreamID:     s.StreamID,
				StreamName:   s.Name,
				CodesCount:   codesPerStream[s.StreamID],
			}
			if b, ok := budgetByStream[s.StreamID]; ok {
				row.AnnualBudget = b.AnnualAmount
				row.MonthlyTarget = b.MonthlyTarget
			}
			index[pairKey{loc.LocationID, s.StreamID}] = len(rows)
			rows = append(rows, row)
		}
	}

	grandTotal := decimal.Zero
	for _, ev := range collections {
		streamID, ok := streamByCode[ev.CodeID]
		if !ok {
			continue
		}
		i, ok := index[pairKey{ev.LocationID, streamID}]
		if !ok {
			continue
		}
		if ev.Period.Year() != yearMonth.Year() || ev.Period.Month() != yearMonth.Month() {
			continue
		}
		rows[i].Collected = rows[i].Collected.Add(ev.Amount)
		grandTotal = grandTotal.Add(ev.Amount)
	}

	return rows, grandTotal, nil
}

// BuildCodeRollup produces the per-code breakdown of a monthly report:
// one row per code with the collected sum for the month, unresolvable
// events skipped.
func BuildCodeRollup(
	streams []domain.RevenueStream,
	codes []domain.RevenueCode,
	collections []domain.CollectionEvent,
	yearMonth time.Time,
) []domain.CodeRollupRow {
	streamNameByID := make(map[string]string, len(streams))
	for _, s := range streams {
		streamNameByID[s.StreamID] = s.Name
	}

	collectedByCode := make(map[string]decimal.Decimal, len(codes))
	for _, ev := range collections {
		if ev.Period.Year() != yearMonth.Year() || ev.Period.Month() != yearMonth.Month() {
			continue
		}
		collectedByCode[ev.CodeID] = collectedByCode[ev.CodeID].Add(ev.Amount)
	}

	rows := make([]domain.CodeRollupRow, 0, len(codes))
	for _, c := range codes {
		rows = append(rows, domain.CodeRollupRow{
			StreamName: streamNameByID[c.StreamID],
			Code:       c.Code,
			Name:       c.Name,
			Collected:  collectedByCode[c.CodeID],
		})
	}
	return rows
}

// monthIndex maps an event period to a 0-11 bucket for the given year.
func monthIndex(period time.Time, year int) (int, bool) {
	if period.IsZero() || period.Year() != year {
		return 0, false
	}
	m := int(period.Month()) - 1
	if m < 0 || m > 11 {
		return 0, false
	}
	return m, true
}

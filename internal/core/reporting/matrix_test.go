package reporting_test

import (
	"testing"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/reporting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testLocations() []domain.Location {
	return []domain.Location{
		{LocationID: "lere", Name: "Lere", Kind: domain.LocationLGA, IsActive: true},
		{LocationID: "funtua", Name: "Funtua", Kind: domain.LocationLGA, IsActive: true},
	}
}

func testStreams() []domain.RevenueStream {
	return []domain.RevenueStream{
		{StreamID: "market-fees", Name: "Market Fees", IsActive: true},
	}
}

func testCodes() []domain.RevenueCode {
	return []domain.RevenueCode{
		{CodeID: "c1", StreamID: "market-fees", Code: "12010001", Name: "Market stall fees", IsActive: true},
	}
}

func testBudgets() []domain.BudgetTarget {
	return []domain.BudgetTarget{
		{
			BudgetID:      "b1",
			StreamID:      "market-fees",
			Year:          2024,
			AnnualAmount:  amount(1_200_000),
			MonthlyTarget: amount(100_000),
		},
	}
}

func TestBuildMatrix_WorkedExample(t *testing.T) {
	collections := []domain.CollectionEvent{
		{CollectionID: "e1", OfficerID: "o1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(50_000)},
		{CollectionID: "e2", OfficerID: "o1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(25_000)},
	}

	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), collections, 2024)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byLocation := make(map[string]domain.MatrixRow)
	for _, r := range rows {
		byLocation[r.LocationID] = r
	}

	lere := byLocation["lere"]
	assert.Equal(t, "Market Fees", lere.StreamName)
	assert.True(t, lere.Collected[2].Equal(amount(75_000)), "March bucket should sum both events")
	assert.True(t, lere.CollectedTotal.Equal(amount(75_000)))
	assert.True(t, lere.BudgetTotal.Equal(amount(1_200_000)))
	for m := 0; m < 12; m++ {
		assert.True(t, lere.Budget[m].Equal(amount(100_000)), "budget bucket %d", m)
		if m != 2 {
			assert.True(t, lere.Collected[m].IsZero(), "collected bucket %d", m)
		}
	}

	funtua := byLocation["funtua"]
	assert.True(t, funtua.CollectedTotal.IsZero())
	assert.True(t, funtua.BudgetTotal.Equal(amount(1_200_000)))
	for m := 0; m < 12; m++ {
		assert.True(t, funtua.Collected[m].IsZero())
		assert.True(t, funtua.Budget[m].Equal(amount(100_000)))
	}
}

func TestBuildMatrix_CartesianCardinality(t *testing.T) {
	locations := []domain.Location{
		{LocationID: "l1", Name: "One"},
		{LocationID: "l2", Name: "Two"},
		{LocationID: "l3", Name: "Three"},
	}
	streams := []domain.RevenueStream{
		{StreamID: "s1", Name: "A"},
		{StreamID: "s2", Name: "B"},
	}

	rows, err := reporting.BuildMatrix(locations, streams, nil, nil, nil, 2024)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	seen := make(map[[2]string]bool)
	for _, r := range rows {
		key := [2]string{r.LocationID, r.StreamID}
		assert.False(t, seen[key], "duplicate pair %v", key)
		seen[key] = true
	}
}

func TestBuildMatrix_TotalsMatchBuckets(t *testing.T) {
	collections := []domain.CollectionEvent{
		{CollectionID: "e1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.January), Amount: amount(10)},
		{CollectionID: "e2", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.June), Amount: amount(20)},
		{CollectionID: "e3", LocationID: "funtua", CodeID: "c1", Period: monthDate(2024, time.December), Amount: amount(30)},
	}

	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), collections, 2024)
	require.NoError(t, err)

	for _, r := range rows {
		sum := decimal.Zero
		for m := 0; m < 12; m++ {
			sum = sum.Add(r.Collected[m])
		}
		assert.True(t, r.CollectedTotal.Equal(sum), "row %s/%s", r.LocationID, r.StreamID)
	}
}

func TestBuildMatrix_Idempotent(t *testing.T) {
	collections := []domain.CollectionEvent{
		{CollectionID: "e1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.May), Amount: amount(42)},
	}

	first, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), collections, 2024)
	require.NoError(t, err)
	second, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), collections, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildMatrix_MonotonicUnderOneMoreEvent(t *testing.T) {
	base := []domain.CollectionEvent{
		{CollectionID: "e1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.February), Amount: amount(100)},
	}

	before, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), base, 2024)
	require.NoError(t, err)

	extra := append(base, domain.CollectionEvent{
		CollectionID: "e2", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.February), Amount: amount(7),
	})
	after, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), extra, 2024)
	require.NoError(t, err)

	require.Equal(t, len(before), len(after))
	for i := range before {
		if before[i].LocationID == "lere" {
			assert.True(t, after[i].Collected[1].Equal(before[i].Collected[1].Add(amount(7))))
			assert.True(t, after[i].CollectedTotal.Equal(before[i].CollectedTotal.Add(amount(7))))
		} else {
			assert.Equal(t, before[i], after[i])
		}
	}
}

func TestBuildMatrix_SkipsMalformedEvents(t *testing.T) {
	collections := []domain.CollectionEvent{
		// unknown code
		{CollectionID: "e1", LocationID: "lere", CodeID: "no-such-code", Period: monthDate(2024, time.March), Amount: amount(999)},
		// location outside the active set
		{CollectionID: "e2", LocationID: "ghost", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(999)},
		// period outside the report year
		{CollectionID: "e3", LocationID: "lere", CodeID: "c1", Period: monthDate(2023, time.March), Amount: amount(999)},
		// zero-value period
		{CollectionID: "e4", LocationID: "lere", CodeID: "c1", Amount: amount(999)},
		// the only valid one
		{CollectionID: "e5", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(5)},
	}

	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), testBudgets(), collections, 2024)
	require.NoError(t, err)

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.CollectedTotal)
	}
	assert.True(t, total.Equal(amount(5)), "only the valid event should count, got %s", total)
}

func TestBuildMatrix_BudgetIndependence(t *testing.T) {
	// Annual deliberately disagrees with monthly*12.
	budgets := []domain.BudgetTarget{
		{BudgetID: "b1", StreamID: "market-fees", Year: 2024, AnnualAmount: amount(999_999), MonthlyTarget: amount(1)},
	}

	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), budgets, nil, 2024)
	require.NoError(t, err)

	for _, r := range rows {
		assert.True(t, r.BudgetTotal.Equal(amount(999_999)))
		monthlySum := decimal.Zero
		for m := 0; m < 12; m++ {
			monthlySum = monthlySum.Add(r.Budget[m])
		}
		assert.True(t, monthlySum.Equal(amount(12)))
	}
}

func TestBuildMatrix_NoBudgetDefaultsToZero(t *testing.T) {
	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), nil, nil, 2024)
	require.NoError(t, err)

	for _, r := range rows {
		assert.True(t, r.BudgetTotal.IsZero())
		for m := 0; m < 12; m++ {
			assert.True(t, r.Budget[m].IsZero())
		}
	}
}

func TestBuildMatrix_BudgetForOtherYearIgnored(t *testing.T) {
	budgets := []domain.BudgetTarget{
		{BudgetID: "b1", StreamID: "market-fees", Year: 2023, AnnualAmount: amount(500), MonthlyTarget: amount(50)},
	}

	rows, err := reporting.BuildMatrix(testLocations(), testStreams(), testCodes(), budgets, nil, 2024)
	require.NoError(t, err)

	for _, r := range rows {
		assert.True(t, r.BudgetTotal.IsZero())
	}
}

func TestBuildMatrix_MissingReferenceData(t *testing.T) {
	_, err := reporting.BuildMatrix(nil, testStreams(), nil, nil, nil, 2024)
	assert.ErrorIs(t, err, reporting.ErrMissingReferenceData)

	_, err = reporting.BuildMatrix(testLocations(), nil, nil, nil, nil, 2024)
	assert.ErrorIs(t, err, reporting.ErrMissingReferenceData)
}

func TestBuildSingleMonthRollup(t *testing.T) {
	collections := []domain.CollectionEvent{
		{CollectionID: "e1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(40)},
		{CollectionID: "e2", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(2)},
		// different month, must not count
		{CollectionID: "e3", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.April), Amount: amount(1000)},
		{CollectionID: "e4", LocationID: "funtua", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(8)},
	}

	rows, grand, err := reporting.BuildSingleMonthRollup(
		testLocations(), testStreams(), testCodes(), testBudgets(), collections, monthDate(2024, time.March))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byLocation := make(map[string]domain.RollupRow)
	for _, r := range rows {
		byLocation[r.LocationID] = r
	}

	assert.True(t, byLocation["lere"].Collected.Equal(amount(42)))
	assert.True(t, byLocation["funtua"].Collected.Equal(amount(8)))
	assert.True(t, grand.Equal(amount(50)))

	assert.Equal(t, 1, byLocation["lere"].CodesCount)
	assert.True(t, byLocation["lere"].AnnualBudget.Equal(amount(1_200_000)))
	assert.True(t, byLocation["lere"].MonthlyTarget.Equal(amount(100_000)))
}

func TestBuildCodeRollup(t *testing.T) {
	codes := []domain.RevenueCode{
		{CodeID: "c1", StreamID: "market-fees", Code: "12010001", Name: "Market stall fees"},
		{CodeID: "c2", StreamID: "market-fees", Code: "12010002", Name: "Abattoir fees"},
	}
	collections := []domain.CollectionEvent{
		{CollectionID: "e1", LocationID: "lere", CodeID: "c1", Period: monthDate(2024, time.March), Amount: amount(10)},
		{CollectionID: "e2", LocationID: "lere", CodeID: "c2", Period: monthDate(2024, time.March), Amount: amount(20)},
		{CollectionID: "e3", LocationID: "lere", CodeID: "c2", Period: monthDate(2024, time.April), Amount: amount(99)},
	}

	rows := reporting.BuildCodeRollup(testStreams(), codes, collections, monthDate(2024, time.March))
	require.Len(t, rows, 2)

	assert.Equal(t, "Market Fees", rows[0].StreamName)
	assert.True(t, rows[0].Collected.Equal(amount(10)))
	assert.True(t, rows[1].Collected.Equal(amount(20)))
}

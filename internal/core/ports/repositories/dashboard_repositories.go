package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository defines the aggregate count and sum queries behind
// the admin landing-page tiles. These are served straight from the
// database rather than through the aggregator.
type DashboardRepository interface {
	// CountActiveLocations counts active locations.
	CountActiveLocations(ctx context.Context) (int, error)

	// CountActiveStreams counts active revenue streams.
	CountActiveStreams(ctx context.Context) (int, error)

	// CountActiveCodes counts active revenue codes.
	CountActiveCodes(ctx context.Context) (int, error)

	// CountActiveOfficers counts active users with the officer role.
	CountActiveOfficers(ctx context.Context) (int, error)

	// SumCollectedForPeriod sums every collection amount for one calendar
	// month.
	SumCollectedForPeriod(ctx context.Context, period time.Time) (decimal.Decimal, error)
}

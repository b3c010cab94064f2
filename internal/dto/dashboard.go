package dto

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse backs the admin landing-page tiles.
type DashboardResponse struct {
	Locations      int             `json:"locations"`
	Streams        int             `json:"streams"`
	Codes          int             `json:"codes"`
	Officers       int             `json:"officers"`
	MonthCollected decimal.Decimal `json:"monthCollected"`
}

// ToDashboardResponse converts domain.DashboardCounts to the API response.
func ToDashboardResponse(counts *domain.DashboardCounts) DashboardResponse {
	return DashboardResponse{
		Locations:      counts.Locations,
		Streams:        counts.Streams,
		Codes:          counts.Codes,
		Officers:       counts.Officers,
		MonthCollected: counts.MonthCollected,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionEvent is one reported amount collected for a revenue code, at
// a location, for a calendar month. Period is always the first day of the
// month. Events are immutable once submitted except through the officer
// entry flow, which upserts on (officer, location, code, period).
type CollectionEvent struct {
	CollectionID string          `json:"collectionID"`
	OfficerID    string          `json:"officerID"`
	LocationID   string          `json:"locationID"`
	CodeID       string          `json:"codeID"`
	Period       time.Time       `json:"period"`
	Amount       decimal.Decimal `json:"amount"`
	SubmittedAt  time.Time       `json:"submittedAt"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionEvent represents a reported collection row. Period is stored
// as the first day of the month.
type CollectionEvent struct {
	CollectionID string          `db:"collection_id"`
	OfficerID    string          `db:"officer_id"`
	LocationID   string          `db:"location_id"`
	CodeID       string          `db:"code_id"`
	Period       time.Time       `db:"period"`
	Amount       decimal.Decimal `db:"amount"`
	SubmittedAt  time.Time       `db:"submitted_at"`
}

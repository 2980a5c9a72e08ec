package entities

import "time"

// QuoteStatus represents the lifecycle of a tradesperson's offer on a job.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Quote is a tradesperson's priced offer against a specific job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Monetary representation:
//   - All amounts are integer minor units (e.g. pence). Floating point is
//     never used for money anywhere in the domain.
//
// At most one quote per job is ever accepted; acceptance rejects every
// sibling in the same transaction. Accepted and rejected quotes are
// immutable.

type Quote struct {
	ID             string      `json:"id"`
	JobID          string      `json:"job_id"`
	TradespersonID string      `json:"tradesperson_id"`
	PriceMinor     int64       `json:"price_minor_units"`
	DepositMinor   int64       `json:"deposit_minor_units,omitempty"`
	Description    string      `json:"description"`
	EstimatedDays  int         `json:"estimated_days,omitempty"`
	AvailableDate  string      `json:"available_date,omitempty"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

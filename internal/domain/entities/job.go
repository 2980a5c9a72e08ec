package entities

import "time"

// JobStatus represents the lifecycle of a posted job.
//
// Domain notes:
//   - The marketplace core is the source of truth for job/quote/payment state.
//   - Status only moves along the transitions declared in job_transitions.go;
//     every write that changes it is a conditional update on the current value.

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Job is a unit of work posted by a customer, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (tradesperson_id-index): tradesperson_id
//
// TradespersonID and AcceptedQuoteID are both empty until a quote is
// accepted, and both set afterwards; they are never set independently.
// Cancellation is a state, not a deletion: cancelled jobs keep their
// history and reject any further mutation.

type Job struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	TradespersonID string    `json:"tradesperson_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ServiceType    string    `json:"service_type"`
	Urgency        string    `json:"urgency"`
	Location       string    `json:"location"`
	Status         JobStatus `json:"status"`

	AcceptedQuoteID    string     `json:"accepted_quote_id,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

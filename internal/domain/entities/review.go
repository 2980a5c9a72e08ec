package entities

import "time"

// Review is a customer's rating of the tradesperson on a completed job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tradesperson_id-index): tradesperson_id
//
// We purposely use the job id as the review id to guarantee one review per
// job: the conditional put on the PK is the uniqueness check.

type Review struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	CustomerID     string    `json:"customer_id"`
	TradespersonID string    `json:"tradesperson_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

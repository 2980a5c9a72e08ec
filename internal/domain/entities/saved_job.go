package entities

import "time"

// SavedJob is an entry on a tradesperson's saved-job list (a pro-tier
// feature).
//
// Storage model (DynamoDB):
//   - PK: id (tradesperson_id + "#" + job_id, so saving twice is a no-op)
//   - GSI1 (tradesperson_id-index): tradesperson_id

type SavedJob struct {
	ID             string    `json:"id"`
	TradespersonID string    `json:"tradesperson_id"`
	JobID          string    `json:"job_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// SavedJobID builds the composite key for a saved-job entry.
func SavedJobID(tradespersonID, jobID string) string {
	return tradespersonID + "#" + jobID
}

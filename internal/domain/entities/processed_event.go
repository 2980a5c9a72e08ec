package entities

import "time"

// ProcessedEvent records a gateway callback that has already been applied.
//
// Storage model (DynamoDB):
//   - PK: event_id
//
// The record is written with a conditional put before any state transition:
// if the put fails the event was already handled and reconciliation no-ops.
// Deduplication is decided by this persisted record, never by re-deriving
// payment state.

type ProcessedEvent struct {
	EventID    string    `json:"event_id"`
	Reference  string    `json:"reference"`
	Outcome    string    `json:"outcome"`
	ReceivedAt time.Time `json:"received_at"`
}

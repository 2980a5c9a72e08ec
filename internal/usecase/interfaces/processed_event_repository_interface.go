package interfaces

import (
	"context"

	"tradehub/internal/domain/entities"
)

// IProcessedEventRepository persists gateway event ids for reconciliation
// deduplication.

type IProcessedEventRepository interface {
	// Record writes the event with a put conditional on the event id not
	// existing. It returns false when the event was already recorded, in
	// which case the caller must treat the delivery as a duplicate.
	Record(ctx context.Context, ev entities.ProcessedEvent) (bool, error)

	// Delete removes a recorded event id so the provider's redelivery is
	// processed instead of absorbed as a duplicate. Deleting an id that is
	// not recorded is not an error.
	Delete(ctx context.Context, eventID string) error
}

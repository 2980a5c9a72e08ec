package interfaces

import (
	"context"

	"tradehub/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)

	// TransitionStatus applies from -> to as a conditional update; a zero
	// Quote with nil error means the condition failed.
	TransitionStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
}

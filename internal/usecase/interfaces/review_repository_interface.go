package interfaces

import (
	"context"

	"tradehub/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.

type IReviewRepository interface {
	// Create writes the review with a put conditional on the id (= job id)
	// not existing; false means the job was already reviewed.
	Create(ctx context.Context, r entities.Review) (bool, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Review, error)
	ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Review, error)
}

// ISavedJobRepository abstracts DynamoDB persistence for saved-job lists.

type ISavedJobRepository interface {
	Save(ctx context.Context, s entities.SavedJob) error
	Delete(ctx context.Context, tradespersonID, jobID string) error
	ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.SavedJob, error)
}

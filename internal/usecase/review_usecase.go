package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"
)

var (
	ErrJobNotCompleted   = errors.New("job is not completed")
	ErrAlreadyReviewed   = errors.New("job already has a review")
	ErrReviewNotFound    = errors.New("review not found")
	ErrInvalidReviewData = errors.New("invalid review data")
)

// IReviewUseCase lets the job-owning customer rate the tradesperson once the
// job is completed.

type IReviewUseCase interface {
	LeaveReview(ctx context.Context, jobID, actingCustomerID string, rating int, comment string) (entities.Review, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Review, error)
	ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Review, error)
}

type ReviewUseCase struct {
	reviews interfaces.IReviewRepository
	jobs    interfaces.IJobRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(reviews interfaces.IReviewRepository, jobs interfaces.IJobRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, jobs: jobs}
}

func (u *ReviewUseCase) LeaveReview(ctx context.Context, jobID, actingCustomerID string, rating int, comment string) (entities.Review, error) {
	jobID = strings.TrimSpace(jobID)
	actingCustomerID = strings.TrimSpace(actingCustomerID)
	if jobID == "" || actingCustomerID == "" {
		return entities.Review{}, ErrInvalidReviewData
	}
	if rating < 1 || rating > 5 {
		return entities.Review{}, ErrInvalidReviewData
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Review{}, err
	}
	if j.ID == "" {
		return entities.Review{}, ErrJobNotFound
	}
	if j.CustomerID != actingCustomerID {
		return entities.Review{}, ErrNotJobOwner
	}
	if j.Status != entities.JobStatusCompleted {
		return entities.Review{}, ErrJobNotCompleted
	}

	r := entities.Review{
		ID:             jobID,
		JobID:          jobID,
		CustomerID:     actingCustomerID,
		TradespersonID: j.TradespersonID,
		Rating:         rating,
		Comment:        strings.TrimSpace(comment),
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.reviews.Create(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}
	if !created {
		return entities.Review{}, ErrAlreadyReviewed
	}
	log.Printf("[review][usecase] review left job_id=%s rating=%d tradesperson_id=%s", jobID, rating, j.TradespersonID)
	return r, nil
}

func (u *ReviewUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Review, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Review{}, ErrInvalidReviewData
	}
	r, err := u.reviews.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

func (u *ReviewUseCase) ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Review, error) {
	tradespersonID = strings.TrimSpace(tradespersonID)
	if tradespersonID == "" {
		return nil, ErrInvalidReviewData
	}
	return u.reviews.ListByTradespersonID(ctx, tradespersonID)
}

package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"
)

// ISavedJobUseCase maintains a tradesperson's saved-job list. Tier gating
// (pro and above) is the authorization gate's job, not this layer's.

type ISavedJobUseCase interface {
	SaveJob(ctx context.Context, tradespersonID, jobID string) (entities.SavedJob, error)
	UnsaveJob(ctx context.Context, tradespersonID, jobID string) error
	ListSavedJobs(ctx context.Context, tradespersonID string) ([]entities.SavedJob, error)
}

type SavedJobUseCase struct {
	saved interfaces.ISavedJobRepository
	jobs  interfaces.IJobRepository
}

var _ ISavedJobUseCase = (*SavedJobUseCase)(nil)

func NewSavedJobUseCase(saved interfaces.ISavedJobRepository, jobs interfaces.IJobRepository) *SavedJobUseCase {
	return &SavedJobUseCase{saved: saved, jobs: jobs}
}

func (u *SavedJobUseCase) SaveJob(ctx context.Context, tradespersonID, jobID string) (entities.SavedJob, error) {
	tradespersonID = strings.TrimSpace(tradespersonID)
	jobID = strings.TrimSpace(jobID)
	if tradespersonID == "" || jobID == "" {
		return entities.SavedJob{}, ErrInvalidJobInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.SavedJob{}, err
	}
	if j.ID == "" {
		return entities.SavedJob{}, ErrJobNotFound
	}

	s := entities.SavedJob{
		ID:             entities.SavedJobID(tradespersonID, jobID),
		TradespersonID: tradespersonID,
		JobID:          jobID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := u.saved.Save(ctx, s); err != nil {
		return entities.SavedJob{}, err
	}
	log.Printf("[savedjob][usecase] saved tradesperson_id=%s job_id=%s", tradespersonID, jobID)
	return s, nil
}

func (u *SavedJobUseCase) UnsaveJob(ctx context.Context, tradespersonID, jobID string) error {
	tradespersonID = strings.TrimSpace(tradespersonID)
	jobID = strings.TrimSpace(jobID)
	if tradespersonID == "" || jobID == "" {
		return ErrInvalidJobInput
	}
	return u.saved.Delete(ctx, tradespersonID, jobID)
}

func (u *SavedJobUseCase) ListSavedJobs(ctx context.Context, tradespersonID string) ([]entities.SavedJob, error) {
	tradespersonID = strings.TrimSpace(tradespersonID)
	if tradespersonID == "" {
		return nil, ErrInvalidJobInput
	}
	return u.saved.ListByTradespersonID(ctx, tradespersonID)
}

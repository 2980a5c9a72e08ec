package interfaces

import (
	"context"
	"time"

	"tradehub/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Status-changing methods are conditional on the current status: when the
// condition fails (a concurrent writer got there first) they return a zero
// Job and a nil error, and the use case maps that to an InvalidState or
// Conflict outcome.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Job, error)

	// TransitionStatus applies from -> to as a single conditional update.
	TransitionStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error)

	// Cancel marks the job cancelled if its status is still open or
	// assigned, recording who cancelled it and why.
	Cancel(ctx context.Context, id, reason, cancelledBy string, at time.Time) (entities.Job, error)

	// AcceptQuote assigns the job and settles the quote set in one
	// transaction: the job moves open -> assigned with the winning
	// tradesperson and quote recorded, the winning quote moves pending ->
	// accepted, and every sibling pending quote is rejected. Either all of
	// it happens or none of it does; a false return means a condition
	// failed (the job or quote had already moved on).
	AcceptQuote(ctx context.Context, jobID string, winning entities.Quote, siblingIDs []string, at time.Time) (bool, error)
}

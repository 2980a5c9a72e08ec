package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrNotJobOwner       = errors.New("caller does not own this job")
	ErrJobNotOpen        = errors.New("job is not open")
	ErrJobNotCancellable = errors.New("job is completed or already cancelled")
	ErrJobNotInProgress  = errors.New("job is not in progress")
	ErrJobNotAssigned    = errors.New("job is not assigned")
	ErrQuoteNotPending   = errors.New("quote is not pending")
	ErrQuoteExpired      = errors.New("quote has expired")
	ErrInvalidJobInput   = errors.New("invalid job input")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
)

const defaultQuoteExpiryDays = 14

// PostJobInput carries the customer-supplied job details.

type PostJobInput struct {
	Title       string
	Description string
	ServiceType string
	Urgency     string
	Location    string
}

// QuoteTerms carries a tradesperson's offer. Amounts are minor units; a zero
// deposit means the platform default deposit applies at charge time.

type QuoteTerms struct {
	PriceMinor    int64
	DepositMinor  int64
	Description   string
	EstimatedDays int
	AvailableDate string
}

// IJobUseCase is the authoritative state machine for Job and Quote. Role and
// tier preconditions are the authorization gate's concern; this layer
// enforces ownership and state legality only.

type IJobUseCase interface {
	PostJob(ctx context.Context, customerID string, in PostJobInput) (entities.Job, error)
	SubmitQuote(ctx context.Context, jobID, tradespersonID string, terms QuoteTerms) (entities.Quote, error)
	AcceptQuote(ctx context.Context, jobID, quoteID, actingCustomerID string) (entities.Job, error)
	CancelJob(ctx context.Context, jobID, actingUserID string, role entities.Role, reason string) (entities.Job, error)
	CompleteJob(ctx context.Context, jobID string) (entities.Job, error)
	StartProgress(ctx context.Context, jobID string) (entities.Job, error)
	ExpireQuotesForJob(ctx context.Context, jobID string) (int, error)

	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	ListJobsByCustomer(ctx context.Context, customerID string) ([]entities.Job, error)
	ListQuotesByJob(ctx context.Context, jobID string) ([]entities.Quote, error)
}

type JobUseCase struct {
	jobs        interfaces.IJobRepository
	quotes      interfaces.IQuoteRepository
	quoteExpiry time.Duration
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, quotes interfaces.IQuoteRepository) *JobUseCase {
	return &JobUseCase{
		jobs:        jobs,
		quotes:      quotes,
		quoteExpiry: quoteExpiryFromEnv(),
	}
}

func (u *JobUseCase) PostJob(ctx context.Context, customerID string, in PostJobInput) (entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	in.Title = strings.TrimSpace(in.Title)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	if in.Title == "" || in.ServiceType == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		ServiceType: in.ServiceType,
		Urgency:     strings.TrimSpace(in.Urgency),
		Location:    strings.TrimSpace(in.Location),
		Status:      entities.JobStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] posted job_id=%s customer_id=%s service_type=%s", created.ID, customerID, in.ServiceType)
	return created, nil
}

func (u *JobUseCase) SubmitQuote(ctx context.Context, jobID, tradespersonID string, terms QuoteTerms) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	tradespersonID = strings.TrimSpace(tradespersonID)
	if jobID == "" || tradespersonID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if terms.PriceMinor <= 0 {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if terms.DepositMinor < 0 || terms.DepositMinor > terms.PriceMinor {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if j.ID == "" {
		return entities.Quote{}, ErrJobNotFound
	}
	if j.Status != entities.JobStatusOpen {
		log.Printf("[job][usecase] quote rejected, job not open job_id=%s status=%s", jobID, j.Status)
		return entities.Quote{}, ErrJobNotOpen
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		JobID:          jobID,
		TradespersonID: tradespersonID,
		PriceMinor:     terms.PriceMinor,
		DepositMinor:   terms.DepositMinor,
		Description:    strings.TrimSpace(terms.Description),
		EstimatedDays:  terms.EstimatedDays,
		AvailableDate:  strings.TrimSpace(terms.AvailableDate),
		Status:         entities.QuoteStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[job][usecase] quote submitted quote_id=%s job_id=%s tradesperson_id=%s price_minor=%d", created.ID, jobID, tradespersonID, terms.PriceMinor)
	return created, nil
}

// AcceptQuote assigns the job to the quoting tradesperson and rejects every
// sibling quote in one transaction. Two concurrent accepts cannot both
// succeed: the transaction is conditional on the job still being open and
// the quote still pending.
func (u *JobUseCase) AcceptQuote(ctx context.Context, jobID, quoteID, actingCustomerID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	quoteID = strings.TrimSpace(quoteID)
	actingCustomerID = strings.TrimSpace(actingCustomerID)
	if jobID == "" || quoteID == "" || actingCustomerID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if j.CustomerID != actingCustomerID {
		return entities.Job{}, ErrNotJobOwner
	}
	if j.Status != entities.JobStatusOpen {
		return entities.Job{}, ErrJobNotOpen
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Job{}, err
	}
	if q.ID == "" || q.JobID != jobID {
		return entities.Job{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Job{}, ErrQuoteNotPending
	}

	now := time.Now().UTC()
	if u.quoteExpiry > 0 && now.Sub(q.CreatedAt) > u.quoteExpiry {
		// Expiry is age-based policy applied lazily; the sweep endpoint
		// covers quotes nobody tries to accept.
		if _, err := u.quotes.TransitionStatus(ctx, q.ID, entities.QuoteStatusPending, entities.QuoteStatusExpired); err != nil {
			return entities.Job{}, err
		}
		log.Printf("[job][usecase] quote expired on accept quote_id=%s job_id=%s age=%s", quoteID, jobID, now.Sub(q.CreatedAt))
		return entities.Job{}, ErrQuoteExpired
	}

	// The transaction conditions every sibling on still being pending, so a
	// concurrent sweep or status change on a sibling cancels it even though
	// the job and the winning quote are untouched. One retry with a fresh
	// sibling list absorbs that case.
	for attempt := 0; attempt < 2; attempt++ {
		siblings, err := u.quotes.ListByJobID(ctx, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		siblingIDs := make([]string, 0, len(siblings))
		for _, s := range siblings {
			if s.ID != quoteID && s.Status == entities.QuoteStatusPending {
				siblingIDs = append(siblingIDs, s.ID)
			}
		}

		ok, err := u.jobs.AcceptQuote(ctx, jobID, q, siblingIDs, now)
		if err != nil {
			return entities.Job{}, err
		}
		if ok {
			updated, err := u.jobs.GetByID(ctx, jobID)
			if err != nil {
				return entities.Job{}, err
			}
			log.Printf("[job][usecase] quote accepted job_id=%s quote_id=%s tradesperson_id=%s rejected_siblings=%d", jobID, quoteID, q.TradespersonID, len(siblingIDs))
			return updated, nil
		}

		// Cancelled transaction: find out what actually moved before
		// answering, so a sibling-only race retries instead of reporting
		// the job closed.
		j, err = u.jobs.GetByID(ctx, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		if j.ID == "" || j.Status != entities.JobStatusOpen {
			log.Printf("[job][usecase] accept lost race job_id=%s quote_id=%s status=%s", jobID, quoteID, j.Status)
			return entities.Job{}, ErrJobNotOpen
		}
		q, err = u.quotes.GetByID(ctx, quoteID)
		if err != nil {
			return entities.Job{}, err
		}
		if q.ID == "" || q.Status != entities.QuoteStatusPending {
			log.Printf("[job][usecase] accept lost race, quote moved job_id=%s quote_id=%s status=%s", jobID, quoteID, q.Status)
			return entities.Job{}, ErrQuoteNotPending
		}
	}
	log.Printf("[job][usecase] accept lost race twice job_id=%s quote_id=%s", jobID, quoteID)
	return entities.Job{}, ErrJobNotOpen
}

func (u *JobUseCase) CancelJob(ctx context.Context, jobID, actingUserID string, role entities.Role, reason string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	actingUserID = strings.TrimSpace(actingUserID)
	if jobID == "" || actingUserID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if actingUserID != j.CustomerID && role != entities.RoleAdmin {
		return entities.Job{}, ErrNotJobOwner
	}
	if j.Status == entities.JobStatusCompleted || j.Status == entities.JobStatusCancelled {
		return entities.Job{}, ErrJobNotCancellable
	}

	cancelled, err := u.jobs.Cancel(ctx, jobID, strings.TrimSpace(reason), actingUserID, time.Now().UTC())
	if err != nil {
		return entities.Job{}, err
	}
	if cancelled.ID == "" {
		// A settlement or accept advanced the job past a cancellable state
		// between our read and the conditional write.
		return entities.Job{}, ErrJobNotCancellable
	}
	log.Printf("[job][usecase] job cancelled job_id=%s by=%s role=%s reason=%q", jobID, actingUserID, role, reason)
	return cancelled, nil
}

// CompleteJob is invoked only by the payment orchestrator after the final
// payment settles.
func (u *JobUseCase) CompleteJob(ctx context.Context, jobID string) (entities.Job, error) {
	return u.transition(ctx, jobID, entities.JobStatusInProgress, entities.JobStatusCompleted, ErrJobNotInProgress)
}

// StartProgress is invoked only by the payment orchestrator after the
// deposit payment settles.
func (u *JobUseCase) StartProgress(ctx context.Context, jobID string) (entities.Job, error) {
	return u.transition(ctx, jobID, entities.JobStatusAssigned, entities.JobStatusInProgress, ErrJobNotAssigned)
}

func (u *JobUseCase) transition(ctx context.Context, jobID string, from, to entities.JobStatus, stateErr error) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	updated, err := u.jobs.TransitionStatus(ctx, jobID, from, to)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		j, err := u.jobs.GetByID(ctx, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		if j.ID == "" {
			return entities.Job{}, ErrJobNotFound
		}
		return entities.Job{}, stateErr
	}
	log.Printf("[job][usecase] job transition job_id=%s %s -> %s", jobID, from, to)
	return updated, nil
}

// ExpireQuotesForJob rejects over-age pending quotes for a job. Invoked from
// the admin sweep endpoint; there is no background scheduler.
func (u *JobUseCase) ExpireQuotesForJob(ctx context.Context, jobID string) (int, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return 0, ErrInvalidJobInput
	}
	quotes, err := u.quotes.ListByJobID(ctx, jobID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusPending {
			continue
		}
		if u.quoteExpiry > 0 && now.Sub(q.CreatedAt) > u.quoteExpiry {
			updated, err := u.quotes.TransitionStatus(ctx, q.ID, entities.QuoteStatusPending, entities.QuoteStatusExpired)
			if err != nil {
				return expired, err
			}
			if updated.ID != "" {
				expired++
			}
		}
	}
	if expired > 0 {
		log.Printf("[job][usecase] expired quotes job_id=%s count=%d", jobID, expired)
	}
	return expired, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListJobsByCustomer(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidJobInput
	}
	return u.jobs.ListByCustomerID(ctx, customerID)
}

func (u *JobUseCase) ListQuotesByJob(ctx context.Context, jobID string) ([]entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobInput
	}
	return u.quotes.ListByJobID(ctx, jobID)
}

func quoteExpiryFromEnv() time.Duration {
	days := defaultQuoteExpiryDays
	if v := os.Getenv("QUOTE_EXPIRY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradehub/internal/domain/entities"
	mock_interfaces "tradehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newJobUseCaseForTest(t *testing.T) (*JobUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIQuoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	return NewJobUseCase(jobs, quotes), jobs, quotes
}

func TestJobUseCase_PostJob(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.PostJob(context.Background(), "  ", PostJobInput{Title: "Fix boiler", ServiceType: "plumbing"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.PostJob(context.Background(), "cust-1", PostJobInput{ServiceType: "plumbing"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.CustomerID != "cust-1" || j.Status != entities.JobStatusOpen {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		created, err := uc.PostJob(context.Background(), " cust-1 ", PostJobInput{Title: " Fix boiler ", ServiceType: "plumbing", Urgency: "this_week"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Fix boiler" {
			t.Fatalf("expected trimmed title, got %q", created.Title)
		}
	})
}

func TestJobUseCase_SubmitQuote(t *testing.T) {
	t.Run("non positive price", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 0})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("deposit above price", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 10000, DepositMinor: 20000})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("deposit equal to price accepted", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusOpen}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		created, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 50000, DepositMinor: 50000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.DepositMinor != created.PriceMinor {
			t.Fatalf("unexpected terms: %+v", created)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 10000})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job not open", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusAssigned}, nil)

		_, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 10000})
		if !errors.Is(err, ErrJobNotOpen) {
			t.Fatalf("expected ErrJobNotOpen, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusOpen}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.JobID != "job-1" || q.TradespersonID != "tp-1" || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		created, err := uc.SubmitQuote(context.Background(), "job-1", "tp-1", QuoteTerms{PriceMinor: 45000, DepositMinor: 9000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PriceMinor != 45000 {
			t.Fatalf("unexpected price: %d", created.PriceMinor)
		}
	})
}

func TestJobUseCase_AcceptQuote(t *testing.T) {
	openJob := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusOpen}
	pending := func(id string) entities.Quote {
		return entities.Quote{ID: id, JobID: "job-1", TradespersonID: "tp-1", PriceMinor: 45000, Status: entities.QuoteStatusPending, CreatedAt: time.Now().UTC()}
	}

	t.Run("not owner", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-2")
		if !errors.Is(err, ErrNotJobOwner) {
			t.Fatalf("expected ErrNotJobOwner, got %v", err)
		}
	})

	t.Run("job already assigned", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		assigned := openJob
		assigned.Status = entities.JobStatusAssigned
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(assigned, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-2", "cust-1")
		if !errors.Is(err, ErrJobNotOpen) {
			t.Fatalf("expected ErrJobNotOpen, got %v", err)
		}
	})

	t.Run("cancelled job rejects accept", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		cancelled := openJob
		cancelled.Status = entities.JobStatusCancelled
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(cancelled, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrJobNotOpen) {
			t.Fatalf("expected ErrJobNotOpen, got %v", err)
		}
	})

	t.Run("quote belongs to another job", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		other := pending("q-1")
		other.JobID = "job-2"
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(other, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote already rejected", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		rejected := pending("q-1")
		rejected.Status = entities.QuoteStatusRejected
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("over-age quote expires on accept", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		stale := pending("q-1")
		stale.CreatedAt = time.Now().UTC().Add(-15 * 24 * time.Hour)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stale, nil)
		quotes.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusExpired).Return(stale, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("accept rejects pending siblings", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		winner := pending("q-1")
		loser := pending("q-2")
		alreadyRejected := pending("q-3")
		alreadyRejected.Status = entities.QuoteStatusRejected

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(winner, nil)
		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{winner, loser, alreadyRejected}, nil)
		jobs.EXPECT().AcceptQuote(gomock.Any(), "job-1", winner, []string{"q-2"}, gomock.Any()).Return(true, nil)

		assigned := openJob
		assigned.Status = entities.JobStatusAssigned
		assigned.TradespersonID = "tp-1"
		assigned.AcceptedQuoteID = "q-1"
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(assigned, nil)

		job, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusAssigned || job.AcceptedQuoteID != "q-1" || job.TradespersonID != "tp-1" {
			t.Fatalf("unexpected job after accept: %+v", job)
		}
	})

	t.Run("lost transaction race", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		winner := pending("q-1")
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(winner, nil)
		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{winner}, nil)
		jobs.EXPECT().AcceptQuote(gomock.Any(), "job-1", winner, []string{}, gomock.Any()).Return(false, nil)

		taken := openJob
		taken.Status = entities.JobStatusAssigned
		taken.AcceptedQuoteID = "q-9"
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(taken, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrJobNotOpen) {
			t.Fatalf("expected ErrJobNotOpen, got %v", err)
		}
	})

	t.Run("sibling race retries with fresh list", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		winner := pending("q-1")
		loser := pending("q-2")
		expiredLoser := loser
		expiredLoser.Status = entities.QuoteStatusExpired

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(winner, nil)

		// A sweep expires q-2 between the listing and the transaction; the
		// job and the winning quote are untouched, so the second attempt
		// with the refreshed sibling list goes through.
		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{winner, loser}, nil)
		jobs.EXPECT().AcceptQuote(gomock.Any(), "job-1", winner, []string{"q-2"}, gomock.Any()).Return(false, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(winner, nil)
		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{winner, expiredLoser}, nil)
		jobs.EXPECT().AcceptQuote(gomock.Any(), "job-1", winner, []string{}, gomock.Any()).Return(true, nil)

		assigned := openJob
		assigned.Status = entities.JobStatusAssigned
		assigned.TradespersonID = "tp-1"
		assigned.AcceptedQuoteID = "q-1"
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(assigned, nil)

		job, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusAssigned || job.AcceptedQuoteID != "q-1" {
			t.Fatalf("unexpected job after retry: %+v", job)
		}
	})

	t.Run("race reports moved quote accurately", func(t *testing.T) {
		uc, jobs, quotes := newJobUseCaseForTest(t)

		winner := pending("q-1")
		expired := winner
		expired.Status = entities.QuoteStatusExpired

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(winner, nil)
		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{winner}, nil)
		jobs.EXPECT().AcceptQuote(gomock.Any(), "job-1", winner, []string{}, gomock.Any()).Return(false, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(expired, nil)

		_, err := uc.AcceptQuote(context.Background(), "job-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})
}

func TestJobUseCase_CancelJob(t *testing.T) {
	t.Run("completed job not cancellable", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusCompleted}, nil)

		_, err := uc.CancelJob(context.Background(), "job-1", "cust-1", entities.RoleCustomer, "")
		if !errors.Is(err, ErrJobNotCancellable) {
			t.Fatalf("expected ErrJobNotCancellable, got %v", err)
		}
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusOpen}, nil)

		_, err := uc.CancelJob(context.Background(), "job-1", "cust-2", entities.RoleCustomer, "")
		if !errors.Is(err, ErrNotJobOwner) {
			t.Fatalf("expected ErrNotJobOwner, got %v", err)
		}
	})

	t.Run("admin can cancel assigned job", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusAssigned}, nil)
		jobs.EXPECT().Cancel(gomock.Any(), "job-1", "fraudulent listing", "admin-1", gomock.Any()).Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelled, CancelledBy: "admin-1"}, nil)

		cancelled, err := uc.CancelJob(context.Background(), "job-1", "admin-1", entities.RoleAdmin, "fraudulent listing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.Status != entities.JobStatusCancelled {
			t.Fatalf("unexpected status: %s", cancelled.Status)
		}
	})

	t.Run("conditional cancel lost race", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusOpen}, nil)
		jobs.EXPECT().Cancel(gomock.Any(), "job-1", "", "cust-1", gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.CancelJob(context.Background(), "job-1", "cust-1", entities.RoleCustomer, "")
		if !errors.Is(err, ErrJobNotCancellable) {
			t.Fatalf("expected ErrJobNotCancellable, got %v", err)
		}
	})
}

func TestJobUseCase_LedgerTransitions(t *testing.T) {
	t.Run("start progress from assigned", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().TransitionStatus(gomock.Any(), "job-1", entities.JobStatusAssigned, entities.JobStatusInProgress).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress}, nil)

		job, err := uc.StartProgress(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusInProgress {
			t.Fatalf("unexpected status: %s", job.Status)
		}
	})

	t.Run("complete requires in progress", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().TransitionStatus(gomock.Any(), "job-1", entities.JobStatusInProgress, entities.JobStatusCompleted).Return(entities.Job{}, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusAssigned}, nil)

		_, err := uc.CompleteJob(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotInProgress) {
			t.Fatalf("expected ErrJobNotInProgress, got %v", err)
		}
	})

	t.Run("transition on missing job", func(t *testing.T) {
		uc, jobs, _ := newJobUseCaseForTest(t)

		jobs.EXPECT().TransitionStatus(gomock.Any(), "job-1", entities.JobStatusAssigned, entities.JobStatusInProgress).Return(entities.Job{}, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.StartProgress(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_ExpireQuotesForJob(t *testing.T) {
	t.Run("expires only over-age pending quotes", func(t *testing.T) {
		uc, _, quotes := newJobUseCaseForTest(t)

		now := time.Now().UTC()
		stale := entities.Quote{ID: "q-1", JobID: "job-1", Status: entities.QuoteStatusPending, CreatedAt: now.Add(-20 * 24 * time.Hour)}
		fresh := entities.Quote{ID: "q-2", JobID: "job-1", Status: entities.QuoteStatusPending, CreatedAt: now.Add(-time.Hour)}
		accepted := entities.Quote{ID: "q-3", JobID: "job-1", Status: entities.QuoteStatusAccepted, CreatedAt: now.Add(-30 * 24 * time.Hour)}

		quotes.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{stale, fresh, accepted}, nil)
		quotes.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusExpired).Return(stale, nil)

		n, err := uc.ExpireQuotesForJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 expired, got %d", n)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"tradehub/internal/domain/entities"
	mock_interfaces "tradehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthorizationGate_Authorize(t *testing.T) {
	customer := entities.Identity{UserID: "cust-1", Role: entities.RoleCustomer}
	tradesperson := entities.Identity{UserID: "tp-1", Role: entities.RoleTradesperson, Tier: entities.TierBasic}
	admin := entities.Identity{UserID: "admin-1", Role: entities.RoleAdmin}

	t.Run("missing identity fails first", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		err := gate.Authorize(context.Background(), entities.Identity{}, OpAcceptQuote, "job-1")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("role outside allow-list", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		err := gate.Authorize(context.Background(), tradesperson, OpPostJob, "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown operation is denied", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		err := gate.Authorize(context.Background(), admin, Operation("nuke_everything"), "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("basic tier blocked from saved jobs", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		err := gate.Authorize(context.Background(), tradesperson, OpSaveJob, "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("pro tier may save jobs", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		pro := tradesperson
		pro.Tier = entities.TierPro
		if err := gate.Authorize(context.Background(), pro, OpSaveJob, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("business tier satisfies pro minimum", func(t *testing.T) {
		gate := NewAuthorizationGate(nil)
		owner := entities.Identity{UserID: "biz-1", Role: entities.RoleBusinessOwner, Tier: entities.TierBusiness}
		if err := gate.Authorize(context.Background(), owner, OpListSavedJobs, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ownership check loads the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gate := NewAuthorizationGate(jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-2"}, nil)

		err := gate.Authorize(context.Background(), customer, OpAcceptQuote, "job-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owner passes ownership check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gate := NewAuthorizationGate(jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1"}, nil)

		if err := gate.Authorize(context.Background(), customer, OpCancelJob, "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing target job surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gate := NewAuthorizationGate(jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-9").Return(entities.Job{}, nil)

		err := gate.Authorize(context.Background(), customer, OpAcceptQuote, "job-9")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("admin bypasses tier and ownership", func(t *testing.T) {
		// No repository wired: a lookup would panic, proving the bypass
		// short-circuits before any read.
		gate := NewAuthorizationGate(nil)
		if err := gate.Authorize(context.Background(), admin, OpCancelJob, "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := gate.Authorize(context.Background(), admin, OpSaveJob, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rule order puts role before ownership", func(t *testing.T) {
		// A tradesperson is never allowed to accept quotes, even on a job
		// assigned to them, and the job is never loaded.
		gate := NewAuthorizationGate(nil)
		err := gate.Authorize(context.Background(), tradesperson, OpAcceptQuote, "job-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

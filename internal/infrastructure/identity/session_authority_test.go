package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tradehub/internal/domain/entities"
)

func newAuthorityForTest(t *testing.T) *SessionAuthority {
	t.Helper()
	t.Setenv("SESSION_JWT_SECRET", "test-secret")
	a, err := NewSessionAuthority()
	if err != nil {
		t.Fatalf("expected authority, got %v", err)
	}
	return a
}

func TestNewSessionAuthority(t *testing.T) {
	t.Run("should fail without a secret", func(t *testing.T) {
		t.Setenv("SESSION_JWT_SECRET", "  ")

		if _, err := NewSessionAuthority(); !errors.Is(err, ErrMissingSessionSecret) {
			t.Fatalf("expected ErrMissingSessionSecret, got %v", err)
		}
	})
}

func TestSessionAuthority_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip an issued token", func(t *testing.T) {
		a := newAuthorityForTest(t)
		ident := entities.Identity{UserID: "tp-1", Role: entities.RoleTradesperson, Tier: entities.TierPro}

		token, err := a.IssueToken(ident, time.Minute)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		got, err := a.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("expected identity, got %v", err)
		}
		if got != ident {
			t.Fatalf("expected %+v, got %+v", ident, got)
		}
	})

	t.Run("should reject an empty token", func(t *testing.T) {
		a := newAuthorityForTest(t)

		if _, err := a.Resolve(ctx, "  "); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		a := newAuthorityForTest(t)
		ident := entities.Identity{UserID: "cust-1", Role: entities.RoleCustomer, Tier: entities.TierBasic}

		token, err := a.IssueToken(ident, -time.Minute)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if _, err := a.Resolve(ctx, token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		a := newAuthorityForTest(t)

		claims := jwt.MapClaims{"user_id": "cust-1", "role": "customer", "exp": time.Now().Add(time.Minute).Unix()}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if _, err := a.Resolve(ctx, forged); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("should reject a token without user_id or role claims", func(t *testing.T) {
		a := newAuthorityForTest(t)

		claims := jwt.MapClaims{"tier": "pro", "exp": time.Now().Add(time.Minute).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if _, err := a.Resolve(ctx, token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("should reject a non-HMAC signing method", func(t *testing.T) {
		a := newAuthorityForTest(t)

		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone,
			jwt.MapClaims{"user_id": "cust-1", "role": "customer"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if _, err := a.Resolve(ctx, unsigned); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})
}

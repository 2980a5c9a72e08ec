package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"tradehub/internal/domain/entities"
	mock_interfaces "tradehub/internal/usecase/interfaces/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedRouter(authority *mock_interfaces.MockISessionAuthority) (*gin.Engine, *entities.Identity) {
	var seen entities.Identity
	r := gin.New()
	r.GET("/protected", RequireIdentity(authority), func(c *gin.Context) {
		ident, _ := Identity(c)
		seen = ident
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestRequireIdentity(t *testing.T) {
	t.Run("should resolve the bearer token and expose the identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authority := mock_interfaces.NewMockISessionAuthority(ctrl)
		authority.EXPECT().Resolve(gomock.Any(), "tok-123").Return(
			entities.Identity{UserID: "cust-1", Role: entities.RoleCustomer, Tier: entities.TierBasic}, nil)

		r, seen := newAuthedRouter(authority)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen.UserID != "cust-1" || seen.Role != entities.RoleCustomer {
			t.Fatalf("unexpected identity %+v", seen)
		}
	})

	t.Run("should accept a lowercase bearer scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authority := mock_interfaces.NewMockISessionAuthority(ctrl)
		authority.EXPECT().Resolve(gomock.Any(), "tok-123").Return(
			entities.Identity{UserID: "cust-1", Role: entities.RoleCustomer}, nil)

		r, _ := newAuthedRouter(authority)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer tok-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("should return 401 without an Authorization header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authority := mock_interfaces.NewMockISessionAuthority(ctrl)

		r, _ := newAuthedRouter(authority)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("should return 401 for a non-bearer scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authority := mock_interfaces.NewMockISessionAuthority(ctrl)

		r, _ := newAuthedRouter(authority)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("should return 401 when the token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authority := mock_interfaces.NewMockISessionAuthority(ctrl)
		authority.EXPECT().Resolve(gomock.Any(), "expired").Return(
			entities.Identity{}, errors.New("token is expired"))

		r, _ := newAuthedRouter(authority)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestIdentity(t *testing.T) {
	t.Run("should report absence outside the authed group", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		if _, ok := Identity(c); ok {
			t.Fatal("expected no identity on a bare context")
		}
	})
}

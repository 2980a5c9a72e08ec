package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"tradehub/internal/usecase"
	mock_usecase "tradehub/internal/usecase/mocks"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhooks/payments", h.HandleGatewayEvent)
	return r
}

func TestWebhookHandler_HandleGatewayEvent(t *testing.T) {
	t.Run("should reconcile a well-formed event and return 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev usecase.GatewayEvent) error {
				if ev.EventID != "evt-1" || ev.Reference != "deposit:job-1:q-1" || ev.Outcome != "success" {
					t.Fatalf("unexpected event %+v", ev)
				}
				return nil
			})

		w := perform(newWebhookRouter(h), http.MethodPost, "/v1/webhooks/payments",
			`{"event_id":"evt-1","reference":"deposit:job-1:q-1","outcome":"success","provider_payment_id":"123456"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "accepted") {
			t.Fatalf("expected accepted ack, got %s", w.Body.String())
		}
	})

	t.Run("should return 400 for malformed JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		w := perform(newWebhookRouter(h), http.MethodPost, "/v1/webhooks/payments", `{not json`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("should return 400 when event_id is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		w := perform(newWebhookRouter(h), http.MethodPost, "/v1/webhooks/payments",
			`{"reference":"deposit:job-1:q-1","outcome":"success"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", code)
		}
	})

	t.Run("should return 500 on an infrastructure failure so the provider retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb unavailable"))

		w := perform(newWebhookRouter(h), http.MethodPost, "/v1/webhooks/payments",
			`{"event_id":"evt-1","reference":"deposit:job-1:q-1","outcome":"success"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_Signature(t *testing.T) {
	const secret = "whsec_test"
	body := `{"event_id":"evt-1","reference":"final:job-1:q-1","outcome":"failure"}`

	sign := func(payload string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(payload))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("should accept a correctly signed event", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Signature", sign(body))
		w := httptest.NewRecorder()
		newWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("should reject a bad signature with 401", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", strings.NewReader(body))
		req.Header.Set("X-Signature", "deadbeef")
		w := httptest.NewRecorder()
		newWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_SIGNATURE" {
			t.Fatalf("expected INVALID_SIGNATURE, got %s", code)
		}
	})

	t.Run("should skip the check when no secret is configured", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", "")
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(nil)

		w := perform(newWebhookRouter(h), http.MethodPost, "/v1/webhooks/payments", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

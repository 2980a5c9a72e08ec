package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase"
	"tradehub/internal/usecase/interfaces"
	mock_usecase "tradehub/internal/usecase/mocks"
)

func TestPaymentHandler_InitiateDeposit(t *testing.T) {
	t.Run("should return the checkout for the owning customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, gateJobs := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		gateJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
			entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusAssigned}, nil)
		uc.EXPECT().InitiateDeposit(gomock.Any(), "job-1", "q-1", "cust-1").Return(
			interfaces.Checkout{PreferenceID: "pref-1", InitPoint: "https://checkout.example/pref-1"}, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/deposit", withIdentity(customerIdent), h.InitiateDeposit)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-1/deposit", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			PreferenceID string `json:"preference_id"`
			InitPoint    string `json:"init_point"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.PreferenceID != "pref-1" || resp.InitPoint == "" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("should return 409 when the quote is not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, gateJobs := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		gateJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
			entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusAssigned}, nil)
		uc.EXPECT().InitiateDeposit(gomock.Any(), "job-1", "q-2", "cust-1").
			Return(interfaces.Checkout{}, usecase.ErrQuoteNotAccepted)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/deposit", withIdentity(customerIdent), h.InitiateDeposit)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-2/deposit", "")

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_STATE" {
			t.Fatalf("expected INVALID_STATE, got %s", code)
		}
	})

	t.Run("should return 502 when the gateway is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, gateJobs := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		gateJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
			entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusAssigned}, nil)
		uc.EXPECT().InitiateDeposit(gomock.Any(), "job-1", "q-1", "cust-1").
			Return(interfaces.Checkout{}, usecase.ErrGatewayUnavailable)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/deposit", withIdentity(customerIdent), h.InitiateDeposit)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-1/deposit", "")

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "GATEWAY_UNAVAILABLE" {
			t.Fatalf("expected GATEWAY_UNAVAILABLE, got %s", code)
		}
	})

	t.Run("should return 403 for a tradesperson", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/deposit", withIdentity(tradesIdent), h.InitiateDeposit)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-1/deposit", "")

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_InitiateFinalPayment(t *testing.T) {
	t.Run("should return 409 while the deposit is unsettled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, gateJobs := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		gateJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
			entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusAssigned}, nil)
		uc.EXPECT().InitiateFinalPayment(gomock.Any(), "job-1", "q-1", "cust-1").
			Return(interfaces.Checkout{}, usecase.ErrDepositNotSettled)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/final-payment", withIdentity(customerIdent), h.InitiateFinalPayment)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-1/final-payment", "")

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("should route to the final charge, not the deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, gateJobs := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		gateJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
			entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusInProgress, TradespersonID: "tp-1"}, nil)
		uc.EXPECT().InitiateFinalPayment(gomock.Any(), "job-1", "q-1", "cust-1").Return(
			interfaces.Checkout{PreferenceID: "pref-2", InitPoint: "https://checkout.example/pref-2"}, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/quotes/:quote_id/final-payment", withIdentity(customerIdent), h.InitiateFinalPayment)
		w := perform(r, http.MethodPost, "/v1/jobs/job-1/quotes/q-1/final-payment", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	t.Run("should return 404 for a missing payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		uc.EXPECT().GetPayment(gomock.Any(), "pay-x").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", withIdentity(customerIdent), h.GetPayment)
		w := perform(r, http.MethodGet, "/v1/payments/pay-x", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "PAYMENT_NOT_FOUND" {
			t.Fatalf("expected PAYMENT_NOT_FOUND, got %s", code)
		}
	})
}

func TestPaymentHandler_ListPaymentsByJob(t *testing.T) {
	t.Run("should list payments for a job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		uc.EXPECT().ListPaymentsByJob(gomock.Any(), "job-1").Return([]entities.Payment{
			{ID: "pay-1", Type: entities.PaymentTypeDeposit, Status: entities.PaymentStatusCaptured},
			{ID: "pay-2", Type: entities.PaymentTypeFinal, Status: entities.PaymentStatusAuthorized},
		}, nil)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/payments", withIdentity(customerIdent), h.ListPaymentsByJob)
		w := perform(r, http.MethodGet, "/v1/jobs/job-1/payments", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 payments, got %d", len(resp))
		}
	})
}

func TestPaymentHandler_Refund(t *testing.T) {
	t.Run("should refund as admin and return 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		uc.EXPECT().Refund(gomock.Any(), "pay-1", "admin-1", entities.RoleAdmin).Return(nil)

		r := gin.New()
		r.POST("/v1/payments/:payment_id/refund", withIdentity(adminIdent), h.Refund)
		w := perform(r, http.MethodPost, "/v1/payments/pay-1/refund", "")

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("should return 403 for a non-admin without touching the orchestrator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		r := gin.New()
		r.POST("/v1/payments/:payment_id/refund", withIdentity(customerIdent), h.Refund)
		w := perform(r, http.MethodPost, "/v1/payments/pay-1/refund", "")

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("should return 409 for an unsettled payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		gate, _ := newGateForTest(ctrl)
		h := NewPaymentHandler(uc, gate)

		uc.EXPECT().Refund(gomock.Any(), "pay-1", "admin-1", entities.RoleAdmin).
			Return(usecase.ErrPaymentNotSettled)

		r := gin.New()
		r.POST("/v1/payments/:payment_id/refund", withIdentity(adminIdent), h.Refund)
		w := perform(r, http.MethodPost, "/v1/payments/pay-1/refund", "")

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

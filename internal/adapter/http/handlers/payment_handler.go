package handlers

import (
	"errors"
	"log"
	"net/http"

	response "tradehub/internal/adapter/http/dto/response"
	"tradehub/internal/adapter/http/middleware"
	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase"
	"tradehub/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for staged job payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	gate    *usecase.AuthorizationGate
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, gate *usecase.AuthorizationGate) *PaymentHandler {
	return &PaymentHandler{usecase: uc, gate: gate}
}

// InitiateDeposit creates the deposit charge for an accepted quote.
//
//	@Summary		Initiate the deposit charge
//	@Tags			payments
//	@Produce		json
//	@Param			job_id		path		string	true	"Job ID"
//	@Param			quote_id	path		string	true	"Quote ID"
//	@Success		200			{object}	response.CheckoutResponse
//	@Failure		403			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Failure		409			{object}	pkg.HTTPError
//	@Failure		502			{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/quotes/{quote_id}/deposit [post]
func (h *PaymentHandler) InitiateDeposit(c *gin.Context) {
	h.initiate(c, entities.PaymentTypeDeposit)
}

// InitiateFinalPayment creates the final charge once work is in progress.
//
//	@Summary		Initiate the final charge
//	@Tags			payments
//	@Produce		json
//	@Param			job_id		path		string	true	"Job ID"
//	@Param			quote_id	path		string	true	"Quote ID"
//	@Success		200			{object}	response.CheckoutResponse
//	@Failure		403			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Failure		409			{object}	pkg.HTTPError
//	@Failure		502			{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/quotes/{quote_id}/final-payment [post]
func (h *PaymentHandler) InitiateFinalPayment(c *gin.Context) {
	h.initiate(c, entities.PaymentTypeFinal)
}

func (h *PaymentHandler) initiate(c *gin.Context, ptype entities.PaymentType) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] initiate start type=%s job_id=%s quote_id=%s user_id=%s", ptype, jobID, quoteID, ident.UserID)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpInitiateCharge, jobID); err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	start := h.usecase.InitiateFinalPayment
	if ptype == entities.PaymentTypeDeposit {
		start = h.usecase.InitiateDeposit
	}

	checkout, err := start(c.Request.Context(), jobID, quoteID, ident.UserID)
	if err != nil {
		log.Printf("[payment][handler] initiate failed type=%s job_id=%s quote_id=%s err=%v", ptype, jobID, quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] initiate success type=%s job_id=%s preference_id=%s", ptype, jobID, checkout.PreferenceID)

	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

// GetPayment returns one payment by id.
//
//	@Summary		Get a payment
//	@Tags			payments
//	@Produce		json
//	@Param			payment_id	path		string	true	"Payment ID"
//	@Success		200			{object}	response.PaymentResponse
//	@Failure		404			{object}	pkg.HTTPError
//	@Router			/v1/payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.usecase.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPaymentsByJob returns every payment recorded against a job.
//
//	@Summary		List payments for a job
//	@Tags			payments
//	@Produce		json
//	@Param			job_id	path	string	true	"Job ID"
//	@Success		200		{array}	response.PaymentResponse
//	@Router			/v1/jobs/{job_id}/payments [get]
func (h *PaymentHandler) ListPaymentsByJob(c *gin.Context) {
	jobID := c.Param("job_id")

	payments, err := h.usecase.ListPaymentsByJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[payment][handler] list failed job_id=%s err=%v", jobID, err)
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// Refund reverses a settled payment. Admin only.
//
//	@Summary		Refund a payment
//	@Tags			payments
//	@Produce		json
//	@Param			payment_id	path		string	true	"Payment ID"
//	@Success		204			{object}	nil
//	@Failure		403			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Failure		409			{object}	pkg.HTTPError
//	@Failure		502			{object}	pkg.HTTPError
//	@Router			/v1/payments/{payment_id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] refund start payment_id=%s user_id=%s", paymentID, ident.UserID)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpRefundPayment, ""); err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	if err := h.usecase.Refund(c.Request.Context(), paymentID, ident.UserID, ident.Role); err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] refund success payment_id=%s", paymentID)

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller is not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrNotJobOwner), errors.Is(err, usecase.ErrNotAdmin):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted),
		errors.Is(err, usecase.ErrChargeAlreadySettled),
		errors.Is(err, usecase.ErrDepositNotSettled),
		errors.Is(err, usecase.ErrPaymentNotSettled),
		errors.Is(err, usecase.ErrJobNotAssigned),
		errors.Is(err, usecase.ErrJobNotInProgress),
		errors.Is(err, usecase.ErrTradespersonNotLinked):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment provider request failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}

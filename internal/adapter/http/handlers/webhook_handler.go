package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"tradehub/internal/usecase"
	"tradehub/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives settlement callbacks from the payment provider.
//
// Business mismatches (unknown references, duplicate events, out-of-order
// delivery) are acknowledged with 200 so the provider stops retrying; only
// transport-level problems get a non-2xx status.

type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
	secret  string
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{
		usecase: uc,
		secret:  os.Getenv("WEBHOOK_SECRET"),
	}
}

// HandleGatewayEvent reconciles one settlement event.
//
//	@Summary		Receive a payment settlement event
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			event	body		usecase.GatewayEvent	true	"Settlement event"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		401		{object}	pkg.HTTPError
//	@Router			/v1/webhooks/payments [post]
func (h *WebhookHandler) HandleGatewayEvent(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	if !h.signatureValid(c.GetHeader("X-Signature"), raw) {
		log.Printf("[webhook][handler] signature rejected")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized))
		return
	}

	var ev usecase.GatewayEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	if strings.TrimSpace(ev.EventID) == "" {
		log.Printf("[webhook][handler] event missing event_id reference=%s", ev.Reference)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "event_id is required", http.StatusBadRequest))
		return
	}
	log.Printf("[webhook][handler] event received event_id=%s reference=%s outcome=%s", ev.EventID, ev.Reference, ev.Outcome)

	if err := h.usecase.Reconcile(c.Request.Context(), ev); err != nil {
		// Only infrastructure failures surface here; returning 5xx makes
		// the provider redeliver, which the dedup record absorbs.
		log.Printf("[webhook][handler] reconcile failed event_id=%s err=%v", ev.EventID, err)
		writeError(c, pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// signatureValid checks the hex HMAC-SHA256 of the body when a webhook
// secret is configured. Without a secret every request passes, which is the
// local and test setup.
func (h *WebhookHandler) signatureValid(header string, body []byte) bool {
	if h.secret == "" {
		return true
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(strings.TrimSpace(header)))
}

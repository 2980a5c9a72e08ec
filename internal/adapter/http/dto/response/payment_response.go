package response

import (
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"
)

type PaymentResponse struct {
	ID               string    `json:"id"`
	JobID            string    `json:"job_id"`
	QuoteID          string    `json:"quote_id"`
	Type             string    `json:"type"`
	AmountMinor      int64     `json:"amount_minor_units"`
	PlatformFeeMinor int64     `json:"platform_fee_minor_units"`
	Reference        string    `json:"reference"`
	GatewayReference string    `json:"gateway_reference,omitempty"`
	Status           string    `json:"status"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		JobID:            p.JobID,
		QuoteID:          p.QuoteID,
		Type:             string(p.Type),
		AmountMinor:      p.AmountMinor,
		PlatformFeeMinor: p.PlatformFeeMinor,
		Reference:        p.Reference,
		GatewayReference: p.GatewayReference,
		Status:           string(p.Status),
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// CheckoutResponse is the handle the customer uses to complete payment on
// the provider's checkout page.
type CheckoutResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

func FromCheckout(c interfaces.Checkout) CheckoutResponse {
	return CheckoutResponse{PreferenceID: c.PreferenceID, InitPoint: c.InitPoint}
}

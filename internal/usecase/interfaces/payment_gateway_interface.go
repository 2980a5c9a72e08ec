package interfaces

import "context"

// ChargeRequest is the provider-neutral charge creation input. Amounts are
// integer minor units; the gateway adapter owns any conversion the provider
// API requires.

type ChargeRequest struct {
	AmountMinor        int64
	PlatformFeeMinor   int64
	Reference          string
	Description        string
	DestinationAccount string
	Currency           string
}

// Checkout is the opaque handle the caller uses to complete payment
// out-of-band.

type Checkout struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago in
// production, a mock in tests and local runs).
//
// CreateCharge only creates the checkout; settlement arrives later through
// the webhook receiver and never through this interface.

type IPaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (Checkout, error)
	RefundCharge(ctx context.Context, gatewayReference string) error
}

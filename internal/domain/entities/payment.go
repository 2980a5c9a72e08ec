package entities

import (
	"fmt"
	"strings"
	"time"
)

// PaymentType distinguishes the two staged charges that fund a job.

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeFinal   PaymentType = "final"
)

// PaymentStatus represents the charge outcome.
//
// A payment is created in authorized before the gateway is called and only
// settles (captured/succeeded) through a reconciliation event, never by the
// caller who initiated the charge. A gateway failure at creation time flips
// it to canceled with the reason kept, so a late success event can still be
// reconciled against it.

type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCanceled   PaymentStatus = "canceled"
)

// Settled reports whether a payment status counts as money received.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusCaptured || s == PaymentStatusSucceeded
}

// Payment is one staged charge against an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference
//   - GSI2 (job_id-index): job_id
//
// Reference is the reconciliation key embedded into the gateway charge; it
// encodes (type, jobID, quoteID) so a callback can be routed without any
// provider-side lookup. GatewayReference is the provider's own id for the
// checkout, kept for audit and refunds.

type Payment struct {
	ID               string        `json:"id"`
	JobID            string        `json:"job_id"`
	QuoteID          string        `json:"quote_id"`
	Type             PaymentType   `json:"type"`
	AmountMinor      int64         `json:"amount_minor_units"`
	PlatformFeeMinor int64         `json:"platform_fee_minor_units"`
	Reference        string        `json:"reference"`
	GatewayReference string        `json:"gateway_reference,omitempty"`
	Status           PaymentStatus `json:"status"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// MakeReference builds the reconciliation reference embedded into a charge.
// Record ids are UUIDs, so ":" is a safe separator.
func MakeReference(t PaymentType, jobID, quoteID string) string {
	return fmt.Sprintf("%s:%s:%s", t, jobID, quoteID)
}

// ParseReference splits a reconciliation reference back into its parts.
func ParseReference(ref string) (t PaymentType, jobID, quoteID string, err error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed payment reference %q", ref)
	}
	t = PaymentType(parts[0])
	if t != PaymentTypeDeposit && t != PaymentTypeFinal {
		return "", "", "", fmt.Errorf("unknown payment type in reference %q", ref)
	}
	if parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("empty ids in payment reference %q", ref)
	}
	return t, parts[1], parts[2], nil
}

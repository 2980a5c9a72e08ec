package interfaces

import (
	"context"

	"tradehub/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
	ListByReference(ctx context.Context, reference string) ([]entities.Payment, error)

	// TransitionStatus applies from -> to as a conditional update; a zero
	// Payment with nil error means the condition failed.
	TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus) (entities.Payment, error)

	// MarkFailed records a charge-creation failure, keeping the row so a
	// late success event can still be reconciled against it.
	MarkFailed(ctx context.Context, id, reason string) (entities.Payment, error)

	// SetGatewayReference attaches the provider's checkout id after the
	// gateway call returns.
	SetGatewayReference(ctx context.Context, id, gatewayRef string) (entities.Payment, error)
}

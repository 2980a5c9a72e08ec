package interfaces

import (
	"context"

	"tradehub/internal/domain/entities"
)

// IAccountDirectory looks up marketplace accounts by user id. The payment
// orchestrator consults it at charge time so a tier change affects the next
// charge without rewriting history.

type IAccountDirectory interface {
	GetByID(ctx context.Context, userID string) (entities.Account, error)
}

// ISessionAuthority resolves an opaque session token into the caller's
// identity. Pure lookup, no mutation.

type ISessionAuthority interface {
	Resolve(ctx context.Context, token string) (entities.Identity, error)
}

package usecase

import (
	"context"
	"errors"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated = errors.New("caller is not authenticated")
	ErrForbidden       = errors.New("caller is not allowed to perform this operation")
)

// Operation names every gated mutating or tier-gated call.

type Operation string

const (
	OpPostJob        Operation = "post_job"
	OpSubmitQuote    Operation = "submit_quote"
	OpAcceptQuote    Operation = "accept_quote"
	OpCancelJob      Operation = "cancel_job"
	OpInitiateCharge Operation = "initiate_charge"
	OpRefundPayment  Operation = "refund_payment"
	OpLeaveReview    Operation = "leave_review"
	OpSaveJob        Operation = "save_job"
	OpListSavedJobs  Operation = "list_saved_jobs"
	OpExpireQuotes   Operation = "expire_quotes"
)

// allowedRoles is the per-operation role allow-list (rule 2).
var allowedRoles = map[Operation][]entities.Role{
	OpPostJob:        {entities.RoleCustomer, entities.RoleAdmin},
	OpSubmitQuote:    {entities.RoleTradesperson, entities.RoleBusinessOwner, entities.RoleAdmin},
	OpAcceptQuote:    {entities.RoleCustomer, entities.RoleAdmin},
	OpCancelJob:      {entities.RoleCustomer, entities.RoleAdmin},
	OpInitiateCharge: {entities.RoleCustomer, entities.RoleAdmin},
	OpRefundPayment:  {entities.RoleAdmin},
	OpLeaveReview:    {entities.RoleCustomer, entities.RoleAdmin},
	OpSaveJob:        {entities.RoleTradesperson, entities.RoleBusinessOwner, entities.RoleAdmin},
	OpListSavedJobs:  {entities.RoleTradesperson, entities.RoleBusinessOwner, entities.RoleAdmin},
	OpExpireQuotes:   {entities.RoleAdmin},
}

// minimumTier lists tier-gated operations (rule 3). Admin bypasses tier
// checks entirely.
var minimumTier = map[Operation]entities.Tier{
	OpSaveJob:       entities.TierPro,
	OpListSavedJobs: entities.TierPro,
}

// ownershipChecked lists operations whose target record the caller must own
// (rule 4). Submitting a quote targets a job the caller does not own, so it
// is deliberately absent.
var ownershipChecked = map[Operation]bool{
	OpAcceptQuote:    true,
	OpCancelJob:      true,
	OpInitiateCharge: true,
	OpLeaveReview:    true,
}

// AuthorizationGate evaluates role, tier and ownership preconditions before
// any call reaches the ledger or the orchestrator. Rules run in a fixed
// order and the first failure wins; on failure the downstream component is
// never invoked, so no partial side effects can occur. Admin bypass lives
// only here, not scattered through the use cases.

type AuthorizationGate struct {
	jobs interfaces.IJobRepository
}

func NewAuthorizationGate(jobs interfaces.IJobRepository) *AuthorizationGate {
	return &AuthorizationGate{jobs: jobs}
}

// Authorize checks the caller against an operation, optionally targeting a
// specific job. targetJobID is empty for untargeted operations.
func (g *AuthorizationGate) Authorize(ctx context.Context, ident entities.Identity, op Operation, targetJobID string) error {
	// Rule 1: a valid identity.
	if ident.UserID == "" {
		return ErrUnauthenticated
	}

	// Rule 2: role allow-list.
	roles, ok := allowedRoles[op]
	if !ok {
		return ErrForbidden
	}
	if !roleAllowed(ident.Role, roles) {
		return ErrForbidden
	}

	// Rule 3: minimum tier, admin bypass.
	if min, gated := minimumTier[op]; gated && ident.Role != entities.RoleAdmin {
		if !ident.Tier.MeetsOrExceeds(min) {
			return ErrForbidden
		}
	}

	// Rule 4: ownership of the targeted record, admin bypass.
	if ownershipChecked[op] && ident.Role != entities.RoleAdmin {
		if targetJobID == "" {
			return ErrForbidden
		}
		j, err := g.jobs.GetByID(ctx, targetJobID)
		if err != nil {
			return err
		}
		if j.ID == "" {
			return ErrJobNotFound
		}
		if ident.UserID != j.CustomerID && (j.TradespersonID == "" || ident.UserID != j.TradespersonID) {
			return ErrForbidden
		}
	}

	return nil
}

func roleAllowed(r entities.Role, allowed []entities.Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

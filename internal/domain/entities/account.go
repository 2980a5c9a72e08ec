package entities

import "time"

// Role is the caller's position in the marketplace.

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleTradesperson  Role = "tradesperson"
	RoleBusinessOwner Role = "business_owner"
	RoleAdmin         Role = "admin"
)

// Tier is a tradesperson's subscription level. It lives on the account, not
// on jobs or quotes: the fee for a charge is always computed from the tier
// in force at charge time.

type Tier string

const (
	TierBasic    Tier = "basic"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

var tierRank = map[Tier]int{
	TierBasic:    0,
	TierPro:      1,
	TierBusiness: 2,
}

// MeetsOrExceeds reports whether t satisfies a minimum tier requirement.
// Unknown tiers rank as basic.
func (t Tier) MeetsOrExceeds(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// Account is the marketplace-facing view of a user record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// GatewayAccountID is the provider-side account charges are routed to when
// the account belongs to a tradesperson.

type Account struct {
	ID               string    `json:"id"`
	DisplayName      string    `json:"display_name"`
	Role             Role      `json:"role"`
	Tier             Tier      `json:"tier"`
	GatewayAccountID string    `json:"gateway_account_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Identity is the resolved caller: who they are, what they may do, and what
// subscription level they hold. Produced by the session authority from an
// opaque bearer token.

type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	Tier   Tier   `json:"tier"`
}

// Package fees computes the platform's cut of a charge from the receiving
// tradesperson's subscription tier. Everything here is pure integer
// arithmetic on minor units; there is no I/O and no floating point.
package fees

import (
	"os"
	"strconv"

	"tradehub/internal/domain/entities"
)

const (
	defaultBasicBps    = 1000
	defaultProBps      = 700
	defaultBusinessBps = 400
)

// Schedule maps each subscription tier to a fee rate in basis points.

type Schedule struct {
	BasicBps    int64
	ProBps      int64
	BusinessBps int64
}

// DefaultSchedule returns the built-in fee rates.
func DefaultSchedule() Schedule {
	return Schedule{
		BasicBps:    defaultBasicBps,
		ProBps:      defaultProBps,
		BusinessBps: defaultBusinessBps,
	}
}

// ScheduleFromEnv reads fee rates from FEE_BASIC_BPS / FEE_PRO_BPS /
// FEE_BUSINESS_BPS, falling back to the defaults per key.
func ScheduleFromEnv() Schedule {
	return Schedule{
		BasicBps:    getenvBps("FEE_BASIC_BPS", defaultBasicBps),
		ProBps:      getenvBps("FEE_PRO_BPS", defaultProBps),
		BusinessBps: getenvBps("FEE_BUSINESS_BPS", defaultBusinessBps),
	}
}

// RateBps returns the fee rate for a tier. Unknown or missing tiers pay the
// basic rate.
func (s Schedule) RateBps(tier entities.Tier) int64 {
	switch tier {
	case entities.TierPro:
		return s.ProBps
	case entities.TierBusiness:
		return s.BusinessBps
	default:
		return s.BasicBps
	}
}

// PlatformFee returns floor(amount * rate / 10000) in minor units. Integer
// division keeps the fee charged and the fee recorded identical; amounts are
// validated non-negative upstream so the floor never rounds toward zero from
// below.
func (s Schedule) PlatformFee(amountMinor int64, tier entities.Tier) int64 {
	return amountMinor * s.RateBps(tier) / 10000
}

func getenvBps(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 && n <= 10000 {
			return n
		}
	}
	return def
}

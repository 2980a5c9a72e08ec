package fees

import (
	"testing"

	"tradehub/internal/domain/entities"
)

func TestSchedulePlatformFee(t *testing.T) {
	s := DefaultSchedule()

	cases := []struct {
		name   string
		amount int64
		tier   entities.Tier
		want   int64
	}{
		{name: "basic default rate", amount: 10000, tier: entities.TierBasic, want: 1000},
		{name: "pro rate", amount: 10000, tier: entities.TierPro, want: 700},
		{name: "business rate", amount: 10000, tier: entities.TierBusiness, want: 400},
		{name: "unknown tier pays basic", amount: 10000, tier: entities.Tier("platinum"), want: 1000},
		{name: "empty tier pays basic", amount: 10000, tier: "", want: 1000},
		{name: "integer floor", amount: 99, tier: entities.TierBasic, want: 9},
		{name: "zero amount", amount: 0, tier: entities.TierPro, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.PlatformFee(tc.amount, tc.tier); got != tc.want {
				t.Fatalf("PlatformFee(%d, %s) = %d, want %d", tc.amount, tc.tier, got, tc.want)
			}
		})
	}
}

func TestScheduleCustomRates(t *testing.T) {
	s := Schedule{BasicBps: 0, ProBps: 150, BusinessBps: 50}

	if got := s.PlatformFee(10000, entities.TierPro); got != 150 {
		t.Fatalf("pro fee = %d, want 150", got)
	}
	if got := s.PlatformFee(10000, entities.TierBasic); got != 0 {
		t.Fatalf("zero-rate basic fee = %d, want 0", got)
	}
}

func TestScheduleFromEnv(t *testing.T) {
	t.Setenv("FEE_BASIC_BPS", "1200")
	t.Setenv("FEE_PRO_BPS", "not-a-number")
	t.Setenv("FEE_BUSINESS_BPS", "20000")

	s := ScheduleFromEnv()
	if s.BasicBps != 1200 {
		t.Fatalf("BasicBps = %d, want 1200", s.BasicBps)
	}
	// Unparseable and out-of-range values fall back to the defaults.
	if s.ProBps != defaultProBps {
		t.Fatalf("ProBps = %d, want %d", s.ProBps, defaultProBps)
	}
	if s.BusinessBps != defaultBusinessBps {
		t.Fatalf("BusinessBps = %d, want %d", s.BusinessBps, defaultBusinessBps)
	}
}

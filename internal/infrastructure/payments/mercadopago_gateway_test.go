package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tradehub/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("should fail without an access token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("should start in mock mode regardless of token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("expected gateway, got %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("expected gateway, got %v", err)
	}
	ctx := context.Background()

	t.Run("should create a local checkout", func(t *testing.T) {
		checkout, err := g.CreateCharge(ctx, interfaces.ChargeRequest{
			Reference:   "deposit:job-1:q-1",
			AmountMinor: 10000,
			Currency:    "GBP",
		})
		if err != nil {
			t.Fatalf("expected checkout, got %v", err)
		}
		if !strings.HasPrefix(checkout.PreferenceID, "mock-") {
			t.Fatalf("expected mock preference id, got %s", checkout.PreferenceID)
		}
		if !strings.Contains(checkout.InitPoint, "deposit:job-1:q-1") {
			t.Fatalf("expected reference in init point, got %s", checkout.InitPoint)
		}
	})

	t.Run("should accept refunds without a provider call", func(t *testing.T) {
		if err := g.RefundCharge(ctx, "123456"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_RefundReference(t *testing.T) {
	// An unconfigured client never reaches the provider, so only the
	// reference parsing and configuration guards are observable here.
	g := &MercadoPagoGateway{}

	if err := g.RefundCharge(context.Background(), "123456"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMinorToMajor(t *testing.T) {
	cases := []struct {
		minor int64
		want  float64
	}{
		{minor: 10000, want: 100.00},
		{minor: 99, want: 0.99},
		{minor: 0, want: 0},
	}
	for _, tc := range cases {
		if got := minorToMajor(tc.minor); got != tc.want {
			t.Fatalf("minorToMajor(%d) = %v, want %v", tc.minor, got, tc.want)
		}
	}
}

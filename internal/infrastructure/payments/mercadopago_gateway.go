package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tradehub/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidGatewayReference         = errors.New("invalid gateway payment reference")
)

// MercadoPagoGateway creates checkout preferences for staged charges and
// issues refunds. The platform fee rides on the preference as
// marketplace_fee so the provider splits the charge at settlement.
//
// The domain works in integer minor units; the provider API takes decimal
// major units, and that conversion happens only here at the boundary.

type MercadoPagoGateway struct {
	preferences preference.Client
	refunds     refund.Client
	notifyURL   string
	marketplace string
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
		notifyURL:   strings.TrimSpace(os.Getenv("MERCADOPAGO_NOTIFICATION_URL")),
		marketplace: strings.TrimSpace(os.Getenv("MERCADOPAGO_MARKETPLACE_ID")),
	}, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.Checkout, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock charge created preference_id=%s reference=%s amount_minor=%d", id, req.Reference, req.AmountMinor)
		return interfaces.Checkout{
			PreferenceID: id,
			InitPoint:    "https://checkout.local/pay/" + req.Reference,
		}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.Checkout{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create charge start reference=%s amount_minor=%d fee_minor=%d", req.Reference, req.AmountMinor, req.PlatformFeeMinor)

	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.Reference,
				Title:       req.Description,
				Description: req.Description,
				Quantity:    1,
				UnitPrice:   minorToMajor(req.AmountMinor),
				CurrencyID:  req.Currency,
			},
		},
		ExternalReference: req.Reference,
		Marketplace:       g.marketplace,
		MarketplaceFee:    minorToMajor(req.PlatformFeeMinor),
		NotificationURL:   g.notifyURL,
	}

	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed reference=%s err=%v", req.Reference, err)
		return interfaces.Checkout{}, err
	}

	initPoint := resp.InitPoint
	if initPoint == "" {
		initPoint = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] create charge success preference_id=%s reference=%s", resp.ID, req.Reference)
	return interfaces.Checkout{PreferenceID: resp.ID, InitPoint: initPoint}, nil
}

func (g *MercadoPagoGateway) RefundCharge(ctx context.Context, gatewayReference string) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock refund issued gateway_reference=%s", gatewayReference)
		return nil
	}

	if g == nil || g.refunds == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	// Refunds act on the provider payment id delivered with the settlement
	// event, not on the checkout preference id.
	paymentID, err := strconv.Atoi(strings.TrimSpace(gatewayReference))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidGatewayReference, gatewayReference)
	}

	resp, err := g.refunds.Create(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed payment_id=%d err=%v", paymentID, err)
		return err
	}
	log.Printf("[payment][gateway] refund success payment_id=%d refund_id=%d status=%s", paymentID, resp.ID, resp.Status)
	return nil
}

func minorToMajor(minor int64) float64 {
	return float64(minor) / 100
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

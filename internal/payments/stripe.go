// internal/payments/stripe.go
package payments

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/agntslab/marketplace-backend/internal/config"
)

// StripeGateway implements Gateway on top of the Stripe API.
type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey

	return &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	return &Intent{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch stripeEvent.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("failed to parse payment intent event: %w", err)
		}

		eventType := EventPaymentSucceeded
		if stripeEvent.Type == "payment_intent.payment_failed" {
			eventType = EventPaymentFailed
		}

		return &Event{
			Type:      eventType,
			Reference: pi.ID,
			Metadata:  pi.Metadata,
		}, nil

	default:
		// Unhandled event types are acknowledged, not errors.
		return &Event{Type: EventIgnored}, nil
	}
}

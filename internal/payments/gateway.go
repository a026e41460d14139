// internal/payments/gateway.go
package payments

import "errors"

// EventType identifies the payment events the purchase flow reacts to.
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_succeeded"
	EventPaymentFailed    EventType = "payment_failed"
	EventIgnored          EventType = "ignored"
)

// Intent is the gateway's handle for a payment in progress. Reference is the
// processor-side id persisted on the Purchase; ClientSecret is handed to the
// client to complete payment out-of-band.
type Intent struct {
	Reference    string
	ClientSecret string
}

// Event is a processor notification, normalized so the purchase flow never
// sees the processor's wire format.
type Event struct {
	Type      EventType
	Reference string
	Metadata  map[string]string
}

var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrInvalidSignature   = errors.New("invalid event signature")
)

// Gateway is the narrow interface to the external payment processor.
type Gateway interface {
	// CreateIntent registers a charge of amount minor units (e.g. cents)
	// and returns the processor reference plus the client-facing secret.
	CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)

	// VerifyEvent authenticates a raw webhook payload against its signature
	// and normalizes it. Returns ErrInvalidSignature on mismatch.
	VerifyEvent(payload []byte, signature string) (*Event, error)
}

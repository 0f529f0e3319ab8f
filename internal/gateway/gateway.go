package gateway

import (
	"context"
	"time"

	"tickethub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrGatewayUnavailable marks a create-payment attempt that failed after
	// the retry budget; the reservation stays pending and may be retried or
	// swept by expiry.
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")

	// ErrInvalidCallback marks a callback whose signature or shape could not
	// be verified. The engine must not act on it.
	ErrInvalidCallback = errs.New("invalid payment callback")
)

type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
	OutcomePending  Outcome = "pending"
)

// PaymentRequest registers payment intent for one reservation.
type PaymentRequest struct {
	Reference     string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	ExpiryMinutes int
}

// PaymentArtifact is what the buyer needs to complete payment out of band.
type PaymentArtifact struct {
	Handle    string
	QRCode    string
	DeepLink  string
	ExpiresAt time.Time
}

// CanonicalConfirmation is the provider-independent shape of a payment
// callback. Parsing is a pure function of the payload, so replaying the same
// payload always yields the same confirmation.
type CanonicalConfirmation struct {
	Handle      string
	Outcome     Outcome
	Amount      decimal.Decimal
	Currency    string
	ProviderRef string
	Timestamp   time.Time
}

type PaymentGateway interface {
	CreatePaymentRequest(ctx context.Context, req PaymentRequest) (*PaymentArtifact, error)
	ParseCallback(raw []byte) (*CanonicalConfirmation, error)
}

package queries

import (
	"context"
	"time"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/gateway"
	"tickethub/internal/infra"
	"tickethub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

// ReservationReader is the read-side port the status query depends on.
type ReservationReader interface {
	FindByReference(ctx context.Context, reference string) (*ReservationView, error)
	TicketsByReservation(ctx context.Context, reservationID uuid.UUID) ([]TicketView, error)
}

// PaymentSessionReader re-serves the cached payment artifact while the
// reservation is still pending.
type PaymentSessionReader interface {
	Find(ctx context.Context, reference string) (*gateway.PaymentArtifact, error)
}

type PaymentSessionView struct {
	QRCode    string    `json:"qr_code"`
	DeepLink  string    `json:"deep_link,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReservationDetail struct {
	Reservation ReservationView
	Tickets     []TicketView
	Payment     *PaymentSessionView
}

type ReservationQuery interface {
	GetByReference(ctx context.Context, reference string, buyerID uuid.UUID) (*ReservationDetail, error)
}

type reservationQuery struct {
	reservations ReservationReader
	sessions     PaymentSessionReader
}

func NewReservationQuery(reservations ReservationReader, sessions PaymentSessionReader) ReservationQuery {
	return &reservationQuery{reservations: reservations, sessions: sessions}
}

// GetByReference returns the reservation as the buyer sees it: the pending
// view carries the payment artifact to retry with, the confirmed view carries
// the issued tickets. A reference owned by another buyer reads as not found
// so references cannot be probed.
func (q *reservationQuery) GetByReference(ctx context.Context, reference string, buyerID uuid.UUID) (*ReservationDetail, error) {
	view, err := q.reservations.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to get reservation")
	}

	if view.BuyerID != buyerID {
		return nil, ErrReservationNotFound
	}

	detail := &ReservationDetail{Reservation: *view}

	switch view.Status {
	case reservation.StatusConfirmed.String():
		tickets, err := q.reservations.TicketsByReservation(ctx, view.ID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to list tickets")
		}
		detail.Tickets = tickets

	case reservation.StatusPending.String():
		artifact, err := q.sessions.Find(ctx, reference)
		if err == nil && artifact != nil {
			detail.Payment = &PaymentSessionView{
				QRCode:    artifact.QRCode,
				DeepLink:  artifact.DeepLink,
				ExpiresAt: artifact.ExpiresAt,
			}
		}
		// A cache miss is fine; the buyer can still poll until expiry.
	}

	return detail, nil
}

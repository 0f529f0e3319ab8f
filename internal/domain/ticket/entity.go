package ticket

import (
	"errors"
	"time"

	"tickethub/internal/domain/reservation"

	"github.com/google/uuid"
)

var ErrNotActive = errors.New("ticket is not active")

type Status string

const (
	StatusActive Status = "active"
	StatusUsed   Status = "used"
	StatusVoid   Status = "void"
)

func (s Status) String() string {
	return string(s)
}

// Ticket is immutable after issuance except for the active -> used and
// active -> void transitions.
type Ticket struct {
	id            uuid.UUID
	code          string
	reservationID uuid.UUID
	eventID       uuid.UUID
	attendeeID    uuid.UUID
	attendee      reservation.Attendee
	status        Status
	amountPaid    reservation.Money
	gatewayHandle string
	issuedAt      time.Time
}

func Issue(
	code string,
	reservationID, eventID, attendeeID uuid.UUID,
	attendee reservation.Attendee,
	amountPaid reservation.Money,
	gatewayHandle string,
	issuedAt time.Time,
) *Ticket {
	return &Ticket{
		id:            uuid.New(),
		code:          code,
		reservationID: reservationID,
		eventID:       eventID,
		attendeeID:    attendeeID,
		attendee:      attendee,
		status:        StatusActive,
		amountPaid:    amountPaid,
		gatewayHandle: gatewayHandle,
		issuedAt:      issuedAt,
	}
}

func Reconstruct(
	id uuid.UUID,
	code string,
	reservationID, eventID, attendeeID uuid.UUID,
	attendee reservation.Attendee,
	status Status,
	amountPaid reservation.Money,
	gatewayHandle string,
	issuedAt time.Time,
) *Ticket {
	return &Ticket{
		id:            id,
		code:          code,
		reservationID: reservationID,
		eventID:       eventID,
		attendeeID:    attendeeID,
		attendee:      attendee,
		status:        status,
		amountPaid:    amountPaid,
		gatewayHandle: gatewayHandle,
		issuedAt:      issuedAt,
	}
}

func (t *Ticket) ID() uuid.UUID                  { return t.id }
func (t *Ticket) Code() string                   { return t.code }
func (t *Ticket) ReservationID() uuid.UUID       { return t.reservationID }
func (t *Ticket) EventID() uuid.UUID             { return t.eventID }
func (t *Ticket) AttendeeID() uuid.UUID          { return t.attendeeID }
func (t *Ticket) Attendee() reservation.Attendee { return t.attendee }
func (t *Ticket) Status() Status                 { return t.status }
func (t *Ticket) AmountPaid() reservation.Money  { return t.amountPaid }
func (t *Ticket) GatewayHandle() string          { return t.gatewayHandle }
func (t *Ticket) IssuedAt() time.Time            { return t.issuedAt }

func (t *Ticket) MarkUsed() error {
	if t.status != StatusActive {
		return ErrNotActive
	}
	t.status = StatusUsed
	return nil
}

func (t *Ticket) Void() error {
	if t.status != StatusActive {
		return ErrNotActive
	}
	t.status = StatusVoid
	return nil
}

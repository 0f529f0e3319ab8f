package reservation

import (
	"errors"

	"tickethub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNoAttendees      = errors.New("at least one attendee is required")
	ErrTooManyAttendees = errors.New("attendee count exceeds purchase limit")
)

// MaxAttendeesPerPurchase caps a single purchase; larger group sales go
// through the box office, not this flow.
const MaxAttendeesPerPurchase = 10

// EventSpec is the slice of event state the factory needs to price and shape
// a reservation. Seat accounting stays with the inventory ledger.
type EventSpec struct {
	ID        uuid.UUID
	UnitPrice Money
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// AttendeeInput is the raw attendee shape before validation.
type AttendeeInput struct {
	FullName   string
	Email      string
	NationalID string
	Phone      string
}

// ValidateAttendees checks the request shape without touching any other
// component, so a malformed purchase is rejected before inventory is reserved.
func ValidateAttendees(inputs []AttendeeInput) ([]Attendee, error) {
	if len(inputs) == 0 {
		return nil, ErrNoAttendees
	}
	if len(inputs) > MaxAttendeesPerPurchase {
		return nil, ErrTooManyAttendees
	}

	attendees := make([]Attendee, 0, len(inputs))
	for _, in := range inputs {
		a, err := NewAttendee(in.FullName, in.Email, in.NationalID, in.Phone)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, nil
}

// CreateReservation builds a new pending reservation for the given inventory
// hold. The total amount is derived here and nowhere else.
func (f *Factory) CreateReservation(
	ev EventSpec,
	buyerID uuid.UUID,
	reference Reference,
	holdID uuid.UUID,
	attendees []Attendee,
) (*Reservation, error) {
	if len(attendees) == 0 {
		return nil, ErrNoAttendees
	}
	if len(attendees) > MaxAttendeesPerPurchase {
		return nil, ErrTooManyAttendees
	}

	now := f.clock.Now()
	return &Reservation{
		id:          uuid.New(),
		reference:   reference,
		eventID:     ev.ID,
		buyerID:     buyerID,
		holdID:      holdID,
		attendees:   attendees,
		totalAmount: ev.UnitPrice.MulInt(len(attendees)),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

package event

import (
	"errors"
	"time"

	"tickethub/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeatCount = errors.New("total seats must be positive")
	ErrSeatAccounting   = errors.New("available seats out of range")
)

// Event is read-mostly state: seat counters are mutated exclusively through
// the inventory ledger's conditional updates, never through this type.
type Event struct {
	id             uuid.UUID
	name           string
	venue          string
	startsAt       time.Time
	totalSeats     int
	availableSeats int
	unitPrice      reservation.Money
}

func NewEvent(
	id uuid.UUID,
	name, venue string,
	startsAt time.Time,
	totalSeats, availableSeats int,
	unitPrice reservation.Money,
) (*Event, error) {
	if totalSeats <= 0 {
		return nil, ErrInvalidSeatCount
	}
	if availableSeats < 0 || availableSeats > totalSeats {
		return nil, ErrSeatAccounting
	}
	return &Event{
		id:             id,
		name:           name,
		venue:          venue,
		startsAt:       startsAt,
		totalSeats:     totalSeats,
		availableSeats: availableSeats,
		unitPrice:      unitPrice,
	}, nil
}

func (e *Event) ID() uuid.UUID                { return e.id }
func (e *Event) Name() string                 { return e.name }
func (e *Event) Venue() string                { return e.venue }
func (e *Event) StartsAt() time.Time          { return e.startsAt }
func (e *Event) TotalSeats() int              { return e.totalSeats }
func (e *Event) AvailableSeats() int          { return e.availableSeats }
func (e *Event) UnitPrice() reservation.Money { return e.unitPrice }

func (e *Event) HasCapacityFor(quantity int) bool {
	return quantity > 0 && quantity <= e.availableSeats
}

package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a pending or resolved claim on event inventory tied to one
// purchase attempt. Only the reconciliation commands mutate its status, and
// every status change goes through a compare-and-swap on the store.
type Reservation struct {
	id            uuid.UUID
	reference     Reference
	eventID       uuid.UUID
	buyerID       uuid.UUID
	holdID        uuid.UUID
	attendees     []Attendee
	totalAmount   Money
	status        Status
	gatewayHandle string
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	reference Reference,
	eventID, buyerID, holdID uuid.UUID,
	attendees []Attendee,
	totalAmount Money,
	status Status,
	gatewayHandle string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		reference:     reference,
		eventID:       eventID,
		buyerID:       buyerID,
		holdID:        holdID,
		attendees:     attendees,
		totalAmount:   totalAmount,
		status:        status,
		gatewayHandle: gatewayHandle,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Reference() Reference  { return r.reference }
func (r *Reservation) EventID() uuid.UUID    { return r.eventID }
func (r *Reservation) BuyerID() uuid.UUID    { return r.buyerID }
func (r *Reservation) HoldID() uuid.UUID     { return r.holdID }
func (r *Reservation) Attendees() []Attendee { return r.attendees }
func (r *Reservation) Quantity() int         { return len(r.attendees) }
func (r *Reservation) TotalAmount() Money    { return r.totalAmount }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) GatewayHandle() string { return r.gatewayHandle }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

// StaleAt reports whether a pending reservation has outlived the TTL and is
// eligible for the expiry sweep.
func (r *Reservation) StaleAt(now time.Time, ttl time.Duration) bool {
	return r.status == StatusPending && now.Sub(r.createdAt) > ttl
}

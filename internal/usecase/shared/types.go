package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command-side validation reads.

type EventSnapshot struct {
	ID             uuid.UUID
	Name           string
	Venue          string
	StartsAt       time.Time
	TotalSeats     int
	AvailableSeats int
	UnitPrice      decimal.Decimal
	Currency       string
}

type ReservationSnapshot struct {
	ID            uuid.UUID
	Reference     string
	EventID       uuid.UUID
	BuyerID       uuid.UUID
	HoldID        uuid.UUID
	Quantity      int
	TotalAmount   decimal.Decimal
	Currency      string
	Status        string
	GatewayHandle string
	CreatedAt     time.Time
}

type AttendeeSnapshot struct {
	ID         uuid.UUID
	FullName   string
	Email      string
	NationalID string
	Phone      string
}

type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

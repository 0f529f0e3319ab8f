package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type EventView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Venue          string          `json:"venue"`
	StartsAt       time.Time       `json:"starts_at"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ReservationView struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	EventID       uuid.UUID       `json:"event_id"`
	EventName     string          `json:"event_name"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	GatewayHandle *string         `json:"gateway_handle,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type TicketView struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	EventID       uuid.UUID       `json:"event_id"`
	AttendeeName  string          `json:"attendee_name"`
	AttendeeEmail string          `json:"attendee_email"`
	Status        string          `json:"status"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Currency      string          `json:"currency"`
	IssuedAt      time.Time       `json:"issued_at"`
}

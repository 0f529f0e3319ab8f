//go:build unit || e2e

package builder

import (
	"time"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/usecase/commands"
	"tickethub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	BuyerID   uuid.UUID
	EventID   uuid.UUID
	Reference string
	Attendees []reservation.AttendeeInput
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		BuyerID:   uuid.New(),
		EventID:   uuid.New(),
		Reference: "ORD-20260901-0001",
		Attendees: []reservation.AttendeeInput{
			{
				FullName:   "Alice Example",
				Email:      "alice@example.com",
				NationalID: "ID100200300",
				Phone:      "+8562055512345",
			},
		},
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) WithAttendeeCount(n int) *PurchaseBuilder {
	attendees := make([]reservation.AttendeeInput, 0, n)
	for i := 0; i < n; i++ {
		attendees = append(attendees, reservation.AttendeeInput{
			FullName:   "Attendee " + string(rune('A'+i)),
			Email:      "attendee@example.com",
			NationalID: "ID000",
			Phone:      "+8562055500000",
		})
	}
	b.Attendees = attendees
	return b
}

func (b *PurchaseBuilder) BuildInput() commands.PurchaseInput {
	return commands.PurchaseInput{
		BuyerID:   b.BuyerID,
		EventID:   b.EventID,
		Reference: b.Reference,
		Attendees: b.Attendees,
	}
}

type EventSnapshotBuilder struct {
	ID             uuid.UUID
	Name           string
	Venue          string
	StartsAt       time.Time
	TotalSeats     int
	AvailableSeats int
	UnitPrice      decimal.Decimal
	Currency       string
}

func NewEventSnapshotBuilder() *EventSnapshotBuilder {
	return &EventSnapshotBuilder{
		ID:             uuid.New(),
		Name:           "Moonlight Concert",
		Venue:          "National Stadium",
		StartsAt:       time.Now().Add(30 * 24 * time.Hour),
		TotalSeats:     100,
		AvailableSeats: 100,
		UnitPrice:      decimal.NewFromInt(150000),
		Currency:       "LAK",
	}
}

func (b *EventSnapshotBuilder) With(mutate func(*EventSnapshotBuilder)) *EventSnapshotBuilder {
	mutate(b)
	return b
}

func (b *EventSnapshotBuilder) Build() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		Venue:          b.Venue,
		StartsAt:       b.StartsAt,
		TotalSeats:     b.TotalSeats,
		AvailableSeats: b.AvailableSeats,
		UnitPrice:      b.UnitPrice,
		Currency:       b.Currency,
	}
}

type ReservationSnapshotBuilder struct {
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

func NewReservationSnapshotBuilder() *ReservationSnapshotBuilder {
	return &ReservationSnapshotBuilder{
		ID:            uuid.New(),
		Reference:     "ORD-20260901-0001",
		EventID:       uuid.New(),
		BuyerID:       uuid.New(),
		HoldID:        uuid.New(),
		Quantity:      2,
		TotalAmount:   decimal.NewFromInt(300000),
		Currency:      "LAK",
		Status:        "pending",
		GatewayHandle: "txn-1234",
		CreatedAt:     time.Now(),
	}
}

func (b *ReservationSnapshotBuilder) With(mutate func(*ReservationSnapshotBuilder)) *ReservationSnapshotBuilder {
	mutate(b)
	return b
}

func (b *ReservationSnapshotBuilder) Build() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:            b.ID,
		Reference:     b.Reference,
		EventID:       b.EventID,
		BuyerID:       b.BuyerID,
		HoldID:        b.HoldID,
		Quantity:      b.Quantity,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		Status:        b.Status,
		GatewayHandle: b.GatewayHandle,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *ReservationSnapshotBuilder) Attendees() []shared.AttendeeSnapshot {
	attendees := make([]shared.AttendeeSnapshot, 0, b.Quantity)
	for i := 0; i < b.Quantity; i++ {
		attendees = append(attendees, shared.AttendeeSnapshot{
			ID:         uuid.New(),
			FullName:   "Attendee " + string(rune('A'+i)),
			Email:      "attendee@example.com",
			NationalID: "ID000",
			Phone:      "+8562055500000",
		})
	}
	return attendees
}

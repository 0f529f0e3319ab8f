package shared

import (
	"context"
	"time"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Inventory() InventoryRepository
	Reservations() ReservationRepository
	Tickets() TicketRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	ReservationByReference(ctx context.Context, reference string) (*ReservationSnapshot, error)
	ReservationByGatewayHandle(ctx context.Context, handle string) (*ReservationSnapshot, error)
	AttendeesByReservation(ctx context.Context, reservationID uuid.UUID) ([]AttendeeSnapshot, error)
	StalePendingReferences(ctx context.Context, olderThan time.Time, limit int) ([]string, error)
}

// InventoryRepository is the inventory ledger: the only writer of seat
// counters. ReserveSeats decrements optimistically; ReleaseHold and CommitHold
// are compare-and-swap on the hold state, and report whether this caller won.
type InventoryRepository interface {
	ReserveSeats(ctx context.Context, tx db.DBTX, eventID uuid.UUID, quantity int) (uuid.UUID, error)
	ReleaseHold(ctx context.Context, tx db.DBTX, holdID uuid.UUID) (bool, error)
	CommitHold(ctx context.Context, tx db.DBTX, holdID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// TransitionStatus applies status CAS keyed on the current status; a lost
	// race surfaces as KindStaleTransition.
	TransitionStatus(ctx context.Context, tx db.DBTX, reference string, from, to reservation.Status) error
	SetGatewayHandle(ctx context.Context, tx db.DBTX, reference, handle string) error
}

type TicketRepository interface {
	Insert(ctx context.Context, tx db.DBTX, tickets []*ticket.Ticket) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkDone(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time) error
}

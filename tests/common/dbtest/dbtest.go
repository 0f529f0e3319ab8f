//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ResetDB truncates all mutable state between subtests. Events are reference
// data seeded per test, so they go too.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			tickets,
			reservation_attendees,
			reservations,
			inventory_holds,
			notification_jobs,
			events
		CASCADE
	`)
	return err
}

type EventRow struct {
	ID             uuid.UUID
	Name           string
	Venue          string
	StartsAt       time.Time
	TotalSeats     int
	AvailableSeats int
	UnitPrice      decimal.Decimal
	Currency       string
}

func NewEventRow() EventRow {
	return EventRow{
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

// SeedEvent inserts one event and returns its ID.
func SeedEvent(pool *pgxpool.Pool, row EventRow) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO events (id, name, venue, starts_at, total_seats, available_seats, unit_price, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, row.ID, row.Name, row.Venue, row.StartsAt, row.TotalSeats, row.AvailableSeats, row.UnitPrice, row.Currency)
	return row.ID, err
}

// AvailableSeats reads the current seat counter for assertions.
func AvailableSeats(pool *pgxpool.Pool, eventID uuid.UUID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seats int
	err := pool.QueryRow(ctx, `SELECT available_seats FROM events WHERE id = $1`, eventID).Scan(&seats)
	return seats, err
}

// BackdateReservation shifts a reservation's created_at so the expiry sweep
// sees it as stale.
func BackdateReservation(pool *pgxpool.Pool, reference string, age time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		UPDATE reservations SET created_at = now() - make_interval(secs => $2) WHERE external_reference = $1
	`, reference, age.Seconds())
	return err
}

func CountRows(pool *pgxpool.Pool, table string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)
	return n, err
}

func ReservationStatus(pool *pgxpool.Pool, reference string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var status string
	err := pool.QueryRow(ctx, `SELECT status FROM reservations WHERE external_reference = $1`, reference).Scan(&status)
	return status, err
}

func HoldState(pool *pgxpool.Pool, reference string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var state string
	err := pool.QueryRow(ctx, `
		SELECT h.state FROM inventory_holds h
		JOIN reservations r ON r.hold_id = h.id
		WHERE r.external_reference = $1
	`, reference).Scan(&state)
	return state, err
}

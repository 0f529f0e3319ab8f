package readstore

import (
	"context"
	"errors"
	"time"

	"tickethub/internal/infra"
	"tickethub/internal/infra/db"
	"tickethub/internal/usecase/queries"
	"tickethub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT r.id, r.external_reference, r.event_id, e.name, r.buyer_id, r.quantity,
       r.total_amount::text, r.currency, r.status, r.gateway_handle, r.created_at, r.updated_at
FROM reservations r
JOIN events e ON e.id = r.event_id
WHERE r.external_reference = $1`

func (s *ReservationReadStore) FindByReference(ctx context.Context, reference string) (*queries.ReservationView, error) {
	var (
		v         queries.ReservationView
		amountStr string
	)
	err := s.db.QueryRow(ctx, reservationViewSQL, reference).Scan(
		&v.ID, &v.Reference, &v.EventID, &v.EventName, &v.BuyerID, &v.Quantity,
		&amountStr, &v.Currency, &v.Status, &v.GatewayHandle, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get reservation", err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse total amount", err)
	}
	v.TotalAmount = amount
	return &v, nil
}

const ticketViewsSQL = `
SELECT t.id, t.code, t.reservation_id, t.event_id, a.full_name, a.email,
       t.status, t.amount_paid::text, t.currency, t.issued_at
FROM tickets t
JOIN reservation_attendees a ON a.id = t.attendee_id
WHERE t.reservation_id = $1
ORDER BY a.seat_index`

func (s *ReservationReadStore) TicketsByReservation(ctx context.Context, reservationID uuid.UUID) ([]queries.TicketView, error) {
	rows, err := s.db.Query(ctx, ticketViewsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list tickets", err)
	}
	defer rows.Close()

	var views []queries.TicketView
	for rows.Next() {
		var (
			v         queries.TicketView
			amountStr string
		)
		if err := rows.Scan(
			&v.ID, &v.Code, &v.ReservationID, &v.EventID, &v.AttendeeName, &v.AttendeeEmail,
			&v.Status, &amountStr, &v.Currency, &v.IssuedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan ticket", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse amount paid", err)
		}
		v.AmountPaid = amount
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate tickets", err)
	}
	return views, nil
}

const reservationSnapshotByRefSQL = `
SELECT id, external_reference, event_id, buyer_id, hold_id, quantity,
       total_amount::text, currency, status, COALESCE(gateway_handle, ''), created_at
FROM reservations
WHERE external_reference = $1`

const reservationSnapshotByHandleSQL = `
SELECT id, external_reference, event_id, buyer_id, hold_id, quantity,
       total_amount::text, currency, status, COALESCE(gateway_handle, ''), created_at
FROM reservations
WHERE gateway_handle = $1`

func (s *ReservationReadStore) SnapshotByReference(ctx context.Context, reference string) (*shared.ReservationSnapshot, error) {
	return s.scanSnapshot(s.db.QueryRow(ctx, reservationSnapshotByRefSQL, reference))
}

func (s *ReservationReadStore) SnapshotByGatewayHandle(ctx context.Context, handle string) (*shared.ReservationSnapshot, error) {
	return s.scanSnapshot(s.db.QueryRow(ctx, reservationSnapshotByHandleSQL, handle))
}

func (s *ReservationReadStore) scanSnapshot(row pgx.Row) (*shared.ReservationSnapshot, error) {
	var (
		snap      shared.ReservationSnapshot
		amountStr string
	)
	err := row.Scan(
		&snap.ID, &snap.Reference, &snap.EventID, &snap.BuyerID, &snap.HoldID, &snap.Quantity,
		&amountStr, &snap.Currency, &snap.Status, &snap.GatewayHandle, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get reservation snapshot", err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse total amount", err)
	}
	snap.TotalAmount = amount
	return &snap, nil
}

const attendeesSQL = `
SELECT id, full_name, email, national_id, phone
FROM reservation_attendees
WHERE reservation_id = $1
ORDER BY seat_index`

func (s *ReservationReadStore) AttendeesByReservation(ctx context.Context, reservationID uuid.UUID) ([]shared.AttendeeSnapshot, error) {
	rows, err := s.db.Query(ctx, attendeesSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list attendees", err)
	}
	defer rows.Close()

	var attendees []shared.AttendeeSnapshot
	for rows.Next() {
		var a shared.AttendeeSnapshot
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.NationalID, &a.Phone); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan attendee", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate attendees", err)
	}
	return attendees, nil
}

const stalePendingSQL = `
SELECT external_reference
FROM reservations
WHERE status = 'pending' AND created_at < $1
ORDER BY created_at
LIMIT $2`

func (s *ReservationReadStore) StalePendingReferences(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
	rows, err := s.db.Query(ctx, stalePendingSQL, olderThan, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list stale pending reservations", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reference", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate references", err)
	}
	return refs, nil
}

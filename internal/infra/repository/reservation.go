package repository

import (
	"context"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/infra"
	"tickethub/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (id, external_reference, event_id, buyer_id, hold_id, quantity, total_amount, currency, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const insertAttendeeSQL = `
INSERT INTO reservation_attendees (id, reservation_id, seat_index, full_name, email, national_id, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create persists the reservation and its attendee rows. A reused external
// reference violates the unique index and surfaces as KindDuplicateKey; the
// surrounding transaction rollback also undoes the inventory decrement taken
// moments earlier, which is what keeps duplicate submissions side-effect free.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.Reference().String(),
		res.EventID(),
		res.BuyerID(),
		res.HoldID(),
		res.Quantity(),
		res.TotalAmount().Amount().String(),
		res.TotalAmount().Currency(),
		res.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to create reservation", err)
	}

	for i, a := range res.Attendees() {
		_, err := tx.Exec(ctx, insertAttendeeSQL,
			uuid.New(), res.ID(), i, a.FullName(), a.Email(), a.NationalID(), a.Phone(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to create attendee record", err)
		}
	}

	return res.ID(), nil
}

const transitionStatusSQL = `
UPDATE reservations
SET status = $3, updated_at = now()
WHERE external_reference = $1 AND status = $2`

// TransitionStatus is the compare-and-swap that makes duplicate and
// out-of-order callbacks safe: the update applies only when the row still
// holds the expected current status.
func (r *ReservationRepository) TransitionStatus(ctx context.Context, tx db.DBTX, reference string, from, to reservation.Status) error {
	tag, err := tx.Exec(ctx, transitionStatusSQL, reference, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to transition reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindStaleTransition, "reservation status changed concurrently", nil)
	}
	return nil
}

const setGatewayHandleSQL = `
UPDATE reservations
SET gateway_handle = $2, updated_at = now()
WHERE external_reference = $1 AND gateway_handle IS NULL`

func (r *ReservationRepository) SetGatewayHandle(ctx context.Context, tx db.DBTX, reference, handle string) error {
	tag, err := tx.Exec(ctx, setGatewayHandleSQL, reference, handle)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to set gateway handle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindStaleTransition, "gateway handle already set", nil)
	}
	return nil
}

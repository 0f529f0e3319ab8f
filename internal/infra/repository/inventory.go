package repository

import (
	"context"

	"tickethub/internal/infra"
	"tickethub/internal/infra/db"

	"github.com/google/uuid"
)

// InventoryRepository is the sole writer of events.available_seats. The
// decrement happens at reserve time behind a conditional single-row update,
// so two concurrent buyers can never take the same last seat.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

const reserveSeatsSQL = `
UPDATE events
SET available_seats = available_seats - $2, updated_at = now()
WHERE id = $1 AND available_seats >= $2`

const insertHoldSQL = `
INSERT INTO inventory_holds (id, event_id, quantity, state)
VALUES ($1, $2, $3, 'held')`

// ReserveSeats takes an optimistic hold: the seat counter is decremented
// immediately and a hold row records the reversible claim.
func (r *InventoryRepository) ReserveSeats(ctx context.Context, tx db.DBTX, eventID uuid.UUID, quantity int) (uuid.UUID, error) {
	tag, err := tx.Exec(ctx, reserveSeatsSQL, eventID, quantity)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to decrement available seats", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr(infra.KindInsufficientSeats, "not enough seats available", nil)
	}

	holdID := uuid.New()
	if _, err := tx.Exec(ctx, insertHoldSQL, holdID, eventID, quantity); err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to record inventory hold", err)
	}

	return holdID, nil
}

const releaseHoldSQL = `
UPDATE inventory_holds
SET state = 'released', updated_at = now()
WHERE id = $1 AND state = 'held'`

const recreditSeatsSQL = `
UPDATE events
SET available_seats = available_seats + h.quantity, updated_at = now()
FROM inventory_holds h
WHERE h.id = $1 AND events.id = h.event_id`

// ReleaseHold re-credits seats for a hold that never converted to tickets.
// The CAS on the hold state guarantees a hold is credited back at most once,
// and never after it was committed.
func (r *InventoryRepository) ReleaseHold(ctx context.Context, tx db.DBTX, holdID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, releaseHoldSQL, holdID)
	if err != nil {
		return false, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to release inventory hold", err)
	}
	if tag.RowsAffected() == 0 {
		// Already released or committed; nothing to credit back.
		return false, nil
	}

	if _, err := tx.Exec(ctx, recreditSeatsSQL, holdID); err != nil {
		return false, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to re-credit seats", err)
	}
	return true, nil
}

const commitHoldSQL = `
UPDATE inventory_holds
SET state = 'committed', updated_at = now()
WHERE id = $1 AND state = 'held'`

// CommitHold marks the decrement permanent. No seat arithmetic: the seats
// were already taken at reserve time.
func (r *InventoryRepository) CommitHold(ctx context.Context, tx db.DBTX, holdID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, commitHoldSQL, holdID)
	if err != nil {
		return false, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to commit inventory hold", err)
	}
	return tag.RowsAffected() == 1, nil
}

package repository

import (
	"context"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/infra"
	"tickethub/internal/infra/db"
)

type TicketRepository struct{}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

const insertTicketSQL = `
INSERT INTO tickets (id, code, reservation_id, event_id, attendee_id, status, amount_paid, currency, gateway_handle, issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Insert persists a batch of freshly issued tickets. A code collision (or a
// second ticket for the same attendee slot) violates a unique index and
// surfaces as KindDuplicateKey for the issuer to handle.
func (r *TicketRepository) Insert(ctx context.Context, tx db.DBTX, tickets []*ticket.Ticket) error {
	for _, t := range tickets {
		_, err := tx.Exec(ctx, insertTicketSQL,
			t.ID(),
			t.Code(),
			t.ReservationID(),
			t.EventID(),
			t.AttendeeID(),
			t.Status().String(),
			t.AmountPaid().Amount().String(),
			t.AmountPaid().Currency(),
			t.GatewayHandle(),
			t.IssuedAt(),
		)
		if err != nil {
			return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to insert ticket", err)
		}
	}
	return nil
}

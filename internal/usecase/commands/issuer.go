package commands

import (
	"context"
	"encoding/json"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/infra"
	"tickethub/internal/pkg/clock"
	"tickethub/internal/pkg/errs"
	"tickethub/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// maxCodeRetries bounds regeneration when a generated ticket code collides
// with an existing one. Collisions are astronomically rare; the bound exists
// so a broken random source cannot spin forever.
const maxCodeRetries = 3

var errCodeExhausted = errs.New("could not generate unique ticket codes")

// TicketIssuer materializes tickets for a confirmed reservation. It only ever
// runs inside the transaction that won the pending -> confirmed race, which is
// what makes issuance exactly-once.
type TicketIssuer struct {
	codes *ticket.CodeGenerator
	clock clock.Clock
}

func NewTicketIssuer(codes *ticket.CodeGenerator, clk clock.Clock) *TicketIssuer {
	return &TicketIssuer{codes: codes, clock: clk}
}

type issuedNotification struct {
	Reference   string   `json:"reference"`
	EventID     string   `json:"event_id"`
	TicketCodes []string `json:"ticket_codes"`
}

// IssueForReservation inserts one ticket per attendee and enqueues the buyer
// notification, all on the caller's transaction.
func (i *TicketIssuer) IssueForReservation(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ReservationSnapshot,
) ([]*ticket.Ticket, error) {
	attendees, err := tx.Reads().AttendeesByReservation(ctx, snap.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load attendees for issuance")
	}
	if len(attendees) == 0 {
		return nil, errs.New("confirmed reservation has no attendees")
	}

	unitAmount := snap.TotalAmount.DivRound(decimal.NewFromInt(int64(len(attendees))), 2)
	amountPaid, err := reservation.NewMoney(unitAmount, snap.Currency)
	if err != nil {
		return nil, errs.Wrap(err, "invalid per-ticket amount")
	}

	tickets, err := i.buildTickets(snap, attendees, amountPaid)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		err = tx.Tickets().Insert(ctx, tx.DB(), tickets)
		if err == nil {
			break
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) || attempt >= maxCodeRetries {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, errs.Mark(err, errCodeExhausted)
			}
			return nil, errs.Wrap(err, "failed to insert tickets")
		}
		tickets, err = i.buildTickets(snap, attendees, amountPaid)
		if err != nil {
			return nil, err
		}
	}

	if err := i.enqueueNotification(ctx, tx, snap, tickets); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (i *TicketIssuer) buildTickets(
	snap *shared.ReservationSnapshot,
	attendees []shared.AttendeeSnapshot,
	amountPaid reservation.Money,
) ([]*ticket.Ticket, error) {
	now := i.clock.Now()
	tickets := make([]*ticket.Ticket, 0, len(attendees))

	for _, a := range attendees {
		attendee, err := reservation.NewAttendee(a.FullName, a.Email, a.NationalID, a.Phone)
		if err != nil {
			return nil, errs.Wrap(err, "stored attendee failed validation")
		}

		code, err := i.codes.NewCode()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate ticket code")
		}

		tickets = append(tickets, ticket.Issue(
			code,
			snap.ID, snap.EventID, a.ID,
			attendee,
			amountPaid,
			snap.GatewayHandle,
			now,
		))
	}
	return tickets, nil
}

func (i *TicketIssuer) enqueueNotification(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ReservationSnapshot,
	tickets []*ticket.Ticket,
) error {
	codes := make([]string, 0, len(tickets))
	for _, t := range tickets {
		codes = append(codes, t.Code())
	}

	payload, err := json.Marshal(issuedNotification{
		Reference:   snap.Reference,
		EventID:     snap.EventID.String(),
		TicketCodes: codes,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	topic := "buyer-" + snap.BuyerID.String()
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "tickets_issued", topic, payload, i.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to enqueue issuance notification")
	}
	return nil
}

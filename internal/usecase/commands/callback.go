package commands

import (
	"context"
	"log/slog"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/gateway"
	"tickethub/internal/infra"
	"tickethub/internal/monitoring"
	"tickethub/internal/pkg/errs"
	"tickethub/internal/usecase/shared"
)

type CallbackUsecase interface {
	HandleCallback(ctx context.Context, raw []byte) error
}

type callbackInteractor struct {
	uow      shared.UnitOfWork
	gw       gateway.PaymentGateway
	issuer   *TicketIssuer
	sessions *gateway.SessionStore
	metrics  *monitoring.Metrics
}

func NewCallbackUsecase(
	uow shared.UnitOfWork,
	gw gateway.PaymentGateway,
	issuer *TicketIssuer,
	sessions *gateway.SessionStore,
	metrics *monitoring.Metrics,
) CallbackUsecase {
	return &callbackInteractor{
		uow:      uow,
		gw:       gw,
		issuer:   issuer,
		sessions: sessions,
		metrics:  metrics,
	}
}

// HandleCallback applies one provider confirmation to the reservation it
// correlates with. Delivery is at-least-once and unordered, so every effect
// here is guarded by a compare-and-swap: replays and late duplicates land on
// the stale-transition path and become no-ops.
func (c *callbackInteractor) HandleCallback(ctx context.Context, raw []byte) error {
	conf, err := c.gw.ParseCallback(raw)
	if err != nil {
		return err
	}

	c.metrics.CallbacksTotal.WithLabelValues(string(conf.Outcome)).Inc()

	if conf.Outcome == gateway.OutcomePending {
		// Informational only; the reservation is already pending.
		return nil
	}

	var resolvedReference string

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByGatewayHandle(ctx, conf.Handle)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.recordAnomaly(monitoring.AnomalyUnknownHandle, conf, "")
				return nil
			}
			return errs.Wrap(err, "failed to resolve callback handle")
		}
		resolvedReference = snap.Reference

		if !conf.Amount.Equal(snap.TotalAmount) || conf.Currency != snap.Currency {
			// Logged and counted, but the provider's outcome still applies:
			// the money has already moved or it hasn't.
			c.recordAnomaly(monitoring.AnomalyAmountMismatch, conf, snap.Reference)
		}

		switch conf.Outcome {
		case gateway.OutcomeApproved:
			return c.applyApproval(ctx, tx, snap, conf)
		case gateway.OutcomeRejected:
			return c.applyRejection(ctx, tx, snap, conf)
		default:
			return nil
		}
	})
	if err != nil {
		return err
	}

	if resolvedReference != "" {
		if err := c.sessions.Delete(ctx, resolvedReference); err != nil {
			slog.Warn("failed to drop payment session",
				"reference", resolvedReference,
				"error", err.Error())
		}
	}
	return nil
}

// applyApproval confirms the reservation and, as the CAS winner, commits the
// inventory hold and issues tickets in the same transaction.
func (c *callbackInteractor) applyApproval(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ReservationSnapshot,
	conf *gateway.CanonicalConfirmation,
) error {
	err := tx.Reservations().TransitionStatus(ctx, tx.DB(),
		snap.Reference, reservation.StatusPending, reservation.StatusConfirmed)
	if err != nil {
		if infra.IsKind(err, infra.KindStaleTransition) {
			c.resolveStale(ctx, tx, snap.Reference, reservation.StatusConfirmed, conf)
			return nil
		}
		return errs.Wrap(err, "failed to confirm reservation")
	}

	won, err := tx.Inventory().CommitHold(ctx, tx.DB(), snap.HoldID)
	if err != nil {
		return errs.Wrap(err, "failed to commit inventory hold")
	}
	if !won {
		// The status CAS succeeded, so the hold must still be ours. A lost
		// hold CAS here means state has diverged.
		return errs.New("inventory hold not in held state for confirmed reservation")
	}

	tickets, err := c.issuer.IssueForReservation(ctx, tx, snap)
	if err != nil {
		return err
	}

	c.metrics.TicketsIssuedTotal.Add(float64(len(tickets)))
	slog.Info("reservation confirmed",
		"reference", snap.Reference,
		"tickets", len(tickets),
		"handle", conf.Handle)
	return nil
}

// applyRejection fails the reservation and releases its seats. The release
// CAS guarantees the seats are credited back at most once even when the
// expiry sweep races the same hold.
func (c *callbackInteractor) applyRejection(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ReservationSnapshot,
	conf *gateway.CanonicalConfirmation,
) error {
	err := tx.Reservations().TransitionStatus(ctx, tx.DB(),
		snap.Reference, reservation.StatusPending, reservation.StatusFailed)
	if err != nil {
		if infra.IsKind(err, infra.KindStaleTransition) {
			c.resolveStale(ctx, tx, snap.Reference, reservation.StatusFailed, conf)
			return nil
		}
		return errs.Wrap(err, "failed to mark reservation failed")
	}

	if _, err := tx.Inventory().ReleaseHold(ctx, tx.DB(), snap.HoldID); err != nil {
		return errs.Wrap(err, "failed to release inventory hold")
	}

	slog.Info("reservation failed by gateway",
		"reference", snap.Reference,
		"handle", conf.Handle)
	return nil
}

// resolveStale distinguishes a harmless replay from a genuinely conflicting
// outcome after the reservation already resolved the other way. First
// resolution wins either way; conflicts are surfaced for operators.
func (c *callbackInteractor) resolveStale(
	ctx context.Context,
	tx shared.Tx,
	reference string,
	wanted reservation.Status,
	conf *gateway.CanonicalConfirmation,
) {
	current, err := tx.Reads().ReservationByReference(ctx, reference)
	if err != nil {
		slog.Warn("could not inspect reservation after stale transition",
			"reference", reference,
			"error", err.Error())
		return
	}

	if current.Status == wanted.String() {
		slog.Debug("duplicate callback ignored", "reference", reference, "handle", conf.Handle)
		return
	}

	c.recordAnomaly(monitoring.AnomalyConflictingOutcome, conf, reference)
}

func (c *callbackInteractor) recordAnomaly(kind string, conf *gateway.CanonicalConfirmation, reference string) {
	c.metrics.CallbackAnomaliesTotal.WithLabelValues(kind).Inc()
	slog.Warn("payment callback anomaly",
		"kind", kind,
		"handle", conf.Handle,
		"outcome", string(conf.Outcome),
		"amount", conf.Amount.String(),
		"currency", conf.Currency,
		"reference", reference)
}

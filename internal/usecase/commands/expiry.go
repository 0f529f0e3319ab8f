package commands

import (
	"context"
	"log/slog"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/infra"
	"tickethub/internal/monitoring"
	"tickethub/internal/pkg/clock"
	"tickethub/internal/pkg/config"
	"tickethub/internal/pkg/errs"
	"tickethub/internal/usecase/shared"
)

type ExpiryUsecase interface {
	ExpireStalePending(ctx context.Context) (int, error)
}

type expiryInteractor struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *monitoring.Metrics
	cfg     config.ReservationConfig
}

func NewExpiryUsecase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	metrics *monitoring.Metrics,
	cfg config.ReservationConfig,
) ExpiryUsecase {
	return &expiryInteractor{uow: uow, clock: clk, metrics: metrics, cfg: cfg}
}

// ExpireStalePending sweeps reservations that stayed pending past the TTL,
// expiring each and releasing its seats. Each reservation gets its own
// transaction so one contested row cannot stall the whole batch; a sweep that
// races a late callback simply loses the status CAS and moves on.
func (e *expiryInteractor) ExpireStalePending(ctx context.Context) (int, error) {
	cutoff := e.clock.Now().Add(-e.cfg.PendingTTL)

	references, err := e.uow.CommandReads().StalePendingReferences(ctx, cutoff, e.cfg.SweepBatch)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list stale reservations")
	}

	expired := 0
	for _, reference := range references {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		won, err := e.expireOne(ctx, reference)
		if err != nil {
			slog.Warn("failed to expire reservation",
				"reference", reference,
				"error", err.Error())
			continue
		}
		if won {
			expired++
		}
	}

	if expired > 0 {
		e.metrics.ReservationsExpiredTotal.Add(float64(expired))
		slog.Info("expired stale reservations", "count", expired)
	}
	return expired, nil
}

func (e *expiryInteractor) expireOne(ctx context.Context, reference string) (bool, error) {
	won := false

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByReference(ctx, reference)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}

		err = tx.Reservations().TransitionStatus(ctx, tx.DB(),
			reference, reservation.StatusPending, reservation.StatusExpired)
		if err != nil {
			if infra.IsKind(err, infra.KindStaleTransition) {
				// A callback resolved it between the listing and now.
				return nil
			}
			return err
		}

		if _, err := tx.Inventory().ReleaseHold(ctx, tx.DB(), snap.HoldID); err != nil {
			return err
		}

		won = true
		return nil
	})
	return won, err
}

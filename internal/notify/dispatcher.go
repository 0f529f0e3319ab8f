package notify

import (
	"context"
	"log/slog"
	"time"

	"tickethub/internal/pkg/clock"
	"tickethub/internal/pkg/config"
	"tickethub/internal/usecase/shared"
)

// drainBatch bounds how many jobs one poll claims; FOR UPDATE SKIP LOCKED on
// the claim keeps concurrent dispatchers from double-delivering.
const drainBatch = 50

// Dispatcher drains the notification_jobs outbox and publishes each job.
// Jobs are written in the same transaction as the state change they announce,
// so delivery is at-least-once and never announces uncommitted state.
type Dispatcher struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.NotifyConfig
}

func NewDispatcher(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.NotifyConfig) *Dispatcher {
	return &Dispatcher{uow: uow, publisher: publisher, clock: clk, cfg: cfg}
}

// Run polls until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DrainOnce(ctx); err != nil {
				slog.Warn("notification drain failed", "error", err.Error())
			}
		}
	}
}

// DrainOnce claims due jobs and publishes them. A failed publish reschedules
// the job instead of failing the batch.
func (d *Dispatcher) DrainOnce(ctx context.Context) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()

		jobs, err := tx.Notifications().ClaimDueJobs(ctx, tx.DB(), now, drainBatch)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := d.publisher.Publish(ctx, job.Topic, job.Payload); err != nil {
				slog.Warn("notification publish failed, rescheduling",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"error", err.Error())
				if err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, now.Add(d.cfg.RetryAfter)); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkDone(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

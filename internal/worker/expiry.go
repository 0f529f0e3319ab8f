package worker

import (
	"context"
	"log/slog"
	"time"

	"tickethub/internal/pkg/config"
	"tickethub/internal/usecase/commands"
)

// ExpirySweeper periodically reclaims seats from reservations that stayed
// pending past the TTL.
type ExpirySweeper struct {
	expiry commands.ExpiryUsecase
	cfg    config.ReservationConfig
}

func NewExpirySweeper(expiry commands.ExpiryUsecase, cfg config.ReservationConfig) *ExpirySweeper {
	return &ExpirySweeper{expiry: expiry, cfg: cfg}
}

// Run sweeps until the context is cancelled.
func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.expiry.ExpireStalePending(ctx); err != nil {
				slog.Warn("expiry sweep failed", "error", err.Error())
			}
		}
	}
}

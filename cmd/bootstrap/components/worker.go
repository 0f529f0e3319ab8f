package components

import (
	"context"

	"tickethub/internal/notify"
	"tickethub/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		notify.NewPublisher,
		notify.NewDispatcher,
		worker.NewExpirySweeper,
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, dispatcher *notify.Dispatcher, sweeper *worker.ExpirySweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatcher.Run(ctx)
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

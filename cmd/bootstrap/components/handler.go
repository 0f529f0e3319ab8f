package components

import (
	"tickethub/internal/handler"
	"tickethub/internal/handler/api"
	"tickethub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewCallbackHandler,
		api.NewReservationHandler,
		api.NewEventHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

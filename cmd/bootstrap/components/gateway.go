package components

import (
	"tickethub/internal/gateway"
	"tickethub/internal/gateway/yespay"
	"tickethub/internal/pkg/config"
	"tickethub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			yespay.NewClient,
			fx.As(new(gateway.PaymentGateway)),
		),
		NewSessionStore,
		func(store *gateway.SessionStore) queries.PaymentSessionReader { return store },
	),
)

func NewSessionStore(rdb *redis.Client, cfg config.ReservationConfig) *gateway.SessionStore {
	return gateway.NewSessionStore(rdb, cfg.SessionTTL)
}

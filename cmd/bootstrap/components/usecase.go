package components

import (
	"tickethub/internal/domain/reservation"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/pkg/clock"
	"tickethub/internal/usecase/commands"
	"tickethub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	ticket.NewCodeGenerator,
	commands.NewTicketIssuer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseUsecase,
		commands.NewCallbackUsecase,
		commands.NewExpiryUsecase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQuery,
		queries.NewEventQuery,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		queries.NewTokenValidator,
	),
)

package components

import (
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/pkg/password"
	"nagoyameshi/internal/usecase"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewBcryptHasher,
		fx.As(new(password.Hasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewRestaurantUseCase,
		commands.NewCategoryCommands,
		commands.NewReviewUseCase,
		commands.NewFavoriteCommands,
		commands.NewContentCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ReservationCommands {
			return commands.NewReservationUseCase(uow, clk, cfg.App.Location())
		},
		func(
			uow shared.UnitOfWork,
			gateway commands.BillingGateway,
			tokens commands.TokenIssuer,
			revoker commands.TokenRevoker,
			clk clock.Clock,
			cfg config.Config,
		) commands.SubscriptionCommands {
			return commands.NewSubscriptionUseCase(uow, gateway, tokens, revoker, clk, cfg.Billing.PriceID)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRestaurantQueries,
		queries.NewCategoryQueries,
		queries.NewReviewQueries,
		queries.NewReservationQueries,
		queries.NewFavoriteQueries,
		queries.NewUserQueries,
		queries.NewHomeQueries,
		queries.NewDashboardQueries,
		queries.NewContentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

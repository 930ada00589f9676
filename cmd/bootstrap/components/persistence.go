package components

import (
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/readstore"
	"nagoyameshi/internal/infra/uow"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewReadOnlyRunner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewFavoriteReadStore,
			fx.As(new(queries.FavoriteReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(queries.ContentReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewReadOnlyRunner(u shared.UnitOfWork) readstore.ReadOnlyRunner {
	return u
}

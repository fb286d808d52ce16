package components

import (
	"rental-inventory/internal/infra/readstore"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Sales
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SalesReadQueries)),
		),
		fx.Annotate(
			readstore.NewSalesReadStore,
			fx.As(new(queries.SalesReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

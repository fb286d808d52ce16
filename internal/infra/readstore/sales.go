package readstore

import (
	"context"
	"log/slog"
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/sales"
	"rental-inventory/internal/infra"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"
)

type SalesReadQueries interface {
	ListSalesBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSalesBetweenParams) ([]sqlc.SalesRecords, error)
}

type SalesReadStore struct {
	queries SalesReadQueries
	db      sqlc.DBTX
	loc     *time.Location
	logger  *slog.Logger
}

func NewSalesReadStore(queries SalesReadQueries, db sqlc.DBTX, loc *time.Location, logger *slog.Logger) *SalesReadStore {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
		logger:  logger,
	}
}

func (s *SalesReadStore) ListBetween(ctx context.Context, from, to time.Time) ([]sales.Record, error) {
	rows, err := s.queries.ListSalesBetween(ctx, s.db, sqlc.ListSalesBetweenParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales records", err)
	}

	records := make([]sales.Record, 0, len(rows))
	for _, row := range rows {
		date, err := pgconv.DateFromPgtype(row.SaleDate, s.loc)
		if err != nil {
			s.logger.Warn("skipping sales row",
				slog.String("id", row.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		records = append(records, sales.Record{
			Item:        inventory.NewItemKey(row.DesignCode, row.Size),
			Date:        date,
			Quantity:    int(row.Quantity),
			CustomerRef: pgconv.StringFromPgtype(row.CustomerRef),
		})
	}
	return records, nil
}

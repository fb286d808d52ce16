package readstore

import (
	"context"
	"log/slog"
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
	"rental-inventory/internal/infra"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"
)

type ReservationReadQueries interface {
	ListReservationsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsOverlappingParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
	loc     *time.Location
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX, loc *time.Location, logger *slog.Logger) *ReservationReadStore {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
		logger:  logger,
	}
}

// ListOverlapping returns reservations whose date range touches [from, to].
// Rows with an unknown status or a broken start date are logged and skipped.
func (r *ReservationReadStore) ListOverlapping(ctx context.Context, from, to time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsOverlapping(ctx, r.db, sqlc.ListReservationsOverlappingParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		rsv, err := r.toReservation(row)
		if err != nil {
			r.logger.Warn("skipping reservation row",
				slog.String("id", row.ID.String()),
				slog.String("status", row.Status),
				slog.String("error", err.Error()),
			)
			continue
		}
		result = append(result, rsv)
	}
	return result, nil
}

func (r *ReservationReadStore) toReservation(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	start, err := pgconv.DateFromPgtype(row.StartDate, r.loc)
	if err != nil {
		return nil, err
	}
	override, err := pgconv.DecimalPtrFromNumeric(row.PriceOverride)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		inventory.NewItemKey(row.DesignCode, row.Size),
		int(row.Quantity),
		start,
		pgconv.DatePtrFromPgtype(row.EndDate, r.loc),
		status,
		override,
		pgconv.StringFromPgtype(row.CustomerRef),
	), nil
}

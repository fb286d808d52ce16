//go:build unit || e2e

package builder

import (
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	DesignCode    string
	Size          string
	Quantity      int
	StartDate     time.Time
	EndDate       *time.Time
	Status        reservation.Status
	PriceOverride *decimal.Decimal
	CustomerRef   string
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	return &ReservationBuilder{
		ID:          uuid.New(),
		DesignCode:  "D-100",
		Size:        "M",
		Quantity:    1,
		StartDate:   start,
		EndDate:     &end,
		Status:      reservation.StatusActive,
		CustomerRef: "C-1",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithItem(designCode, size string) *ReservationBuilder {
	b.DesignCode = designCode
	b.Size = size
	return b
}

func (b *ReservationBuilder) WithQuantity(q int) *ReservationBuilder {
	b.Quantity = q
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

// WithDates takes YYYY-MM-DD strings. An empty end means a single-day reservation.
func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate = mustDate(start)
	if end == "" {
		b.EndDate = nil
	} else {
		e := mustDate(end)
		b.EndDate = &e
	}
	return b
}

func (b *ReservationBuilder) WithPriceOverride(price int64) *ReservationBuilder {
	d := decimal.NewFromInt(price)
	b.PriceOverride = &d
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(
		b.ID,
		inventory.NewItemKey(b.DesignCode, b.Size),
		b.Quantity,
		b.StartDate,
		b.EndDate,
		b.Status,
		b.PriceOverride,
		b.CustomerRef,
	)
}

func (b *ReservationBuilder) MustBuild() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		inventory.NewItemKey(b.DesignCode, b.Size),
		b.Quantity,
		b.StartDate,
		b.EndDate,
		b.Status,
		b.PriceOverride,
		b.CustomerRef,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	row := sqlc.Reservations{
		ID:          b.ID,
		DesignCode:  b.DesignCode,
		Size:        b.Size,
		Quantity:    int32(b.Quantity),
		StartDate:   pgconv.DateToPgtype(b.StartDate),
		Status:      b.Status.String(),
		CustomerRef: pgtype.Text{String: b.CustomerRef, Valid: b.CustomerRef != ""},
		CreatedAt:   pgtype.Timestamptz{Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Valid: true},
	}
	if b.EndDate != nil {
		row.EndDate = pgconv.DateToPgtype(*b.EndDate)
	}
	if b.PriceOverride != nil {
		row.PriceOverride = pgconv.DecimalToNumeric(*b.PriceOverride)
	}
	return row
}

func mustDate(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

//go:build unit || e2e

package builder

import (
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/sales"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SalesBuilder struct {
	DesignCode  string
	Size        string
	Date        time.Time
	Quantity    int
	CustomerRef string
}

func NewSalesBuilder() *SalesBuilder {
	return &SalesBuilder{
		DesignCode:  "P-200",
		Size:        "FREE",
		Date:        time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		Quantity:    1,
		CustomerRef: "C-9",
	}
}

func (b *SalesBuilder) With(mutate func(*SalesBuilder)) *SalesBuilder {
	mutate(b)
	return b
}

func (b *SalesBuilder) WithItem(designCode, size string) *SalesBuilder {
	b.DesignCode = designCode
	b.Size = size
	return b
}

func (b *SalesBuilder) WithDate(date string) *SalesBuilder {
	b.Date = mustDate(date)
	return b
}

func (b *SalesBuilder) WithQuantity(q int) *SalesBuilder {
	b.Quantity = q
	return b
}

func (b *SalesBuilder) BuildDomain() sales.Record {
	return sales.Record{
		Item:        inventory.NewItemKey(b.DesignCode, b.Size),
		Date:        b.Date,
		Quantity:    b.Quantity,
		CustomerRef: b.CustomerRef,
	}
}

func (b *SalesBuilder) BuildInfra() sqlc.SalesRecords {
	return sqlc.SalesRecords{
		ID:          uuid.New(),
		DesignCode:  b.DesignCode,
		Size:        b.Size,
		SaleDate:    pgconv.DateToPgtype(b.Date),
		Quantity:    int32(b.Quantity),
		CustomerRef: pgtype.Text{String: b.CustomerRef, Valid: b.CustomerRef != ""},
		CreatedAt:   pgtype.Timestamptz{Valid: true},
	}
}

//go:build unit || e2e

package builder

import (
	"rental-inventory/internal/domain/inventory"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	DesignCode    string
	Size          string
	Category      inventory.Category
	TotalQuantity int
	UnitPrice     decimal.Decimal
	DisplayOrder  int
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		DesignCode:    "D-100",
		Size:          "M",
		Category:      inventory.CategoryRental,
		TotalQuantity: 5,
		UnitPrice:     decimal.NewFromInt(30000),
		DisplayOrder:  0,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithKey(designCode, size string) *ItemBuilder {
	b.DesignCode = designCode
	b.Size = size
	return b
}

func (b *ItemBuilder) WithTotal(total int) *ItemBuilder {
	b.TotalQuantity = total
	return b
}

func (b *ItemBuilder) WithPrice(price int64) *ItemBuilder {
	b.UnitPrice = decimal.NewFromInt(price)
	return b
}

func (b *ItemBuilder) AsPurchase() *ItemBuilder {
	b.Category = inventory.CategoryPurchase
	return b
}

func (b *ItemBuilder) Key() inventory.ItemKey {
	return inventory.NewItemKey(b.DesignCode, b.Size)
}

func (b *ItemBuilder) BuildDomain() (*inventory.Item, error) {
	return inventory.NewItem(b.Key(), b.TotalQuantity, b.UnitPrice, b.Category, b.DisplayOrder)
}

// MustBuild skips validation so tests can construct edge-case items.
func (b *ItemBuilder) MustBuild() *inventory.Item {
	return inventory.ReconstructItem(b.Key(), b.TotalQuantity, b.UnitPrice, b.Category, b.DisplayOrder)
}

func (b *ItemBuilder) BuildInfra() sqlc.InventoryItems {
	return sqlc.InventoryItems{
		ID:            uuid.New(),
		DesignCode:    b.DesignCode,
		Size:          b.Size,
		Category:      b.Category.String(),
		TotalQuantity: int32(b.TotalQuantity),
		UnitPrice:     pgconv.DecimalToNumeric(b.UnitPrice),
		DisplayOrder:  int32(b.DisplayOrder),
		CreatedAt:     pgtype.Timestamptz{Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Valid: true},
	}
}

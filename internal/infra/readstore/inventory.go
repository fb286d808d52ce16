package readstore

import (
	"context"
	"log/slog"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/infra"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/internal/pkg/pgconv"
)

type InventoryReadQueries interface {
	ListInventoryItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.InventoryItems, error)
	ListInventoryItemsByCategory(ctx context.Context, db sqlc.DBTX, category string) ([]sqlc.InventoryItems, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX, logger *slog.Logger) *InventoryReadStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *InventoryReadStore) ListItems(ctx context.Context) ([]*inventory.Item, error) {
	rows, err := r.queries.ListInventoryItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items", err)
	}
	return r.toItems(rows), nil
}

func (r *InventoryReadStore) ListItemsByCategory(ctx context.Context, category inventory.Category) ([]*inventory.Item, error) {
	rows, err := r.queries.ListInventoryItemsByCategory(ctx, r.db, category.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items by category", err)
	}
	return r.toItems(rows), nil
}

// toItems drops rows that cannot be mapped onto the domain.
func (r *InventoryReadStore) toItems(rows []sqlc.InventoryItems) []*inventory.Item {
	items := make([]*inventory.Item, 0, len(rows))
	for _, row := range rows {
		item, err := toItem(row)
		if err != nil {
			r.logger.Warn("skipping inventory row",
				slog.String("id", row.ID.String()),
				slog.String("design_code", row.DesignCode),
				slog.String("size", row.Size),
				slog.String("error", err.Error()),
			)
			continue
		}
		items = append(items, item)
	}
	return items
}

func toItem(row sqlc.InventoryItems) (*inventory.Item, error) {
	category, err := inventory.ParseCategory(row.Category)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructItem(
		inventory.NewItemKey(row.DesignCode, row.Size),
		int(row.TotalQuantity),
		price,
		category,
		int(row.DisplayOrder),
	), nil
}

//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rental-inventory/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertItem(t *testing.T, db DBLike, b *builder.ItemBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(),
		`INSERT INTO inventory_items (id, design_code, size, category, total_quantity, unit_price, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.DesignCode, row.Size, row.Category, row.TotalQuantity, row.UnitPrice, row.DisplayOrder)
	require.NoError(t, err)
	return row.ID
}

func InsertReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, design_code, size, quantity, start_date, end_date, status, price_override, customer_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.ID, row.DesignCode, row.Size, row.Quantity, row.StartDate, row.EndDate, row.Status, row.PriceOverride, row.CustomerRef)
	require.NoError(t, err)
	return row.ID
}

// InsertRawReservationStatus stores a status string as the back office would,
// bypassing the builder's typed status.
func InsertRawReservationStatus(t *testing.T, db DBLike, b *builder.ReservationBuilder, status string) uuid.UUID {
	t.Helper()

	id := InsertReservation(t, db, b)
	_, err := db.Exec(context.Background(), "UPDATE reservations SET status = $1 WHERE id = $2", status, id)
	require.NoError(t, err)
	return id
}

func InsertSale(t *testing.T, db DBLike, b *builder.SalesBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(),
		`INSERT INTO sales_records (id, design_code, size, sale_date, quantity, customer_ref)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		row.ID, row.DesignCode, row.Size, row.SaleDate, row.Quantity, row.CustomerRef)
	require.NoError(t, err)
	return row.ID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

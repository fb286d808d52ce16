//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/sales"
	"rental-inventory/internal/infra"
	sqlc "rental-inventory/internal/infra/sqlc/generated"
	"rental-inventory/tests/common/builder"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSalesReadQueries struct {
	mock.Mock
}

func (m *MockSalesReadQueries) ListSalesBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSalesBetweenParams) ([]sqlc.SalesRecords, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.SalesRecords)
	return rows, args.Error(1)
}

func TestListBetween(t *testing.T) {
	from := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	sale := builder.NewSalesBuilder().WithItem("P-1", "FREE").WithDate("2024-03-12").WithQuantity(4)
	broken := builder.NewSalesBuilder().BuildInfra()
	broken.SaleDate = pgtype.Date{}

	tests := []struct {
		name      string
		rows      []sqlc.SalesRecords
		mockError error
		want      []sales.Record
		wantError bool
	}{
		{
			name: "success",
			rows: []sqlc.SalesRecords{sale.BuildInfra()},
			want: []sales.Record{{
				Item:        inventory.NewItemKey("P-1", "FREE"),
				Date:        time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
				Quantity:    4,
				CustomerRef: "C-9",
			}},
		},
		{
			name: "NULL sale date is skipped",
			rows: []sqlc.SalesRecords{broken},
			want: []sales.Record{},
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSalesReadQueries)
			mockQueries.On("ListSalesBetween", mock.Anything, mock.Anything, mock.Anything).Return(tt.rows, tt.mockError)

			got, err := NewSalesReadStore(mockQueries, nil, time.UTC, nil).ListBetween(context.Background(), from, to)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

//go:build unit

package pgconv

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    string
		wantErr bool
	}{
		{name: "NULL is zero", in: pgtype.Numeric{}, want: "0"},
		{name: "scaled value", in: pgtype.Numeric{Int: big.NewInt(4500000), Exp: -2, Valid: true}, want: "45000"},
		{name: "fraction", in: pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}, want: "123.45"},
		{name: "NaN", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
		{name: "infinity", in: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalFromNumeric(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumericValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("30000.50")
	got, err := DecimalFromNumeric(DecimalToNumeric(d))
	require.NoError(t, err)
	assert.True(t, d.Equal(got))

	ptr, err := DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestDateConversions(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	t.Run("date keeps Y-M-D in the target location", func(t *testing.T) {
		pd := pgtype.Date{Time: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Valid: true}
		got, err := DateFromPgtype(pd, seoul)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, seoul), got)
	})

	t.Run("NULL and infinite dates", func(t *testing.T) {
		_, err := DateFromPgtype(pgtype.Date{}, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDateValue)
		_, err = DateFromPgtype(pgtype.Date{InfinityModifier: pgtype.Infinity, Valid: true}, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDateValue)
		assert.Nil(t, DatePtrFromPgtype(pgtype.Date{}, time.UTC))
	})

	t.Run("to pgtype drops the location", func(t *testing.T) {
		// 00:30 on Mar 11 in Seoul is still Mar 10 in UTC; the calendar date wins
		local := time.Date(2024, 3, 11, 0, 30, 0, 0, seoul)
		pd := DateToPgtype(local)
		assert.True(t, pd.Valid)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), pd.Time)
	})
}

//go:build unit

package availability_test

import (
	"testing"
	"time"

	"rental-inventory/internal/domain/availability"
	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
	"rental-inventory/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(t *testing.T, anchor string) calendar.WeekWindow {
	t.Helper()
	d, err := calendar.ParseDate(anchor, time.UTC)
	require.NoError(t, err)
	return calendar.ResolveWeek(d)
}

func x1() *inventory.Item {
	return builder.NewItemBuilder().WithKey("X1", "M").WithTotal(5).MustBuild()
}

func rsv(status reservation.Status, qty int, start, end string) *reservation.Reservation {
	return builder.NewReservationBuilder().
		WithItem("X1", "M").
		WithStatus(status).
		WithQuantity(qty).
		WithDates(start, end).
		MustBuild()
}

func TestCalculate_Scenarios(t *testing.T) {
	w := week(t, "2024-01-03")
	key := inventory.NewItemKey("X1", "M")

	t.Run("A: one active reservation inside the window", func(t *testing.T) {
		got := availability.Calculate(
			[]*inventory.Item{x1()},
			[]*reservation.Reservation{rsv(reservation.StatusActive, 3, "2024-01-02", "2024-01-05")},
			w,
		)
		want := []availability.Snapshot{{
			Item: key, Week: w, TotalQuantity: 5, ReservedQuantity: 3, RemainingQuantity: 2, UtilizationRate: 60,
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, availability.SoldOut(got))
	})

	t.Run("B: second reservation sells the item out", func(t *testing.T) {
		got := availability.Calculate(
			[]*inventory.Item{x1()},
			[]*reservation.Reservation{
				rsv(reservation.StatusActive, 3, "2024-01-02", "2024-01-05"),
				rsv(reservation.StatusActive, 2, "2024-01-06", "2024-01-06"),
			},
			w,
		)
		require.Len(t, got, 1)
		assert.Equal(t, 5, got[0].ReservedQuantity)
		assert.Equal(t, 0, got[0].RemainingQuantity)
		assert.Equal(t, 100, got[0].UtilizationRate)

		soldOut := availability.SoldOut(got)
		require.Len(t, soldOut, 1)
		assert.Equal(t, key, soldOut[0].Item)
	})

	t.Run("C: overdue counts only for candidates", func(t *testing.T) {
		items := []*inventory.Item{x1()}
		reservations := []*reservation.Reservation{rsv(reservation.StatusOverdue, 4, "2024-01-01", "2024-01-07")}

		current := availability.Calculate(items, reservations, w)
		require.Len(t, current, 1)
		assert.Equal(t, 5, current[0].RemainingQuantity)

		target := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		candidates := availability.Candidates(&target, items, reservations)
		require.Len(t, candidates, 1)
		assert.Equal(t, 1, candidates[0].RemainingQuantity)
		assert.Equal(t, 4, candidates[0].ReservedQuantity)
	})

	t.Run("D: reservation outside the window contributes nothing", func(t *testing.T) {
		got := availability.Calculate(
			[]*inventory.Item{x1()},
			[]*reservation.Reservation{rsv(reservation.StatusActive, 3, "2024-01-01", "2024-01-05")},
			week(t, "2024-01-10"),
		)
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].ReservedQuantity)
		assert.Equal(t, 5, got[0].RemainingQuantity)
	})
}

func TestCalculate_Filtering(t *testing.T) {
	w := week(t, "2024-01-03")
	purchase := builder.NewItemBuilder().WithKey("P1", "F").AsPurchase().MustBuild()
	other := builder.NewItemBuilder().WithKey("Y2", "L").WithTotal(2).MustBuild()

	reservations := []*reservation.Reservation{
		rsv(reservation.StatusScheduled, 1, "2024-01-02", "2024-01-03"),
		rsv(reservation.StatusShipped, 1, "2024-01-02", "2024-01-03"),
		rsv(reservation.StatusReturned, 1, "2024-01-02", "2024-01-03"),
		rsv(reservation.StatusActive, 1, "2024-01-02", "2024-01-03"),
		nil,
	}

	got := availability.Calculate([]*inventory.Item{purchase, x1(), other}, reservations, w)

	require.Len(t, got, 2, "purchase items are excluded")
	assert.Equal(t, inventory.NewItemKey("X1", "M"), got[0].Item)
	assert.Equal(t, 1, got[0].ReservedQuantity, "only active reservations count")
	assert.Equal(t, inventory.NewItemKey("Y2", "L"), got[1].Item)
	assert.Equal(t, 0, got[1].ReservedQuantity, "reservations match on item identity")
}

func TestCalculate_EdgeCases(t *testing.T) {
	w := week(t, "2024-01-03")

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, availability.Calculate(nil, nil, w))
		assert.Empty(t, availability.SoldOut(nil))
	})

	t.Run("zero total is sold out with zero utilization", func(t *testing.T) {
		item := builder.NewItemBuilder().WithKey("Z", "S").WithTotal(0).MustBuild()
		got := availability.Calculate([]*inventory.Item{item}, nil, w)
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].UtilizationRate)
		assert.True(t, got[0].IsSoldOut())
	})

	t.Run("overbooking clamps remaining but not utilization", func(t *testing.T) {
		got := availability.Calculate(
			[]*inventory.Item{x1()},
			[]*reservation.Reservation{rsv(reservation.StatusActive, 8, "2024-01-02", "2024-01-03")},
			w,
		)
		require.Len(t, got, 1)
		assert.Equal(t, 8, got[0].ReservedQuantity)
		assert.Equal(t, 0, got[0].RemainingQuantity)
		assert.Equal(t, 160, got[0].UtilizationRate)
	})

	t.Run("utilization rounds half up", func(t *testing.T) {
		item := builder.NewItemBuilder().WithKey("X1", "M").WithTotal(8).MustBuild()
		got := availability.Calculate(
			[]*inventory.Item{item},
			[]*reservation.Reservation{rsv(reservation.StatusActive, 1, "2024-01-02", "2024-01-02")},
			w,
		)
		assert.Equal(t, 13, got[0].UtilizationRate) // 12.5
	})

	t.Run("touching window edges counts", func(t *testing.T) {
		got := availability.Calculate(
			[]*inventory.Item{x1()},
			[]*reservation.Reservation{
				rsv(reservation.StatusActive, 1, "2023-12-28", "2024-01-01"),
				rsv(reservation.StatusActive, 1, "2024-01-07", "2024-01-10"),
				rsv(reservation.StatusActive, 1, "2024-01-08", "2024-01-10"),
			},
			w,
		)
		assert.Equal(t, 2, got[0].ReservedQuantity)
	})
}

func TestCandidates(t *testing.T) {
	full := builder.NewItemBuilder().WithKey("F", "M").WithTotal(1).MustBuild()
	free := builder.NewItemBuilder().WithKey("X1", "M").WithTotal(5).MustBuild()
	items := []*inventory.Item{full, free}
	reservations := []*reservation.Reservation{
		builder.NewReservationBuilder().WithItem("F", "M").WithStatus(reservation.StatusOverdue).WithDates("2023-12-20", "2024-01-02").MustBuild(),
	}

	t.Run("nil target yields empty result", func(t *testing.T) {
		got := availability.Candidates(nil, items, reservations)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("fully booked items are excluded", func(t *testing.T) {
		target := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
		got := availability.Candidates(&target, items, reservations)
		require.Len(t, got, 1)
		assert.Equal(t, free.Key(), got[0].Item)
		assert.Equal(t, "2024-01-01", got[0].Week.StartDate())
	})

	t.Run("sunday target resolves to following week", func(t *testing.T) {
		target := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
		got := availability.Candidates(&target, items, reservations)
		require.Len(t, got, 2)
		assert.Equal(t, "2024-01-08", got[0].Week.StartDate())
	})
}

func TestStatusFiltersStayDistinct(t *testing.T) {
	assert.True(t, availability.CurrentViewStatuses.Contains(reservation.StatusActive))
	assert.False(t, availability.CurrentViewStatuses.Contains(reservation.StatusOverdue))
	assert.True(t, availability.BookingViewStatuses.Contains(reservation.StatusActive))
	assert.True(t, availability.BookingViewStatuses.Contains(reservation.StatusOverdue))
}

// fixture covers every status, overbooking and out-of-window reservations
func propertyFixture() ([]*inventory.Item, []*reservation.Reservation) {
	items := []*inventory.Item{
		builder.NewItemBuilder().WithKey("A", "S").WithTotal(3).MustBuild(),
		builder.NewItemBuilder().WithKey("B", "M").WithTotal(1).MustBuild(),
		builder.NewItemBuilder().WithKey("C", "L").WithTotal(0).MustBuild(),
		builder.NewItemBuilder().WithKey("D", "S").WithTotal(10).MustBuild(),
	}
	mk := func(code, size string, status reservation.Status, qty int, start, end string) *reservation.Reservation {
		return builder.NewReservationBuilder().WithItem(code, size).WithStatus(status).WithQuantity(qty).WithDates(start, end).MustBuild()
	}
	reservations := []*reservation.Reservation{
		mk("A", "S", reservation.StatusActive, 2, "2024-01-01", "2024-01-02"),
		mk("A", "S", reservation.StatusOverdue, 4, "2023-12-20", "2024-01-03"),
		mk("B", "M", reservation.StatusActive, 1, "2024-01-07", "2024-01-07"),
		mk("C", "L", reservation.StatusActive, 2, "2024-01-03", "2024-01-03"),
		mk("D", "S", reservation.StatusReturned, 9, "2024-01-02", "2024-01-03"),
		mk("D", "S", reservation.StatusActive, 3, "2024-01-08", "2024-01-09"),
		mk("D", "S", reservation.StatusScheduled, 1, "2024-01-04", "2024-01-05"),
	}
	return items, reservations
}

func TestProperties(t *testing.T) {
	items, reservations := propertyFixture()
	anchors := []string{"2023-12-27", "2024-01-03", "2024-01-07", "2024-01-10"}

	for _, anchor := range anchors {
		w := week(t, anchor)
		current := availability.Calculate(items, reservations, w)

		t.Run("non-negativity "+anchor, func(t *testing.T) {
			for _, s := range current {
				assert.GreaterOrEqual(t, s.RemainingQuantity, 0)
				assert.LessOrEqual(t, s.RemainingQuantity, s.TotalQuantity)
			}
		})

		t.Run("idempotence "+anchor, func(t *testing.T) {
			again := availability.Calculate(items, reservations, w)
			if diff := cmp.Diff(current, again); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})

		t.Run("sold-out correctness "+anchor, func(t *testing.T) {
			soldOut := make(map[inventory.ItemKey]bool)
			for _, s := range availability.SoldOut(current) {
				soldOut[s.Item] = true
			}
			for _, s := range current {
				assert.Equal(t, s.RemainingQuantity == 0, soldOut[s.Item], s.Item.String())
			}
		})

		t.Run("booking view never exceeds current view "+anchor, func(t *testing.T) {
			d, err := calendar.ParseDate(anchor, time.UTC)
			require.NoError(t, err)
			byKey := make(map[inventory.ItemKey]availability.Snapshot)
			for _, s := range current {
				byKey[s.Item] = s
			}
			for _, c := range availability.Candidates(&d, items, reservations) {
				assert.LessOrEqual(t, c.RemainingQuantity, byKey[c.Item].RemainingQuantity, c.Item.String())
			}
		})
	}

	t.Run("overlap symmetry", func(t *testing.T) {
		for _, anchor := range anchors {
			w := week(t, anchor)
			for _, r := range reservations {
				assert.Equal(t, availability.Overlaps(r.Span(), w), r.Span().Overlaps(w))
			}
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		before := make([]int, len(reservations))
		for i, r := range reservations {
			before[i] = r.Quantity()
		}
		_ = availability.Calculate(items, reservations, week(t, "2024-01-03"))
		for i, r := range reservations {
			assert.Equal(t, before[i], r.Quantity())
		}
	})
}

func TestCandidates_MatchesCurrentViewWithoutOverdue(t *testing.T) {
	items := []*inventory.Item{x1()}
	reservations := []*reservation.Reservation{rsv(reservation.StatusActive, 2, "2024-01-02", "2024-01-03")}
	target := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	current := availability.Calculate(items, reservations, calendar.ResolveWeek(target))
	candidates := availability.Candidates(&target, items, reservations)

	if diff := cmp.Diff(current, candidates); diff != "" {
		t.Errorf("views diverge without overdue reservations (-current +candidates):\n%s", diff)
	}
}

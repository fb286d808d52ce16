// Package availability computes per-item weekly availability from an inventory
// pool and a point-in-time set of reservations.
//
// Every function here is pure: the same items, reservations and window always
// produce the same snapshots, and inputs are never mutated. A snapshot is only a
// view. Two callers can both observe remaining capacity and both commit a
// reservation; preventing that overbooking is the job of the store that commits
// reservations, not of this package.
package availability

import (
	"math"
	"time"

	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
)

var (
	// CurrentViewStatuses drives the current-week view. Overdue reservations are
	// flagged elsewhere and do not count against this week's capacity.
	CurrentViewStatuses = reservation.NewStatusSet(reservation.StatusActive)

	// BookingViewStatuses drives the bookable-candidate view. Overdue reservations
	// still occupy units until they are returned.
	BookingViewStatuses = reservation.NewStatusSet(reservation.StatusActive, reservation.StatusOverdue)
)

type Snapshot struct {
	Item              inventory.ItemKey
	Week              calendar.WeekWindow
	TotalQuantity     int
	ReservedQuantity  int
	RemainingQuantity int
	UtilizationRate   int
}

func (s Snapshot) IsSoldOut() bool {
	return s.RemainingQuantity == 0
}

func Overlaps(span calendar.Span, window calendar.WeekWindow) bool {
	return window.Overlaps(span)
}

// Calculate returns one snapshot per rental item, in input order, counting only
// active reservations that overlap the window.
func Calculate(items []*inventory.Item, reservations []*reservation.Reservation, window calendar.WeekWindow) []Snapshot {
	return calculateWith(inventory.FilterByCategory(items, inventory.CategoryRental), reservations, window, CurrentViewStatuses)
}

// SoldOut keeps the snapshots with nothing left, preserving order.
func SoldOut(snapshots []Snapshot) []Snapshot {
	out := make([]Snapshot, 0)
	for _, s := range snapshots {
		if s.IsSoldOut() {
			out = append(out, s)
		}
	}
	return out
}

// Candidates returns the rental items that can still take a booking in the week of
// target. Active and overdue reservations both consume capacity here. A nil target
// or a fully booked pool yields an empty slice.
func Candidates(target *time.Time, items []*inventory.Item, reservations []*reservation.Reservation) []Snapshot {
	out := make([]Snapshot, 0)
	if target == nil {
		return out
	}
	window := calendar.ResolveWeek(*target)
	rentals := inventory.FilterByCategory(items, inventory.CategoryRental)
	for _, s := range calculateWith(rentals, reservations, window, BookingViewStatuses) {
		if s.RemainingQuantity > 0 {
			out = append(out, s)
		}
	}
	return out
}

func calculateWith(items []*inventory.Item, reservations []*reservation.Reservation, window calendar.WeekWindow, filter reservation.StatusSet) []Snapshot {
	reserved := reservedByItem(reservations, window, filter)
	snapshots := make([]Snapshot, 0, len(items))
	for _, it := range items {
		snapshots = append(snapshots, newSnapshot(it, window, reserved[it.Key()]))
	}
	return snapshots
}

func reservedByItem(reservations []*reservation.Reservation, window calendar.WeekWindow, filter reservation.StatusSet) map[inventory.ItemKey]int {
	reserved := make(map[inventory.ItemKey]int)
	for _, r := range reservations {
		if r == nil || !filter.Contains(r.Status()) {
			continue
		}
		if !r.OverlapsWeek(window) {
			continue
		}
		reserved[r.Item()] += r.Quantity()
	}
	return reserved
}

func newSnapshot(it *inventory.Item, window calendar.WeekWindow, reserved int) Snapshot {
	total := max(0, it.TotalQuantity())
	return Snapshot{
		Item:              it.Key(),
		Week:              window,
		TotalQuantity:     total,
		ReservedQuantity:  reserved,
		RemainingQuantity: max(0, total-reserved),
		UtilizationRate:   utilizationRate(reserved, total),
	}
}

func utilizationRate(reserved, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(reserved) / float64(total) * 100))
}

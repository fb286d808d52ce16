package statistics

import (
	"slices"

	"rental-inventory/internal/domain/availability"
	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
	"rental-inventory/internal/domain/sales"

	"github.com/shopspring/decimal"
)

const DefaultTopN = 5

type Input struct {
	Items        []*inventory.Item
	Reservations []*reservation.Reservation
	Sales        []sales.Record
	Week         calendar.WeekWindow
	Limit        int
	// Snapshots may carry a precomputed availability result for Week.
	// When nil it is computed from Items and Reservations.
	Snapshots []availability.Snapshot
	Prices    reservation.PriceCalculator
}

type UtilizationEntry struct {
	Item             inventory.ItemKey
	TotalQuantity    int
	ReservedQuantity int
	UtilizationRate  int
}

type SalesEntry struct {
	Item     inventory.ItemKey
	Quantity int
	Revenue  decimal.Decimal
}

type Report struct {
	Week             calendar.WeekWindow
	ProjectedRevenue decimal.Decimal
	SalesRevenue     decimal.Decimal
	TopUtilization   []UtilizationEntry
	TopSales         []SalesEntry
}

func Aggregate(in Input) Report {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultTopN
	}
	prices := in.Prices
	if prices == nil {
		prices = reservation.NewDefaultPriceCalculator()
	}
	snapshots := in.Snapshots
	if snapshots == nil {
		snapshots = availability.Calculate(in.Items, in.Reservations, in.Week)
	}

	topSales, salesRevenue := rankSales(in.Items, in.Sales, in.Week, limit)
	return Report{
		Week:             in.Week,
		ProjectedRevenue: projectedRevenue(in.Items, in.Reservations, in.Week, prices),
		SalesRevenue:     salesRevenue,
		TopUtilization:   rankUtilization(snapshots, limit),
		TopSales:         topSales,
	}
}

func projectedRevenue(items []*inventory.Item, reservations []*reservation.Reservation, week calendar.WeekWindow, prices reservation.PriceCalculator) decimal.Decimal {
	catalog := inventory.IndexByKey(items, inventory.CategoryRental)
	total := decimal.Zero
	for _, r := range reservations {
		if r == nil || !availability.CurrentViewStatuses.Contains(r.Status()) {
			continue
		}
		if !availability.Overlaps(r.Span(), week) {
			continue
		}
		total = total.Add(reservation.LineTotal(prices, r, catalog))
	}
	return total
}

func rankUtilization(snapshots []availability.Snapshot, limit int) []UtilizationEntry {
	entries := make([]UtilizationEntry, 0, len(snapshots))
	for _, s := range snapshots {
		if s.TotalQuantity <= 0 {
			continue
		}
		entries = append(entries, UtilizationEntry{
			Item:             s.Item,
			TotalQuantity:    s.TotalQuantity,
			ReservedQuantity: s.ReservedQuantity,
			UtilizationRate:  s.UtilizationRate,
		})
	}
	slices.SortStableFunc(entries, func(a, b UtilizationEntry) int {
		return b.UtilizationRate - a.UtilizationRate
	})
	return truncate(entries, limit)
}

// rankSales sums sales per purchase item inside the week. Revenue covers every
// item with sales, not only the ranked ones.
func rankSales(items []*inventory.Item, records []sales.Record, week calendar.WeekWindow, limit int) ([]SalesEntry, decimal.Decimal) {
	sold := make(map[inventory.ItemKey]int)
	for _, rec := range records {
		if week.ContainsDate(rec.Date) {
			sold[rec.Item] += rec.Quantity
		}
	}

	entries := make([]SalesEntry, 0)
	revenue := decimal.Zero
	seen := make(map[inventory.ItemKey]struct{})
	for _, it := range inventory.FilterByCategory(items, inventory.CategoryPurchase) {
		key := it.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		qty := sold[key]
		if qty <= 0 {
			continue
		}
		lineRevenue := it.UnitPrice().Mul(decimal.NewFromInt(int64(qty)))
		revenue = revenue.Add(lineRevenue)
		entries = append(entries, SalesEntry{Item: key, Quantity: qty, Revenue: lineRevenue})
	}
	slices.SortStableFunc(entries, func(a, b SalesEntry) int {
		return b.Quantity - a.Quantity
	})
	return truncate(entries, limit), revenue
}

func truncate[T any](entries []T, limit int) []T {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

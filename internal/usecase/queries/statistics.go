package queries

import (
	"context"
	"log/slog"
	"time"

	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/statistics"
	"rental-inventory/internal/pkg/errs"
)

const MaxStatisticsLimit = 100

// ValidateLimit maps a non-positive limit to the default ranking size and caps
// the rest.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return statistics.DefaultTopN
	}
	if limit > MaxStatisticsLimit {
		return MaxStatisticsLimit
	}
	return limit
}

// WeeklyStatistics reads items, overlapping reservations and the week's sales
// once and aggregates them. Statistics are never served from the snapshot cache.
func (q *availabilityQueriesImpl) WeeklyStatistics(ctx context.Context, anchor time.Time, limit int) (*StatisticsView, error) {
	week := calendar.ResolveWeek(anchor)

	items, err := q.items.ListItems(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsQueryFailed)
	}
	reservations, err := q.reservations.ListOverlapping(ctx, week.Start, week.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsQueryFailed)
	}
	records, err := q.sales.ListBetween(ctx, week.Start, week.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsQueryFailed)
	}

	report := statistics.Aggregate(statistics.Input{
		Items:        items,
		Reservations: reservations,
		Sales:        records,
		Week:         week,
		Limit:        ValidateLimit(limit),
	})
	q.logger.Debug("statistics aggregated",
		slog.String("week", week.String()),
		slog.String("projected_revenue", report.ProjectedRevenue.String()),
		slog.Int("top_sales", len(report.TopSales)),
	)
	return toStatisticsView(report), nil
}

func toStatisticsView(r statistics.Report) *StatisticsView {
	view := &StatisticsView{
		WeekStart:        r.Week.StartDate(),
		WeekEnd:          r.Week.EndDate(),
		ProjectedRevenue: r.ProjectedRevenue,
		SalesRevenue:     r.SalesRevenue,
		TopUtilization:   make([]*UtilizationView, len(r.TopUtilization)),
		TopSales:         make([]*SalesView, len(r.TopSales)),
	}
	for i, u := range r.TopUtilization {
		view.TopUtilization[i] = &UtilizationView{
			DesignCode:       u.Item.DesignCode,
			Size:             u.Item.Size,
			TotalQuantity:    u.TotalQuantity,
			ReservedQuantity: u.ReservedQuantity,
			UtilizationRate:  u.UtilizationRate,
		}
	}
	for i, s := range r.TopSales {
		view.TopSales[i] = &SalesView{
			DesignCode: s.Item.DesignCode,
			Size:       s.Item.Size,
			Quantity:   s.Quantity,
			Revenue:    s.Revenue,
		}
	}
	return view
}

package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-inventory/internal/domain/availability"
	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/infra/cache"
	"rental-inventory/internal/pkg/config"
	"rental-inventory/internal/pkg/errs"
)

const availabilityCacheKeyPrefix = "availability:"

type AvailabilityQueries interface {
	WeeklyAvailability(ctx context.Context, anchor time.Time) (*WeeklyAvailabilityView, error)
	SoldOut(ctx context.Context, anchor time.Time) (*WeeklyAvailabilityView, error)
	BookableCandidates(ctx context.Context, target *time.Time) (*CandidateView, error)
	WeeklyStatistics(ctx context.Context, anchor time.Time, limit int) (*StatisticsView, error)
}

type availabilityQueriesImpl struct {
	items        InventoryReadStore
	reservations ReservationReadStore
	sales        SalesReadStore
	cache        cache.Cache
	cacheTTL     time.Duration
	logger       *slog.Logger
}

func NewAvailabilityQueries(
	items InventoryReadStore,
	reservations ReservationReadStore,
	sales SalesReadStore,
	c cache.Cache,
	cfg config.CacheConfig,
	logger *slog.Logger,
) AvailabilityQueries {
	if c == nil {
		c = cache.NoopCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &availabilityQueriesImpl{
		items:        items,
		reservations: reservations,
		sales:        sales,
		cache:        c,
		cacheTTL:     cfg.TTL,
		logger:       logger,
	}
}

func (q *availabilityQueriesImpl) WeeklyAvailability(ctx context.Context, anchor time.Time) (*WeeklyAvailabilityView, error) {
	week := calendar.ResolveWeek(anchor)
	snapshots, err := q.weekSnapshots(ctx, week)
	if err != nil {
		return nil, err
	}
	return toWeeklyAvailabilityView(week, snapshots), nil
}

func (q *availabilityQueriesImpl) SoldOut(ctx context.Context, anchor time.Time) (*WeeklyAvailabilityView, error) {
	week := calendar.ResolveWeek(anchor)
	snapshots, err := q.weekSnapshots(ctx, week)
	if err != nil {
		return nil, err
	}
	return toWeeklyAvailabilityView(week, availability.SoldOut(snapshots)), nil
}

// BookableCandidates always reads through to the store. Its result feeds a
// booking decision and must not be served stale.
func (q *availabilityQueriesImpl) BookableCandidates(ctx context.Context, target *time.Time) (*CandidateView, error) {
	if target == nil {
		return &CandidateView{Items: []*AvailabilityItemView{}}, nil
	}

	week := calendar.ResolveWeek(*target)
	items, err := q.items.ListItemsByCategory(ctx, inventory.CategoryRental)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityQueryFailed)
	}
	reservations, err := q.reservations.ListOverlapping(ctx, week.Start, week.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityQueryFailed)
	}

	candidates := availability.Candidates(target, items, reservations)
	return &CandidateView{
		WeekStart: week.StartDate(),
		WeekEnd:   week.EndDate(),
		Items:     toItemViews(candidates),
	}, nil
}

// weekSnapshots serves the current-view snapshots from cache when possible.
// Cache failures are logged and never fail the request.
func (q *availabilityQueriesImpl) weekSnapshots(ctx context.Context, week calendar.WeekWindow) ([]availability.Snapshot, error) {
	key := availabilityCacheKeyPrefix + week.StartDate()

	var cached []cachedSnapshot
	err := cache.GetJSON(ctx, q.cache, key, &cached)
	switch {
	case err == nil:
		q.logger.Debug("availability cache hit", slog.String("key", key))
		return fromCachedSnapshots(cached, week), nil
	case errors.Is(err, cache.ErrCacheMiss):
		q.logger.Debug("availability cache miss", slog.String("key", key))
	default:
		q.warnCacheFailure("availability cache read failed", key, err)
		if err := q.cache.Delete(ctx, key); err != nil {
			q.warnCacheFailure("availability cache delete failed", key, err)
		}
	}

	items, err := q.items.ListItemsByCategory(ctx, inventory.CategoryRental)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityQueryFailed)
	}
	reservations, err := q.reservations.ListOverlapping(ctx, week.Start, week.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityQueryFailed)
	}

	snapshots := availability.Calculate(items, reservations, week)
	q.logger.Info("availability computed",
		slog.String("week", week.String()),
		slog.Int("items", len(snapshots)),
		slog.Int("sold_out", len(availability.SoldOut(snapshots))),
	)

	if q.cacheTTL > 0 {
		if err := cache.SetJSON(ctx, q.cache, key, toCachedSnapshots(snapshots), q.cacheTTL); err != nil {
			q.warnCacheFailure("availability cache write failed", key, err)
		}
	}
	return snapshots, nil
}

func (q *availabilityQueriesImpl) warnCacheFailure(msg, key string, err error) {
	err = errs.Mark(err, errs.ErrCacheOperationFailed)
	q.logger.Warn(msg,
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

type cachedSnapshot struct {
	DesignCode string `json:"d"`
	Size       string `json:"s"`
	Total      int    `json:"t"`
	Reserved   int    `json:"r"`
	Remaining  int    `json:"m"`
	Rate       int    `json:"u"`
}

func toCachedSnapshots(snapshots []availability.Snapshot) []cachedSnapshot {
	out := make([]cachedSnapshot, len(snapshots))
	for i, s := range snapshots {
		out[i] = cachedSnapshot{
			DesignCode: s.Item.DesignCode,
			Size:       s.Item.Size,
			Total:      s.TotalQuantity,
			Reserved:   s.ReservedQuantity,
			Remaining:  s.RemainingQuantity,
			Rate:       s.UtilizationRate,
		}
	}
	return out
}

func fromCachedSnapshots(cached []cachedSnapshot, week calendar.WeekWindow) []availability.Snapshot {
	out := make([]availability.Snapshot, len(cached))
	for i, c := range cached {
		out[i] = availability.Snapshot{
			Item:              inventory.ItemKey{DesignCode: c.DesignCode, Size: c.Size},
			Week:              week,
			TotalQuantity:     c.Total,
			ReservedQuantity:  c.Reserved,
			RemainingQuantity: c.Remaining,
			UtilizationRate:   c.Rate,
		}
	}
	return out
}

func toWeeklyAvailabilityView(week calendar.WeekWindow, snapshots []availability.Snapshot) *WeeklyAvailabilityView {
	return &WeeklyAvailabilityView{
		WeekStart: week.StartDate(),
		WeekEnd:   week.EndDate(),
		Items:     toItemViews(snapshots),
	}
}

func toItemViews(snapshots []availability.Snapshot) []*AvailabilityItemView {
	views := make([]*AvailabilityItemView, len(snapshots))
	for i, s := range snapshots {
		views[i] = &AvailabilityItemView{
			DesignCode:        s.Item.DesignCode,
			Size:              s.Item.Size,
			TotalQuantity:     s.TotalQuantity,
			ReservedQuantity:  s.ReservedQuantity,
			RemainingQuantity: s.RemainingQuantity,
			UtilizationRate:   s.UtilizationRate,
			SoldOut:           s.IsSoldOut(),
		}
	}
	return views
}

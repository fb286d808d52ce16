package queries

import (
	"context"
	"time"

	"rental-inventory/internal/domain/inventory"
	"rental-inventory/internal/domain/reservation"
	"rental-inventory/internal/domain/sales"

	"github.com/shopspring/decimal"
)

type InventoryReadStore interface {
	ListItems(ctx context.Context) ([]*inventory.Item, error)
	ListItemsByCategory(ctx context.Context, category inventory.Category) ([]*inventory.Item, error)
}

type ReservationReadStore interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*reservation.Reservation, error)
}

type SalesReadStore interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]sales.Record, error)
}

// AvailabilityItemView is one item's capacity for a week.
type AvailabilityItemView struct {
	DesignCode        string `json:"design_code"`
	Size              string `json:"size"`
	TotalQuantity     int    `json:"total_quantity"`
	ReservedQuantity  int    `json:"reserved_quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
	UtilizationRate   int    `json:"utilization_rate"`
	SoldOut           bool   `json:"sold_out"`
}

type WeeklyAvailabilityView struct {
	WeekStart string                  `json:"week_start"`
	WeekEnd   string                  `json:"week_end"`
	Items     []*AvailabilityItemView `json:"items"`
}

// CandidateView carries no week when the target date was absent.
type CandidateView struct {
	WeekStart string                  `json:"week_start,omitempty"`
	WeekEnd   string                  `json:"week_end,omitempty"`
	Items     []*AvailabilityItemView `json:"items"`
}

type UtilizationView struct {
	DesignCode       string `json:"design_code"`
	Size             string `json:"size"`
	TotalQuantity    int    `json:"total_quantity"`
	ReservedQuantity int    `json:"reserved_quantity"`
	UtilizationRate  int    `json:"utilization_rate"`
}

type SalesView struct {
	DesignCode string          `json:"design_code"`
	Size       string          `json:"size"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type StatisticsView struct {
	WeekStart        string             `json:"week_start"`
	WeekEnd          string             `json:"week_end"`
	ProjectedRevenue decimal.Decimal    `json:"projected_revenue"`
	SalesRevenue     decimal.Decimal    `json:"sales_revenue"`
	TopUtilization   []*UtilizationView `json:"top_utilization"`
	TopSales         []*SalesView       `json:"top_sales"`
}

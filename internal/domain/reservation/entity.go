package reservation

import (
	"errors"
	"strings"
	"time"

	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveQuantity = errors.New("reservation quantity must be positive")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrEndBeforeStart      = errors.New("end date cannot be before start date")
	ErrNegativePrice       = errors.New("price override cannot be negative")
)

type Reservation struct {
	id            uuid.UUID
	item          inventory.ItemKey
	quantity      int
	startDate     time.Time
	endDate       time.Time
	status        Status
	priceOverride *decimal.Decimal
	customerRef   string
}

// NewReservation validates a reservation. A nil end date means a single-day reservation.
func NewReservation(
	id uuid.UUID,
	item inventory.ItemKey,
	quantity int,
	startDate time.Time,
	endDate *time.Time,
	status Status,
	priceOverride *decimal.Decimal,
	customerRef string,
) (*Reservation, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if endDate != nil && calendar.DayStart(*endDate).Before(calendar.DayStart(startDate)) {
		return nil, ErrEndBeforeStart
	}
	if priceOverride != nil && priceOverride.IsNegative() {
		return nil, ErrNegativePrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return ReconstructReservation(id, item, quantity, startDate, endDate, status, priceOverride, customerRef), nil
}

// ReconstructReservation trusts the store. A missing or malformed end date
// (earlier than the start date) falls back to the start date.
func ReconstructReservation(
	id uuid.UUID,
	item inventory.ItemKey,
	quantity int,
	startDate time.Time,
	endDate *time.Time,
	status Status,
	priceOverride *decimal.Decimal,
	customerRef string,
) *Reservation {
	end := startDate
	if endDate != nil && !calendar.DayStart(*endDate).Before(calendar.DayStart(startDate)) {
		end = *endDate
	}
	return &Reservation{
		id:            id,
		item:          item,
		quantity:      quantity,
		startDate:     startDate,
		endDate:       end,
		status:        status,
		priceOverride: priceOverride,
		customerRef:   strings.TrimSpace(customerRef),
	}
}

// Span covers [start 00:00:00.000, end 23:59:59.999].
func (r *Reservation) Span() calendar.Span {
	return calendar.NewSpan(r.startDate, r.endDate)
}

func (r *Reservation) OverlapsWeek(w calendar.WeekWindow) bool {
	return w.Overlaps(r.Span())
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) Item() inventory.ItemKey         { return r.item }
func (r *Reservation) Quantity() int                   { return r.quantity }
func (r *Reservation) StartDate() time.Time            { return r.startDate }
func (r *Reservation) EndDate() time.Time              { return r.endDate }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) PriceOverride() *decimal.Decimal { return r.priceOverride }
func (r *Reservation) CustomerRef() string             { return r.customerRef }

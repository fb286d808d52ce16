package reservation

import (
	"rental-inventory/internal/domain/inventory"

	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	// UnitPrice reports false when no price can be determined.
	UnitPrice(r *Reservation, catalog map[inventory.ItemKey]*inventory.Item) (decimal.Decimal, bool)
}

// DefaultPriceCalculator prefers the reservation override over the catalog price.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) UnitPrice(r *Reservation, catalog map[inventory.ItemKey]*inventory.Item) (decimal.Decimal, bool) {
	if r.PriceOverride() != nil {
		return *r.PriceOverride(), true
	}
	if it, ok := catalog[r.Item()]; ok {
		return it.UnitPrice(), true
	}
	return decimal.Zero, false
}

// LineTotal is quantity × unit price, or zero when the price is unknown.
func LineTotal(pc PriceCalculator, r *Reservation, catalog map[inventory.ItemKey]*inventory.Item) decimal.Decimal {
	price, ok := pc.UnitPrice(r, catalog)
	if !ok {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(r.Quantity())))
}

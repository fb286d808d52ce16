package sales

import (
	"time"

	"rental-inventory/internal/domain/inventory"
)

// Record is a completed sale or shipment of a purchase item.
type Record struct {
	Item        inventory.ItemKey
	Date        time.Time
	Quantity    int
	CustomerRef string
}

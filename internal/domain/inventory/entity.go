package inventory

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDesignCode = errors.New("design code cannot be empty")
	ErrEmptySize       = errors.New("size cannot be empty")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrInvalidCategory = errors.New("invalid item category")
)

// ItemKey identifies one inventory line: a design in a given size.
type ItemKey struct {
	DesignCode string
	Size       string
}

func NewItemKey(designCode, size string) ItemKey {
	return ItemKey{
		DesignCode: strings.TrimSpace(designCode),
		Size:       strings.TrimSpace(size),
	}
}

func (k ItemKey) String() string {
	return k.DesignCode + "/" + k.Size
}

type Item struct {
	key           ItemKey
	totalQuantity int
	unitPrice     decimal.Decimal
	category      Category
	displayOrder  int
}

func NewItem(key ItemKey, totalQuantity int, unitPrice decimal.Decimal, category Category, displayOrder int) (*Item, error) {
	key = NewItemKey(key.DesignCode, key.Size)
	if key.DesignCode == "" {
		return nil, ErrEmptyDesignCode
	}
	if key.Size == "" {
		return nil, ErrEmptySize
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return ReconstructItem(key, totalQuantity, unitPrice, category, displayOrder), nil
}

// ReconstructItem trusts its input except for the quantity, which never goes below zero.
func ReconstructItem(key ItemKey, totalQuantity int, unitPrice decimal.Decimal, category Category, displayOrder int) *Item {
	return &Item{
		key:           key,
		totalQuantity: max(0, totalQuantity),
		unitPrice:     unitPrice,
		category:      category,
		displayOrder:  displayOrder,
	}
}

func (i *Item) Key() ItemKey               { return i.key }
func (i *Item) TotalQuantity() int         { return i.totalQuantity }
func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i *Item) Category() Category         { return i.category }
func (i *Item) DisplayOrder() int          { return i.displayOrder }

// FilterByCategory keeps the input order.
func FilterByCategory(items []*Item, category Category) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if it != nil && it.category == category {
			out = append(out, it)
		}
	}
	return out
}

// IndexByKey maps item keys to items of one category. The first occurrence wins.
func IndexByKey(items []*Item, category Category) map[ItemKey]*Item {
	idx := make(map[ItemKey]*Item, len(items))
	for _, it := range items {
		if it == nil || it.category != category {
			continue
		}
		if _, dup := idx[it.key]; !dup {
			idx[it.key] = it
		}
	}
	return idx
}

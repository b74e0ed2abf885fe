package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is a unit price as stored in the catalog.
type Price = decimal.Decimal

// NewPrice returns a whole-number price.
func NewPrice(amount int64) Price {
	return decimal.NewFromInt(amount)
}

// ParsePrice reads a decimal price such as "100" or "0.35".
func ParsePrice(s string) (Price, error) {
	return decimal.NewFromString(s)
}

// Line is a single cart entry. Quantity is always positive while the line is in a cart.
type Line struct {
	ItemType string
	Quantity int
}

// PricedLine is a cart line joined with its catalog price
type PricedLine struct {
	Line
	UnitPrice Price
}

// Subtotal returns quantity × unit price.
func (l PricedLine) Subtotal() Price {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Field returns the textual value shown for column c.
func (l PricedLine) Field(c Column) string {
	switch c {
	case ColumnItemName:
		return l.ItemType
	case ColumnQuantity:
		return strconv.Itoa(l.Quantity)
	case ColumnPrice:
		return l.UnitPrice.String()
	default:
		return ""
	}
}

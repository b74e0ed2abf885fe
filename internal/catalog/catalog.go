package catalog

import (
	"errors"
	"sort"

	"github.com/fjod/go_cart/till/internal/domain"
)

// Common errors returned by catalogs
var (
	ErrItemNotFound = errors.New("item not found in catalog")
	ErrCacheMiss    = errors.New("cache miss")
)

// Catalog is the read-only price list a cart validates against.
// PriceOf is only meaningful when IsKnown returns true for the same item type.
type Catalog interface {
	IsKnown(itemType string) bool
	PriceOf(itemType string) (domain.Price, error)
}

// Entry is one priced item.
type Entry struct {
	ItemType  string       `json:"item_type"`
	UnitPrice domain.Price `json:"unit_price"`
}

// Memory is an immutable map-backed catalog.
type Memory struct {
	prices map[string]domain.Price
}

// NewMemory copies prices into a new catalog.
func NewMemory(prices map[string]domain.Price) *Memory {
	m := &Memory{prices: make(map[string]domain.Price, len(prices))}
	for itemType, price := range prices {
		m.prices[itemType] = price
	}
	return m
}

// FromEntries builds a catalog from a price list. Later duplicates win.
func FromEntries(entries []Entry) *Memory {
	m := &Memory{prices: make(map[string]domain.Price, len(entries))}
	for _, e := range entries {
		m.prices[e.ItemType] = e.UnitPrice
	}
	return m
}

// Default returns the price list every till ships with.
func Default() *Memory {
	return NewMemory(map[string]domain.Price{
		"apple":  domain.NewPrice(100),
		"banana": domain.NewPrice(200),
	})
}

func (m *Memory) IsKnown(itemType string) bool {
	_, ok := m.prices[itemType]
	return ok
}

func (m *Memory) PriceOf(itemType string) (domain.Price, error) {
	price, ok := m.prices[itemType]
	if !ok {
		return domain.Price{}, ErrItemNotFound
	}
	return price, nil
}

// Entries returns the price list sorted by item type.
func (m *Memory) Entries() []Entry {
	entries := make([]Entry, 0, len(m.prices))
	for itemType, price := range m.prices {
		entries = append(entries, Entry{ItemType: itemType, UnitPrice: price})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ItemType < entries[j].ItemType
	})
	return entries
}

func (m *Memory) Len() int {
	return len(m.prices)
}

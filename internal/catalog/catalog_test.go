package catalog

import (
	"testing"

	"github.com/fjod/go_cart/till/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownItems(t *testing.T) {
	c := Default()

	assert.True(t, c.IsKnown("apple"))
	assert.True(t, c.IsKnown("banana"))
	assert.False(t, c.IsKnown("pear"))
	assert.Equal(t, 2, c.Len())

	price, err := c.PriceOf("apple")
	require.NoError(t, err)
	assert.Equal(t, "100", price.String())
}

func TestMemory_PriceOfUnknown(t *testing.T) {
	_, err := Default().PriceOf("pear")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNewMemory_CopiesInput(t *testing.T) {
	prices := map[string]domain.Price{"kiwi": domain.NewPrice(30)}
	c := NewMemory(prices)

	prices["mango"] = domain.NewPrice(70)
	delete(prices, "kiwi")

	assert.True(t, c.IsKnown("kiwi"))
	assert.False(t, c.IsKnown("mango"))
}

func TestMemory_EntriesSorted(t *testing.T) {
	c := FromEntries([]Entry{
		{ItemType: "pear", UnitPrice: domain.NewPrice(50)},
		{ItemType: "apple", UnitPrice: domain.NewPrice(100)},
		{ItemType: "pear", UnitPrice: domain.NewPrice(60)},
	})

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "apple", entries[0].ItemType)
	assert.Equal(t, "pear", entries[1].ItemType)
	assert.Equal(t, "60", entries[1].UnitPrice.String())
}

package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fjod/go_cart/till/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenCatalog_BuiltIn(t *testing.T) {
	prices, closeCatalog, err := openCatalog(context.Background(), config.Config{}, zap.NewNop())
	require.NoError(t, err)
	defer closeCatalog()

	assert.True(t, prices.IsKnown("apple"))
	assert.False(t, prices.IsKnown("pear"))
}

func TestOpenCatalog_SQLiteWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{
		CatalogDSN:  ":memory:",
		CatalogName: "default",
		RedisAddr:   mr.Addr(),
	}

	prices, closeCatalog, err := openCatalog(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeCatalog()

	price, err := prices.PriceOf("banana")
	require.NoError(t, err)
	assert.Equal(t, "200", price.String())
	assert.True(t, mr.Exists("catalog:default"))
}

func TestOpenCatalog_RedisDownStillLoads(t *testing.T) {
	cfg := config.Config{
		CatalogDSN:  ":memory:",
		CatalogName: "default",
		RedisAddr:   "127.0.0.1:1",
	}

	prices, closeCatalog, err := openCatalog(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeCatalog()

	assert.True(t, prices.IsKnown("apple"))
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fjod/go_cart/till/internal/cart"
	"github.com/fjod/go_cart/till/internal/catalog"
	"github.com/fjod/go_cart/till/internal/config"
	"github.com/fjod/go_cart/till/internal/console"
	"github.com/fjod/go_cart/till/internal/logging"
	"github.com/fjod/go_cart/till/internal/till"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:   "till",
		Usage:  "point-of-sale shopping cart",
		Flags:  config.Flags(),
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	prices, closeCatalog, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCatalog()

	c := cart.New(prices, cart.WithLogger(logger))
	session := till.NewSession(c, console.NewStream(os.Stdin, os.Stdout), logger)
	return session.Run(ctx)
}

// openCatalog returns the built-in price list unless a catalog DSN is configured.
func openCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (catalog.Catalog, func(), error) {
	if cfg.CatalogDSN == "" {
		logger.Info("using built-in price list")
		return catalog.Default(), func() {}, nil
	}

	repo, err := catalog.NewRepository(cfg.CatalogDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.RunMigrations(); err != nil {
		repo.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed", zap.String("dsn", cfg.CatalogDSN))

	closers := []func() error{repo.Close}
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close failed", zap.Error(err))
			}
		}
	}

	var cache catalog.SnapshotCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, redisClient.Close)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, price list cache disabled",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			cache = catalog.NewRedisCache(redisClient)
		}
	}

	prices, err := catalog.NewLoader(cfg.CatalogName, repo, cache, logger).Load(ctx)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return prices, closeAll, nil
}

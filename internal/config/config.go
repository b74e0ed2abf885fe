package config

import (
	"strings"

	"github.com/urfave/cli/v3"
)

type Config struct {
	// CatalogDSN is a SQLite DSN for the price list. Empty means the built-in list.
	CatalogDSN  string
	CatalogName string

	// Redis caches the loaded price list; empty address disables it.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel    string
	Development bool
}

// Flags lists the command line flags, each also settable through the environment.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog-dsn",
			Usage:   "SQLite DSN of the price list (empty uses the built-in price list)",
			Sources: cli.EnvVars("TILL_CATALOG_DSN"),
		},
		&cli.StringFlag{
			Name:    "catalog-name",
			Value:   "default",
			Usage:   "name of the price list, used as its cache key",
			Sources: cli.EnvVars("TILL_CATALOG_NAME"),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "redis address for the price list cache (empty disables caching)",
			Sources: cli.EnvVars("REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Sources: cli.EnvVars("REDIS_PASSWORD"),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Sources: cli.EnvVars("REDIS_DB"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "debug, info, warn or error",
			Sources: cli.EnvVars("TILL_LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:    "dev",
			Usage:   "human readable logs",
			Sources: cli.EnvVars("TILL_DEV"),
		},
	}
}

// FromCommand reads the parsed flags.
func FromCommand(cmd *cli.Command) Config {
	return Config{
		CatalogDSN:    strings.TrimSpace(cmd.String("catalog-dsn")),
		CatalogName:   cmd.String("catalog-name"),
		RedisAddr:     strings.TrimSpace(cmd.String("redis-addr")),
		RedisPassword: cmd.String("redis-password"),
		RedisDB:       int(cmd.Int("redis-db")),
		LogLevel:      cmd.String("log-level"),
		Development:   cmd.Bool("dev"),
	}
}

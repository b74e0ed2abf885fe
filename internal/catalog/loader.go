package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader builds an immutable Memory catalog from a price store, going through
// an optional snapshot cache first.
type Loader struct {
	name   string
	repo   RepoInterface
	cache  SnapshotCache
	logger *zap.Logger
	sfg    singleflight.Group
}

// NewLoader creates a loader. cache may be nil.
func NewLoader(name string, repo RepoInterface, cache SnapshotCache, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		name:   name,
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (l *Loader) Load(ctx context.Context) (*Memory, error) {
	v, err, _ := l.sfg.Do(l.name, func() (interface{}, error) {
		if l.cache != nil {
			entries, err := l.cache.Get(ctx, l.name)
			if err == nil {
				l.logger.Debug("price list served from cache",
					zap.String("catalog", l.name), zap.Int("items", len(entries)))
				return FromEntries(entries), nil
			}
			if !errors.Is(err, ErrCacheMiss) {
				l.logger.Warn("cache get error", zap.String("catalog", l.name), zap.Error(err))
			}
		}

		entries, err := l.repo.ListPrices(ctx)
		if err != nil {
			return nil, fmt.Errorf("load price list %q: %w", l.name, err)
		}

		if l.cache != nil {
			if err := l.cache.Set(ctx, l.name, entries); err != nil {
				l.logger.Warn("cache set error", zap.String("catalog", l.name), zap.Error(err))
			}
		}

		l.logger.Info("price list loaded",
			zap.String("catalog", l.name), zap.Int("items", len(entries)))
		return FromEntries(entries), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Memory), nil
}

// Invalidate drops the cached snapshot so the next Load reads the store.
func (l *Loader) Invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Delete(ctx, l.name)
}

// Package database persists trip plans in Postgres or MongoDB, optionally
// behind a Redis read cache.
package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vacationplanner/config"
	"vacationplanner/models"
)

type Store interface {
	SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error)
	LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error)
	ListTripPlans(ctx context.Context) ([]*models.TripPlan, error)
	DeleteTripPlan(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open returns the configured backend, or nil when STORE_BACKEND is none.
// An unreachable Redis only disables the cache.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		store Store
		err   error
	)
	switch cfg.StoreBackend {
	case config.StorePostgres:
		store, err = OpenPostgres(ctx, cfg.Postgres.DSN(), log)
	case config.StoreMongo:
		store, err = ConnectMongo(ctx, cfg.Mongo, log)
	case config.StoreNone, "":
		log.Info("no trip store configured, plans are kept in memory only")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}
	log.Info("trip store ready", zap.String("backend", cfg.StoreBackend))

	if cfg.Redis.Addr == "" {
		return store, nil
	}
	client, err := NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, plan cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		return store, nil
	}
	log.Info("plan cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	return NewCachedStore(store, client, cfg.Redis.TTL, log), nil
}

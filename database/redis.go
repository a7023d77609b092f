package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vacationplanner/config"
	"vacationplanner/models"
)

const keyPrefix = "vacationplanner"

func Key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(keyPrefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}
	return sb.String()
}

// planCache is the read-through layer in front of a Store. A miss is (nil, nil).
type planCache interface {
	get(ctx context.Context, id string) (*models.TripPlan, error)
	set(ctx context.Context, plan *models.TripPlan) error
	del(ctx context.Context, id string) error
	close() error
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(cctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *redisPlanCache) get(ctx context.Context, id string) (*models.TripPlan, error) {
	data, err := c.client.Get(ctx, Key("trip", id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodePlan(id, data)
}

func (c *redisPlanCache) set(ctx context.Context, plan *models.TripPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key("trip", plan.ID), data, c.ttl).Err()
}

func (c *redisPlanCache) del(ctx context.Context, id string) error {
	return c.client.Del(ctx, Key("trip", id)).Err()
}

func (c *redisPlanCache) close() error { return c.client.Close() }

// CachedStore serves plan reads from Redis when it can. Cache failures are
// logged and never fail the call.
type CachedStore struct {
	Store
	cache planCache
	log   *zap.Logger
}

func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, log *zap.Logger) *CachedStore {
	return newCachedStore(inner, &redisPlanCache{client: client, ttl: ttl}, log)
}

func newCachedStore(inner Store, cache planCache, log *zap.Logger) *CachedStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedStore{Store: inner, cache: cache, log: log}
}

func (s *CachedStore) SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error) {
	id, err := s.Store.SaveTripPlan(ctx, plan)
	if err != nil {
		return "", err
	}
	cp := *plan
	cp.ID = id
	if err := s.cache.set(ctx, &cp); err != nil {
		s.log.Warn("plan cache write failed", zap.String("id", id), zap.Error(err))
	}
	return id, nil
}

func (s *CachedStore) LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error) {
	p, err := s.cache.get(ctx, id)
	if err != nil {
		s.log.Warn("plan cache read failed", zap.String("id", id), zap.Error(err))
	}
	if p != nil {
		return p, nil
	}

	p, err = s.Store.LoadTripPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.set(ctx, p); err != nil {
		s.log.Warn("plan cache write failed", zap.String("id", id), zap.Error(err))
	}
	return p, nil
}

func (s *CachedStore) DeleteTripPlan(ctx context.Context, id string) error {
	if err := s.cache.del(ctx, id); err != nil {
		s.log.Warn("plan cache delete failed", zap.String("id", id), zap.Error(err))
	}
	return s.Store.DeleteTripPlan(ctx, id)
}

func (s *CachedStore) Close(ctx context.Context) error {
	return errors.Join(s.cache.close(), s.Store.Close(ctx))
}

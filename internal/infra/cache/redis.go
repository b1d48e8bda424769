// Package cache provides the snapshot cache backing the statistics endpoint.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"

	"warden/config"
	"warden/internal/domain/lifecycle"
	"warden/internal/domain/service"
	"warden/internal/errors"
)

// redisSnapshotCache implements service.SnapshotCache on Redis. Concurrent
// loads of the same key are collapsed through singleflight so a cold or
// expired key triggers at most one upstream fetch.
type redisSnapshotCache struct {
	rdb    *redis.Client
	sf     singleflight.Group
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the SnapshotCache. Without a Redis section in the config it
// falls back to a pass-through cache so statistics still work, just uncached.
func New(params Params) (service.SnapshotCache, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("redis not configured, statistics snapshots will not be cached")

		return &noopSnapshotCache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return &redisSnapshotCache{rdb: rdb, logger: params.Logger}, nil
}

func (c *redisSnapshotCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	} else if !errors.Is(err, redis.Nil) {
		// Redis being down must not take statistics with it.
		c.logger.Warn("snapshot cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		if setErr := c.rdb.Set(ctx, key, b, ttl).Err(); setErr != nil {
			c.logger.Warn("snapshot cache write failed", slog.String("key", key), slog.Any("error", setErr))
		}

		return b, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

// noopSnapshotCache loads on every call. Used when Redis is not configured.
type noopSnapshotCache struct {
	sf singleflight.Group
}

func (c *noopSnapshotCache) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	v, err, _ := c.sf.Do(key, func() (any, error) {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

// Package cache implements Redis-backed counters.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"directory/config"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// viewCountsKey is the Redis hash holding businessID -> pending view delta.
const viewCountsKey = "directory:view_counts"

const defaultFlushInterval = time.Minute

// redisViewCounter buffers page view hits in a Redis hash and periodically
// drains them into the businesses table.
type redisViewCounter struct {
	client       *redis.Client
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// Hit records one page view for a business.
func (c *redisViewCounter) Hit(ctx context.Context, businessID uuid.UUID) error {
	if err := c.client.HIncrBy(ctx, viewCountsKey, businessID.String(), 1).Err(); err != nil {
		return errors.Wrap(err, "failed to buffer view hit")
	}

	return nil
}

// Flush drains all accumulated counts into persistent storage. Entries that
// fail to apply are put back so the next flush retries them.
func (c *redisViewCounter) Flush(ctx context.Context) error {
	pending, err := c.client.HGetAll(ctx, viewCountsKey).Result()
	if err != nil {
		return errors.Wrap(err, "failed to read buffered view counts")
	}
	if len(pending) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, viewCountsKey).Err(); err != nil {
		return errors.Wrap(err, "failed to clear buffered view counts")
	}

	for field, raw := range pending {
		businessID, parseErr := uuid.Parse(field)
		if parseErr != nil {
			c.logger.Warn("Dropping malformed view count key", slog.String("field", field))

			continue
		}
		delta, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || delta <= 0 {
			continue
		}

		if err := c.businessRepo.IncrementViewCount(ctx, businessID, delta); err != nil {
			// Requeue so the views are not lost.
			if requeueErr := c.client.HIncrBy(ctx, viewCountsKey, field, delta).Err(); requeueErr != nil {
				c.logger.Error("Lost buffered view counts",
					slog.String("businessID", field),
					slog.Int64("delta", delta),
					slog.Any("error", requeueErr),
				)
			}

			c.logger.Warn("Failed to apply view counts, requeued",
				slog.String("businessID", field),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// ViewCounterParams holds dependencies for the view counter, injected by Fx.
type ViewCounterParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewViewCounter creates the Redis-backed view counter, or nil when Redis is
// not configured (callers fall back to direct column updates).
func NewViewCounter(params ViewCounterParams) (service.ViewCounter, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, view counting falls back to direct updates")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	counter := &redisViewCounter{
		client:       client,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}

	interval := cfg.FlushInterval
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}

			go counter.flushLoop(loopCtx, interval)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			// Final drain so buffered views survive restarts.
			if err := counter.Flush(ctx); err != nil {
				params.Logger.Warn("Failed to flush view counts on shutdown", slog.Any("error", err))
			}

			return client.Close()
		},
	})

	return counter, nil
}

func (c *redisViewCounter) flushLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Flush(ctx); err != nil {
				c.logger.Warn("Periodic view count flush failed", slog.Any("error", err))
			}
		}
	}
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewViewCounter),
)

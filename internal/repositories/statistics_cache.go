package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
)

const statisticsCacheKey = "transactions:statistics"

// StatisticsCacheRepository caches the computed sales statistics in Redis.
type StatisticsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached statistics
}

// NewStatisticsCacheRepository creates the cache repository with the given TTL.
func NewStatisticsCacheRepository(client *redis.Client, expiration time.Duration) *StatisticsCacheRepository {
	return &StatisticsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached statistics. A cache miss is an error so callers
// fall through to recomputing.
func (r *StatisticsCacheRepository) Get(ctx context.Context) (*models.Statistics, error) {
	val, err := r.client.Get(ctx, statisticsCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", statisticsCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("statistics not found in cache")
		}
		return nil, err
	}

	var stats models.Statistics
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("failed to unmarshal cached statistics", "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", statisticsCacheKey,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// Set caches the statistics with the configured expiration.
func (r *StatisticsCacheRepository) Set(ctx context.Context, stats *models.Statistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statisticsCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", statisticsCacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached statistics; called after every order creation.
func (r *StatisticsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, statisticsCacheKey).Err()

	logger.Log.Infow(
		"key", statisticsCacheKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}

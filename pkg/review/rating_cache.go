package review

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type (
	RatingCache interface {
		GetAverage(ctx context.Context, targetID string) (float64, int64, bool)
		SetAverage(ctx context.Context, targetID string, avg float64, count int64)
		Invalidate(ctx context.Context, targetID string)
	}

	cachedRating struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	redisRatingCache struct {
		client *redis.Client
		ttl    time.Duration
	}
)

func NewRedisRatingCache(client *redis.Client, ttl time.Duration) RatingCache {
	return &redisRatingCache{client: client, ttl: ttl}
}

func ratingKey(targetID string) string {
	return "rating:" + targetID
}

func (c *redisRatingCache) GetAverage(ctx context.Context, targetID string) (float64, int64, bool) {
	raw, err := c.client.Get(ctx, ratingKey(targetID)).Result()
	if err != nil {
		return 0, 0, false
	}
	var cached cachedRating
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return 0, 0, false
	}
	return cached.Average, cached.Count, true
}

func (c *redisRatingCache) SetAverage(ctx context.Context, targetID string, avg float64, count int64) {
	payload, err := json.Marshal(cachedRating{Average: avg, Count: count})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, ratingKey(targetID), payload, c.ttl).Err()
}

func (c *redisRatingCache) Invalidate(ctx context.Context, targetID string) {
	_ = c.client.Del(ctx, ratingKey(targetID)).Err()
}

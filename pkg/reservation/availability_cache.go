package reservation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache holds the fully-booked date list per restaurant for the
// selection-time lookup. The booking confirmation path never reads it; that
// check always goes to the store.
type (
	AvailabilityCache interface {
		GetDates(ctx context.Context, restaurantID string) ([]string, bool)
		SetDates(ctx context.Context, restaurantID string, dates []string)
	}

	redisAvailabilityCache struct {
		client *redis.Client
		ttl    time.Duration
	}
)

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) AvailabilityCache {
	return &redisAvailabilityCache{client: client, ttl: ttl}
}

func bookedKey(restaurantID string) string {
	return "booked:" + restaurantID
}

func (c *redisAvailabilityCache) GetDates(ctx context.Context, restaurantID string) ([]string, bool) {
	raw, err := c.client.Get(ctx, bookedKey(restaurantID)).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (c *redisAvailabilityCache) SetDates(ctx context.Context, restaurantID string, dates []string) {
	payload, err := json.Marshal(dates)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, bookedKey(restaurantID), payload, c.ttl).Err()
}

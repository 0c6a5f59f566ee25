// internal/recommendation/cache.go

package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache stores generated recommendation payloads in Redis. A nil
// client disables caching, so the service works without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(userID int64) string {
	return fmt.Sprintf("recommendations:user:%d", userID)
}

// Get returns the cached payload for a user, or nil on miss. Cache
// errors are treated as misses.
func (c *Cache) Get(ctx context.Context, userID int64) *RecommendationsResponse {
	if c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil
	}
	var response RecommendationsResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil
	}
	return &response
}

// Set stores the payload; failures are ignored since the database
// remains the source of truth
func (c *Cache) Set(ctx context.Context, userID int64, response *RecommendationsResponse) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(userID), raw, c.ttl)
}

// Invalidate drops the cached payload after a profile change
func (c *Cache) Invalidate(ctx context.Context, userID int64) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, c.key(userID))
}

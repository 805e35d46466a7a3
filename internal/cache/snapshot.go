package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps serialized report snapshots in Redis with a TTL, so
// repeated reads within the window skip the aggregation queries entirely.
type SnapshotCache struct {
	client *redis.Client
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// Get unmarshals the cached value into dest. The bool reports a hit; a
// missing or expired key is not an error.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal: %w", err)
	}

	return true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	if err = c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}

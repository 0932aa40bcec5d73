package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey = "leaderboard:top"
	leaderboardTTL = 5 * time.Minute
)

// Cache wraps the redis client used for leaderboard responses. A nil inner
// client degrades every operation to a miss/no-op so the API keeps working
// without redis.
type Cache struct {
	client *redis.Client
}

// Connect dials redis. An empty addr returns a disabled cache.
func Connect(ctx context.Context, addr, password string) (*Cache, error) {
	if addr == "" {
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return &Cache{}, err
	}

	return &Cache{client: client}, nil
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Cache) Leaderboard(ctx context.Context) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) SetLeaderboard(ctx context.Context, data []byte) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, leaderboardKey, data, leaderboardTTL)
}

// InvalidateLeaderboard is called whenever points change (habit logged,
// donation delivered).
func (c *Cache) InvalidateLeaderboard(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, leaderboardKey)
}

func (c *Cache) Healthy(ctx context.Context) bool {
	if c.client == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Ping(pingCtx).Err() == nil
}

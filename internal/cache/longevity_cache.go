package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"healthquiz/internal/scoring"
)

// LongevityContextCache holds each user's latest longevity context so cardiac scoring
// does not have to go back to Mongo.
type LongevityContextCache interface {
	Get(ctx context.Context, userID string) (*scoring.LongevityContext, error)
	Set(ctx context.Context, userID string, lc *scoring.LongevityContext) error
}

type longevityContextCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLongevityContextCache creates a new longevity context cache
func NewLongevityContextCache(client *redis.Client) LongevityContextCache {
	return &longevityContextCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func (c *longevityContextCache) key(userID string) string {
	return fmt.Sprintf("user:%s:longevity", userID)
}

func (c *longevityContextCache) Get(ctx context.Context, userID string) (*scoring.LongevityContext, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lc scoring.LongevityContext
	if err := json.Unmarshal([]byte(data), &lc); err != nil {
		return nil, err
	}
	return &lc, nil
}

func (c *longevityContextCache) Set(ctx context.Context, userID string, lc *scoring.LongevityContext) error {
	data, err := json.Marshal(lc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

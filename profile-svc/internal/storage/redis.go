package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dinefine/profile-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func PreferencesKey(userID string) string {
	return "preferences:" + userID
}

func (c *RedisCache) Get(ctx context.Context, userID string) (*domain.Preferences, bool, error) {
	payload, err := c.Client.Get(ctx, PreferencesKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return nil, false, err
	}
	return &prefs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, prefs *domain.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, PreferencesKey(prefs.UserID), payload, c.TTL).Err()
}

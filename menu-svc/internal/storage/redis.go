package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dinefine/dietary"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MenuKey(restaurantID int) string {
	return "menu:" + strconv.Itoa(restaurantID)
}

func (c *RedisCache) GetMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, bool, error) {
	payload, err := c.Client.Get(ctx, c.MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var dishes []dietary.Dish
	if err := json.Unmarshal(payload, &dishes); err != nil {
		return nil, false, err
	}
	return dishes, true, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisCache) SetMenuIfAbsent(ctx context.Context, restaurantID int, dishes []dietary.Dish) error {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.SetNX(ctx, c.MenuKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, restaurantID int) error {
	return c.Client.Del(ctx, c.MenuKey(restaurantID)).Err()
}

package keyval

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisApi struct {
	rdb *redis.Client
}

func NewRedisApi(rdb *redis.Client) *RedisApi {
	return &RedisApi{rdb: rdb}
}

func (api *RedisApi) Get(ctx context.Context, key string) (string, error) {
	val, err := api.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (api *RedisApi) Set(ctx context.Context, key, value string) error {
	// no expiration, tracker snapshots live until overwritten
	if err := api.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

package pkg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSet stores a value with a TTL. The value is JSON-serialized.
func RedisSet(client *redis.Client, key string, value any, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, data, ttl).Err()
}

// RedisGet retrieves a value and JSON-deserializes it into dest.
// Returns redis.Nil if the key does not exist.
func RedisGet(client *redis.Client, key string, dest any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// RedisDelete removes a key.
func RedisDelete(client *redis.Client, key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Del(ctx, key).Err()
}

// IsRedisNil returns true if the error is a redis key-not-found error.
func IsRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// DenylistToken marks an access token as revoked until it would have
// expired anyway. Used by logout.
func DenylistToken(client *redis.Client, token string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Set(ctx, denylistKey(token), "1", ttl).Err()
}

// IsTokenDenylisted reports whether a token has been revoked. A Redis
// outage fails open so auth does not depend on the cache being up.
func IsTokenDenylisted(client *redis.Client, token string) bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := client.Exists(ctx, denylistKey(token)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func denylistKey(token string) string {
	return fmt.Sprintf("auth:denylist:%s", token)
}

package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "cache: ping redis")
	}

	return &RedisClient{Client: client}, nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}

// releaseScript deletes the lock only if it is still held by the caller.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

func (c *RedisClient) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := c.Client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "cache: acquire lock")
	}
	return ok, nil
}

func (c *RedisClient) ReleaseLock(ctx context.Context, key, value string) error {
	err := releaseScript.Run(ctx, c.Client, []string{key}, value).Err()
	if err != nil && err != redis.Nil {
		return errors.Wrap(err, "cache: release lock")
	}
	return nil
}

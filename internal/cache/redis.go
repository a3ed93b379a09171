package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"todolist-api/internal/config"
	"todolist-api/pkg/logger"
)

const todosCacheKey = "todos:all"

var (
	client *redis.Client
	once   sync.Once
)

// Client returns the global Redis client (initialized on first use).
// Returns nil when Redis is unavailable; callers fall back to the DB.
func Client(ctx context.Context) *redis.Client {
	once.Do(func() {
		cfg := config.Get()
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error(ctx, "Invalid REDIS_URL", "error", err, "url", cfg.RedisURL)
			return
		}
		opts.PoolSize = cfg.RedisPoolSize
		c := redis.NewClient(opts)
		if err := c.Ping(ctx).Err(); err != nil {
			logger.Error(ctx, "Redis ping failed", "error", err)
			return
		}
		client = c
		logger.Info(ctx, "Redis client initialized", "pool_size", cfg.RedisPoolSize)
	})
	return client
}

// SetClient swaps the Redis client. Test hook.
func SetClient(c *redis.Client) {
	once.Do(func() {})
	client = c
}

// GetRawTodos reads the cached todo listing as raw JSON bytes.
// Returns (nil, false) on miss or error.
func GetRawTodos(ctx context.Context) ([]byte, bool) {
	c := Client(ctx)
	if c == nil {
		return nil, false
	}
	b, err := c.Get(ctx, todosCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Debug(ctx, "Redis get todos failed", "error", err)
		return nil, false
	}
	return b, true
}

// SetRawTodos writes the todo listing bytes with the configured TTL.
func SetRawTodos(ctx context.Context, b []byte) {
	c := Client(ctx)
	if c == nil {
		return
	}
	ttl := time.Duration(config.Get().CacheTTL) * time.Second
	if err := c.Set(ctx, todosCacheKey, b, ttl).Err(); err != nil {
		logger.Debug(ctx, "Redis set todos failed", "error", err)
	}
}

// SetRawTodosAsync populates the cache off the request path.
func SetRawTodosAsync(b []byte) {
	go SetRawTodos(context.Background(), b)
}

// InvalidateTodos deletes the listing key so the next read goes to the DB.
func InvalidateTodos(ctx context.Context) {
	c := Client(ctx)
	if c == nil {
		return
	}
	if err := c.Del(ctx, todosCacheKey).Err(); err != nil {
		logger.Debug(ctx, "Redis invalidate todos failed", "error", err)
	}
}

package cache_test

import (
	"context"
	"testing"

	"todolist-api/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestTodosCacheRoundTrip(t *testing.T) {
	assert := assert.New(t)
	setupCache(t)
	ctx := context.Background()

	_, found := cache.GetRawTodos(ctx)
	assert.False(found)

	payload := []byte(`[{"id":1,"title":"Groceries"}]`)
	cache.SetRawTodos(ctx, payload)

	got, found := cache.GetRawTodos(ctx)
	assert.True(found)
	assert.Equal(payload, got)
}

func TestInvalidateTodos(t *testing.T) {
	assert := assert.New(t)
	setupCache(t)
	ctx := context.Background()

	cache.SetRawTodos(ctx, []byte(`[]`))
	_, found := cache.GetRawTodos(ctx)
	assert.True(found)

	cache.InvalidateTodos(ctx)
	_, found = cache.GetRawTodos(ctx)
	assert.False(found)
}

func TestCacheMissWhenRedisDown(t *testing.T) {
	assert := assert.New(t)
	mr := setupCache(t)
	ctx := context.Background()

	cache.SetRawTodos(ctx, []byte(`[]`))
	mr.Close()

	_, found := cache.GetRawTodos(ctx)
	assert.False(found)
}

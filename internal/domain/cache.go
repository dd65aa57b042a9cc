package domain

import (
	"context"
	"strconv"
)

// Cache keys in one place so they don't scatter across handlers.
func CacheKeyBlog(id BlogID) string { return "blog:" + id.String() }

// pageKey = hash of filter+page; ver bumps on every mutation so stale
// list pages simply stop matching.
func CacheKeyBlogList(ver int64, pageKey string) string {
	return "bloglist:" + strconv.FormatInt(ver, 10) + ":" + pageKey
}

const CacheKeyListVersion = "bloglist:ver"

// Simple k/v interface. Implemented by Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	// Incr backs the list version counter used for invalidation.
	Incr(ctx context.Context, key string) (int64, error)
	Ping(context.Context) error
	Close()
}

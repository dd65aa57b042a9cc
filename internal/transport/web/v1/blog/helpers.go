package blog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"blogapi/internal/domain"
)

func parseBlogID(raw string) (domain.BlogID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad blog id", domain.ErrNotFound)
	}
	return id, nil
}

// listVersion reads the monotonically bumped list counter; a cache miss or
// error degrades to version 0 (worst case: one stale page TTL).
func (h *Handler) listVersion(ctx context.Context) int64 {
	b, err := h.Cache.Get(ctx, domain.CacheKeyListVersion)
	if err != nil || len(b) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// invalidate drops the single-post entry and orphans all cached list pages.
func (h *Handler) invalidate(ctx context.Context, id domain.BlogID) {
	if err := h.Cache.Del(ctx, domain.CacheKeyBlog(id)); err != nil {
		h.Log.Printf("cache del blog %s: %v", id, err)
	}
	if _, err := h.Cache.Incr(ctx, domain.CacheKeyListVersion); err != nil {
		h.Log.Printf("cache incr list version: %v", err)
	}
}

// listPageKey is a stable hash of the list query parameters.
func listPageKey(f domain.ListFilter) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("title=%s&page=%d&limit=%d", f.Title, f.Page, f.Limit)))
	return hex.EncodeToString(sum[:8])
}

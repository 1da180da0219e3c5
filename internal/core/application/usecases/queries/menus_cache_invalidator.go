package queries

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// MenusCacheInvalidator drops the cached menu listings after a menu mutation.
// The cache TTL remains the backstop for invalidations that never happen,
// such as a hide forced by the asynchronous price cascade.
type MenusCacheInvalidator struct {
	cache *redis.Client
}

// NewMenusCacheInvalidator creates an invalidator for the menu listing cache.
// The cache client may be nil, in which case invalidation is a no-op.
func NewMenusCacheInvalidator(cache *redis.Client) MenusCacheInvalidator {
	return MenusCacheInvalidator{cache: cache}
}

// InvalidateMenus removes both menu listing cache entries.
func (i MenusCacheInvalidator) InvalidateMenus(ctx context.Context) error {
	if i.cache == nil {
		return nil
	}

	return i.cache.Del(ctx, menusCacheKeyAll, menusCacheKeyDisplayed).Err()
}

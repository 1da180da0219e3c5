package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	menusCacheKeyAll       = "menus:all"
	menusCacheKeyDisplayed = "menus:displayed"
)

// GetMenusQueryHandler retrieves the menu catalog with a Redis cache in front
// of the database. Listings are cached as JSON under a short TTL; a cache
// failure degrades to a plain database read.
type GetMenusQueryHandler struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewGetMenusQueryHandler creates a handler for menu catalog queries.
// The cache client may be nil, in which case every read goes to the database.
func NewGetMenusQueryHandler(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) GetMenusQueryHandler {
	return GetMenusQueryHandler{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Handle executes the query to retrieve the menu catalog.
// Results are sorted by name for consistent output.
func (h GetMenusQueryHandler) Handle(
	ctx context.Context,
	query GetMenusQuery,
) ([]GetMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := menusCacheKeyAll
	if query.OnlyDisplayed() {
		key = menusCacheKeyDisplayed
	}

	if cached, ok := h.readCache(ctx, key); ok {
		return cached, nil
	}

	menus, err := h.readDatabase(ctx, query.OnlyDisplayed())
	if err != nil {
		return nil, err
	}

	h.writeCache(ctx, key, menus)
	return menus, nil
}

func (h GetMenusQueryHandler) readDatabase(ctx context.Context, onlyDisplayed bool) ([]GetMenusQueryResponse, error) {
	menus := make([]GetMenusQueryResponse, 0)

	sql := `
		SELECT
			id,
			name,
			price,
			displayed,
			menu_group_id
		FROM menus
	`
	args := make([]any, 0, 1)
	if onlyDisplayed {
		sql += " WHERE displayed = ?"
		args = append(args, true)
	}
	sql += " ORDER BY name, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var menuResp GetMenusQueryResponse

		err = rows.Scan(
			&menuResp.ID,
			&menuResp.Name,
			&menuResp.Price,
			&menuResp.Displayed,
			&menuResp.MenuGroupID,
		)
		if err != nil {
			return nil, err
		}

		menus = append(menus, menuResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}

func (h GetMenusQueryHandler) readCache(ctx context.Context, key string) ([]GetMenusQueryResponse, bool) {
	if h.cache == nil {
		return nil, false
	}

	// An unreachable cache is treated the same as a miss
	raw, err := h.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var menus []GetMenusQueryResponse
	if err = json.Unmarshal(raw, &menus); err != nil {
		return nil, false
	}

	return menus, true
}

func (h GetMenusQueryHandler) writeCache(ctx context.Context, key string, menus []GetMenusQueryResponse) {
	if h.cache == nil {
		return
	}

	raw, err := json.Marshal(menus)
	if err != nil {
		return
	}

	_ = h.cache.Set(ctx, key, raw, h.cacheTTL).Err()
}

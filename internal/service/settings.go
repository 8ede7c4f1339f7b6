package service

import (
	"context"
	"encoding/json"
	"time"

	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/model"
	"sample-registry/internal/store"
)

const (
	settingsCacheKey = "settings:current"
	settingsCacheTTL = time.Hour
)

var getCurrentSettings = store.GetCurrentSettings

// CurrentSettings returns the latest settings row, reading through the
// cache. Cache failures fall back to the database, which stays authoritative.
func CurrentSettings(ctx context.Context, db database.Querier, rdb cache.Cache) (*model.Settings, error) {
	if rdb != nil {
		if raw, err := rdb.Get(ctx, settingsCacheKey).Result(); err == nil {
			var s model.Settings
			if err := json.Unmarshal([]byte(raw), &s); err == nil {
				return &s, nil
			}
		}
	}

	s, err := getCurrentSettings(ctx, db)
	if err != nil {
		return nil, err
	}
	CacheSettings(ctx, rdb, s)
	return s, nil
}

// CacheSettings overwrites the cached current settings. Errors are ignored:
// a stale or missing cache entry only costs a database read.
func CacheSettings(ctx context.Context, rdb cache.Cache, s *model.Settings) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	rdb.Set(ctx, settingsCacheKey, string(raw), settingsCacheTTL)
}

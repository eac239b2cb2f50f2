package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
)

const menuCacheKey = "menu:all"

// MenuCache menyimpan daftar menu lengkap di Redis.
// Client nil membuat semua method menjadi no-op.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (mc *MenuCache) enabled() bool {
	return mc != nil && mc.Client != nil
}

// Get -> (items, true) bila cache hit
func (mc *MenuCache) Get(ctx context.Context) ([]models.MenuItem, bool) {
	if !mc.enabled() {
		return nil, false
	}
	raw, err := mc.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.ErrorLogger.Printf("menu cache get: %v", err)
		}
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		utils.ErrorLogger.Printf("menu cache decode: %v", err)
		return nil, false
	}
	return items, true
}

func (mc *MenuCache) Set(ctx context.Context, items []models.MenuItem) {
	if !mc.enabled() {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := mc.Client.Set(ctx, menuCacheKey, raw, mc.TTL).Err(); err != nil {
		utils.ErrorLogger.Printf("menu cache set: %v", err)
	}
}

func (mc *MenuCache) Invalidate(ctx context.Context) {
	if !mc.enabled() {
		return
	}
	if err := mc.Client.Del(ctx, menuCacheKey).Err(); err != nil {
		utils.ErrorLogger.Printf("menu cache invalidate: %v", err)
	}
}

package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis mengembalikan nil jika REDIS_ADDR kosong atau server tidak bisa di-ping.
// Pemanggil harus berjalan tanpa cache dalam kasus itu.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

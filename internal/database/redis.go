package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client backing admin sessions. The server can run
// without it; admin access then falls back to bearer tokens only.
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	log.Println("redis connected")
	return rdb, nil
}

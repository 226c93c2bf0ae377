// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"handyhub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient backs the durable cart and pending-booking store.
	CartCacheClient *redis.Client
	// SessionCacheClient is the dedicated client for checkout session state.
	SessionCacheClient *redis.Client
)

// InitCartCache initializes the Redis client backing the cart store.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Store): %v", err)
	}
}

// GetCartCacheClient returns the cart store client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}

// InitSessionCache initializes the Redis client for checkout sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Checkout Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for checkout sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

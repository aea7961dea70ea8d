package storage

import (
	"context"
	"log"
	"time"

	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

var bgContext = context.Background()

func InitializeRedis() {
	redisURL := utils.Conf.RedisURL
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("REDIS_URL not set, using localhost:6379")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr: redisURL,
		DB:   0,
	})
}

// CacheGet returns the cached value, or "" when Redis is absent, down, or the
// key is missing. Cache failures never surface to callers.
func CacheGet(key string) string {
	if Redis == nil {
		return ""
	}
	val, err := Redis.Get(bgContext, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func CacheSet(key, value string, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(bgContext, key, value, ttl).Err(); err != nil {
		log.Printf("[CACHE] set %s failed: %v", key, err)
	}
}

func CacheDel(keys ...string) {
	if Redis == nil {
		return
	}
	if err := Redis.Del(bgContext, keys...).Err(); err != nil {
		log.Printf("[CACHE] del failed: %v", err)
	}
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"printshop-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	DashboardKey   = "dashboard:summary"
	ReportKeyFmt   = "report:%s"
	dashboardTTL   = 2 * time.Minute
	reportTTL      = 5 * time.Minute
	authTTL        = 15 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when Redis
// is unreachable every helper degrades to a miss.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when the cache is down)
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials so repeated logins skip bcrypt
func CacheAuth(ctx context.Context, email, password string, userID int64) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, authTTL)
}

// InvalidateAuth removes cached auth for a user (on password change)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Del(ctx, key)
}

// GetCachedDashboard returns the cached dashboard summary if present
func GetCachedDashboard(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, DashboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheDashboard stores the rendered dashboard summary
func CacheDashboard(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, DashboardKey, data, dashboardTTL)
}

// InvalidateDerived drops every cached value computed from the collections.
// Called after any write to teachers, operations, payments or expenses.
func InvalidateDerived(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, DashboardKey)
	iter := client.Scan(ctx, 0, "report:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

// GetCachedReport returns a cached assembled report by config hash
func GetCachedReport(ctx context.Context, configHash string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(ReportKeyFmt, configHash)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheReport stores an assembled report JSON payload by config hash
func CacheReport(ctx context.Context, configHash string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(ReportKeyFmt, configHash), data, reportTTL)
}

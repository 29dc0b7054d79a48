// Package lock provides a best-effort run lock in Redis so two
// overlapping invocations cannot race past the existence check. The
// lock is advisory: when Redis is not configured the sync runs
// unguarded, which is the documented single-invocation mode.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "garmin-to-notion:lock"

// Config holds Redis connection settings for the lock
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Locker acquires and releases per-date run locks
type Locker struct {
	client *redis.Client
}

// Open connects to Redis and verifies the connection
func Open(cfg Config) (*Locker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Locker{client: client}, nil
}

// Close closes the Redis connection
func (l *Locker) Close() error {
	return l.client.Close()
}

// TryLock attempts to take the lock for a key. It returns false when
// another run already holds it. The TTL bounds how long a crashed run
// can keep the lock.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, fullKey(key), 1, ttl).Result()
}

// Unlock releases the lock for a key
func (l *Locker) Unlock(ctx context.Context, key string) error {
	return l.client.Del(ctx, fullKey(key)).Err()
}

func fullKey(key string) string {
	return keyPrefix + ":" + key
}

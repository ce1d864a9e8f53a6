package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter counts hits per key within a fixed time window, backed by
// Redis so limits hold across process restarts and replicas.
// Key format: ratelimit:<key>:<window_start_unix>
type WindowCounter struct {
	client *redis.Client
}

// NewWindowCounter creates a WindowCounter wrapping the given Redis client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// Incr increments the counter for key in the current window and returns the
// new count. The window key expires one full window after its first hit.
func (w *WindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := w.key(key, window)

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	return incr.Val(), nil
}

func (w *WindowCounter) key(key string, window time.Duration) string {
	windowStart := time.Now().Unix() / int64(window.Seconds()) * int64(window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, windowStart)
}

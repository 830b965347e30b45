package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit"

// WindowCounter counts hits per key in fixed windows shared by every API
// instance. Key format: ratelimit:<bucket>:<client>
type WindowCounter struct {
	client *redis.Client
}

func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// Hit records one request and returns the count so far in the current
// window together with the time left until the window resets.
func (w *WindowCounter) Hit(ctx context.Context, bucket, client string, window time.Duration) (int64, time.Duration, error) {
	key := w.key(bucket, client)

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate counter: %w", err)
	}

	remaining := ttl.Val()
	// A fresh key (or one that lost its expiry) starts a new window.
	if remaining < 0 {
		if err := w.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate counter expire: %w", err)
		}
		remaining = window
	}
	return incr.Val(), remaining, nil
}

func (w *WindowCounter) key(bucket, client string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, bucket, client)
}

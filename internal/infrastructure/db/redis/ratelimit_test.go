package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCounter(t *testing.T) *WindowCounter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWindowCounter(client)
}

func TestWindowCounter_Increments(t *testing.T) {
	counter := newTestCounter(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Incr(ctx, "1.2.3.4", time.Minute)
		if err != nil {
			t.Fatalf("incr failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected count %d, got %d", want, got)
		}
	}
}

func TestWindowCounter_KeysAreIndependent(t *testing.T) {
	counter := newTestCounter(t)
	ctx := context.Background()

	if _, err := counter.Incr(ctx, "1.2.3.4", time.Minute); err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	got, err := counter.Incr(ctx, "5.6.7.8", time.Minute)
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected independent counter to start at 1, got %d", got)
	}
}

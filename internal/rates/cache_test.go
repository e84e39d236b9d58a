package rates

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Errorf("Get() found a value for a missing key")
	}

	if err := cache.Set(ctx, "key", "value", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok := cache.Get(ctx, "key")
	if !ok || got != "value" {
		t.Errorf("Get() = (%q, %v), expected (value, true)", got, ok)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", "value", time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok := cache.Get(ctx, "key"); ok {
		t.Errorf("Get() returned an expired entry")
	}
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", "value", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, ok := cache.Get(ctx, "key"); !ok {
		t.Errorf("Get() missed an entry stored without a TTL")
	}
}

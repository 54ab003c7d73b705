package repository

import (
	"context"
	"testing"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := cache.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := cache.Get(ctx, "k")
	if !ok || got != "v" {
		t.Errorf("get = %q, %v; want \"v\", true", got, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("len = %d, want 1", cache.Len())
	}

	if err := cache.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = cache.Get(ctx, "k")
	if got != "v2" {
		t.Errorf("overwrite lost: got %q", got)
	}
}

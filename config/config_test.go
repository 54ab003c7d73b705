package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("http addr = %q, want :8080", cfg.Server.HTTPAddr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should default to disabled")
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", cfg.Cache.TTL)
	}
	if cfg.RateLimit.Capacity != 30 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("rate limit = %d/%v, want 30/1m", cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MORTGAGE_SERVER_HTTP_ADDR", ":9090")
	t.Setenv("MORTGAGE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":9090" {
		t.Errorf("http addr = %q, want env override :9090", cfg.Server.HTTPAddr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

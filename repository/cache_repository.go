package repository

import "context"

// CacheRepository stores serialized comparison results keyed by a hash
// of their request. Lookups that miss return ok = false.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

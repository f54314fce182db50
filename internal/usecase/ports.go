package usecase

import (
	"context"
	"time"
)

// Cache is the narrow caching surface usecases depend on. Implementations may
// degrade to a no-op when the backing store is unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Notifier publishes domain events to connected clients. Publishing is
// fire-and-forget; delivery is best effort.
type Notifier interface {
	Publish(event string, payload any)
}

// Cache keys.
const (
	cacheKeySkillCatalog   = "skills:catalog"
	cacheKeyActiveMessages = "messages:active"
	cacheKeyProfilePrefix  = "users:profile:"
)

func profileCacheKey(userID string) string {
	return cacheKeyProfilePrefix + userID
}

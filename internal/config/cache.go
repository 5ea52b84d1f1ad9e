package config

import "time"

// CacheConfig defines settings for the todo list cache.  The cache holds
// the rendered GET /api/todos response per user and is invalidated on any
// write to that user's list, so the TTL is only a backstop against stale
// entries surviving a missed invalidation.  When Enabled is false or no
// Redis client is configured, caching is disabled entirely.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: envBool("CACHE_ENABLED", true),
        TTL:     envDur("CACHE_TTL", 60*time.Second),
        Prefix:  envStr("CACHE_PREFIX", "todos"),
    }
}

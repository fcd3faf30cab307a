package common

import "time"

// CacheInterface is the key/value contract behind the pass lock. Values are
// owner strings; every write carries a TTL so a crashed holder never keeps a
// key forever.
type CacheInterface interface {
	// SetIfAbsent stores value only when key is not present and reports
	// whether it did. It is atomic, so it doubles as a short lived lock.
	// An error means the backend could not answer, not that the key exists.
	SetIfAbsent(key, value string, ttl time.Duration) (bool, error)

	Get(key string) (string, bool)

	// DeleteIfValue removes key only while it still holds value.
	DeleteIfValue(key, value string) bool

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

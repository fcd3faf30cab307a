package common

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is the in-memory cache used when Redis is not configured.
// It only coordinates goroutines of one process.
type CacheService struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

// SetIfAbsent relies on go-cache Add, which fails while an unexpired item exists.
func (cs *CacheService) SetIfAbsent(key, value string, ttl time.Duration) (bool, error) {
	return cs.cache.Add(key, value, ttl) == nil, nil
}

func (cs *CacheService) Get(key string) (string, bool) {
	val, found := cs.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (cs *CacheService) DeleteIfValue(key, value string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if current, found := cs.Get(key); !found || current != value {
		return false
	}
	cs.cache.Delete(key)
	return true
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}

package common

import (
	"time"

	"football-club/matchday/internal/constants"

	"github.com/google/uuid"
)

// PassLock serializes background passes across goroutines, and across
// replicas when the cache is Redis backed.
type PassLock struct {
	cache CacheInterface
	owner string
}

func NewPassLock(cache CacheInterface) *PassLock {
	return &PassLock{cache: cache, owner: uuid.NewString()}
}

// TryAcquire takes the named lock for at most ttl. A holder that crashes
// releases it by expiry. The error is set when the backing cache is
// unreachable; callers decide whether to proceed unlocked.
func (l *PassLock) TryAcquire(name string, ttl time.Duration) (bool, error) {
	return l.cache.SetIfAbsent(string(constants.CachePrefixPassLock)+name, l.owner, ttl)
}

// Release gives the lock up unless it already expired and changed hands.
func (l *PassLock) Release(name string) {
	l.cache.DeleteIfValue(string(constants.CachePrefixPassLock)+name, l.owner)
}

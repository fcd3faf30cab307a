package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// held unwraps a lock attempt that must not fail at the backend.
func held(t *testing.T) func(bool, error) bool {
	return func(ok bool, err error) bool {
		t.Helper()
		require.NoError(t, err)
		return ok
	}
}

func TestCacheService_SetIfAbsent(t *testing.T) {
	c := NewCacheService(60, 120)

	assert.True(t, held(t)(c.SetIfAbsent("LOCK_pass", "a", time.Minute)))
	assert.False(t, held(t)(c.SetIfAbsent("LOCK_pass", "b", time.Minute)))

	val, ok := c.Get("LOCK_pass")
	require.True(t, ok)
	assert.Equal(t, "a", val)
}

func TestCacheService_SetIfAbsentAfterExpiry(t *testing.T) {
	c := NewCacheService(60, 120)

	assert.True(t, held(t)(c.SetIfAbsent("k", "1", 10*time.Millisecond)))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, held(t)(c.SetIfAbsent("k", "2", time.Minute)))
}

func TestCacheService_DeleteIfValue(t *testing.T) {
	c := NewCacheService(60, 120)
	require.True(t, held(t)(c.SetIfAbsent("k", "owner-a", time.Minute)))

	assert.False(t, c.DeleteIfValue("k", "owner-b"))
	_, found := c.Get("k")
	assert.True(t, found)

	assert.True(t, c.DeleteIfValue("k", "owner-a"))
	_, found = c.Get("k")
	assert.False(t, found)

	assert.False(t, c.DeleteIfValue("missing", "owner-a"))
}

func TestPassLock(t *testing.T) {
	cache := NewCacheService(60, 120)
	a := NewPassLock(cache)
	b := NewPassLock(cache)

	require.True(t, held(t)(a.TryAcquire("deadline_scheduler", time.Minute)))
	assert.False(t, held(t)(b.TryAcquire("deadline_scheduler", time.Minute)))
	assert.True(t, held(t)(b.TryAcquire("membership_expiry", time.Minute)))

	// b does not own the deadline lock, so its release is ignored.
	b.Release("deadline_scheduler")
	assert.False(t, held(t)(b.TryAcquire("deadline_scheduler", time.Minute)))

	a.Release("deadline_scheduler")
	assert.True(t, held(t)(b.TryAcquire("deadline_scheduler", time.Minute)))
}

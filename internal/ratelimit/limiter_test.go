package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(maxAttempts int, lockout time.Duration) (*Limiter, *time.Time) {
	l := NewLimiter(maxAttempts, lockout)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllowedBelowThreshold(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 4; i++ {
		require.NoError(t, l.CheckAllowed("a@x.com"))
		l.RecordFailure("a@x.com")
	}

	assert.NoError(t, l.CheckAllowed("a@x.com"))
}

func TestLockedAtThreshold(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		l.RecordFailure("a@x.com")
	}

	assert.ErrorIs(t, l.CheckAllowed("a@x.com"), ErrTooManyAttempts)

	// Other identities are unaffected
	assert.NoError(t, l.CheckAllowed("b@x.com"))
}

func TestLockoutExpires(t *testing.T) {
	l, clock := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		l.RecordFailure("a@x.com")
	}
	require.ErrorIs(t, l.CheckAllowed("a@x.com"), ErrTooManyAttempts)

	// One second short of the window: still locked
	*clock = clock.Add(15*time.Minute - time.Second)
	assert.ErrorIs(t, l.CheckAllowed("a@x.com"), ErrTooManyAttempts)

	// Window elapsed: record purged, attempts allowed again
	*clock = clock.Add(2 * time.Second)
	assert.NoError(t, l.CheckAllowed("a@x.com"))

	// The purge resets the count entirely
	l.RecordFailure("a@x.com")
	assert.NoError(t, l.CheckAllowed("a@x.com"))
}

func TestRecordSuccessClears(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		l.RecordFailure("a@x.com")
	}
	require.ErrorIs(t, l.CheckAllowed("a@x.com"), ErrTooManyAttempts)

	l.RecordSuccess("a@x.com")
	assert.NoError(t, l.CheckAllowed("a@x.com"))
}

func TestConcurrentFailures(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RecordFailure("a@x.com")
		}()
	}
	wg.Wait()

	assert.ErrorIs(t, l.CheckAllowed("a@x.com"), ErrTooManyAttempts)
}

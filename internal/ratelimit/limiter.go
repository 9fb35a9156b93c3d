// Package ratelimit throttles repeated failed login attempts per identity
// to blunt credential-stuffing attacks. Lockout is keyed by email, not by
// source address: distributed attempts against many accounts are not
// covered, and an attacker who knows an email can lock its owner out.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

var ErrTooManyAttempts = errors.New("too many login attempts")

type attemptRecord struct {
	count       int
	lastAttempt time.Time
}

// Limiter tracks consecutive authentication failures per identity.
type Limiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptRecord

	maxAttempts int
	lockout     time.Duration
	now         func() time.Time
}

func NewLimiter(maxAttempts int, lockout time.Duration) *Limiter {
	return &Limiter{
		attempts:    make(map[string]*attemptRecord),
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

// CheckAllowed returns ErrTooManyAttempts while the identity is locked
// out. Once the lockout window has elapsed since the last failure the
// record is purged and the identity is allowed again.
func (l *Limiter) CheckAllowed(identity string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[identity]
	if !ok || rec.count < l.maxAttempts {
		return nil
	}

	if l.now().Sub(rec.lastAttempt) < l.lockout {
		return ErrTooManyAttempts
	}

	// Lockout elapsed: reset
	delete(l.attempts, identity)
	return nil
}

// RecordFailure increments the failure count, creating the record at one
// if absent, and refreshes the last-attempt timestamp.
func (l *Limiter) RecordFailure(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[identity]
	if !ok {
		rec = &attemptRecord{}
		l.attempts[identity] = rec
	}
	rec.count++
	rec.lastAttempt = l.now()
}

// RecordSuccess deletes any failure record for the identity.
func (l *Limiter) RecordSuccess(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, identity)
}

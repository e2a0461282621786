package testutil

import (
	"errors"
	"sync"
	"time"
)

const DatabaseError = "database error occurred"

// ErrDatabase is the generic failure returned by mocks.
var ErrDatabase = errors.New(DatabaseError)

// Clock returns a controllable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts the clock at the given instant.
func NewClock(at time.Time) *Clock {
	return &Clock{now: at}
}

// Now is the current fake time, used as a func() time.Time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// ReferenceTime is the instant most tests run at.
func ReferenceTime() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
}

package sheetcache

import (
	"sync"
	"time"
)

// Clock abstracts the passage of time so that the freshness gate can be
// tested without sleeping.
type Clock interface {
	Now() time.Time
}

// RealClock provides functions that wrap the real time.
type RealClock struct{}

// NewClock returns a Clock backed by the time package.
func NewClock() *RealClock {
	return &RealClock{}
}

// Now wraps time.Now() from the standard library.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// TestClock is a Clock that only moves when told to.
type TestClock struct {
	mu   sync.Mutex
	time time.Time
}

// NewTestClock returns a TestClock starting at the given time.
func NewTestClock(t time.Time) *TestClock {
	return &TestClock{time: t}
}

// Set sets the internal time of the test clock.
func (c *TestClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = t
}

// Add moves the clock forward by d.
func (c *TestClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = c.time.Add(d)
}

// Now returns the internal time of the test clock.
func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}

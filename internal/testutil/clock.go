// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"sync"
	"time"
)

// StepClock is a time source for code that takes a `func() time.Time`.
// Each call to Now returns the next instant, step apart from the previous one.
// A zero step returns the same instant every time.
type StepClock struct {
	mu    sync.Mutex
	next  time.Time
	step  time.Duration
	calls int
}

// NewStepClock returns a clock whose first reading is start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{next: start, step: step}
}

// Now returns the current reading and moves the clock forward by step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	c.calls++
	return now
}

// Calls reports how many times Now has been read.
func (c *StepClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

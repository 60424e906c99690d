// Package clock provides an injectable time source so timer-driven
// behavior can be simulated in tests without real delays.
package clock

import "time"

// Clock abstracts the wall clock.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a manually advanced clock for tests.
type Fixed struct {
	Current time.Time
}

// NewFixed creates a fixed clock starting at t.
func NewFixed(t time.Time) *Fixed { return &Fixed{Current: t} }

// Now returns the clock's current instant.
func (f *Fixed) Now() time.Time { return f.Current }

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

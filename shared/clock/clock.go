// Package clock provides the monotonic time source every gameplay timer is
// compared against. Durations are hard deadlines measured in seconds.
package clock

import "time"

// Clock reports monotonic seconds since an arbitrary epoch.
type Clock interface {
	Now() float64
}

// System reads the process monotonic clock.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (s *System) Now() float64 {
	return time.Since(s.start).Seconds()
}

// Manual only moves when told to. Used by tests and the headless simulation.
type Manual struct {
	now float64
}

func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() float64 {
	return m.now
}

func (m *Manual) Set(t float64) {
	m.now = t
}

func (m *Manual) Advance(seconds float64) {
	m.now += seconds
}

// Package loop schedules frames for a simulation target and keeps the
// accumulated play time.
package loop

import "time"

// DefaultMaxDelta is the largest frame delta passed to a target.
const DefaultMaxDelta = 250 * time.Millisecond

// Target is driven once per frame, in this order.
type Target interface {
	Update(dt time.Duration)
	Render()
	Advance(dt time.Duration)
}

// Loop turns frame timestamps into clamped deltas.
// It is not safe for concurrent use.
type Loop struct {
	target   Target
	maxDelta time.Duration

	last     time.Time
	started  bool
	playTime time.Duration
}

// New creates a loop. A non-positive maxDelta uses DefaultMaxDelta.
func New(target Target, maxDelta time.Duration) *Loop {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Loop{target: target, maxDelta: maxDelta}
}

// Frame runs one frame stamped now and returns the delta it used.
// The first frame always has a zero delta.
func (l *Loop) Frame(now time.Time) time.Duration {
	var dt time.Duration
	if l.started {
		dt = now.Sub(l.last)
	}
	l.started = true
	l.last = now

	if dt < 0 {
		dt = 0
	}
	if dt > l.maxDelta {
		dt = l.maxDelta
	}

	l.target.Update(dt)
	l.target.Render()
	l.target.Advance(dt)

	l.playTime += dt
	return dt
}

// PlayTime returns the sum of all frame deltas.
func (l *Loop) PlayTime() time.Duration {
	return l.playTime
}

// Interval returns the frame interval for a tick rate.
func Interval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

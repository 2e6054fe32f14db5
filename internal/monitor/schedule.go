package monitor

import "time"

// Schedule is the fixed-interval tick clock. Deadlines are accumulated
// (next += interval) so slow frames never push later ticks back.
type Schedule struct {
	interval time.Duration
	next     time.Time
}

// NewSchedule starts a clock whose first tick is due at start.
func NewSchedule(interval time.Duration, start time.Time) *Schedule {
	if interval < time.Second {
		interval = time.Second
	}
	return &Schedule{interval: interval, next: start}
}

// Interval returns the tick interval.
func (s *Schedule) Interval() time.Duration { return s.interval }

// Next returns the deadline of the next tick.
func (s *Schedule) Next() time.Time { return s.next }

// Remaining is how long input may be awaited before the next tick; zero when overdue.
func (s *Schedule) Remaining(now time.Time) time.Duration {
	if !now.Before(s.next) {
		return 0
	}
	return s.next.Sub(now)
}

// Due reports whether the next tick deadline has passed.
func (s *Schedule) Due(now time.Time) bool {
	return !now.Before(s.next)
}

// Advance moves the deadline forward by exactly one interval.
func (s *Schedule) Advance() {
	s.next = s.next.Add(s.interval)
}

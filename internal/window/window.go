// Package window implements trailing-window event counters.
package window

import "time"

// Minute is the trailing window used for every per-minute rate.
const Minute = 60 * time.Second

// Horizon returns the exclusive lower bound of the trailing minute ending at now.
func Horizon(now time.Time) time.Time {
	return now.Add(-Minute)
}

type Event struct {
	Time      time.Time
	Magnitude float64
}

// Counter is an append-only list of events queried by timestamp. Memory is
// reclaimed only by PruneBefore. It is not safe for concurrent use.
type Counter struct {
	events []Event
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Record(magnitude float64, at time.Time) {
	c.events = append(c.events, Event{Time: at, Magnitude: magnitude})
}

// SumSince sums magnitudes of events strictly after horizon.
func (c *Counter) SumSince(horizon time.Time) float64 {
	var sum float64
	for _, e := range c.events {
		if e.Time.After(horizon) {
			sum += e.Magnitude
		}
	}
	return sum
}

// CountSince counts events strictly after horizon.
func (c *Counter) CountSince(horizon time.Time) int {
	n := 0
	for _, e := range c.events {
		if e.Time.After(horizon) {
			n++
		}
	}
	return n
}

// PruneBefore drops every event at or before horizon.
func (c *Counter) PruneBefore(horizon time.Time) {
	kept := c.events[:0]
	for _, e := range c.events {
		if e.Time.After(horizon) {
			kept = append(kept, e)
		}
	}
	clear(c.events[len(kept):])
	c.events = kept
}

func (c *Counter) Len() int {
	return len(c.events)
}

package machine

import "github.com/forthlab/stackvm/internal/scheduleio"

// Schedule tracks which scheduled input characters have already been
// delivered. Entries are polled in order, exactly as the original hardware
// scans its input line: the first undelivered entry whose tick has arrived
// fires, one at a time.
type Schedule struct {
	events    []scheduleio.Event
	delivered []bool
}

// NewSchedule wraps a parsed input schedule for delivery during a run.
func NewSchedule(events []scheduleio.Event) *Schedule {
	return &Schedule{events: events, delivered: make([]bool, len(events))}
}

// Poll returns the next undelivered character whose tick has arrived, if
// any, and marks it delivered.
func (s *Schedule) Poll(tick int) (rune, bool) {
	if s == nil {
		return 0, false
	}
	for idx, ev := range s.events {
		if s.delivered[idx] {
			continue
		}
		if ev.Tick <= tick {
			s.delivered[idx] = true
			return ev.Char, true
		}
	}
	return 0, false
}

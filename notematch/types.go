// Package notematch defines the timed event model and error set of
// the streaming matcher.
package notematch

import "errors"

// Sentinel errors for streaming matching.
var (
	// ErrEmptyPattern is returned when the query has no pitches.
	ErrEmptyPattern = errors.New("notematch: empty pattern")

	// ErrUnsortedEvents is returned when event ticks decrease; the
	// matcher requires input already sorted by non-decreasing tick.
	ErrUnsortedEvents = errors.New("notematch: events not sorted by tick")
)

// Event is one note activation: a discrete time position and the
// pitch that sounded there. Multiple events may share a tick.
type Event struct {
	Tick  int64
	Pitch uint8
}

// Chord is the set of pitches active at one tick, deduplicated, in
// first-seen order.
type Chord struct {
	Tick    int64
	Pitches []uint8
}

// Has reports whether pitch is a member of the chord.
func (c Chord) Has(pitch uint8) bool {
	for _, p := range c.Pitches {
		if p == pitch {
			return true
		}
	}

	return false
}

// checkSorted rejects event streams whose ticks decrease.
func checkSorted(events []Event) error {
	for i := 1; i < len(events); i++ {
		if events[i].Tick < events[i-1].Tick {
			return ErrUnsortedEvents
		}
	}

	return nil
}

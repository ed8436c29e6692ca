package notematch

import "iter"

// ReduceTopNote collapses the event stream to one representative per
// distinct tick: the maximum pitch observed at that tick ("top note"
// semantics; ties resolve to the same maximum). Fails with
// ErrUnsortedEvents when ticks decrease. Reducing an already reduced
// sequence is the identity.
func ReduceTopNote(events []Event) ([]Event, error) {
	if err := checkSorted(events); err != nil {
		return nil, err
	}

	reduced := make([]Event, 0, len(events))
	for _, ev := range events {
		if n := len(reduced); n > 0 && reduced[n-1].Tick == ev.Tick {
			if ev.Pitch > reduced[n-1].Pitch {
				reduced[n-1].Pitch = ev.Pitch
			}
			continue
		}
		reduced = append(reduced, ev)
	}

	return reduced, nil
}

// failureTable builds the prefix-function table of length m+1 with the
// r[0] = -1 convention: r[i] is the width of the longest proper border
// of pattern[:i], and the -1 root lets the scan advance past a
// mismatch on the first pattern byte without a special case.
func failureTable(pattern []uint8) []int {
	m := len(pattern)
	r := make([]int, m+1)
	r[0] = -1
	j := -1
	for i := 0; i < m; i++ {
		for j >= 0 && pattern[i] != pattern[j] {
			j = r[j]
		}
		j++
		r[i+1] = j
	}

	return r
}

// Melody finds every start index of pattern in the tick-reduced event
// sequence, using a failure-function automaton built once per call:
// O(len(pattern)) construction, one pass over the events, overlapping
// matches included (the automaton continues through its failure link
// after each hit).
//
// Yielded positions index the reduced sequence; use ReduceTopNote to
// obtain it when tick positions of matches are needed. The sequence
// is lazy, finite and restartable.
//
// Fails with ErrEmptyPattern or ErrUnsortedEvents.
func Melody(events []Event, pattern []uint8) (iter.Seq[int], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	reduced, err := ReduceTopNote(events)
	if err != nil {
		return nil, err
	}

	table := failureTable(pattern)
	m := len(pattern)

	return func(yield func(int) bool) {
		j := 0
		for pos := range reduced {
			for j >= 0 && reduced[pos].Pitch != pattern[j] {
				j = table[j]
			}
			j++
			if j == m {
				if !yield(pos - m + 1) {
					return
				}
				j = table[j]
			}
		}
	}, nil
}

package notematch

import "iter"

// GroupByTick gathers the event stream into one Chord per distinct
// tick holding every pitch active there, deduplicated, no reduction
// to a single value. Fails with ErrUnsortedEvents when ticks decrease.
func GroupByTick(events []Event) ([]Chord, error) {
	if err := checkSorted(events); err != nil {
		return nil, err
	}

	grouped := make([]Chord, 0, len(events))
	for _, ev := range events {
		if n := len(grouped); n > 0 && grouped[n-1].Tick == ev.Tick {
			if !grouped[n-1].Has(ev.Pitch) {
				grouped[n-1].Pitches = append(grouped[n-1].Pitches, ev.Pitch)
			}
			continue
		}
		grouped = append(grouped, Chord{Tick: ev.Tick, Pitches: []uint8{ev.Pitch}})
	}

	return grouped, nil
}

// Chords finds every window of len(pattern) consecutive ticks where
// each pattern pitch is a member of the corresponding tick's chord —
// a direct sliding membership check, O(n·m) worst case. Yielded
// positions index the grouped sequence. Lazy, finite, restartable.
//
// Fails with ErrEmptyPattern or ErrUnsortedEvents.
func Chords(events []Event, pattern []uint8) (iter.Seq[int], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	grouped, err := GroupByTick(events)
	if err != nil {
		return nil, err
	}
	m := len(pattern)

	return func(yield func(int) bool) {
		for pos := 0; pos+m <= len(grouped); pos++ {
			hit := true
			for k, want := range pattern {
				if !grouped[pos+k].Has(want) {
					hit = false
					break
				}
			}
			if hit && !yield(pos) {
				return
			}
		}
	}, nil
}

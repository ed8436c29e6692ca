// Package notematch searches a pitch pattern inside a single timed
// note sequence in one pass, without building an index.
//
// 🚀 How does it work?
//
//	Input is an ordered stream of (tick, pitch) note-on events, sorted
//	by non-decreasing tick. Two matching predicates are offered:
//	  • Melody — each tick is reduced to its top note (the maximum
//	    pitch active at that tick), then a failure-function automaton
//	    (the classic prefix-function construction) scans the reduced
//	    sequence once, finding every — possibly overlapping — match.
//	  • Chords — events are grouped per tick into the set of
//	    concurrently active pitches; a window of len(pattern)
//	    consecutive ticks matches when every pattern pitch is a member
//	    of the corresponding tick's set.
//
// ✨ Key features:
//   - O(m) automaton build, O(n) melody scan; chord windows are
//     O(n·m) worst case
//   - overlapping matches: the automaton resets through its failure
//     link after each hit
//   - lazy, restartable match sequences (iter.Seq of start indices
//     into the reduced/grouped sequence)
//   - purely functional: no state shared between calls, safe for
//     unbounded concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/midigrep/midigrep/notematch"
//
//	events := []notematch.Event{{Tick: 0, Pitch: 60}, {Tick: 1, Pitch: 64}, {Tick: 2, Pitch: 60}}
//	seq, err := notematch.Melody(events, []uint8{64, 60})
//	if err != nil {
//	  // handle ErrEmptyPattern / ErrUnsortedEvents
//	}
//	for pos := range seq {
//	  // pos indexes the tick-reduced sequence
//	}
//
// See example_test.go for runnable examples.
package notematch

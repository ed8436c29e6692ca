package notematch_test

import (
	"fmt"

	"github.com/midigrep/midigrep/notematch"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMelody
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-hand passage: the right hand plays 72, 74, 72 while the left
//	hand doubles below. Melody matching reduces each tick to its top
//	note first, so the accompaniment never hides the tune.
//
// Complexity: O(pattern) automaton build + O(events) scan.
func ExampleMelody() {
	events := []notematch.Event{
		{Tick: 0, Pitch: 48}, {Tick: 0, Pitch: 72},
		{Tick: 96, Pitch: 50}, {Tick: 96, Pitch: 74},
		{Tick: 192, Pitch: 48}, {Tick: 192, Pitch: 72},
	}

	matches, err := notematch.Melody(events, []uint8{72, 74, 72})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	reduced, _ := notematch.ReduceTopNote(events)
	for pos := range matches {
		fmt.Printf("match at tick %d\n", reduced[pos].Tick)
	}
	// Output:
	// match at tick 0
}

// ExampleChords matches each pattern pitch against the full set of
// pitches active at its tick.
func ExampleChords() {
	events := []notematch.Event{
		{Tick: 0, Pitch: 60}, {Tick: 0, Pitch: 64},
		{Tick: 96, Pitch: 67},
	}

	matches, err := notematch.Chords(events, []uint8{60, 67})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	grouped, _ := notematch.GroupByTick(events)
	for pos := range matches {
		fmt.Printf("match at tick %d\n", grouped[pos].Tick)
	}
	// Output:
	// match at tick 0
}

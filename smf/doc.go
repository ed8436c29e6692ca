// Package smf extracts timed note sequences from Standard MIDI Files.
//
// It is the note-sequence collaborator of the search core: given a
// .mid file it produces the ordered, tick-sorted stream of note
// activations ((tick, pitch) pairs, any channel, velocity > 0) plus
// the total tick duration. All tracks are merged into one stream, so
// a pattern must appear as contiguous activations across the whole
// file, not within a single track.
//
// The reader understands MThd/MTrk chunks, variable-length delta
// times, running status, and skips meta and sysex events. It is not a
// general MIDI library: everything beyond note activations is
// deliberately ignored.
//
// ⚙️ Usage:
//
//	seq, err := smf.ParseFile("prelude.mid")
//	if err != nil {
//	  // handle ErrNotSMF / ErrTruncated / ErrBadEvent
//	}
//	fmt.Println(len(seq.Events), "notes over", seq.Duration, "ticks")
package smf

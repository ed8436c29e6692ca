// Package midigrep indexes and searches pitch sequences extracted
// from MIDI files — exact substring search over whole music
// libraries, and one-shot pattern matching inside a single file.
//
// 🚀 What is midigrep?
//
//	A small, self-contained toolkit that brings together:
//		• suffixarray — suffix-array construction and bounded binary
//		  search over raw byte buffers (zero bytes are ordinary values)
//		• corpus — a generalized suffix-array index over many named
//		  documents, with boundary-safe search and versioned binary
//		  persistence
//		• notematch — streaming failure-function matching over timed
//		  note events, with melody (top note) and chord (set
//		  membership) predicates
//		• smf — note-sequence extraction from Standard MIDI Files
//		• cmd/midigrep — the command-line surface tying them together
//
// ✨ Why choose midigrep?
//
//   - Pure Go – no cgo, no dynamic suffix-sort library
//   - Binary-safe – an embedded zero byte never truncates a match
//   - Deterministic – insertion-ordered corpora, reproducible indexes
//   - Concurrent – a built index serves unlimited parallel readers
//
// Quick taste:
//
//	midigrep 79,74,71,67,71,67,72,67,74,67,76,67 *.mid
//
// prints one line per occurrence: <path> at tick <tick>/<duration>.
//
// Dive into the per-package docs for the algorithmic details and into
// cmd/midigrep for the CLI.
package midigrep

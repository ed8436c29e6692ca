// Package corpus maintains a generalized suffix-array index over a
// collection of named documents, each an ordered byte sequence of
// pitch symbols with optional per-symbol tick positions.
//
// 🚀 What is a generalized suffix array?
//
//	One suffix array built over the concatenation of several documents,
//	paired with a boundary table that maps any global text offset back
//	to (document, local offset). Searching the concatenation finds hits
//	in every document at once; the index then discards "synthetic"
//	matches that only exist because two documents happen to touch.
//
// ✨ Key features:
//   - insertion-ordered document store with O(1) name lookup;
//     re-adding a name overwrites in place
//   - strictly increasing boundary table, rebuilt on every mutation
//   - boundary-safe Search: a match never straddles two documents
//   - lazy, restartable result sequences (iter.Seq) — pull as little
//     or as much as needed, each iteration owns its own state
//   - CommonBoundaryPrefix / BoundaryRepeats for cross-document
//     repeat diagnostics
//   - versioned little-endian binary persistence (WriteTo / ReadIndex)
//
// ⚙️ Usage:
//
//	import "github.com/midigrep/midigrep/corpus"
//
//	ix := corpus.NewIndex()
//	_ = ix.AddDocument(corpus.Document{Name: "fruit", Symbols: []byte("banana")})
//	if err := ix.Build(); err != nil {
//	  // handle ErrEmptyCorpus
//	}
//	matches, err := ix.Search([]byte("ana"))
//	for m := range matches {
//	  fmt.Println(m.Name, m.Offset)
//	}
//
// Concurrency: AddDocument and Build are exclusive single-writer
// operations. A built index is read-only for Search, Locate and the
// boundary diagnostics, which may run concurrently without locking.
// Any mutation moves the index back to the unbuilt state; the
// array-dependent operations then fail with ErrNotBuilt until the
// next Build.
//
// See example_test.go for runnable examples.
package corpus

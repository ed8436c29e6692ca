// Package corpus defines the document model, match type and error set
// of the generalized index.
package corpus

import (
	"errors"

	"github.com/midigrep/midigrep/suffixarray"
)

// Sentinel errors for index lifecycle and queries.
var (
	// ErrEmptyCorpus is returned by Build when no document was added.
	ErrEmptyCorpus = errors.New("corpus: no documents added")

	// ErrNotBuilt is returned by array-dependent operations before a
	// successful Build, or after a mutation invalidated the array.
	ErrNotBuilt = errors.New("corpus: index not built")

	// ErrOutOfRange indicates an offset or slot outside the indexed range.
	ErrOutOfRange = errors.New("corpus: offset out of range")

	// ErrTickMismatch indicates a tick sequence whose length differs
	// from the symbol count of its document.
	ErrTickMismatch = errors.New("corpus: tick count does not match symbol count")

	// ErrCorruptIndex indicates a persisted index that fails structural
	// validation during decoding.
	ErrCorruptIndex = errors.New("corpus: corrupt persisted index")
)

// Document is one named symbol sequence in the corpus. Name is an
// opaque key, unique within an index: re-adding a name overwrites the
// prior entry. Symbols are ordered bytes where zero is an ordinary
// value, not a terminator. Ticks, when present, carries one time
// position per symbol so a match offset can be mapped back to real
// timing; Duration is the total time span of the source sequence.
// A stored document is immutable until overwritten.
type Document struct {
	Name     string
	Symbols  []byte
	Ticks    []int64
	Duration int64
}

// Match is one search hit: a document identity and an offset local to
// that document. Every Match satisfies Offset+len(pattern) <= document
// length; hits straddling two documents are never produced.
type Match struct {
	Name   string
	Offset int
}

// Index owns the corpus and its generalized suffix array.
//
// Documents live in an insertion-ordered slice paired with a
// name-to-slot table, preserving both O(1) lookup and deterministic
// iteration order. The boundary table bounds is strictly increasing
// with bounds[0] = 0 and len(bounds) = document count + 1; it is
// rebuilt whenever a document is added or overwritten. engine is nil
// exactly while the index is unbuilt.
type Index struct {
	docs   []Document
	byName map[string]int
	text   []byte
	bounds []int32
	engine *suffixarray.SuffixArray
}

// NewIndex returns an empty, unbuilt index.
func NewIndex() *Index {
	return &Index{
		byName: make(map[string]int),
		bounds: []int32{0},
	}
}

// Len returns the number of documents in the corpus.
func (ix *Index) Len() int { return len(ix.docs) }

// Names lists document names in insertion order.
func (ix *Index) Names() []string {
	names := make([]string, len(ix.docs))
	for i, d := range ix.docs {
		names[i] = d.Name
	}

	return names
}

// Document returns the stored document for name, if any.
func (ix *Index) Document(name string) (Document, bool) {
	slot, ok := ix.byName[name]
	if !ok {
		return Document{}, false
	}

	return ix.docs[slot], true
}

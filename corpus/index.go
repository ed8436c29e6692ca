package corpus

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/midigrep/midigrep/suffixarray"
)

// AddDocument stores doc, overwriting any prior document with the same
// name (the original insertion slot is kept). The concatenated text
// and boundary table are updated and the suffix array is marked stale:
// array-dependent operations fail with ErrNotBuilt until the next
// Build.
//
// When doc.Ticks is non-nil it must carry exactly one tick per symbol.
func (ix *Index) AddDocument(doc Document) error {
	if doc.Ticks != nil && len(doc.Ticks) != len(doc.Symbols) {
		return fmt.Errorf("%w: %d ticks for %d symbols in %q",
			ErrTickMismatch, len(doc.Ticks), len(doc.Symbols), doc.Name)
	}

	if slot, ok := ix.byName[doc.Name]; ok {
		ix.docs[slot] = doc
		ix.rebuildText()
	} else {
		if len(ix.text)+len(doc.Symbols) > math.MaxInt32 {
			return fmt.Errorf("adding %q: %w", doc.Name, suffixarray.ErrTextTooLong)
		}
		ix.byName[doc.Name] = len(ix.docs)
		ix.docs = append(ix.docs, doc)
		ix.text = append(ix.text, doc.Symbols...)
		ix.bounds = append(ix.bounds, int32(len(ix.text)))
	}
	ix.engine = nil

	return nil
}

// rebuildText recomputes the concatenation and boundary table from the
// document slice. Used on overwrite, where appending is not enough.
func (ix *Index) rebuildText() {
	ix.text = ix.text[:0]
	ix.bounds = ix.bounds[:1]
	for _, d := range ix.docs {
		ix.text = append(ix.text, d.Symbols...)
		ix.bounds = append(ix.bounds, int32(len(ix.text)))
	}
}

// Build constructs the suffix array over the current concatenated text
// and clears the stale flag. Fails with ErrEmptyCorpus when no
// document has been added. Building twice without an intervening
// mutation yields an equivalent array.
func (ix *Index) Build() error {
	if len(ix.docs) == 0 {
		return ErrEmptyCorpus
	}
	engine, err := suffixarray.New(ix.text)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	ix.engine = engine

	return nil
}

// Locate maps a global offset in the concatenated text to the
// containing document and the offset local to it. Binary search over
// the boundary table, O(log d) for d documents. Fails with
// ErrOutOfRange outside [0, len(text)) and ErrNotBuilt on an unbuilt
// index.
func (ix *Index) Locate(global int) (name string, local int, err error) {
	if ix.engine == nil {
		return "", 0, ErrNotBuilt
	}
	if global < 0 || global >= len(ix.text) {
		return "", 0, fmt.Errorf("%w: global offset %d, text length %d", ErrOutOfRange, global, len(ix.text))
	}
	slot, local := ix.locateSlot(global)

	return ix.docs[slot].Name, local, nil
}

// locateSlot finds the document slot containing a global offset known
// to be in range.
func (ix *Index) locateSlot(global int) (slot, local int) {
	slot = sort.Search(len(ix.docs), func(i int) bool {
		return ix.bounds[i+1] > int32(global)
	})

	return slot, global - int(ix.bounds[slot])
}

// Search returns every boundary-safe occurrence of pattern across the
// corpus as a lazy sequence of Match values. The sequence is finite
// and restartable: each range re-runs the scan from the engine's
// native result order. Hits whose local offset plus pattern length
// exceed the containing document are synthetic — they exist only in
// the concatenation — and are filtered out.
//
// Fails with ErrNotBuilt on an unbuilt index; the engine's pattern
// errors (suffixarray.ErrEmptyPattern) pass through.
func (ix *Index) Search(pattern []byte) (iter.Seq[Match], error) {
	if ix.engine == nil {
		return nil, ErrNotBuilt
	}
	offsets, err := ix.engine.Lookup(pattern)
	if err != nil {
		return nil, err
	}
	m := len(pattern)

	return func(yield func(Match) bool) {
		for _, global := range offsets {
			slot, local := ix.locateSlot(int(global))
			if local+m > len(ix.docs[slot].Symbols) {
				continue
			}
			if !yield(Match{Name: ix.docs[slot].Name, Offset: local}) {
				return
			}
		}
	}, nil
}

// CommonBoundaryPrefix returns the longest common byte prefix of the
// suffixes at adjacent array slots i and i+1, each bounded to its
// containing document, when the two suffixes begin in different
// documents; nil when they begin in the same document. The scan stops
// at the first mismatching byte pair or when either bounded suffix is
// exhausted. Diagnostic: locates maximal repeats shared across
// documents.
func (ix *Index) CommonBoundaryPrefix(i int) ([]byte, error) {
	if ix.engine == nil {
		return nil, ErrNotBuilt
	}
	if i < 0 || i+1 >= ix.engine.Len() {
		return nil, fmt.Errorf("%w: slot %d of %d", ErrOutOfRange, i, ix.engine.Len())
	}

	slotA, localA := ix.locateSlot(int(ix.engine.At(i)))
	slotB, localB := ix.locateSlot(int(ix.engine.At(i + 1)))
	if slotA == slotB {
		return nil, nil
	}

	sufA := ix.docs[slotA].Symbols[localA:]
	sufB := ix.docs[slotB].Symbols[localB:]
	limit := len(sufA)
	if len(sufB) < limit {
		limit = len(sufB)
	}
	k := 0
	for k < limit && sufA[k] == sufB[k] {
		k++
	}

	return sufA[:k:k], nil
}

// BoundaryRepeats iterates the common prefixes of every adjacent
// cross-document suffix pair, in array order. Empty prefixes are
// yielded too: a pair that diverges on its first byte still marks a
// document boundary adjacency.
func (ix *Index) BoundaryRepeats() (iter.Seq[[]byte], error) {
	if ix.engine == nil {
		return nil, ErrNotBuilt
	}
	n := ix.engine.Len()

	return func(yield func([]byte) bool) {
		for i := 0; i+1 < n; i++ {
			slotA, _ := ix.locateSlot(int(ix.engine.At(i)))
			slotB, _ := ix.locateSlot(int(ix.engine.At(i + 1)))
			if slotA == slotB {
				continue
			}
			prefix, err := ix.CommonBoundaryPrefix(i)
			if err != nil {
				return
			}
			if !yield(prefix) {
				return
			}
		}
	}, nil
}

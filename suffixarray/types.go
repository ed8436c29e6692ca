// Package suffixarray defines the SuffixArray type and its error set.
package suffixarray

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for construction, lookup and verification.
var (
	// ErrTextTooLong indicates the input text exceeds the 2^31-1 byte
	// bound imposed by the int32 entry width of the persisted layout.
	ErrTextTooLong = errors.New("suffixarray: text longer than 2^31-1 bytes")

	// ErrConstruction indicates the construction algorithm violated an
	// internal invariant. It should never occur on valid input and
	// points at a bug, not at the caller.
	ErrConstruction = errors.New("suffixarray: construction invariant violated")

	// ErrVerification indicates the sortedness invariant does not hold.
	// Diagnostic only: Verify is never on a query path.
	ErrVerification = errors.New("suffixarray: suffix order invariant violated")

	// ErrEmptyPattern is returned by Lookup for a zero-length pattern.
	// An empty pattern trivially occurs everywhere; this package rejects
	// it rather than enumerating every offset.
	ErrEmptyPattern = errors.New("suffixarray: empty pattern")

	// ErrLengthMismatch indicates a restored entry slice does not cover
	// every suffix of its text.
	ErrLengthMismatch = errors.New("suffixarray: entry count does not match text length")
)

// SuffixArray pairs a text with the sorted permutation of its suffix
// start offsets. The zero value is not usable; construct with New,
// Merge or Restore. Instances hold no global state: multiple arrays
// may be built and queried independently and concurrently. A built
// array is immutable and safe for concurrent Lookup/Verify calls.
type SuffixArray struct {
	text []byte
	sa   []int32
}

// New constructs the suffix array of text. Construction is total: any
// byte values are accepted, including repeated zeros, and empty text
// yields an empty array. Returns ErrTextTooLong beyond the int32
// bound, or ErrConstruction if the built array fails its permutation
// self-check.
func New(text []byte) (*SuffixArray, error) {
	if len(text) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrTextTooLong, len(text))
	}
	s := &SuffixArray{text: text, sa: buildArray(text)}
	if err := s.checkPermutation(); err != nil {
		return nil, err
	}

	return s, nil
}

// Restore rebuilds a SuffixArray from a text and previously constructed
// entries, without re-running construction. Only the entry count is
// validated here; call Verify for a full sortedness check.
func Restore(text []byte, entries []int32) (*SuffixArray, error) {
	if len(entries) != len(text) {
		return nil, fmt.Errorf("%w: %d entries for %d bytes", ErrLengthMismatch, len(entries), len(text))
	}

	return &SuffixArray{text: text, sa: entries}, nil
}

// Merge returns the suffix array of a's text followed by b's text.
// The array is reconstructed from scratch over the concatenation; the
// cost is O((n+m) log(n+m)).
func Merge(a, b *SuffixArray) (*SuffixArray, error) {
	joined := make([]byte, 0, len(a.text)+len(b.text))
	joined = append(joined, a.text...)
	joined = append(joined, b.text...)

	return New(joined)
}

// Len returns the number of entries (equal to the text length).
func (s *SuffixArray) Len() int { return len(s.sa) }

// At returns the suffix start offset stored at array slot i.
func (s *SuffixArray) At(i int) int32 { return s.sa[i] }

// Text returns the indexed text. Callers must not mutate it while the
// array is in use.
func (s *SuffixArray) Text() []byte { return s.text }

// Entries returns the raw int32 entry slice, in array order. Shared,
// not copied: used by the persistence layer.
func (s *SuffixArray) Entries() []int32 { return s.sa }

// checkPermutation confirms every offset 0..n-1 occurs exactly once.
func (s *SuffixArray) checkPermutation() error {
	seen := make([]bool, len(s.sa))
	for _, off := range s.sa {
		if off < 0 || int(off) >= len(s.sa) || seen[off] {
			return fmt.Errorf("%w: entry %d is not a fresh offset", ErrConstruction, off)
		}
		seen[off] = true
	}

	return nil
}

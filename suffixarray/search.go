package suffixarray

import (
	"bytes"
	"fmt"
	"sort"
)

// Lookup returns every start offset o in the text where
// text[o:o+len(pattern)] equals pattern. Two binary searches locate
// the lower and upper bound of the suffix range whose prefix equals
// the pattern, each comparison bounded to len(pattern) bytes, so the
// cost is O(|pattern| log n).
//
// Results come in suffix-array order, not ascending text order;
// callers needing ascending offsets must sort. The returned slice
// aliases the array's storage and must not be mutated.
//
// A zero-length pattern is rejected with ErrEmptyPattern.
func (s *SuffixArray) Lookup(pattern []byte) ([]int32, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	n := len(s.sa)
	m := len(pattern)

	lo := sort.Search(n, func(i int) bool {
		return bytes.Compare(s.boundedSuffix(s.sa[i], m), pattern) >= 0
	})
	hi := lo + sort.Search(n-lo, func(i int) bool {
		return bytes.Compare(s.boundedSuffix(s.sa[lo+i], m), pattern) > 0
	})

	return s.sa[lo:hi:hi], nil
}

// Verify confirms the array is a sorted permutation: the entry count
// matches the text and every adjacent pair of suffixes is in strictly
// increasing lexicographic order under full-length byte comparison.
// Linear in comparisons; intended for validation and tests only.
func (s *SuffixArray) Verify() error {
	if len(s.sa) != len(s.text) {
		return fmt.Errorf("%w: %d entries for %d bytes", ErrVerification, len(s.sa), len(s.text))
	}
	for i := 1; i < len(s.sa); i++ {
		if bytes.Compare(s.text[s.sa[i-1]:], s.text[s.sa[i]:]) >= 0 {
			return fmt.Errorf("%w: slots %d and %d out of order", ErrVerification, i-1, i)
		}
	}

	return nil
}

// boundedSuffix returns at most m bytes of the suffix starting at off.
func (s *SuffixArray) boundedSuffix(off int32, m int) []byte {
	end := int(off) + m
	if end > len(s.text) {
		end = len(s.text)
	}

	return s.text[off:end]
}

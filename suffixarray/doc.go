// Package suffixarray builds and queries suffix arrays over raw byte
// buffers, with no terminator convention: a zero byte is an ordinary
// symbol value, so the package is safe for binary alphabets such as
// MIDI pitch sequences.
//
// 🚀 What is a suffix array?
//
//	A permutation of all suffix start offsets of a text, ordered so the
//	suffixes are lexicographically sorted. Once built, every occurrence
//	of a pattern occupies one contiguous range of the array, found by
//	two binary searches. It is the classic index for:
//	  • exact substring search over large static texts
//	  • multi-document (generalized) indexing via concatenation
//	  • repeat detection and other stringology diagnostics
//
// ✨ Key features:
//   - self-contained prefix-doubling construction: O(n log n) time,
//     O(n) extra memory, no cgo, no external library
//   - full-length byte comparison (embedded zeros never truncate)
//   - bounded binary search: Lookup costs O(|pattern| log n)
//   - Verify for linear-time sortedness diagnostics
//   - Merge rebuilds the array of a concatenation from scratch
//
// ⚙️ Usage:
//
//	import "github.com/midigrep/midigrep/suffixarray"
//
//	sa, err := suffixarray.New([]byte("banana"))
//	if err != nil {
//	  // handle ErrTextTooLong
//	}
//	offsets, err := sa.Lookup([]byte("ana")) // → {3, 1} in array order
//
// Entries are int32: the persisted index layout fixes 32-bit signed
// offsets, so texts are bounded to 2^31-1 bytes.
//
// Performance:
//
//   - Construction: O(n log n) time, O(n) extra memory
//   - Lookup:       O(|pattern| log n)
//   - Verify:       O(n) comparisons of adjacent suffixes
//
// See example_test.go for runnable examples.
package suffixarray

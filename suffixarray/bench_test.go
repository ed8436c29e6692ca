package suffixarray_test

import (
	"math/rand"
	"testing"

	"github.com/midigrep/midigrep/suffixarray"
)

// randomText produces a deterministic pseudo-random text over the
// given alphabet size, so benchmark runs stay comparable.
func randomText(n, alphabet int) []byte {
	rng := rand.New(rand.NewSource(7))
	text := make([]byte, n)
	for i := range text {
		text[i] = byte(rng.Intn(alphabet))
	}

	return text
}

// benchmarkNew builds the suffix array of a fresh random text each
// iteration.
func benchmarkNew(b *testing.B, n, alphabet int) {
	text := randomText(n, alphabet)
	b.SetBytes(int64(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := suffixarray.New(text); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_64K_Pitches models a pitch corpus: 64 KiB over a
// 128-value alphabet.
func BenchmarkNew_64K_Pitches(b *testing.B) { benchmarkNew(b, 64<<10, 128) }

// BenchmarkNew_1M_Pitches builds over one MiB of pitch-range bytes.
func BenchmarkNew_1M_Pitches(b *testing.B) { benchmarkNew(b, 1<<20, 128) }

// BenchmarkNew_1M_Binary stresses the doubling rounds with a two-value
// alphabet (many long repeats).
func BenchmarkNew_1M_Binary(b *testing.B) { benchmarkNew(b, 1<<20, 2) }

// BenchmarkLookup measures bounded binary search over a 1 MiB text.
func BenchmarkLookup(b *testing.B) {
	text := randomText(1<<20, 128)
	sa, err := suffixarray.New(text)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	pattern := text[1234:1244]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sa.Lookup(pattern); err != nil {
			b.Fatalf("Lookup failed: %v", err)
		}
	}
}

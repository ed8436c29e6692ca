package corpus_test

import (
	"bytes"
	"testing"

	"github.com/midigrep/midigrep/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip persists a built index and confirms the decoded
// one answers queries and exposes documents identically.
func TestCodec_RoundTrip(t *testing.T) {
	ix := corpus.NewIndex()
	require.NoError(t, ix.AddDocument(corpus.Document{
		Name:     "prelude.mid",
		Symbols:  []byte{60, 64, 67, 64, 60},
		Ticks:    []int64{0, 96, 192, 288, 384},
		Duration: 480,
	}))
	require.NoError(t, ix.AddDocument(corpus.Document{
		Name:     "fugue.mid",
		Symbols:  []byte{60, 0, 64, 67},
		Ticks:    []int64{0, 48, 96, 144},
		Duration: 192,
	}))
	require.NoError(t, ix.Build())

	var buf bytes.Buffer
	n, err := ix.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n, "WriteTo must report every byte written")

	loaded, err := corpus.ReadIndex(&buf)
	require.NoError(t, err)
	assert.Equal(t, ix.Names(), loaded.Names(), "insertion order survives the round trip")

	doc, ok := loaded.Document("prelude.mid")
	require.True(t, ok)
	assert.Equal(t, []int64{0, 96, 192, 288, 384}, doc.Ticks)
	assert.Equal(t, int64(480), doc.Duration)

	// The decoded index is Built: no reconstruction needed.
	want := collect(t, ix, string([]byte{60, 64, 67}))
	got := collect(t, loaded, string([]byte{60, 64, 67}))
	assert.Equal(t, want, got)

	// Zero symbol values survive persistence.
	assert.Equal(t,
		[]corpus.Match{{Name: "fugue.mid", Offset: 1}},
		collect(t, loaded, string([]byte{0, 64})))
}

// TestCodec_NoTicks round-trips a document without a tick table.
func TestCodec_NoTicks(t *testing.T) {
	ix := corpus.NewIndex()
	require.NoError(t, ix.AddDocument(corpus.Document{Name: "plain", Symbols: []byte("banana")}))
	require.NoError(t, ix.Build())

	var buf bytes.Buffer
	_, err := ix.WriteTo(&buf)
	require.NoError(t, err)

	loaded, err := corpus.ReadIndex(&buf)
	require.NoError(t, err)
	doc, ok := loaded.Document("plain")
	require.True(t, ok)
	assert.Nil(t, doc.Ticks, "absent tick table stays absent")
}

// TestCodec_WriteUnbuilt refuses to persist an index with no array.
func TestCodec_WriteUnbuilt(t *testing.T) {
	ix := corpus.NewIndex()
	require.NoError(t, ix.AddDocument(corpus.Document{Name: "fruit", Symbols: []byte("banana")}))

	var buf bytes.Buffer
	_, err := ix.WriteTo(&buf)
	assert.ErrorIs(t, err, corpus.ErrNotBuilt)
}

// TestCodec_BadMagic rejects a record that is not an index file.
func TestCodec_BadMagic(t *testing.T) {
	_, err := corpus.ReadIndex(bytes.NewReader([]byte("NOPEnope")))
	assert.ErrorIs(t, err, corpus.ErrCorruptIndex)
}

// TestCodec_Truncated surfaces a read error on a cut-off record.
func TestCodec_Truncated(t *testing.T) {
	ix := corpus.NewIndex()
	require.NoError(t, ix.AddDocument(corpus.Document{Name: "fruit", Symbols: []byte("banana")}))
	require.NoError(t, ix.Build())

	var buf bytes.Buffer
	_, err := ix.WriteTo(&buf)
	require.NoError(t, err)

	cut := buf.Bytes()[:buf.Len()-5]
	_, err = corpus.ReadIndex(bytes.NewReader(cut))
	assert.Error(t, err, "truncated record must not decode")
}

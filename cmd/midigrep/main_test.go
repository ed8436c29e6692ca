package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePattern covers the comma-separated note number format.
func TestParsePattern(t *testing.T) {
	pattern, err := parsePattern("79,74,71,67")
	require.NoError(t, err)
	assert.Equal(t, []uint8{79, 74, 71, 67}, pattern)

	pattern, err = parsePattern(" 0 , 127 ")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 127}, pattern, "whitespace around numbers is tolerated")
}

// TestParsePattern_Rejects covers malformed and out-of-range input.
func TestParsePattern_Rejects(t *testing.T) {
	_, err := parsePattern("60,x,62")
	assert.Error(t, err, "non-numeric note")

	_, err = parsePattern("60,128")
	assert.Error(t, err, "above MIDI range")

	_, err = parsePattern("-1")
	assert.Error(t, err, "below MIDI range")

	_, err = parsePattern("")
	assert.Error(t, err, "empty pattern argument")
}

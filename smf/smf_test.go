package smf_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/midigrep/midigrep/notematch"
	"github.com/midigrep/midigrep/smf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// header returns an MThd chunk for the given format and track count.
func header(format, ntrks uint16) []byte {
	var buf bytes.Buffer
	buf.WriteString("MThd")
	binary.Write(&buf, binary.BigEndian, uint32(6))
	binary.Write(&buf, binary.BigEndian, format)
	binary.Write(&buf, binary.BigEndian, ntrks)
	binary.Write(&buf, binary.BigEndian, uint16(96)) // division
	return buf.Bytes()
}

// track wraps an event body in an MTrk chunk.
func track(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("MTrk")
	binary.Write(&buf, binary.BigEndian, uint32(len(body)))
	buf.Write(body)
	return buf.Bytes()
}

// TestParse_SingleTrack parses note-ons with running status, ignores
// a velocity-0 note-off, and reads the end-of-track tick.
func TestParse_SingleTrack(t *testing.T) {
	body := []byte{
		0x00, 0x90, 0x3C, 0x40, // tick 0:  note-on 60
		0x60, 0x3E, 0x40, //       tick 96: note-on 62 (running status)
		0x60, 0x3E, 0x00, //       tick 192: velocity 0 → note-off, ignored
		0x00, 0xFF, 0x2F, 0x00, // end of track at tick 192
	}
	data := append(header(0, 1), track(body)...)

	seq, err := smf.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []notematch.Event{
		{Tick: 0, Pitch: 60}, {Tick: 96, Pitch: 62},
	}, seq.Events)
	assert.Equal(t, int64(192), seq.Duration, "duration is the end-of-track tick")
}

// TestParse_MultiTrack merges tracks into one tick-sorted stream and
// takes the longest track as the duration.
func TestParse_MultiTrack(t *testing.T) {
	track1 := []byte{
		0x00, 0x90, 0x3C, 0x40, // tick 0:  note-on 60
		0x81, 0x40, 0x3E, 0x40, // tick 192: note-on 62 (two-byte delta)
		0x00, 0xFF, 0x2F, 0x00,
	}
	track2 := []byte{
		0x00, 0x91, 0x30, 0x40, // tick 0: note-on 48 on channel 1
		0x60, 0x81, 0x30, 0x40, // tick 96: note-off, ignored
		0x00, 0xFF, 0x2F, 0x00,
	}
	data := append(header(1, 2), track(track1)...)
	data = append(data, track(track2)...)

	seq, err := smf.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []notematch.Event{
		{Tick: 0, Pitch: 60}, {Tick: 0, Pitch: 48}, {Tick: 192, Pitch: 62},
	}, seq.Events, "tracks merge by tick, stable across same-tick events")
	assert.Equal(t, int64(192), seq.Duration)
}

// TestParse_SkipsMetaAndSysex verifies text meta and sysex payloads
// are skipped and cancel running status.
func TestParse_SkipsMetaAndSysex(t *testing.T) {
	body := []byte{
		0x00, 0xFF, 0x01, 0x03, 'a', 'b', 'c', // text meta
		0x00, 0x90, 0x3C, 0x40, //                note-on 60
		0x00, 0xF0, 0x02, 0x01, 0xF7, //          sysex
		0x00, 0x90, 0x3E, 0x40, //                note-on 62, fresh status
		0x00, 0xFF, 0x2F, 0x00,
	}
	data := append(header(0, 1), track(body)...)

	seq, err := smf.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []notematch.Event{
		{Tick: 0, Pitch: 60}, {Tick: 0, Pitch: 62},
	}, seq.Events)
}

// TestParse_NotSMF rejects non-MIDI input.
func TestParse_NotSMF(t *testing.T) {
	_, err := smf.Parse(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	assert.ErrorIs(t, err, smf.ErrNotSMF)
}

// TestParse_Truncated rejects a chunk cut off mid-event.
func TestParse_Truncated(t *testing.T) {
	body := []byte{
		0x00, 0x90, 0x3C, 0x40,
		0x00, 0xFF, 0x2F, 0x00,
	}
	data := append(header(0, 1), track(body)...)

	_, err := smf.Parse(bytes.NewReader(data[:len(data)-6]))
	assert.Error(t, err, "cut-off track must not parse")
}

// TestParse_StrayDataByte rejects a data byte with no running status.
func TestParse_StrayDataByte(t *testing.T) {
	body := []byte{
		0x00, 0x3C, 0x40, // data bytes before any status byte
		0x00, 0xFF, 0x2F, 0x00,
	}
	data := append(header(0, 1), track(body)...)

	_, err := smf.Parse(bytes.NewReader(data))
	assert.ErrorIs(t, err, smf.ErrBadEvent)
}

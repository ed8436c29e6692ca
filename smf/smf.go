package smf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/midigrep/midigrep/notematch"
)

// Sentinel errors for MIDI file reading.
var (
	// ErrNotSMF indicates the input does not start with a valid MThd
	// header chunk.
	ErrNotSMF = errors.New("smf: not a standard MIDI file")

	// ErrTruncated indicates the file ends inside a chunk or event.
	ErrTruncated = errors.New("smf: truncated file")

	// ErrBadEvent indicates a malformed track event, such as a data
	// byte with no running status to attach to.
	ErrBadEvent = errors.New("smf: malformed track event")
)

// NoteSequence is the extracted note stream of one MIDI file: note
// activations merged across all tracks, sorted by non-decreasing
// tick, and the total tick span of the file.
type NoteSequence struct {
	Events   []notematch.Event
	Duration int64
}

// ParseFile reads and parses the MIDI file at path.
func ParseFile(path string) (*NoteSequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parse(data)
}

// Parse reads a complete MIDI file from r.
func Parse(r io.Reader) (*NoteSequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return parse(data)
}

// midi chunk and event constants.
const (
	headerChunkLen = 14 // "MThd" + length + format + ntrks + division
	statusMeta     = 0xFF
	statusSysex    = 0xF0
	statusSysexEsc = 0xF7
	metaEndOfTrack = 0x2F
	msgNoteOn      = 0x90
	msgProgram     = 0xC0
	msgPressure    = 0xD0
)

func parse(data []byte) (*NoteSequence, error) {
	if len(data) < headerChunkLen || string(data[:4]) != "MThd" {
		return nil, ErrNotSMF
	}
	hdrLen := int(binary.BigEndian.Uint32(data[4:8]))
	if hdrLen < 6 {
		return nil, fmt.Errorf("%w: header length %d", ErrNotSMF, hdrLen)
	}
	pos := 8 + hdrLen
	if pos > len(data) {
		return nil, fmt.Errorf("%w: header chunk", ErrTruncated)
	}

	seq := &NoteSequence{}
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		chunkLen := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		start, end := pos+8, pos+8+chunkLen
		if end > len(data) {
			return nil, fmt.Errorf("%w: chunk %q at %d", ErrTruncated, id, pos)
		}
		// Unknown chunk types are skipped, per the SMF spec.
		if id == "MTrk" {
			events, trackEnd, err := parseTrack(data[start:end])
			if err != nil {
				return nil, err
			}
			seq.Events = append(seq.Events, events...)
			if trackEnd > seq.Duration {
				seq.Duration = trackEnd
			}
		}
		pos = end
	}

	// Merge tracks into one tick-ordered stream; stable so same-tick
	// events keep track order.
	sort.SliceStable(seq.Events, func(i, j int) bool {
		return seq.Events[i].Tick < seq.Events[j].Tick
	})

	return seq, nil
}

// parseTrack walks one MTrk body, collecting note activations and the
// final absolute tick. Velocity-0 note-ons are note-offs and are not
// activations.
func parseTrack(body []byte) ([]notematch.Event, int64, error) {
	var (
		events []notematch.Event
		tick   int64
		status byte
	)

	i := 0
	for i < len(body) {
		delta, n, err := readVarLen(body[i:])
		if err != nil {
			return nil, 0, err
		}
		i += n
		tick += delta
		if i >= len(body) {
			return nil, 0, fmt.Errorf("%w: event after delta at %d", ErrTruncated, i)
		}

		switch b := body[i]; {
		case b == statusMeta:
			i++
			if i >= len(body) {
				return nil, 0, fmt.Errorf("%w: meta type", ErrTruncated)
			}
			metaType := body[i]
			i++
			length, n, err := readVarLen(body[i:])
			if err != nil {
				return nil, 0, err
			}
			i += n + int(length)
			if i > len(body) {
				return nil, 0, fmt.Errorf("%w: meta payload", ErrTruncated)
			}
			status = 0
			if metaType == metaEndOfTrack {
				return events, tick, nil
			}

		case b == statusSysex || b == statusSysexEsc:
			i++
			length, n, err := readVarLen(body[i:])
			if err != nil {
				return nil, 0, err
			}
			i += n + int(length)
			if i > len(body) {
				return nil, 0, fmt.Errorf("%w: sysex payload", ErrTruncated)
			}
			status = 0

		default:
			if b >= 0x80 {
				status = b
				i++
			} else if status == 0 {
				return nil, 0, fmt.Errorf("%w: data byte 0x%02x with no running status", ErrBadEvent, b)
			}
			hi := status & 0xF0
			dataLen := 2
			if hi == msgProgram || hi == msgPressure {
				dataLen = 1
			}
			if i+dataLen > len(body) {
				return nil, 0, fmt.Errorf("%w: channel message data", ErrTruncated)
			}
			if hi == msgNoteOn && body[i+1] > 0 {
				events = append(events, notematch.Event{Tick: tick, Pitch: body[i] & 0x7F})
			}
			i += dataLen
		}
	}

	return events, tick, nil
}

// readVarLen decodes a MIDI variable-length quantity: up to four
// bytes, seven payload bits each, high bit as continuation flag.
func readVarLen(b []byte) (int64, int, error) {
	var v int64
	for n := 0; n < len(b) && n < 4; n++ {
		c := b[n]
		v = v<<7 | int64(c&0x7F)
		if c&0x80 == 0 {
			return v, n + 1, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: unterminated variable-length quantity", ErrTruncated)
}

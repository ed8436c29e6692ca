package corpus

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/midigrep/midigrep/suffixarray"
)

// Persisted layout, version 1, little-endian throughout:
//
//	magic   [4]byte "MGDB"
//	version uint16
//	docs    uint32
//	per document:
//	  nameLen  uint16, name bytes
//	  symCount uint32, symbol bytes
//	  hasTicks uint8 (0|1), ticks [symCount]int64 when 1
//	  duration int64
//	entries uint32, suffix array [entries]int32
//
// The int32 entry width bounds the corpus text to 2^31-1 bytes.
const (
	indexMagic   = "MGDB"
	indexVersion = uint16(1)
)

// countingWriter tracks bytes written for the io.WriterTo contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// WriteTo serializes the built index in the versioned binary layout
// above. Fails with ErrNotBuilt on an unbuilt index: the persisted
// record always carries a valid suffix array.
func (ix *Index) WriteTo(w io.Writer) (int64, error) {
	if ix.engine == nil {
		return 0, ErrNotBuilt
	}

	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	if _, err := cw.Write([]byte(indexMagic)); err != nil {
		return cw.n, err
	}
	if err := writeFields(cw, indexVersion, uint32(len(ix.docs))); err != nil {
		return cw.n, err
	}

	for _, d := range ix.docs {
		if len(d.Name) > math.MaxUint16 {
			return cw.n, fmt.Errorf("corpus: document name %q exceeds %d bytes", d.Name[:32], math.MaxUint16)
		}
		if err := writeFields(cw, uint16(len(d.Name))); err != nil {
			return cw.n, err
		}
		if _, err := cw.Write([]byte(d.Name)); err != nil {
			return cw.n, err
		}
		if err := writeFields(cw, uint32(len(d.Symbols))); err != nil {
			return cw.n, err
		}
		if _, err := cw.Write(d.Symbols); err != nil {
			return cw.n, err
		}
		hasTicks := uint8(0)
		if d.Ticks != nil {
			hasTicks = 1
		}
		if err := writeFields(cw, hasTicks); err != nil {
			return cw.n, err
		}
		if hasTicks == 1 {
			if err := binary.Write(cw, binary.LittleEndian, d.Ticks); err != nil {
				return cw.n, err
			}
		}
		if err := writeFields(cw, d.Duration); err != nil {
			return cw.n, err
		}
	}

	if err := writeFields(cw, uint32(ix.engine.Len())); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.LittleEndian, ix.engine.Entries()); err != nil {
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// writeFields writes each fixed-size value in little-endian order.
func writeFields(w io.Writer, fields ...any) error {
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	return nil
}

// ReadIndex deserializes a persisted index and re-expands it into a
// built in-memory Index, restoring the suffix array without
// reconstruction. Structural problems (bad magic, unknown version,
// entry count not matching the rebuilt text) fail with
// ErrCorruptIndex; truncation surfaces as the underlying read error.
func ReadIndex(r io.Reader) (*Index, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(indexMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("reading index magic: %w", err)
	}
	if string(magic) != indexMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptIndex, magic)
	}

	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading index version: %w", err)
	}
	if version != indexVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptIndex, version)
	}

	var docCount uint32
	if err := binary.Read(br, binary.LittleEndian, &docCount); err != nil {
		return nil, fmt.Errorf("reading document count: %w", err)
	}

	ix := NewIndex()
	for i := uint32(0); i < docCount; i++ {
		doc, err := readDocument(br)
		if err != nil {
			return nil, fmt.Errorf("reading document %d: %w", i, err)
		}
		if err = ix.AddDocument(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, err)
		}
	}

	var entryCount uint32
	if err := binary.Read(br, binary.LittleEndian, &entryCount); err != nil {
		return nil, fmt.Errorf("reading entry count: %w", err)
	}
	if int(entryCount) != len(ix.text) {
		return nil, fmt.Errorf("%w: %d entries for %d text bytes", ErrCorruptIndex, entryCount, len(ix.text))
	}
	entries := make([]int32, entryCount)
	if err := binary.Read(br, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	engine, err := suffixarray.Restore(ix.text, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, err)
	}
	ix.engine = engine

	return ix, nil
}

// readDocument decodes one per-document record.
func readDocument(br *bufio.Reader) (Document, error) {
	var doc Document

	var nameLen uint16
	if err := binary.Read(br, binary.LittleEndian, &nameLen); err != nil {
		return doc, err
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(br, name); err != nil {
		return doc, err
	}
	doc.Name = string(name)

	var symCount uint32
	if err := binary.Read(br, binary.LittleEndian, &symCount); err != nil {
		return doc, err
	}
	if symCount > math.MaxInt32 {
		return doc, fmt.Errorf("%w: symbol count %d", ErrCorruptIndex, symCount)
	}
	doc.Symbols = make([]byte, symCount)
	if _, err := io.ReadFull(br, doc.Symbols); err != nil {
		return doc, err
	}

	var hasTicks uint8
	if err := binary.Read(br, binary.LittleEndian, &hasTicks); err != nil {
		return doc, err
	}
	switch hasTicks {
	case 0:
	case 1:
		doc.Ticks = make([]int64, symCount)
		if err := binary.Read(br, binary.LittleEndian, doc.Ticks); err != nil {
			return doc, err
		}
	default:
		return doc, fmt.Errorf("%w: tick flag %d", ErrCorruptIndex, hasTicks)
	}

	if err := binary.Read(br, binary.LittleEndian, &doc.Duration); err != nil {
		return doc, err
	}

	return doc, nil
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/spf13/cobra"

	"github.com/midigrep/midigrep/corpus"
	"github.com/midigrep/midigrep/notematch"
	"github.com/midigrep/midigrep/smf"
)

// runIndex builds a corpus index over every .mid file under a
// directory, with a byte-based progress tracker, and persists it.
func runIndex(cmd *cobra.Command, args []string) error {
	root := args[0]
	paths, totalBytes, err := findMidiFiles(root)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .mid files under %s", root)
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(cmd.ErrOrStderr())
	pw.SetAutoStop(true)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	tracker := &progress.Tracker{Message: "indexing " + root, Total: totalBytes, Units: progress.UnitsBytes}
	pw.AppendTracker(tracker)
	go pw.Render()

	ix := corpus.NewIndex()
	indexed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		size := int64(0)
		if err == nil {
			size = info.Size()
		}
		if err = addMidiFile(ix, root, path); err != nil {
			logger.Warn("skipping file", "path", path, "error", err)
		} else {
			indexed++
		}
		tracker.Increment(size)
	}
	tracker.MarkAsDone()
	for pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}

	if err = ix.Build(); err != nil {
		return err
	}

	out, err := os.Create(indexOut)
	if err != nil {
		return err
	}
	defer out.Close()
	written, err := ix.WriteTo(out)
	if err != nil {
		return err
	}

	logger.Info("index written", "path", indexOut, "documents", indexed, "bytes", written)
	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d of %d files into %s\n", indexed, len(paths), indexOut)

	return nil
}

// findMidiFiles walks root collecting .mid/.MID paths and their total
// size for the progress tracker.
func findMidiFiles(root string) ([]string, int64, error) {
	var (
		paths []string
		total int64
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mid") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		paths = append(paths, path)
		total += info.Size()

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return paths, total, nil
}

// addMidiFile extracts the top-note sequence of one file and stores it
// as a document keyed by its path relative to the walk root.
func addMidiFile(ix *corpus.Index, root, path string) error {
	seq, err := smf.ParseFile(path)
	if err != nil {
		return err
	}
	reduced, err := notematch.ReduceTopNote(seq.Events)
	if err != nil {
		return err
	}

	symbols := make([]byte, len(reduced))
	ticks := make([]int64, len(reduced))
	for i, ev := range reduced {
		symbols[i] = ev.Pitch
		ticks[i] = ev.Tick
	}

	name, err := filepath.Rel(root, path)
	if err != nil {
		name = path
	}

	return ix.AddDocument(corpus.Document{
		Name:     name,
		Symbols:  symbols,
		Ticks:    ticks,
		Duration: seq.Duration,
	})
}

// runSearch queries a persisted index and prints matches with their
// real tick positions recovered from the per-document tick tables.
func runSearch(cmd *cobra.Command, args []string) error {
	pattern, err := parsePattern(args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(indexPath)
	if err != nil {
		return err
	}
	defer f.Close()

	ix, err := corpus.ReadIndex(f)
	if err != nil {
		return err
	}
	logger.Debug("index loaded", "path", indexPath, "documents", ix.Len())

	matches, err := ix.Search(pattern)
	if err != nil {
		return err
	}
	for m := range matches {
		doc, ok := ix.Document(m.Name)
		if !ok {
			continue
		}
		tick := int64(m.Offset)
		if doc.Ticks != nil {
			tick = doc.Ticks[m.Offset]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s at tick %d/%d\n", m.Name, tick, doc.Duration)
	}

	return nil
}

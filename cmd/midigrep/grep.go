package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/midigrep/midigrep/notematch"
	"github.com/midigrep/midigrep/smf"
)

// runGrep is the one-shot mode: stream-match the pattern in each file
// without building an index. A file that fails to parse is reported
// and skipped; the run continues with the remaining files.
func runGrep(cmd *cobra.Command, args []string) error {
	pattern, err := parsePattern(args[0])
	if err != nil {
		return err
	}

	for _, path := range args[1:] {
		seq, err := smf.ParseFile(path)
		if err != nil {
			logger.Warn("skipping file", "path", path, "error", err)
			continue
		}
		if err = grepFile(cmd, path, seq, pattern); err != nil {
			return err
		}
	}

	return nil
}

// grepFile prints one line per match in a single parsed file.
func grepFile(cmd *cobra.Command, path string, seq *smf.NoteSequence, pattern []uint8) error {
	if melodyMode {
		reduced, err := notematch.ReduceTopNote(seq.Events)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		matches, err := notematch.Melody(reduced, pattern)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for pos := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "%s at tick %d/%d\n", path, reduced[pos].Tick, seq.Duration)
		}

		return nil
	}

	grouped, err := notematch.GroupByTick(seq.Events)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	matches, err := notematch.Chords(seq.Events, pattern)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for pos := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s at tick %d/%d\n", path, grouped[pos].Tick, seq.Duration)
	}

	return nil
}

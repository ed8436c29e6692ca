// Command midigrep searches a pattern of MIDI pitches in MIDI files.
//
// One-shot mode scans files directly with the streaming matcher:
//
//	midigrep 79,74,71,67 song.mid other.mid
//	midigrep --melody=false 60,67 chords.mid
//
// Index mode builds a persistent generalized suffix-array index over a
// directory of MIDI files and queries it:
//
//	midigrep index ~/midi --out library.midx
//	midigrep search 79,74,71,67 --index library.midx
//
// The pattern must appear as contiguous notes across all tracks of a
// file: a note in the accompaniment strictly between two melody notes
// breaks the match.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "midigrep <pattern> [files...]",
		Short: "Search a pattern of MIDI pitches in MIDI files",
		Long: `midigrep searches a pattern of MIDI note numbers (comma-separated)
in one or more MIDI files, matching either the melody (highest note
per tick) or any note of each chord. Matches print one line each:
<path> at tick <tick>/<duration>.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runGrep,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	indexCmd = &cobra.Command{
		Use:   "index <dir>",
		Short: "Build a persistent suffix-array index over a directory of MIDI files",
		Args:  cobra.ExactArgs(1),
		RunE:  runIndex,
	}

	searchCmd = &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search a pitch pattern in a persisted index",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}

	melodyMode bool
	verbose    bool
	indexOut   string
	indexPath  string

	logger *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped files and timings")
	rootCmd.Flags().BoolVar(&melodyMode, "melody", true, "match only the highest note instead of any note in the chord")
	indexCmd.Flags().StringVar(&indexOut, "out", "midigrep.midx", "output path for the persisted index")
	searchCmd.Flags().StringVar(&indexPath, "index", "midigrep.midx", "path of the persisted index to query")

	rootCmd.AddCommand(indexCmd, searchCmd)

	cobra.OnInitialize(func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "midigrep: %v\n", err)
		os.Exit(1)
	}
}

// parsePattern converts a comma-separated list of MIDI note numbers
// into pitch bytes, rejecting values outside 0-127.
func parsePattern(arg string) ([]uint8, error) {
	parts := strings.Split(arg, ",")
	pattern := make([]uint8, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad note number %q: %w", part, err)
		}
		if n < 0 || n > 127 {
			return nil, fmt.Errorf("note number %d out of MIDI range 0-127", n)
		}
		pattern = append(pattern, uint8(n))
	}

	return pattern, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/notename"
	"github.com/tonerow/forte/internal/pcset"
)

func newRootCmd() *cobra.Command {
	// The catalog is built once here and handed to every subcommand.
	catalog := forte.NewCatalog()

	root := &cobra.Command{
		Use:   "forte",
		Short: "Pitch-class set classification",
		Long: `forte computes the canonical forms of unordered pitch-class collections
and classifies them against the complete catalog of set classes.

Pitches are note names (C, Eb, F#, case-insensitive) or integers 0-11;
out-of-range integers are reduced modulo 12.

Examples:
  forte classify C E G
  forte normal-order --transposed 0 1 6 7
  forte subsets Eb G Ab D
  forte catalog 3
  forte serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(catalog),
		newNormalOrderCmd(),
		newPrimeFormCmd(),
		newInvertCmd(),
		newComplementCmd(),
		newIntervalCmd(),
		newSubsetsCmd(catalog),
		newCatalogCmd(catalog),
		newAnalyzeCmd(catalog),
		newServeCmd(catalog),
	)
	return root
}

// parseArgs resolves command arguments to an ordered pitch sequence. Args
// may be individual tokens or quoted collections; both "C E G" and C E G
// work.
func parseArgs(args []string) ([]int, error) {
	return notename.ParseCollection(strings.Join(args, " "))
}

// argSet additionally collapses the pitches to a Set.
func argSet(args []string) (pcset.Set, error) {
	pitches, err := parseArgs(args)
	if err != nil {
		return pcset.Set{}, err
	}
	return pcset.New(pitches...), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatSeq(seq []int) string {
	parts := make([]string, len(seq))
	for i, pc := range seq {
		parts[i] = fmt.Sprint(pc)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

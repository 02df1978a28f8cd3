package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/pcset"
)

func newClassifyCmd(catalog *forte.Catalog) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "classify <pitches...>",
		Short: "Classify a pitch collection to its set class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := argSet(args)
			if err != nil {
				return err
			}
			lab, err := catalog.Classify(set)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]any{
					"label":        lab.String(),
					"cardinality":  lab.Cardinality,
					"index":        lab.Index,
					"orientation":  lab.Orientation.String(),
					"normal_order": set.NormalOrder(),
					"prime_form":   set.PrimeForm(),
				})
			}
			fmt.Printf("label:        %s\n", lab)
			fmt.Printf("normal order: %s\n", formatSeq(set.NormalOrder()))
			fmt.Printf("prime form:   %s\n", formatSeq(set.PrimeForm()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// sequenceCmd covers the operations that reduce a collection to a single
// ordered sequence, each with the optional zero-anchoring flag.
func sequenceCmd(use, short string, compute func(set pcset.Set) []int) *cobra.Command {
	var transposed bool
	cmd := &cobra.Command{
		Use:   use + " <pitches...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := argSet(args)
			if err != nil {
				return err
			}
			seq := compute(set)
			if transposed {
				seq = pcset.TransposeToZero(seq)
			}
			fmt.Println(formatSeq(seq))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&transposed, "transposed", "t", false, "Re-anchor the result to start at 0")
	return cmd
}

func newNormalOrderCmd() *cobra.Command {
	return sequenceCmd("normal-order", "Compute the normal order of a pitch collection",
		func(set pcset.Set) []int { return set.NormalOrder() })
}

func newInvertCmd() *cobra.Command {
	return sequenceCmd("invert", "Invert a collection around its normal-order root",
		func(set pcset.Set) []int { return set.Invert().NormalOrder() })
}

func newComplementCmd() *cobra.Command {
	return sequenceCmd("complement", "Compute the chromatic complement of a collection",
		func(set pcset.Set) []int { return set.Complement().NormalOrder() })
}

func newPrimeFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime-form <pitches...>",
		Short: "Compute the transposition/inversion-invariant prime form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := argSet(args)
			if err != nil {
				return err
			}
			fmt.Println(formatSeq(set.PrimeForm()))
			return nil
		},
	}
}

func newIntervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval <collection-a> <collection-b>",
		Short: "First-element offset between two collections' normal orders",
		Long: `Prints the difference between the first elements of the two collections'
normal orders (b minus a), as a signed integer. This is a true transposition
interval only when the collections belong to the same class with the same
orientation; the command does not check that.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := argSet(args[:1])
			if err != nil {
				return err
			}
			b, err := argSet(args[1:])
			if err != nil {
				return err
			}
			fmt.Println(pcset.TranspositionInterval(a, b))
			return nil
		},
	}
}

func newSubsetsCmd(catalog *forte.Catalog) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "subsets <pitches...>",
		Short: "List the distinct set classes embedded in a collection",
		Long: `Enumerates every sub-collection from one below the full cardinality down
to trichords, classifies each, and lists the distinct classes found,
ignoring orientation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, err := parseArgs(args)
			if err != nil {
				return err
			}
			labels := forte.SubsetClasses(catalog, pitches)
			classes := make([]string, len(labels))
			for i, lab := range labels {
				classes[i] = lab.String()
			}
			if jsonOut {
				return printJSON(map[string]any{"classes": classes})
			}
			for _, class := range classes {
				fmt.Println(class)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

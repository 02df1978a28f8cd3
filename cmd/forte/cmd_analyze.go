package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonerow/forte/internal/analysis"
	"github.com/tonerow/forte/internal/forte"
)

func newAnalyzeCmd(catalog *forte.Catalog) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "analyze <corpus.yaml>",
		Short: "Classify a corpus of named collections and tabulate classes",
		Long: `Reads a YAML corpus of named pitch collections:

  collections:
    viennese: "C Db F"
    farben:   "C G# B E A"

and reports each collection's class, its embedded subset classes, a
frequency table over all classes seen, and which collections contain each
class.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := analysis.LoadCorpus(args[0])
			if err != nil {
				return err
			}
			rep, err := analysis.Analyze(catalog, corpus)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(rep)
			}

			for _, col := range rep.Collections {
				fmt.Printf("%-24s %-6s prime %s", col.Name, col.Label, formatSeq(col.PrimeForm))
				if len(col.SubsetClasses) > 0 {
					fmt.Printf("  contains %s", strings.Join(col.SubsetClasses, " "))
				}
				fmt.Println()
			}

			classes := make([]string, 0, len(rep.Frequency))
			for class := range rep.Frequency {
				classes = append(classes, class)
			}
			sort.Strings(classes)
			fmt.Println("\nclass frequency:")
			for _, class := range classes {
				fmt.Printf("  %-6s %3d  in %s\n", class, rep.Frequency[class],
					strings.Join(rep.ByClass[class], ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

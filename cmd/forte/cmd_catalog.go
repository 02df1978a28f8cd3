package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tonerow/forte/internal/forte"
)

func newCatalogCmd(catalog *forte.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <cardinality|label>",
		Short: "List set classes at a cardinality, or look up one label",
		Long: `With a cardinality (0-12), lists every class at that size with its prime
form. With a class label such as 3-5 or 4-15B, prints that class's
canonical form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if card, err := strconv.Atoi(args[0]); err == nil {
				if card < 0 || card > 12 {
					return fmt.Errorf("cardinality %d out of range 0-12", card)
				}
				for _, lab := range catalog.Classes(card) {
					form, _ := catalog.PrimeForm(lab)
					marker := " "
					if lab.Orientation != forte.OrientationNone {
						marker = "*" // has a distinct mirror
					}
					fmt.Printf("%-6s %s %s\n", lab.Class(), marker, formatSeq(form))
				}
				return nil
			}

			lab, err := forte.ParseLabel(args[0])
			if err != nil {
				return err
			}
			form, ok := catalog.PrimeForm(lab)
			if !ok {
				return fmt.Errorf("no class %s in the catalog", lab)
			}
			fmt.Println(formatSeq(form))
			return nil
		},
	}
}

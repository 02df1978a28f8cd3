// Command forte classifies unordered pitch-class collections into set
// classes: normal order, prime form, inversion, complement, and exhaustive
// sub-collection classification, either one-shot on the command line or as
// an HTTP service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

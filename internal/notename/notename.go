// Package notename resolves human-readable note names to integer pitch
// classes. A token is one pitch letter A-G (case-insensitive) followed by at
// most one accidental: '#' raises a semitone, 'b' lowers one.
package notename

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tonerow/forte/internal/pcset"
)

// ErrBadToken wraps every malformed-token failure so callers can test for
// the class of error without matching message text.
var ErrBadToken = errors.New("invalid pitch token")

// letterValues holds the natural pitch classes: C=0 D=2 E=4 F=5 G=7 A=9 B=11.
var letterValues = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Parse resolves a single note token to its pitch class. "Cb" and "B#" are
// legal and wrap around: they reduce to 11 and 0.
func Parse(token string) (int, error) {
	if len(token) == 0 || len(token) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
	base, ok := letterValues[token[0]&^0x20] // uppercase ASCII letter
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
	if len(token) == 2 {
		switch token[1] {
		case '#':
			base++
		case 'b':
			base--
		default:
			return 0, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
	}
	return pcset.Mod12(base), nil
}

// ParseCollection resolves a whitespace-separated sequence of tokens to
// pitch classes, preserving order and multiplicity. Bare integers are
// accepted alongside note names and reduced modulo 12, so "0 4 7" and
// "C E G" name the same collection.
func ParseCollection(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, tok := range fields {
		if n, err := strconv.Atoi(tok); err == nil {
			out = append(out, pcset.Mod12(n))
			continue
		}
		pc, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

package notename

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]int{
		"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
		"c": 0, "e": 4, "b": 11,
		"C#": 1, "Db": 1, "F#": 6, "Gb": 6, "Bb": 10, "bb": 10,
		"Cb": 11, "B#": 0, "E#": 5, "Fb": 4,
	}
	for token, want := range cases {
		got, err := Parse(token)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", token, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %d, want %d", token, got, want)
		}
	}
}

func TestParseRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "H", "C##", "Cx", "#", "#b", "C#b", "CEG"} {
		if _, err := Parse(token); !errors.Is(err, ErrBadToken) {
			t.Errorf("Parse(%q) = %v, want ErrBadToken", token, err)
		}
	}
}

func TestParseCollection(t *testing.T) {
	got, err := ParseCollection("C  E\tG")
	if err != nil {
		t.Fatalf("ParseCollection error: %v", err)
	}
	if want := []int{0, 4, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCollection = %v, want %v", got, want)
	}
}

func TestParseCollectionMixedIntegers(t *testing.T) {
	got, err := ParseCollection("0 E 14 -1")
	if err != nil {
		t.Fatalf("ParseCollection error: %v", err)
	}
	if want := []int{0, 4, 2, 11}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCollection = %v, want %v", got, want)
	}
}

func TestParseCollectionPreservesOrderAndMultiplicity(t *testing.T) {
	got, err := ParseCollection("G C G")
	if err != nil {
		t.Fatalf("ParseCollection error: %v", err)
	}
	if want := []int{7, 0, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCollection = %v, want %v", got, want)
	}
}

func TestParseCollectionPropagatesBadToken(t *testing.T) {
	if _, err := ParseCollection("C E H"); !errors.Is(err, ErrBadToken) {
		t.Errorf("ParseCollection = %v, want ErrBadToken", err)
	}
	got, err := ParseCollection("")
	if err != nil || len(got) != 0 {
		t.Errorf("ParseCollection(\"\") = %v, %v; want empty, nil", got, err)
	}
}

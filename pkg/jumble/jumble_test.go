package jumble

import (
	"errors"
	"reflect"
	"testing"
)

var testWords = []string{
	"apple", "angle", "angel", "glean", "lemon", "melon",
	"stop", "pots", "spot", "tops", "opts", "post",
	"abba", "cat",
}

func TestSolutions(t *testing.T) {
	dict := NewDict(testWords)

	testCases := []struct {
		scrambled   string
		want        []string
		description string
	}{
		{"nolem", []string{"lemon", "melon"}, "two readings, sorted"},
		{"elppa", []string{"apple"}, "duplicate letters"},
		{"galen", []string{"angel", "angle", "glean"}, "three readings"},
		{"otsp", []string{"opts", "post", "pots", "spot", "stop", "tops"}, "dense anagram family"},
		{"abab", []string{"abba"}, "repeated letter pairs deduplicated"},
		{"APPLE", []string{"apple"}, "case insensitive"},
		{"zzzzq", nil, "no solution"},
		{"", nil, "no letters"},
	}

	for _, tc := range testCases {
		got := dict.Solutions(tc.scrambled)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Solutions(%q) = %v, want %v", tc.description, tc.scrambled, got, tc.want)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	dict := NewDict(testWords)

	got, err := dict.Solve("nolem")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != "lemon" {
		t.Errorf("Solve = %q, want lemon (alphabetically first)", got)
	}
}

type rankerFunc func(string) float64

func (f rankerFunc) Commonality(word string) float64 { return f(word) }

func TestBestUsesRanker(t *testing.T) {
	dict := NewDict(testWords)

	ranker := rankerFunc(func(word string) float64 {
		if word == "melon" {
			return 5.2
		}
		return 1.0
	})
	got, err := dict.Best("nolem", ranker)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if got != "melon" {
		t.Errorf("Best = %q, want melon (highest commonality)", got)
	}
}

func TestBestErrors(t *testing.T) {
	dict := NewDict(testWords)

	if _, err := dict.Best("zzzzq", nil); !errors.Is(err, ErrNoSolution) {
		t.Errorf("Best(no solution) error = %v, want ErrNoSolution", err)
	}
	if _, err := dict.Best("   ", nil); !errors.Is(err, ErrNoLetters) {
		t.Errorf("Best(blank) error = %v, want ErrNoLetters", err)
	}
}

func TestDictContainsAndLen(t *testing.T) {
	dict := NewDict([]string{"apple", "Apple", " apple ", "", "cat"})

	if dict.Len() != 2 {
		t.Errorf("Len = %d, want 2 (duplicates and blanks dropped)", dict.Len())
	}
	if !dict.Contains("apple") || !dict.Contains("APPLE") {
		t.Error("Contains should match case-insensitively")
	}
	if dict.Contains("app") {
		t.Error("Contains matched a bare prefix")
	}
	if dict.Contains("dog") {
		t.Error("Contains matched a missing word")
	}
}

// Solutions must only ever return dictionary words using the exact letters.
func TestSolutionsAreAnagramsOfInput(t *testing.T) {
	dict := NewDict(testWords)

	for _, scrambled := range []string{"nolem", "otsp", "galen", "elppa"} {
		for _, w := range dict.Solutions(scrambled) {
			if !dict.Contains(w) {
				t.Errorf("solution %q for %q is not a dictionary word", w, scrambled)
			}
			if len(w) != len(scrambled) {
				t.Errorf("solution %q does not use all letters of %q", w, scrambled)
			}
		}
	}
}

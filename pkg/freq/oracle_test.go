package freq

import (
	"path/filepath"
	"testing"

	"github.com/ferrisbain/puzzlekit/pkg/dictionary"
)

func TestCommonality(t *testing.T) {
	oracle := NewOracle(map[string]float64{
		"apple": 4.6,
		"crane": 3.9,
	})

	testCases := []struct {
		word        string
		want        float64
		description string
	}{
		{"apple", 4.6, "known word"},
		{"APPLE", 4.6, "case insensitive"},
		{"zzyzx", 0, "unknown word scores zero"},
	}

	for _, tc := range testCases {
		if got := oracle.Commonality(tc.word); got != tc.want {
			t.Errorf("%s: Commonality(%q) = %v, want %v", tc.description, tc.word, got, tc.want)
		}
	}
}

func TestZeroOracle(t *testing.T) {
	var oracle Oracle
	if got := oracle.Commonality("apple"); got != 0 {
		t.Errorf("zero-value oracle Commonality = %v, want 0", got)
	}
	if oracle.Len() != 0 {
		t.Errorf("zero-value oracle Len = %d, want 0", oracle.Len())
	}
}

func TestLetterCounts(t *testing.T) {
	counts := LetterCounts([]string{"apple", "angle"})

	want := map[byte]int{'a': 2, 'p': 1, 'l': 2, 'e': 2, 'n': 1, 'g': 1}
	for letter, n := range want {
		if counts[letter] != n {
			t.Errorf("LetterCounts[%q] = %d, want %d", letter, counts[letter], n)
		}
	}
	// Doubled letters within one word count once: 'p' appears twice in apple.
	if counts['p'] != 1 {
		t.Errorf("duplicate letters in one word counted more than once: p=%d", counts['p'])
	}
	if len(counts) != len(want) {
		t.Errorf("LetterCounts has %d letters, want %d", len(counts), len(want))
	}
}

func TestLoadOracle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequencies.bin")
	scores := map[string]float64{"apple": 4.6, "crane": 3.9}
	if err := dictionary.SaveFrequencies(path, scores); err != nil {
		t.Fatalf("SaveFrequencies: %v", err)
	}

	oracle, err := LoadOracle(path)
	if err != nil {
		t.Fatalf("LoadOracle: %v", err)
	}
	if oracle.Len() != 2 {
		t.Errorf("Len = %d, want 2", oracle.Len())
	}
	if got := oracle.Commonality("crane"); got != 3.9 {
		t.Errorf("Commonality(crane) = %v, want 3.9", got)
	}

	if _, err := LoadOracle(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("LoadOracle(missing file) returned nil error")
	}
}

// Package freq implements the frequency oracle: word commonality scores and
// per-letter occurrence counts over candidate sets.
package freq

import (
	"strings"

	"github.com/ferrisbain/puzzlekit/pkg/dictionary"
)

// Oracle answers commonality and letter-count queries from an in-memory
// word-score table. The zero value is usable and reports every word as
// unknown.
type Oracle struct {
	scores map[string]float64
}

// NewOracle wraps an existing commonality table. Keys are expected to be
// lower case.
func NewOracle(scores map[string]float64) *Oracle {
	return &Oracle{scores: scores}
}

// LoadOracle reads a msgpack frequency file (see dictionary.SaveFrequencies)
// and wraps it in an Oracle.
func LoadOracle(path string) (*Oracle, error) {
	scores, err := dictionary.LoadFrequencies(path)
	if err != nil {
		return nil, err
	}
	return &Oracle{scores: scores}, nil
}

// Commonality returns the logarithmic-scale commonality score for word, or 0
// when the word is not in the table.
func (o *Oracle) Commonality(word string) float64 {
	if o == nil || o.scores == nil {
		return 0
	}
	return o.scores[strings.ToLower(word)]
}

// Len reports how many words the oracle knows.
func (o *Oracle) Len() int {
	return len(o.scores)
}

// LetterCounts reports, for each letter, how many of the given words contain
// it at least once. A letter repeated within one word counts once.
func (o *Oracle) LetterCounts(words []string) map[byte]int {
	return LetterCounts(words)
}

// LetterCounts is the package-level form of Oracle.LetterCounts for callers
// that have no oracle.
func LetterCounts(words []string) map[byte]int {
	counts := make(map[byte]int)
	for _, w := range words {
		var seen [256]bool
		for i := 0; i < len(w); i++ {
			c := w[i]
			if seen[c] {
				continue
			}
			seen[c] = true
			counts[c]++
		}
	}
	return counts
}

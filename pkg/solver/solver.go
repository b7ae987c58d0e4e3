/*
Package solver is the core, maintaining the candidate word set for a letter-feedback
guessing game and ranking the remaining words for the next guess.

A Solver is built from a fixed-length vocabulary and a FrequencyOracle. Each round the
caller records the played guess with SubmitGuess, then applies the per-position
feedback with ApplyFeedback. Every feedback application shrinks the candidate set and
recomputes the letter table and score table from the new set. Recommendation and
TopRecommendations read the score table; Remaining and Guesses expose the round state.
*/
package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// FrequencyOracle supplies the language statistics the scoring heuristic needs.
// Commonality returns a logarithmic-scale commonality score for a word (0 for
// unknown words). LetterCounts reports, for each letter, how many of the given
// words contain it at least once.
type FrequencyOracle interface {
	Commonality(word string) float64
	LetterCounts(words []string) map[byte]int
}

var (
	// ErrEmptyVocabulary is returned by New when given no words.
	ErrEmptyVocabulary = errors.New("solver: empty vocabulary")

	// ErrNoCandidates is returned when filtering has eliminated every word,
	// meaning the feedback received so far has no solution in the vocabulary.
	ErrNoCandidates = errors.New("solver: no candidates remaining")

	// ErrNilOracle is returned by New when no frequency oracle is supplied.
	ErrNilOracle = errors.New("solver: nil frequency oracle")
)

// InvalidFeedbackLengthError reports a feedback key whose length does not match
// the puzzle word length.
type InvalidFeedbackLengthError struct {
	Got  int
	Want int
}

func (e *InvalidFeedbackLengthError) Error() string {
	return fmt.Sprintf("solver: feedback length %d, want %d", e.Got, e.Want)
}

// ScoredWord pairs a candidate with its heuristic score.
type ScoredWord struct {
	Word  string
	Score float64
}

// Solver owns the mutable solving state for one game. It is not safe for
// concurrent use; each game gets its own instance.
type Solver struct {
	vocab      []string
	wordLen    int
	oracle     FrequencyOracle
	candidates []string
	letters    map[byte]int
	scores     map[string]float64
	guess      string
	guessCount int
}

// New builds a Solver over a copy of vocab. All words are assumed to share the
// length of the first word; the candidate set starts as the full vocabulary and
// is scored immediately.
func New(vocab []string, oracle FrequencyOracle) (*Solver, error) {
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}
	s := &Solver{
		vocab:   append([]string(nil), vocab...),
		wordLen: len(vocab[0]),
		oracle:  oracle,
	}
	s.candidates = append([]string(nil), s.vocab...)
	s.rescore()
	log.Debugf("solver ready: %d words, length %d", len(s.vocab), s.wordLen)
	return s, nil
}

// SubmitGuess records word as the current guess and advances the guess counter.
// The word is not validated against the vocabulary; that is the caller's call
// to make (played guesses need not be candidate words).
func (s *Solver) SubmitGuess(word string) {
	s.guess = strings.ToLower(word)
	s.guessCount++
}

// ApplyFeedback narrows the candidate set using the feedback for the current
// guess, then rebuilds the letter and score tables from the surviving words.
// The key must have one mark per letter of the puzzle length, and a guess of
// that length must have been submitted. Returns ErrNoCandidates once the set
// is empty; the set stays empty from then on.
func (s *Solver) ApplyFeedback(key Feedback) error {
	if len(key) != s.wordLen {
		return &InvalidFeedbackLengthError{Got: len(key), Want: s.wordLen}
	}
	if len(s.guess) != s.wordLen {
		return &InvalidFeedbackLengthError{Got: len(s.guess), Want: s.wordLen}
	}
	for i := range key {
		s.filterPosition(key, i)
	}
	s.rescore()
	log.Debugf("feedback %q on %q: %d candidates left", key.String(), s.guess, len(s.candidates))
	if len(s.candidates) == 0 {
		return ErrNoCandidates
	}
	return nil
}

// filterPosition applies the mark at position i of the current guess.
func (s *Solver) filterPosition(key Feedback, i int) {
	letter := s.guess[i]
	switch key[i] {
	case MarkCorrect:
		s.keep(func(w string) bool { return w[i] == letter })
	case MarkPresent:
		s.keep(func(w string) bool {
			return w[i] != letter && strings.IndexByte(w, letter) >= 0
		})
	case MarkAbsent:
		// An absent mark on a letter that is also marked present or correct
		// elsewhere in the guess only bounds the letter count; rejecting every
		// word containing it would throw out the solution.
		if s.markedElsewhere(key, letter, i) {
			s.keep(func(w string) bool { return w[i] != letter })
		} else {
			s.keep(func(w string) bool { return strings.IndexByte(w, letter) < 0 })
		}
	}
}

func (s *Solver) markedElsewhere(key Feedback, letter byte, pos int) bool {
	for j := range key {
		if j != pos && s.guess[j] == letter && key[j] != MarkAbsent {
			return true
		}
	}
	return false
}

// keep filters the candidate slice in place, preserving vocabulary order.
func (s *Solver) keep(pred func(string) bool) {
	kept := s.candidates[:0]
	for _, w := range s.candidates {
		if pred(w) {
			kept = append(kept, w)
		}
	}
	s.candidates = kept
}

// rescore rebuilds the letter table and score table from the current candidate
// set. Scores are always computed from the current snapshot, never updated
// incrementally, so the table domain tracks the candidate set exactly.
func (s *Solver) rescore() {
	s.letters = s.oracle.LetterCounts(s.candidates)
	s.scores = make(map[string]float64, len(s.candidates))
	for _, w := range s.candidates {
		s.scores[w] = s.scoreWord(w)
	}
}

// scoreWord sums the letter-table counts over the word's unique letters and
// adds twice the word's commonality.
func (s *Solver) scoreWord(word string) float64 {
	var seen [256]bool
	var sum float64
	for i := 0; i < len(word); i++ {
		c := word[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		sum += float64(s.letters[c])
	}
	return sum + 2*s.oracle.Commonality(word)
}

// Recommendation returns the highest-scoring candidate. Ties break toward the
// lexicographically smallest word, so the result is deterministic.
func (s *Solver) Recommendation() (string, error) {
	if len(s.candidates) == 0 {
		return "", ErrNoCandidates
	}
	best := s.candidates[0]
	bestScore := s.scores[best]
	for _, w := range s.candidates[1:] {
		sc := s.scores[w]
		if sc > bestScore || (sc == bestScore && w < best) {
			best, bestScore = w, sc
		}
	}
	return best, nil
}

// TopRecommendations returns up to n candidates ordered by descending score,
// ties broken lexicographically.
func (s *Solver) TopRecommendations(n int) ([]ScoredWord, error) {
	if len(s.candidates) == 0 {
		return nil, ErrNoCandidates
	}
	ranked := make([]ScoredWord, 0, len(s.candidates))
	for _, w := range s.candidates {
		ranked = append(ranked, ScoredWord{Word: w, Score: s.scores[w]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Remaining reports how many candidate words are still consistent with all
// feedback received so far.
func (s *Solver) Remaining() int {
	return len(s.candidates)
}

// Guesses reports how many guesses have been submitted.
func (s *Solver) Guesses() int {
	return s.guessCount
}

// WordLength returns the fixed puzzle word length.
func (s *Solver) WordLength() int {
	return s.wordLen
}

// Candidates returns a copy of the current candidate set in vocabulary order.
func (s *Solver) Candidates() []string {
	return append([]string(nil), s.candidates...)
}

/*
Package jumble unscrambles anagram-style jumbled words.

The search walks letter permutations of the scrambled input and keeps the ones
that are dictionary words. Candidate prefixes are pruned against a patricia
trie, so branches that cannot reach any dictionary word are abandoned early
and repeated letters are only expanded once.
*/
package jumble

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrNoSolution is returned when no permutation of the letters is a
// dictionary word.
var ErrNoSolution = errors.New("jumble: no dictionary word matches the letters")

// ErrNoLetters is returned when the scrambled input is empty.
var ErrNoLetters = errors.New("jumble: no letters to unscramble")

// Ranker orders solutions by how common they are. *freq.Oracle satisfies it.
type Ranker interface {
	Commonality(word string) float64
}

// Dict is an immutable dictionary prepared for permutation search.
type Dict struct {
	trie *patricia.Trie
	size int
}

// NewDict indexes the given words. Words are lower-cased; blanks are skipped.
func NewDict(words []string) *Dict {
	d := &Dict{trie: patricia.NewTrie()}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if d.trie.Insert(patricia.Prefix(w), true) {
			d.size++
		}
	}
	log.Debugf("jumble dict ready: %d words", d.size)
	return d
}

// Len reports how many distinct words the dictionary holds.
func (d *Dict) Len() int {
	return d.size
}

// Contains reports whether word is in the dictionary.
func (d *Dict) Contains(word string) bool {
	return d.trie.Match(patricia.Prefix(strings.ToLower(word)))
}

// Solutions returns every distinct dictionary word that uses all the
// scrambled letters exactly once, sorted alphabetically.
func (d *Dict) Solutions(scrambled string) []string {
	letters := []byte(strings.ToLower(strings.TrimSpace(scrambled)))
	if len(letters) == 0 {
		return nil
	}
	// Sorting groups duplicate letters so the walk can skip repeated branches.
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	found := make(map[string]struct{})
	used := make([]bool, len(letters))
	buf := make([]byte, 0, len(letters))

	var walk func()
	walk = func() {
		if len(buf) == len(letters) {
			if d.trie.Match(patricia.Prefix(buf)) {
				found[string(buf)] = struct{}{}
			}
			return
		}
		for i := 0; i < len(letters); i++ {
			if used[i] {
				continue
			}
			// A duplicate letter whose twin is unused would retrace the same branch.
			if i > 0 && letters[i] == letters[i-1] && !used[i-1] {
				continue
			}
			used[i] = true
			buf = append(buf, letters[i])
			if d.trie.MatchSubtree(patricia.Prefix(buf)) {
				walk()
			}
			buf = buf[:len(buf)-1]
			used[i] = false
		}
	}
	walk()

	if len(found) == 0 {
		return nil
	}
	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Solve returns the alphabetically first solution, mirroring Best with no
// ranker.
func (d *Dict) Solve(scrambled string) (string, error) {
	return d.Best(scrambled, nil)
}

// Best returns the most common solution according to the ranker, falling back
// to alphabetical order when the ranker is nil or ties.
func (d *Dict) Best(scrambled string, ranker Ranker) (string, error) {
	if strings.TrimSpace(scrambled) == "" {
		return "", ErrNoLetters
	}
	words := d.Solutions(scrambled)
	if len(words) == 0 {
		return "", ErrNoSolution
	}
	best := words[0]
	if ranker != nil {
		bestScore := ranker.Commonality(best)
		for _, w := range words[1:] {
			if sc := ranker.Commonality(w); sc > bestScore {
				best, bestScore = w, sc
			}
		}
	}
	return best, nil
}

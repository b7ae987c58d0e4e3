// Package dictionary loads the word-list and word-frequency data files that
// feed the solvers.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// LoadWordList reads a newline-separated word file. Words are lower-cased and
// trimmed; blank lines are skipped. Order is preserved.
func LoadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// LoadWordListLen reads a word file keeping only words of the given length.
func LoadWordListLen(path string, length int) ([]string, error) {
	words, err := LoadWordList(path)
	if err != nil {
		return nil, err
	}
	kept := words[:0]
	for _, w := range words {
		if len(w) == length {
			kept = append(kept, w)
		}
	}
	if len(kept) < len(words) {
		log.Debugf("Filtered word list to %d words of length %d", len(kept), length)
	}
	return kept, nil
}

// SaveFrequencies writes a word-commonality table as a msgpack file. The table
// maps lower-case words to logarithmic-scale commonality scores.
func SaveFrequencies(path string, freqs map[string]float64) error {
	data, err := msgpack.Marshal(freqs)
	if err != nil {
		return fmt.Errorf("failed to encode frequency data: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write frequency file %s: %w", path, err)
	}
	return nil
}

// LoadFrequencies reads a msgpack frequency file written by SaveFrequencies.
func LoadFrequencies(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frequency file %s: %w", path, err)
	}
	freqs := make(map[string]float64)
	if err := msgpack.Unmarshal(data, &freqs); err != nil {
		return nil, fmt.Errorf("failed to decode frequency file %s: %w", path, err)
	}
	log.Debugf("Loaded %d frequency entries from %s", len(freqs), path)
	return freqs, nil
}

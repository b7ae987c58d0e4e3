package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ferrisbain/puzzlekit/internal/logger"
	"github.com/ferrisbain/puzzlekit/internal/utils"
	"github.com/ferrisbain/puzzlekit/pkg/jumble"
)

// JumbleHandler runs the jumble puzzle loop: a fixed number of scrambled
// words, each followed by the puzzle's circled letters, then a final
// unscramble of all circled letters together.
type JumbleHandler struct {
	dict   *jumble.Dict
	ranker jumble.Ranker
	rounds int
	reader *bufio.Reader
	out    *log.Logger
}

// NewJumbleHandler handles initialization of the JumbleHandler. The ranker
// may be nil, in which case solutions come out alphabetically.
func NewJumbleHandler(dict *jumble.Dict, ranker jumble.Ranker, rounds int) *JumbleHandler {
	return &JumbleHandler{
		dict:   dict,
		ranker: ranker,
		rounds: rounds,
		reader: bufio.NewReader(os.Stdin),
		out:    logger.New(""),
	}
}

// Start begins the jumble loop. An empty jumble ends the rounds early; the
// collected circled letters are unscrambled as the final answer.
func (h *JumbleHandler) Start() error {
	var circled strings.Builder

	for i := 0; i < h.rounds; i++ {
		word, err := h.readLine(fmt.Sprintf("Enter jumbled word #%d: ", i+1))
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if word == "" {
			break
		}

		h.solveAndPrint(word)

		letters, err := h.readLine("Enter the circled letters: ")
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		circled.WriteString(letters)
	}

	if circled.Len() == 0 {
		return nil
	}
	h.out.Printf("Unscrambling the circled letters: %s", circled.String())
	answer, err := h.dict.Best(circled.String(), h.ranker)
	if err != nil {
		log.Warnf("No final answer found: %v", err)
		return nil
	}
	h.out.Printf("Final answer: %s", answer)
	return nil
}

func (h *JumbleHandler) solveAndPrint(word string) {
	answer, err := h.dict.Best(word, h.ranker)
	if err != nil {
		if errors.Is(err, jumble.ErrNoSolution) {
			log.Warnf("No dictionary word found for %q", word)
			return
		}
		log.Errorf("Unscrambling %q: %v", word, err)
		return
	}
	h.out.Printf("[+] %s", answer)

	// Show the runners-up when the letters have several readings.
	if all := h.dict.Solutions(word); len(all) > 1 {
		log.Debugf("All solutions for %q: %s", word, strings.Join(all, ", "))
	}
}

func (h *JumbleHandler) readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := h.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return utils.NormalizeWord(line), nil
		}
		return "", err
	}
	return utils.NormalizeWord(line), nil
}

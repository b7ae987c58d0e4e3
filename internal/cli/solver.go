// Package cli handles the interactive prompt loops for the guessing-game and
// jumble solvers.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ferrisbain/puzzlekit/internal/logger"
	"github.com/ferrisbain/puzzlekit/internal/utils"
	"github.com/ferrisbain/puzzlekit/pkg/solver"
)

var (
	correctStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286618", Dark: "#56d364"})
	presentStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#e3b341"})
	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#6e7681"})
)

// GameHandler runs the guess/feedback loop against a Solver. It owns the
// terminal conversation only; all game state lives in the solver.
type GameHandler struct {
	solver     *solver.Solver
	maxGuesses int
	recCount   int
	showScores bool
	color      bool
	reader     *bufio.Reader
	out        *log.Logger
}

// NewGameHandler handles initialization of the GameHandler with basic parameters
func NewGameHandler(s *solver.Solver, maxGuesses, recCount int, showScores, color bool) *GameHandler {
	return &GameHandler{
		solver:     s,
		maxGuesses: maxGuesses,
		recCount:   recCount,
		showScores: showScores,
		color:      color,
		reader:     bufio.NewReader(os.Stdin),
		out:        logger.New(""),
	}
}

// Start begins the interface loop. Each round prints the remaining candidate
// count and a recommendation, reads the guess that was actually played (empty
// line plays the recommendation) and the result key, and applies the feedback.
// The loop ends on an all-correct key, an empty candidate set, or after the
// guess limit.
func (h *GameHandler) Start() error {
	h.printLegend()
	if err := h.showStatus(); err != nil {
		return err
	}

	for h.solver.Guesses() < h.maxGuesses {
		rec, err := h.solver.Recommendation()
		if err != nil {
			return err
		}

		guess, err := h.readGuess(rec)
		if err != nil {
			return err
		}
		h.solver.SubmitGuess(guess)

		fb, err := h.readFeedback()
		if err != nil {
			return err
		}
		if fb.AllCorrect() {
			h.out.Printf("Solved in %d guesses!", h.solver.Guesses())
			return nil
		}

		if err := h.solver.ApplyFeedback(fb); err != nil {
			if errors.Is(err, solver.ErrNoCandidates) {
				log.Warn("No words match that feedback; the puzzle word is not in the word list (or a key was mistyped)")
				return nil
			}
			return err
		}
		if err := h.showStatus(); err != nil {
			return err
		}
	}

	h.out.Printf("Out of guesses after %d rounds", h.solver.Guesses())
	return nil
}

// readGuess reads the word that was actually played; an empty line plays the
// recommendation. Non-letter input is rejected and re-prompted.
func (h *GameHandler) readGuess(rec string) (string, error) {
	for {
		guess, err := h.readLine(fmt.Sprintf("What did you enter for guess #%d (enter = %s): ", h.solver.Guesses()+1, rec))
		if err != nil {
			return "", err
		}
		if guess == "" {
			return rec, nil
		}
		if !utils.IsAlphaWord(guess) {
			log.Errorf("Guesses must be letters only: %q", guess)
			continue
		}
		return guess, nil
	}
}

// readFeedback keeps prompting until the key parses and has the right length.
func (h *GameHandler) readFeedback() (solver.Feedback, error) {
	for {
		key, err := h.readLine("What was the result (e.g. --g-y): ")
		if err != nil {
			return nil, err
		}
		fb, err := solver.ParseFeedback(key)
		if err != nil {
			log.Errorf("Bad result key: %v", err)
			continue
		}
		if len(fb) != h.solver.WordLength() {
			log.Errorf("Result key must have %d characters, got %d", h.solver.WordLength(), len(fb))
			continue
		}
		return fb, nil
	}
}

func (h *GameHandler) showStatus() error {
	h.out.Printf("There are %s possible solutions", utils.FormatWithCommas(h.solver.Remaining()))

	if !h.showScores || h.recCount <= 1 {
		rec, err := h.solver.Recommendation()
		if err != nil {
			return err
		}
		h.out.Printf("We recommend: %s", rec)
		return nil
	}

	recs, err := h.solver.TopRecommendations(h.recCount)
	if err != nil {
		return err
	}
	h.out.Print("Top recommendations:")
	for i, r := range recs {
		h.out.Printf("%2d. %-8s (score: %.1f)", i+1, r.Word, r.Score)
	}
	return nil
}

func (h *GameHandler) printLegend() {
	g, y, d := "g", "y", "-"
	if h.color {
		g = correctStyle.Render(g)
		y = presentStyle.Render(y)
		d = absentStyle.Render(d)
	}
	h.out.Print("Enter the result of each guess as one character per letter:")
	h.out.Printf("  %s  correct letter, correct spot", g)
	h.out.Printf("  %s  correct letter, wrong spot", y)
	h.out.Printf("  %s  letter not in the word", d)
}

// readLine prompts and reads one trimmed, lower-cased line. io.EOF passes
// through so Ctrl+D ends the loop cleanly.
func (h *GameHandler) readLine(prompt string) (string, error) {
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

package solver

import "fmt"

// Mark is the per-position feedback for one guessed letter.
type Mark byte

const (
	// MarkAbsent means the letter is not in the solution ('-' in a key).
	MarkAbsent Mark = iota
	// MarkPresent means the letter is in the solution at another position ('y').
	MarkPresent
	// MarkCorrect means the letter is in the correct position ('g').
	MarkCorrect
)

// Feedback is one mark per letter position of a guess.
type Feedback []Mark

// InvalidFeedbackCharError reports a key character outside '-', 'y', 'g'.
type InvalidFeedbackCharError struct {
	Char byte
	Pos  int
}

func (e *InvalidFeedbackCharError) Error() string {
	return fmt.Sprintf("solver: invalid feedback char %q at position %d (want '-', 'y' or 'g')", e.Char, e.Pos)
}

// ParseFeedback converts a result key like "--g-y" into a Feedback. Upper case
// is accepted.
func ParseFeedback(key string) (Feedback, error) {
	fb := make(Feedback, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '-':
			fb[i] = MarkAbsent
		case 'y', 'Y':
			fb[i] = MarkPresent
		case 'g', 'G':
			fb[i] = MarkCorrect
		default:
			return nil, &InvalidFeedbackCharError{Char: key[i], Pos: i}
		}
	}
	return fb, nil
}

// AllCorrect reports whether every position is marked correct, i.e. the guess
// solved the puzzle.
func (f Feedback) AllCorrect() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// String renders the key form of the feedback ("--g-y").
func (f Feedback) String() string {
	buf := make([]byte, len(f))
	for i, m := range f {
		switch m {
		case MarkCorrect:
			buf[i] = 'g'
		case MarkPresent:
			buf[i] = 'y'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}

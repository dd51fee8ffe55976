package hint

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/word"
)

// Move validation errors.
var (
	// ErrNotInDictionary is returned for a move to an unknown word.
	ErrNotInDictionary = errors.New("hint: word not in dictionary")

	// ErrNotOneLetter is returned for a move that changes zero or several letters.
	ErrNotOneLetter = errors.New("hint: words must differ by exactly one letter")
)

// NextMove returns the word after the start on a found ladder.
// It reports false when there is no ladder or the start already is the target.
func NextMove(res search.Result) (string, bool) {
	if !res.Found() || len(res.Path) < 2 {
		return "", false
	}
	return res.Path[1], true
}

// CheckMove validates a player's step from current to next.
func CheckMove(current, next string, dict dictionary.Dictionary) error {
	if dict == nil || !dict.Contains(next) {
		return fmt.Errorf("%w: %q", ErrNotInDictionary, next)
	}
	if !word.OneApart(current, next) {
		return fmt.Errorf("%w: %q → %q", ErrNotOneLetter, current, next)
	}
	return nil
}

// Message renders res for a player.
func Message(res search.Result) string {
	switch res.Outcome {
	case search.Found:
		if next, ok := NextMove(res); ok {
			unit := "moves"
			if res.Hops() == 1 {
				unit = "move"
			}
			return fmt.Sprintf("Hint (%s): next suggested move is '%s' (%d %s left)", res.Strategy, next, res.Hops(), unit)
		}
		return "You are already at the target."
	case search.NoPath:
		return "No valid path found!"
	case search.Timeout:
		return fmt.Sprintf("No hint available: search timed out after %s.", res.Elapsed.Round(time.Millisecond))
	case search.IterationLimit:
		return fmt.Sprintf("No hint available: search gave up after %d steps.", res.Iterations)
	case search.Canceled:
		return "No hint available: search canceled."
	default:
		return "No hint available."
	}
}

package hint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/search"
)

// Session errors.
var (
	// ErrLengthMismatch is returned for start and target of different lengths.
	ErrLengthMismatch = errors.New("hint: words must be of the same length")

	// ErrGameOver is returned for a move after the target was reached.
	ErrGameOver = errors.New("hint: game already won")
)

// Session is one game: the player walks from Start to Target one valid
// move at a time and may ask for hints along the way.
// A Session is not safe for concurrent use.
type Session struct {
	adv    *Advisor
	dict   dictionary.Dictionary
	start  string
	target string
	path   []string
}

// NewSession starts a game from start to target over dict.
// Both words must be in dict and have equal length.
func (a *Advisor) NewSession(start, target string, dict dictionary.Dictionary) (*Session, error) {
	if dict == nil {
		return nil, search.ErrNilDictionary
	}
	for _, w := range []string{start, target} {
		if !dict.Contains(w) {
			return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, w)
		}
	}
	if len(start) != len(target) {
		return nil, fmt.Errorf("%w: %q, %q", ErrLengthMismatch, start, target)
	}
	return &Session{
		adv:    a,
		dict:   dict,
		start:  start,
		target: target,
		path:   []string{start},
	}, nil
}

// Start returns the first word.
func (s *Session) Start() string { return s.start }

// Target returns the goal word.
func (s *Session) Target() string { return s.target }

// Current returns the word the player stands on.
func (s *Session) Current() string { return s.path[len(s.path)-1] }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return len(s.path) - 1 }

// History returns every word visited so far, start first. The slice is a copy.
func (s *Session) History() []string { return append([]string(nil), s.path...) }

// Done reports whether the player reached the target.
func (s *Session) Done() bool { return s.Current() == s.target }

// Move validates next with CheckMove and advances on success. A rejected
// move leaves the session unchanged.
func (s *Session) Move(next string) error {
	if s.Done() {
		return ErrGameOver
	}
	if err := CheckMove(s.Current(), next, s.dict); err != nil {
		return err
	}
	s.path = append(s.path, next)
	return nil
}

// Hint suggests the next move from the current word with the Advisor's
// default strategy.
func (s *Session) Hint() (Hint, error) {
	return s.adv.Hint(s.Current(), s.target, s.dict)
}

// HintWith suggests the next move using strategy.
func (s *Session) HintWith(strategy search.Strategy) (Hint, error) {
	return s.adv.HintWith(strategy, s.Current(), s.target, s.dict)
}

package dictionary

import (
	"errors"
	"fmt"
)

// Sentinel errors for dictionary construction and loading.
var (
	// ErrOptionViolation is returned when an invalid LoadOption is supplied.
	ErrOptionViolation = errors.New("dictionary: invalid option supplied")

	// ErrEmpty is returned by Load when no word survived filtering and
	// WithAllowEmpty was not given.
	ErrEmpty = errors.New("dictionary: no words loaded")
)

// Default length bounds applied by Load.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 8
)

// Dictionary is the read-only view the search core depends on.
type Dictionary interface {
	// Contains reports membership of w.
	Contains(w string) bool

	// ID identifies this dictionary instance. Different instances never
	// share an ID, even when their contents are equal.
	ID() uint64

	// Len returns the number of words.
	Len() int
}

// LoadOption configures Load via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Load.
type LoadOption func(*LoadOptions)

// LoadOptions holds parameters for Load.
type LoadOptions struct {
	// MinLength and MaxLength bound accepted word lengths, inclusive.
	MinLength int
	MaxLength int

	// AllowEmpty makes Load return an empty Set instead of ErrEmpty.
	AllowEmpty bool

	err error
}

// DefaultLoadOptions keeps words of 3 to 8 letters.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
	}
}

// WithLengthRange keeps only words whose length lies in [min, max].
//
//	min < 1 or max < min → ErrOptionViolation
func WithLengthRange(min, max int) LoadOption {
	return func(o *LoadOptions) {
		if min < 1 || max < min {
			o.err = fmt.Errorf("%w: bad length range [%d, %d]", ErrOptionViolation, min, max)
			return
		}
		o.MinLength, o.MaxLength = min, max
	}
}

// WithAllowEmpty lets Load succeed with zero words.
func WithAllowEmpty() LoadOption {
	return func(o *LoadOptions) { o.AllowEmpty = true }
}

package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/wordladder/word"
)

// Load reads one word per line from r. Each line is trimmed and lowercased;
// lines that are not pure letters or fall outside the length bounds are
// skipped silently.
//
// Returns ErrOptionViolation for bad options, ErrEmpty when nothing survived
// filtering (unless WithAllowEmpty), or the underlying read error.
func Load(r io.Reader, opts ...LoadOption) (*Set, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if len(w) < o.MinLength || len(w) > o.MaxLength || !word.Valid(w) {
			continue
		}
		m[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if len(m) == 0 && !o.AllowEmpty {
		return nil, ErrEmpty
	}
	return newSet(m), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...LoadOption) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %q: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}
	return s, nil
}

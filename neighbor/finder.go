package neighbor

import (
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/word"
)

// Source yields the one-letter neighbors of w within dict.
type Source interface {
	Neighbors(w string, dict dictionary.Dictionary) []string
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(w string, dict dictionary.Dictionary) []string

// Neighbors implements Source.
func (f SourceFunc) Neighbors(w string, dict dictionary.Dictionary) []string { return f(w, dict) }

// Finder is the substitution-enumerating Source used on the query path.
// The zero value is ready to use with the lowercase English alphabet.
type Finder struct {
	// Alphabet overrides word.Alphabet when non-empty.
	Alphabet string
}

// Neighbors implements Source.
//
// Complexity: O(L·|Alphabet|) lookups, O(L) extra memory per candidate.
func (f Finder) Neighbors(w string, dict dictionary.Dictionary) []string {
	if w == "" || dict == nil || dict.Len() == 0 {
		return nil
	}
	alphabet := f.Alphabet
	if alphabet == "" {
		alphabet = word.Alphabet
	}

	var out []string
	buf := []byte(w)
	for i := range buf {
		orig := buf[i]
		for j := 0; j < len(alphabet); j++ {
			c := alphabet[j]
			if c == orig {
				continue
			}
			buf[i] = c
			if cand := string(buf); dict.Contains(cand) {
				out = append(out, cand)
			}
		}
		buf[i] = orig
	}
	return out
}

// Lister is a Dictionary that can enumerate its words.
type Lister interface {
	dictionary.Dictionary
	Words() []string
}

// Pairwise compares w against every word of dict. When dict cannot list its
// words, Pairwise returns nil.
//
// Complexity: O(N·L) per call, O(N log N) for the sorted listing.
func Pairwise(w string, dict dictionary.Dictionary) []string {
	l, ok := dict.(Lister)
	if !ok || w == "" {
		return nil
	}
	var out []string
	for _, cand := range l.Words() {
		if word.OneApart(w, cand) {
			out = append(out, cand)
		}
	}
	return out
}

// Package word provides the value-level helpers shared by every other
// package: validity of a candidate word, Hamming distance, and the
// single-letter transformation test that defines an edge of the word graph.
//
// A word is a non-empty string of lowercase ASCII letters 'a'..'z'.
// All helpers work on bytes; multi-byte input is never a valid word.
package word

// Alphabet is the ordered set of letters used for substitution.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Valid reports whether w is a non-empty run of lowercase ASCII letters.
func Valid(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Hamming returns the number of positions at which a and b differ.
// For words of unequal length every surplus position counts as a difference,
// so Hamming never underestimates the number of edits between them.
//
// Complexity: O(max(len(a), len(b))).
func Hamming(a, b string) int {
	n, surplus := len(a), len(b)-len(a)
	if surplus < 0 {
		n, surplus = len(b), -surplus
	}
	d := surplus
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// OneApart reports whether a and b have equal length and differ in exactly
// one position, i.e. whether an edge joins them in the word graph.
func OneApart(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

// ValidPath reports whether every consecutive pair in path is one letter apart.
// A nil or single-word path is trivially valid.
func ValidPath(path []string) bool {
	for i := 1; i < len(path); i++ {
		if !OneApart(path[i-1], path[i]) {
			return false
		}
	}
	return true
}

package search_test

import (
	"math/rand"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/word"
)

// pureWords returns every n-letter word over letters, in counting order,
// stopping after limit words when limit > 0.
func pureWords(letters string, n, limit int) []string {
	var out []string
	idx := make([]int, n)
	buf := make([]byte, n)
	for {
		for i, k := range idx {
			buf[i] = letters[k]
		}
		out = append(out, string(buf))
		if limit > 0 && len(out) == limit {
			return out
		}
		p := n - 1
		for p >= 0 {
			idx[p]++
			if idx[p] < len(letters) {
				break
			}
			idx[p] = 0
			p--
		}
		if p < 0 {
			return out
		}
	}
}

// disconnected50k builds 50,000 five-letter words in three components:
// words over a..h, words over i..o and a slice of words over p..z.
// A word over one letter group is five edits from any word over another,
// so no ladder crosses groups.
func disconnected50k() *dictionary.Set {
	words := pureWords("abcdefgh", 5, 0)                 // 32768
	words = append(words, pureWords("ijklmno", 5, 0)...) // 16807
	words = append(words, pureWords("pqrstuvwxyz", 5, 425)...)
	return dictionary.NewSet(words...)
}

// randomDict draws count distinct words of length n over letters.
func randomDict(rnd *rand.Rand, letters string, n, count int) *dictionary.Set {
	all := pureWords(letters, n, 0)
	rnd.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if count > len(all) {
		count = len(all)
	}
	return dictionary.NewSet(all[:count]...)
}

// validLadder reports whether path is a ladder start..target inside dict.
func validLadder(path []string, start, target string, dict dictionary.Dictionary) bool {
	if len(path) == 0 || path[0] != start || path[len(path)-1] != target {
		return false
	}
	for _, w := range path {
		if !dict.Contains(w) {
			return false
		}
	}
	return word.ValidPath(path)
}

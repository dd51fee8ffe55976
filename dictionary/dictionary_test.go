package dictionary_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

func TestSet_Basics(t *testing.T) {
	s := dictionary.NewSet("cat", "cot", "cat", "dogs")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("cat"))
	assert.False(t, s.Contains("dog"))
	assert.Equal(t, []string{"cat", "cot", "dogs"}, s.Words())
	assert.Equal(t, []int{3, 4}, s.Lengths())
}

func TestSet_NilReceiverIsEmpty(t *testing.T) {
	var s *dictionary.Set
	var d dictionary.Dictionary = s

	assert.Equal(t, uint64(0), d.ID())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains("cat"))
	assert.Nil(t, s.Words())
	assert.Nil(t, s.Lengths())
	assert.Equal(t, 0, s.WordsOfLength(3).Len())
}

func TestSet_IdentityIsPerInstance(t *testing.T) {
	a := dictionary.NewSet("cat")
	b := dictionary.NewSet("cat")
	assert.NotEqual(t, a.ID(), b.ID(), "equal contents must not share identity")
	assert.NotZero(t, a.ID())
}

func TestSet_WordsOfLength(t *testing.T) {
	s := dictionary.NewSet("cat", "cot", "dogs", "a")
	three := s.WordsOfLength(3)
	assert.Equal(t, []string{"cat", "cot"}, three.Words())
	assert.NotEqual(t, s.ID(), three.ID())

	// memoized view keeps its identity
	assert.Same(t, three, s.WordsOfLength(3))

	assert.Equal(t, 0, s.WordsOfLength(7).Len())
}

func TestSet_ConcurrentViews(t *testing.T) {
	s := dictionary.NewSet("cat", "cot", "dogs")
	ids := make(chan uint64, 8)
	for i := 0; i < 8; i++ {
		go func() { ids <- s.WordsOfLength(3).ID() }()
	}
	first := <-ids
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-ids)
	}
}

func TestLoad_FiltersAndNormalizes(t *testing.T) {
	in := strings.Join([]string{
		"  Cat ",
		"dog",
		"ox",          // too short
		"elephantine", // too long
		"co-op",       // not letters
		"",
		"DOG", // duplicate after lowercasing
	}, "\n")

	s, err := dictionary.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, s.Words())
}

func TestLoad_LengthRange(t *testing.T) {
	s, err := dictionary.Load(strings.NewReader("ox\ncat\ncats\n"), dictionary.WithLengthRange(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "ox"}, s.Words())
}

func TestLoad_Errors(t *testing.T) {
	_, err := dictionary.Load(strings.NewReader("cat"), dictionary.WithLengthRange(0, 3))
	assert.True(t, errors.Is(err, dictionary.ErrOptionViolation), "got %v", err)

	_, err = dictionary.Load(strings.NewReader("cat"), dictionary.WithLengthRange(5, 4))
	assert.ErrorIs(t, err, dictionary.ErrOptionViolation)

	_, err = dictionary.Load(strings.NewReader("ox\n"))
	assert.ErrorIs(t, err, dictionary.ErrEmpty)

	s, err := dictionary.Load(strings.NewReader("ox\n"), dictionary.WithAllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\ncog\ndog\n"), 0o600))

	s, err := dictionary.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	_, err = dictionary.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = dictionary.LoadFile(empty)
	assert.ErrorIs(t, err, dictionary.ErrEmpty)
}

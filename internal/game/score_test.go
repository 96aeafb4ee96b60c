package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marksOf(res AttemptResult) []Mark {
	out := make([]Mark, len(res.Tiles))
	for i, t := range res.Tiles {
		out[i] = t.Mark
	}
	return out
}

const (
	c = MarkCorrect
	p = MarkPresent
	a = MarkAbsent
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		target string
		guess  string
		want   []Mark
		solved bool
	}{
		{"exact", "crane", "crane", []Mark{c, c, c, c, c}, true},
		{"duplicate guess letters limited by target count", "alloy", "lolly", []Mark{p, p, c, a, c}, false},
		{"exact match claims before earlier present", "crane", "eerie", []Mark{a, a, p, a, c}, false},
		{"double letter in target", "abbey", "kebab", []Mark{a, p, c, p, p}, false},
		{"nothing shared", "crane", "pilot", []Mark{a, a, a, a, a}, false},
		{"anagram", "least", "steal", []Mark{p, p, p, p, p}, false},
		{"three letters", "cat", "act", []Mark{p, p, c}, false},
		{"eight letters", "absolute", "absolved", []Mark{c, c, c, c, c, a, p, a}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, solved, err := Score(tt.guess, tt.target, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, marksOf(res))
			assert.Equal(t, tt.solved, solved)
			assert.Equal(t, tt.guess, res.Guess)
			for i, tile := range res.Tiles {
				assert.Equal(t, []rune(tt.guess)[i], tile.Letter)
			}
		})
	}
}

func TestScoreInvalidLength(t *testing.T) {
	_, _, err := Score("cranes", "crane", nil)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, _, err = Score("", "", nil)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestScoreUpgradesKeyboard(t *testing.T) {
	kb := NewKeyboard()
	_, _, err := Score("lolly", "alloy", kb)
	require.NoError(t, err)

	assert.Equal(t, MarkCorrect, kb.Mark('l'))
	assert.Equal(t, MarkPresent, kb.Mark('o'))
	assert.Equal(t, MarkCorrect, kb.Mark('y'))
	assert.Equal(t, MarkUnused, kb.Mark('a'))
}

func TestScoreSolvedDecidedAfterExactPass(t *testing.T) {
	// A guess that only matches exactly is solved even though the second
	// pass never has anything to resolve.
	kb := NewKeyboard()
	res, solved, err := Score("crane", "crane", kb)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, res.Solved())
	for _, r := range "crane" {
		assert.Equal(t, MarkCorrect, kb.Mark(r))
	}
}

func TestLetterCounts(t *testing.T) {
	lc := CountLetters("alloy")
	assert.Equal(t, LetterCounts{'a': 1, 'l': 2, 'o': 1, 'y': 1}, lc)

	assert.True(t, lc.Take('l'))
	assert.Equal(t, 1, lc['l'])
	assert.True(t, lc.Take('l'))
	_, ok := lc['l']
	assert.False(t, ok, "letter at zero must be removed")
	assert.False(t, lc.Take('l'))
	assert.False(t, lc.Take('z'))

	for _, r := range "aoy" {
		require.True(t, lc.Take(r))
	}
	assert.True(t, lc.Empty())
}

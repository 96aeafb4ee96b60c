package input

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

func newTestPrompter(in string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	dict := words.NewCatalog([]string{"crane", "slate", "cat"})
	return NewPrompter(strings.NewReader(in), &out, dict), &out
}

func TestNextRepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter("cat\ncr4ne\nzzzzz\n  CRANE \n")

	in, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, Input{Guess: "crane"}, in)

	text := out.String()
	assert.Contains(t, text, "Guess must consist of 5 letters")
	assert.Contains(t, text, "Guess must contain only the letters a-z")
	assert.Contains(t, text, "Word not recognised")
	assert.Equal(t, 4, strings.Count(text, "Please enter a guess (5 letters, or 0 to quit): "))
}

func TestNextQuit(t *testing.T) {
	p, _ := newTestPrompter("0\n")
	in, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, in.Quit)
	assert.Empty(t, in.Guess)
}

func TestNextEOFQuits(t *testing.T) {
	p, _ := newTestPrompter("")
	in, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, in.Quit)
}

func TestNextSequential(t *testing.T) {
	p, _ := newTestPrompter("slate\ncrane\n")
	first, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	second, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "slate", first.Guess)
	assert.Equal(t, "crane", second.Guess)
}

func TestNextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	p := NewPrompter(pr, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Next(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLength(t *testing.T) {
	p, out := newTestPrompter("five\n9\n2\n6\n")
	n, err := p.Length(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Contains(t, out.String(), "ERROR: The input must be an integer.")
	assert.Equal(t, 2, strings.Count(out.String(), "ERROR: The number must be from 3 to 8."))

	p, _ = newTestPrompter("")
	_, err = p.Length(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"maybe\n", false},
		{"", false},
	}
	for _, tt := range tests {
		p, out := newTestPrompter(tt.in)
		got, err := p.Confirm(context.Background(), "Would you like to play again?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, "Would you like to play again? (y/n) ", out.String())
	}
}

func TestNilValidatorAcceptsAnyWord(t *testing.T) {
	p := NewPrompter(strings.NewReader("qqqqq\n"), io.Discard, nil)
	in, err := p.Next(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "qqqqq", in.Guess)
}

// internal/input/prompt.go
//
// Line-based input collection for the console game.
// Responsibilities:
//   - Prompt for a guess until one of the right length passes the dictionary.
//   - Translate the quit code ("0") into an explicit quit request.
//   - Prompt for the word length and for "play again?".
//
// Reads happen on a background goroutine so a cancelled context (Ctrl-C)
// unblocks a pending prompt.

package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

// QuitCode is the literal a player types to end the round.
const QuitCode = "0"

// Input is what the player asked for: either a guess or to quit.
type Input struct {
	Guess string
	Quit  bool
}

// Provider supplies validated guesses of a given length.
type Provider interface {
	Next(ctx context.Context, length int) (Input, error)
}

type line struct {
	text string
	err  error
}

// Prompter is a Provider reading one answer per line.
type Prompter struct {
	in        io.Reader
	out       io.Writer
	validator words.Validator
	lines     chan line
}

// NewPrompter returns a Prompter reading from in and prompting on out.
// A nil validator accepts every word.
func NewPrompter(in io.Reader, out io.Writer, v words.Validator) *Prompter {
	if v == nil {
		v = words.AllowAll{}
	}
	return &Prompter{in: in, out: out, validator: v}
}

// Next prompts until the player enters a playable guess or asks to quit.
// End of input is treated as a quit request.
func (p *Prompter) Next(ctx context.Context, length int) (Input, error) {
	for {
		p.printf("Please enter a guess (%d letters, or %s to quit): ", length, QuitCode)
		text, err := p.readLine(ctx)
		if errors.Is(err, io.EOF) {
			return Input{Quit: true}, nil
		}
		if err != nil {
			return Input{}, err
		}

		if text == QuitCode {
			return Input{Quit: true}, nil
		}
		guess := strings.ToLower(text)
		switch {
		case len([]rune(guess)) != length:
			p.printf("Guess must consist of %d letters\n", length)
		case !lettersOnly(guess):
			p.printf("Guess must contain only the letters a-z\n")
		case !p.validator.IsValid(guess):
			p.printf("Word not recognised\n")
		default:
			return Input{Guess: guess}, nil
		}
	}
}

// Length prompts for a word length between words.MinLength and words.MaxLength.
func (p *Prompter) Length(ctx context.Context) (int, error) {
	for {
		p.printf("Please enter the length of words you would like to play with (%d to %d): ", words.MinLength, words.MaxLength)
		text, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			p.printf("ERROR: The input must be an integer.\n")
			continue
		}
		if !words.ValidLength(n) {
			p.printf("ERROR: The number must be from %d to %d.\n", words.MinLength, words.MaxLength)
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question. Only "y" or "yes" count as yes; end of
// input counts as no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	p.printf("%s (y/n) ", question)
	text, err := p.readLine(ctx)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readLine returns the next trimmed line, or ctx's error if it is cancelled
// first.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.lines == nil {
		p.lines = make(chan line)
		go p.scan()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(l.text), l.err
	}
}

// scan feeds p.lines until the input ends. Once readLine stops receiving
// after a cancellation, scan stays blocked on its next send until exit.
func (p *Prompter) scan() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- line{text: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		p.lines <- line{err: fmt.Errorf("read input: %w", err)}
	}
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func lettersOnly(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

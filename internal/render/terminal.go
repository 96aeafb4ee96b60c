package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"

	"github.com/ahnaf-chowdhury/wordmaster/internal/game"
)

// Renderer displays a round after each accepted guess.
type Renderer interface {
	// Render draws the guess grid (rows lines of length tiles) and keyboard.
	Render(history []game.AttemptResult, kb game.KeyboardState, rows, length int)
	// Message prints one line of text.
	Message(format string, args ...any)
}

// Terminal renders to a text stream.
type Terminal struct {
	w      io.Writer
	styles Styles
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, styles Styles) *Terminal {
	return &Terminal{w: w, styles: styles}
}

// NewStdout returns a Terminal on standard output. On Windows consoles the
// stream is wrapped so ANSI sequences are translated.
func NewStdout(colorMode string) *Terminal {
	color := DetectColor(colorMode, os.Stdout)
	var w io.Writer = os.Stdout
	if color {
		w = colorable.NewColorableStdout()
	}
	return NewTerminal(w, StylesFor(color))
}

// Render implements Renderer.
func (t *Terminal) Render(history []game.AttemptResult, kb game.KeyboardState, rows, length int) {
	var b strings.Builder
	b.WriteString("\n")
	for i := 0; i < rows; i++ {
		if i < len(history) {
			b.WriteString(t.row(history[i]))
		} else {
			b.WriteString(strings.TrimSpace(strings.Repeat("_ ", length)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.keyboard(kb))
	_, _ = io.WriteString(t.w, b.String())
}

// Message implements Renderer.
func (t *Terminal) Message(format string, args ...any) {
	_, _ = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *Terminal) row(a game.AttemptResult) string {
	cells := make([]string, len(a.Tiles))
	for i, tile := range a.Tiles {
		cells[i] = t.styles.Tiles.For(tile.Mark).Apply(tile.Letter)
	}
	return strings.Join(cells, " ")
}

// keyboard draws the QWERTY rows, each indented one more space than the last.
func (t *Terminal) keyboard(kb game.KeyboardState) string {
	var b strings.Builder
	for i, line := range game.QWERTYRows {
		b.WriteString(strings.Repeat(" ", i))
		keys := make([]string, 0, len(line))
		for _, r := range line {
			keys = append(keys, t.styles.Keys.For(kb.Mark(r)).Apply(r))
		}
		b.WriteString(strings.Join(keys, " "))
		b.WriteString("\n")
	}
	return b.String()
}

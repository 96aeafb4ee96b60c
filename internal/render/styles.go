// internal/render/styles.go
//
// Render styles per classification. The game package never sees colour
// codes; everything visual is decided here.

package render

import (
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"

	"github.com/ahnaf-chowdhury/wordmaster/internal/game"
)

const (
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
	strike     = "\u0336"
)

// Style decorates a single letter.
type Style struct {
	Prefix string
	Suffix string
	Upper  bool
	// Mask replaces the letter when non-zero.
	Mask rune
}

// Apply renders r in this style.
func (s Style) Apply(r rune) string {
	if s.Mask != 0 {
		r = s.Mask
	} else if s.Upper {
		r = unicode.ToUpper(r)
	}
	return s.Prefix + string(r) + s.Suffix
}

// Palette holds one Style per classification.
type Palette struct {
	Correct Style
	Present Style
	Absent  Style
	Unused  Style
}

// For returns the style for m.
func (p Palette) For(m game.Mark) Style {
	switch m {
	case game.MarkCorrect:
		return p.Correct
	case game.MarkPresent:
		return p.Present
	case game.MarkAbsent:
		return p.Absent
	default:
		return p.Unused
	}
}

// Styles configures a Terminal: Tiles for the guess grid, Keys for the
// virtual keyboard.
type Styles struct {
	Tiles Palette
	Keys  Palette
}

// ColorStyles highlights correct letters green and present letters yellow
// (bold capitals in the grid) and strikes through used keys.
func ColorStyles() Styles {
	return Styles{
		Tiles: Palette{
			Correct: Style{Prefix: ansiGreen + ansiBold, Suffix: ansiReset, Upper: true},
			Present: Style{Prefix: ansiYellow + ansiBold, Suffix: ansiReset, Upper: true},
		},
		Keys: Palette{
			Correct: Style{Prefix: ansiGreen, Suffix: strike + ansiReset},
			Present: Style{Prefix: ansiYellow, Suffix: strike + ansiReset},
			Absent:  Style{Suffix: strike},
		},
	}
}

// PlainStyles works without escape codes: [C] correct, (P) present, and
// absent keys masked with '-'.
func PlainStyles() Styles {
	return Styles{
		Tiles: Palette{
			Correct: Style{Prefix: "[", Suffix: "]", Upper: true},
			Present: Style{Prefix: "(", Suffix: ")", Upper: true},
		},
		Keys: Palette{
			Correct: Style{Upper: true},
			Present: Style{Prefix: "(", Suffix: ")", Upper: true},
			Absent:  Style{Mask: '-'},
		},
	}
}

// Color modes accepted by DetectColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DetectColor decides whether f should receive ANSI colour.
// "auto" enables colour for terminals unless NO_COLOR is set.
func DetectColor(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StylesFor returns ColorStyles or PlainStyles.
func StylesFor(color bool) Styles {
	if color {
		return ColorStyles()
	}
	return PlainStyles()
}

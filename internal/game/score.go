package game

import "fmt"

// Score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and claim them from the target's letter counts.
//
// Pass 2:
//   - For each unresolved position, left to right: if the letter is still
//     available, mark Present and claim it; otherwise mark Absent.
//
// solved is decided after pass 1: if every target letter was claimed by an
// exact match the guess is a full hit. kb may be nil; otherwise every scored
// letter is upgraded on it.
func Score(guess, target string, kb *Keyboard) (res AttemptResult, solved bool, err error) {
	g := []rune(guess)
	t := []rune(target)
	if len(g) != len(t) || len(t) == 0 {
		return AttemptResult{}, false, fmt.Errorf("%w: guess has %d letters, want %d", ErrInvalidLength, len(g), len(t))
	}

	remaining := CountLetters(target)
	tiles := make([]Tile, len(g))
	resolved := make([]bool, len(g))

	for i := range g {
		if g[i] != t[i] {
			continue
		}
		tiles[i] = Tile{Letter: g[i], Mark: MarkCorrect}
		resolved[i] = true
		remaining.Take(g[i])
		upgrade(kb, g[i], MarkCorrect)
	}

	solved = remaining.Empty()

	for i := range g {
		if resolved[i] {
			continue
		}
		if remaining.Take(g[i]) {
			tiles[i] = Tile{Letter: g[i], Mark: MarkPresent}
			upgrade(kb, g[i], MarkPresent)
		} else {
			tiles[i] = Tile{Letter: g[i], Mark: MarkAbsent}
			upgrade(kb, g[i], MarkAbsent)
		}
	}

	return AttemptResult{Guess: guess, Tiles: tiles}, solved, nil
}

func upgrade(kb *Keyboard, r rune, m Mark) {
	if kb != nil {
		kb.Upgrade(r, m)
	}
}

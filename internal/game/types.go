// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - Tile, AttemptResult: the scored form of one accepted guess.
//   - Status: lifecycle state of a Round.

package game

import (
	"encoding/json"
	"errors"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the target at the same position.
//   - "present": letter exists in the target but not at this position.
//   - "absent":  letter is not available anywhere in the remaining target letters.
//
// MarkUnused only appears in a KeyboardState, for letters never guessed.
type Mark string

const (
	MarkUnused  Mark = "unused"
	MarkAbsent  Mark = "absent"
	MarkPresent Mark = "present"
	MarkCorrect Mark = "correct"
)

// rank orders marks for keyboard upgrades.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	default:
		return 0
	}
}

// Tile is one scored position of a guess.
type Tile struct {
	Letter rune
	Mark   Mark
}

// MarshalJSON encodes the letter as a one-character string.
func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter string `json:"letter"`
		Mark   Mark   `json:"mark"`
	}{string(t.Letter), t.Mark})
}

// AttemptResult is the scored form of one accepted guess.
// It is never mutated after Score returns it.
type AttemptResult struct {
	Guess string `json:"guess"`
	Tiles []Tile `json:"tiles"`
}

// Solved reports whether every tile is MarkCorrect.
func (a AttemptResult) Solved() bool {
	if len(a.Tiles) == 0 {
		return false
	}
	for _, t := range a.Tiles {
		if t.Mark != MarkCorrect {
			return false
		}
	}
	return true
}

// Status is the lifecycle state of a Round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusQuit       Status = "quit"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusQuit
}

var (
	// ErrInvalidLength is returned when a guess (or target) has the wrong length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrRoundAlreadyTerminal is returned when a guess is submitted after the round ended.
	ErrRoundAlreadyTerminal = errors.New("round already finished")
)

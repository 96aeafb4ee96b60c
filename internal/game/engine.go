// internal/game/engine.go
//
// Round engine for a single game of word guessing.
// Responsibilities:
//   - Start a round for a chosen target and attempt budget.
//   - Apply guesses through Score and record their results.
//   - Track state transitions: in_progress → won | lost | quit.
//
// Notes:
//   - Targets are chosen by the caller (see the words and daily packages).
//   - Dictionary membership is checked by the caller before Submit; the
//     engine only enforces length.
//   - Each Round owns its own Keyboard, so a replay starts from a blank one.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultMaxAttempts is used when a round is started with a non-positive budget.
const DefaultMaxAttempts = 6

// Round holds the state of a single game.
type Round struct {
	id          string
	target      string
	length      int
	maxAttempts int
	attempts    int
	history     []AttemptResult
	status      Status
	keyboard    *Keyboard
}

// NewRound starts a round for target.
// If maxAttempts <= 0, DefaultMaxAttempts is used.
func NewRound(target string, maxAttempts int) (*Round, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidLength)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Round{
		id:          uuid.NewString(),
		target:      target,
		length:      utf8.RuneCountInString(target),
		maxAttempts: maxAttempts,
		history:     []AttemptResult{},
		status:      StatusInProgress,
		keyboard:    NewKeyboard(),
	}, nil
}

// Submit validates and scores a guess, mutating the round.
// Returns the scored attempt and the status after it.
//
// Rules:
//   - The round must still be in progress (ErrRoundAlreadyTerminal).
//   - The guess must have exactly WordLength letters (ErrInvalidLength);
//     a rejected guess leaves the round untouched.
//
// State transitions:
//   - Every target letter claimed by exact matches → won.
//   - Else if attempts reach the budget → lost.
func (r *Round) Submit(guess string) (AttemptResult, Status, error) {
	if r.status.Terminal() {
		return AttemptResult{}, r.status, fmt.Errorf("%w: status %s", ErrRoundAlreadyTerminal, r.status)
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if n := utf8.RuneCountInString(guess); n != r.length {
		return AttemptResult{}, r.status, fmt.Errorf("%w: guess has %d letters, want %d", ErrInvalidLength, n, r.length)
	}

	res, solved, err := Score(guess, r.target, r.keyboard)
	if err != nil {
		return AttemptResult{}, r.status, err
	}
	r.history = append(r.history, AttemptResult{Guess: res.Guess, Tiles: append([]Tile(nil), res.Tiles...)})
	r.attempts++

	switch {
	case solved:
		r.status = StatusWon
	case r.attempts >= r.maxAttempts:
		r.status = StatusLost
	}
	return res, r.status, nil
}

// Quit ends an in-progress round. Won and Lost are terminal, so calling it
// again, or on a round that is already won or lost, has no effect.
func (r *Round) Quit() {
	if r.status == StatusInProgress {
		r.status = StatusQuit
	}
}

// ID is a random identifier for correlating the round in logs and stores.
func (r *Round) ID() string { return r.id }

// Status reports the current lifecycle state.
func (r *Round) Status() Status { return r.status }

// Attempts is the number of accepted guesses so far.
func (r *Round) Attempts() int { return r.attempts }

// MaxAttempts is the guess budget.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// Remaining is the number of guesses left.
func (r *Round) Remaining() int { return r.maxAttempts - r.attempts }

// WordLength is the number of letters every guess must have.
func (r *Round) WordLength() int { return r.length }

// Target returns the word being guessed. Callers should only reveal it once
// the round is terminal.
func (r *Round) Target() string { return r.target }

// History returns a copy of the scored attempts in submission order.
func (r *Round) History() []AttemptResult {
	out := make([]AttemptResult, len(r.history))
	for i, a := range r.history {
		out[i] = AttemptResult{Guess: a.Guess, Tiles: append([]Tile(nil), a.Tiles...)}
	}
	return out
}

// Keyboard returns a snapshot of the round's keyboard.
func (r *Round) Keyboard() KeyboardState { return r.keyboard.Snapshot() }

// internal/console/console.go
//
// Console game loop.
// Responsibilities:
//   - Choose the word length (configured or prompted).
//   - Run rounds: pick a target, collect guesses, render after each one.
//   - Report the outcome and offer to play again.
//
// Notes:
//   - Targets come from the word source at random; with Daily set the first
//     round uses the word of the day and replays fall back to random words.
//   - Every round starts a fresh game.Round, so the keyboard resets on replay.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ahnaf-chowdhury/wordmaster/internal/daily"
	"github.com/ahnaf-chowdhury/wordmaster/internal/game"
	"github.com/ahnaf-chowdhury/wordmaster/internal/input"
	"github.com/ahnaf-chowdhury/wordmaster/internal/render"
	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

// Prompter is the player-facing input side of the console.
type Prompter interface {
	input.Provider
	Length(ctx context.Context) (int, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// Options tunes a Game.
type Options struct {
	// Length is the word length; 0 means ask the player.
	Length      int
	MaxAttempts int
	Daily       bool
	DailySalt   string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Game drives rounds on a terminal.
type Game struct {
	src    words.Source
	prompt Prompter
	out    render.Renderer
	opts   Options
	played int
}

// New returns a Game. Rendering and prompting are delegated to out and prompt.
func New(src words.Source, prompt Prompter, out render.Renderer, opts Options) *Game {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = game.DefaultMaxAttempts
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Game{src: src, prompt: prompt, out: out, opts: opts}
}

// Run plays rounds until the player declines to play again.
func (g *Game) Run(ctx context.Context) error {
	length := g.opts.Length
	if length == 0 {
		n, err := g.prompt.Length(ctx)
		if errors.Is(err, io.EOF) {
			// Nothing to play; same as quitting before the first guess.
			return nil
		}
		if err != nil {
			return fmt.Errorf("word length: %w", err)
		}
		length = n
	}
	if !words.ValidLength(length) {
		return fmt.Errorf("word length %d: must be from %d to %d", length, words.MinLength, words.MaxLength)
	}

	for {
		if _, err := g.PlayRound(ctx, length); err != nil {
			return err
		}
		again, err := g.prompt.Confirm(ctx, "Would you like to play again?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// PlayRound plays one round to a terminal status and returns it.
func (g *Game) PlayRound(ctx context.Context, length int) (game.Status, error) {
	target, err := g.pickTarget(length)
	if err != nil {
		return "", err
	}
	round, err := game.NewRound(target, g.opts.MaxAttempts)
	if err != nil {
		return "", err
	}
	g.played++
	log.Debug().Str("roundId", round.ID()).Int("length", length).Int("maxAttempts", round.MaxAttempts()).Msg("round started")

	for round.Status() == game.StatusInProgress {
		in, err := g.prompt.Next(ctx, length)
		if err != nil {
			return round.Status(), err
		}
		if in.Quit {
			round.Quit()
			break
		}

		_, _, err = round.Submit(in.Guess)
		if errors.Is(err, game.ErrInvalidLength) {
			g.out.Message("Guess must consist of %d letters", length)
			continue
		}
		if err != nil {
			return round.Status(), err
		}
		g.out.Render(round.History(), round.Keyboard(), round.MaxAttempts(), length)
	}

	switch round.Status() {
	case game.StatusWon:
		g.out.Message("Correct guess! Number of tries = %d", round.Attempts())
	case game.StatusLost:
		g.out.Message(":( The word was %s", round.Target())
	case game.StatusQuit:
		g.out.Message("QUIT")
	}
	log.Info().Str("roundId", round.ID()).Str("status", string(round.Status())).Int("attempts", round.Attempts()).Msg("round finished")
	return round.Status(), nil
}

func (g *Game) pickTarget(length int) (string, error) {
	if g.opts.Daily && g.played == 0 {
		return daily.Pick(g.src, length, g.opts.Now(), g.opts.DailySalt)
	}
	return words.Random(g.src, length)
}

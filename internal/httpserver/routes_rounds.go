// internal/httpserver/routes_rounds.go
//
// HTTP routes for playing rounds.
//   - POST /rounds            → start a round (random or word of the day)
//   - GET  /rounds/{id}       → current state; the answer once finished
//   - POST /rounds/{id}/guess → submit a guess
//   - POST /rounds/{id}/quit  → give up

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ahnaf-chowdhury/wordmaster/internal/daily"
	"github.com/ahnaf-chowdhury/wordmaster/internal/game"
	"github.com/ahnaf-chowdhury/wordmaster/internal/store"
	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

func (s *Server) mountRounds(r chi.Router) {
	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", s.handleNewRound)
		r.Get("/{id}", s.handleGetRound)
		r.Post("/{id}/guess", s.handleGuess)
		r.Post("/{id}/quit", s.handleQuit)
	})
}

// -----------------------------------------------------------------------------
// POST /rounds

type newRoundReq struct {
	Length int  `json:"length"` // 0 → server default
	Daily  bool `json:"daily"`
}

type newRoundRes struct {
	RoundID     string `json:"roundId"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"`
}

func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	if req.Length == 0 {
		req.Length = s.opts.DefaultLength
	}
	if !words.ValidLength(req.Length) {
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	}

	var (
		target string
		date   string
		err    error
	)
	if req.Daily {
		now := s.opts.Now()
		date = daily.DateKey(now)
		target, err = daily.Pick(s.dict, req.Length, now, s.opts.DailySalt)
	} else {
		target, err = words.Random(s.dict, req.Length)
	}
	if errors.Is(err, words.ErrWordListUnavailable) {
		writeError(w, http.StatusUnprocessableEntity, "word_list_unavailable")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("pick target")
		writeError(w, http.StatusInternalServerError, "pick_failed")
		return
	}

	round, err := game.NewRound(target, s.opts.MaxAttempts)
	if err != nil {
		log.Error().Err(err).Msg("new round")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	if _, err := s.store.Save(r.Context(), round); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("roundId", round.ID()).Int("length", req.Length).Bool("daily", req.Daily).Msg("round started")

	writeJSON(w, http.StatusCreated, newRoundRes{
		RoundID:     round.ID(),
		Length:      round.WordLength(),
		MaxAttempts: round.MaxAttempts(),
		Date:        date,
	})
}

// -----------------------------------------------------------------------------
// GET /rounds/{id}

type roundRes struct {
	RoundID     string               `json:"roundId"`
	Length      int                  `json:"length"`
	MaxAttempts int                  `json:"maxAttempts"`
	Attempts    int                  `json:"attempts"`
	Status      game.Status          `json:"status"`
	History     []attemptJSON        `json:"history"`
	Keyboard    map[string]game.Mark `json:"keyboard"`
	Answer      string               `json:"answer,omitempty"`
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	e.Lock()
	defer e.Unlock()

	round := e.Round
	history := round.History()
	out := roundRes{
		RoundID:     round.ID(),
		Length:      round.WordLength(),
		MaxAttempts: round.MaxAttempts(),
		Attempts:    round.Attempts(),
		Status:      round.Status(),
		History:     make([]attemptJSON, len(history)),
		Keyboard:    round.Keyboard().Map(),
		Answer:      answer(round),
	}
	for i, a := range history {
		out.History[i] = toAttemptJSON(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// POST /rounds/{id}/guess

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	attemptJSON
	Status    game.Status          `json:"status"`
	Attempts  int                  `json:"attempts"`
	Remaining int                  `json:"remaining"`
	Keyboard  map[string]game.Mark `json:"keyboard"`
	Answer    string               `json:"answer,omitempty"`
}

// handleGuess validates and applies a guess.
//   - 409 once the round is finished.
//   - 400 for a wrong length or a word outside the dictionary; the round is
//     left untouched.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	e.Lock()
	defer e.Unlock()
	round := e.Round

	if round.Status().Terminal() {
		writeError(w, http.StatusConflict, "round_finished")
		return
	}
	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if utf8.RuneCountInString(guess) != round.WordLength() {
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	}
	if err := words.Check(s.dict, guess); errors.Is(err, words.ErrNotInWordList) {
		writeError(w, http.StatusBadRequest, "not_in_word_list")
		return
	}

	res, st, err := round.Submit(guess)
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	case errors.Is(err, game.ErrRoundAlreadyTerminal):
		writeError(w, http.StatusConflict, "round_finished")
		return
	case err != nil:
		log.Error().Err(err).Str("roundId", round.ID()).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}
	if st.Terminal() {
		log.Info().Str("roundId", round.ID()).Str("status", string(st)).Int("attempts", round.Attempts()).Msg("round finished")
	}

	writeJSON(w, http.StatusOK, guessRes{
		attemptJSON: toAttemptJSON(res),
		Status:      st,
		Attempts:    round.Attempts(),
		Remaining:   round.Remaining(),
		Keyboard:    round.Keyboard().Map(),
		Answer:      answer(round),
	})
}

// -----------------------------------------------------------------------------
// POST /rounds/{id}/quit

func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	e.Lock()
	defer e.Unlock()

	e.Round.Quit()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": e.Round.Status(),
		"answer": answer(e.Round),
	})
}

// -----------------------------------------------------------------------------
// shared

type tileJSON struct {
	Letter string    `json:"letter"`
	Mark   game.Mark `json:"mark"`
}

type attemptJSON struct {
	Guess string     `json:"guess"`
	Tiles []tileJSON `json:"tiles"`
}

func toAttemptJSON(a game.AttemptResult) attemptJSON {
	out := attemptJSON{Guess: a.Guess, Tiles: make([]tileJSON, len(a.Tiles))}
	for i, t := range a.Tiles {
		out.Tiles[i] = tileJSON{Letter: string(t.Letter), Mark: t.Mark}
	}
	return out
}

// answer reveals the target only once the round is over.
func answer(r *game.Round) string {
	if r.Status().Terminal() {
		return r.Target()
	}
	return ""
}

// entry resolves {id} or writes a 404.
func (s *Server) entry(w http.ResponseWriter, r *http.Request) (*store.Entry, bool) {
	e, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return e, true
}

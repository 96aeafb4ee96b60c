// internal/words/words.go
//
// Provides word list management for the game.
//
// Responsibilities:
//   - Hold the dictionary grouped by word length (Catalog).
//   - Supply target words at random (Random) and dictionary membership (IsValid).
//   - Normalize raw lists: lowercase, trimmed, a–z only, MinLength..MaxLength.
//
// Word lists:
//   - JSON object keyed by length, e.g. {"5": ["crane", ...]} (assets/words.json).
//   - Plain text, one word per line; blank lines and "#" comments are skipped.
//   - SQLite database (see sqlite.go) or an HTTP download (see load.go).
//
// Sampling and validation are separate capabilities so either can be swapped
// independently; tests typically use a fixed Catalog and AllowAll.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

const (
	MinLength     = 3
	MaxLength     = 8
	DefaultLength = 5
)

var (
	// ErrWordListUnavailable means no words could be supplied for a length.
	ErrWordListUnavailable = errors.New("word list unavailable")
	// ErrNotInWordList means a guess failed the dictionary check.
	ErrNotInWordList = errors.New("not in word list")
)

// Source supplies target words grouped by length.
type Source interface {
	// WordsOfLength returns every word of length n, in a stable order.
	// It fails with ErrWordListUnavailable when there are none.
	WordsOfLength(n int) ([]string, error)
}

// Validator is a dictionary membership check.
type Validator interface {
	IsValid(word string) bool
}

// Dictionary is a Source that can also validate guesses.
type Dictionary interface {
	Source
	Validator
}

// AllowAll accepts every word.
type AllowAll struct{}

func (AllowAll) IsValid(string) bool { return true }

// Check returns ErrNotInWordList when v rejects w.
func Check(v Validator, w string) error {
	if v.IsValid(w) {
		return nil
	}
	return fmt.Errorf("%q: %w", w, ErrNotInWordList)
}

// Catalog is an in-memory Dictionary. It is read-only once built and safe
// for concurrent use.
type Catalog struct {
	byLength map[int][]string
	set      map[string]struct{}
}

// NewCatalog normalizes list and groups it by length.
// Duplicates and invalid entries are dropped.
func NewCatalog(list []string) *Catalog {
	c := &Catalog{
		byLength: make(map[int][]string),
		set:      make(map[string]struct{}, len(list)),
	}
	for _, raw := range list {
		w, ok := Normalize(raw)
		if !ok {
			continue
		}
		if _, dup := c.set[w]; dup {
			continue
		}
		c.set[w] = struct{}{}
		c.byLength[len(w)] = append(c.byLength[len(w)], w)
	}
	return c
}

// WordsOfLength returns the words of length n in load order.
func (c *Catalog) WordsOfLength(n int) ([]string, error) {
	list := c.byLength[n]
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words", ErrWordListUnavailable, n)
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// IsValid reports whether w is in the dictionary (case-insensitive).
func (c *Catalog) IsValid(w string) bool {
	_, ok := c.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Lengths returns the word lengths that have at least one word, ascending.
func (c *Catalog) Lengths() []int {
	out := make([]int, 0, len(c.byLength))
	for n, list := range c.byLength {
		if len(list) > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// All returns every word, grouped by ascending length.
func (c *Catalog) All() []string {
	out := make([]string, 0, len(c.set))
	for _, n := range c.Lengths() {
		out = append(out, c.byLength[n]...)
	}
	return out
}

// Size is the number of distinct words.
func (c *Catalog) Size() int { return len(c.set) }

// Random returns a uniformly random word of length n from src.
func Random(src Source, n int) (string, error) {
	list, err := src.WordsOfLength(n)
	if err != nil {
		return "", err
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("random index: %w", err)
	}
	return list[nBig.Int64()], nil
}

// Normalize lowercases and trims w and reports whether the result is a
// playable word.
func Normalize(w string) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) < MinLength || len(w) > MaxLength || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// ValidLength reports whether n is a playable word length.
func ValidLength(n int) bool { return n >= MinLength && n <= MaxLength }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

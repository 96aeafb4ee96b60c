// internal/store/memory.go
//
// In-memory store of active rounds for the HTTP play mode.
//
// Characteristics:
//   - Rounds are keyed by game.Round.ID.
//   - Bounded: the least recently used round is evicted once capacity is reached.
//   - Each entry carries its own mutex; callers hold it while touching the round.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ahnaf-chowdhury/wordmaster/internal/game"
)

// DefaultCapacity is used when NewMemoryStore is given a non-positive size.
const DefaultCapacity = 10000

// ErrNotFound is returned by Get for unknown or evicted rounds.
var ErrNotFound = errors.New("not found")

// Entry wraps a round with the lock that serializes access to it.
type Entry struct {
	sync.Mutex
	Round   *game.Round
	Started time.Time
}

// Store defines the persistence interface for active rounds.
type Store interface {
	// Save adds a round and returns its entry.
	Save(ctx context.Context, r *game.Round) (*Entry, error)

	// Get retrieves a round by ID.
	// Returns ErrNotFound if the round is unknown.
	Get(ctx context.Context, id string) (*Entry, error)

	// Len reports how many rounds are held.
	Len() int
}

// memory is an LRU-backed Store implementation.
type memory struct {
	rounds *lru.Cache[string, *Entry]
}

// NewMemoryStore constructs a Store holding at most capacity rounds.
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c, _ := lru.New[string, *Entry](capacity)
	return &memory{rounds: c}
}

// Save adds r, evicting the least recently used round if full.
func (m *memory) Save(ctx context.Context, r *game.Round) (*Entry, error) {
	e := &Entry{Round: r, Started: time.Now().UTC()}
	m.rounds.Add(r.ID(), e)
	return e, nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	if e, ok := m.rounds.Get(id); ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int { return m.rounds.Len() }

// internal/store/memory.go
//
// In-memory turn log for running sessions.
// The driver records every accepted guess here and reads the history back to
// log a summary once the session ends.
//
// Characteristics:
//   - Turns are kept per session ID, in the order they were recorded.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by History for an unknown session.
var ErrNotFound = errors.New("store: session not found")

// Turn is one accepted guess and what it revealed.
type Turn struct {
	Number  int    // 1-based turn number
	Guess   string // normalized guess
	Pattern string // positional render, e.g. "c___e"
}

// Store defines the turn log interface.
type Store interface {
	// Record appends a turn to the session's history.
	Record(ctx context.Context, sessionID string, t Turn) error

	// History returns a copy of the session's turns.
	// Returns ErrNotFound if nothing was recorded for sessionID.
	History(ctx context.Context, sessionID string) ([]Turn, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string][]Turn // keyed by game ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string][]Turn)}
}

func (m *memory) Record(ctx context.Context, sessionID string, t Turn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], t)
	return nil
}

func (m *memory) History(ctx context.Context, sessionID string) ([]Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	turns, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]Turn(nil), turns...), nil
}

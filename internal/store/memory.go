// internal/store/memory.go
//
// In-memory best-score board.
// The guessing game records a score per finished round here and asks whether
// it beat the previous best.
//
// Characteristics:
//   - Keyed by game name, so several games can share one board.
//   - Lower scores are better (fewer attempts).
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process exits; nothing is written to disk.

package store

import (
	"context"
	"sync"
)

// Scoreboard keeps the best score seen per game.
type Scoreboard interface {
	// Record stores score for game. It returns the best score after recording
	// and whether score replaced the previous best (true for the first score).
	Record(ctx context.Context, game string, score int) (best int, improved bool, err error)

	// Best returns the current best for game, or false if none was recorded.
	Best(ctx context.Context, game string) (int, bool, error)
}

// memory is a map-based Scoreboard.
type memory struct {
	mu   sync.RWMutex   // guards best
	best map[string]int // keyed by game name
}

// NewMemoryScoreboard constructs an empty in-memory Scoreboard.
func NewMemoryScoreboard() Scoreboard {
	return &memory{best: make(map[string]int)}
}

func (m *memory) Record(ctx context.Context, game string, score int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.best[game]
	if ok && prev <= score {
		return prev, false, nil
	}
	m.best[game] = score
	return score, true, nil
}

func (m *memory) Best(ctx context.Context, game string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.best[game]
	return b, ok, nil
}

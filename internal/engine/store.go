package engine

import "sync"

// BestScoreStore persists the best score of one game. Implementations are
// best effort: load returns 0 when nothing usable is stored, and a failed
// save is swallowed. Gameplay never depends on it.
type BestScoreStore interface {
	LoadBestScore() int
	SaveBestScore(score int)
}

// MemoryBestScores keeps the best score in memory.
type MemoryBestScores struct {
	mu    sync.Mutex
	score int
	saves int
}

// LoadBestScore returns the stored value.
func (m *MemoryBestScores) LoadBestScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// SaveBestScore stores the value.
func (m *MemoryBestScores) SaveBestScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
}

// Saves returns how many times SaveBestScore was called.
func (m *MemoryBestScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// BestScores persists one game's best score in the store. Storage failures
// never reach the game: they are logged and read as 0 or dropped.
type BestScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ engine.BestScoreStore = (*BestScores)(nil)

// NewBestScores creates the best-score adapter for gameID. A nil store
// behaves like an empty one.
func NewBestScores(store *Store, gameID string, logger *log.Logger) *BestScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScores{store: store, gameID: gameID, logger: logger}
}

// LoadBestScore returns the stored best score, or 0 when it is missing or
// unreadable.
func (b *BestScores) LoadBestScore() int {
	if b.store == nil {
		return 0
	}
	score, err := b.store.BestScore(b.gameID)
	if err != nil {
		b.logger.Warn("cannot load best score", "game", b.gameID, "err", err)
		return 0
	}
	return score
}

// SaveBestScore stores the best score. Failures are logged.
func (b *BestScores) SaveBestScore(score int) {
	if b.store == nil {
		return
	}
	if err := b.store.SetBestScore(b.gameID, score); err != nil {
		b.logger.Warn("cannot save best score", "game", b.gameID, "score", score, "err", err)
		return
	}
	b.logger.Debug("best score saved", "game", b.gameID, "score", score)
}

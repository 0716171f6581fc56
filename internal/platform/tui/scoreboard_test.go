package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

func newTestBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	store.SaveScore("runner", 12)
	store.SaveScore("runner", 30)
	store.SetBestScore("runner", 30)

	m := NewScoreboardModel(store, 100, 40)
	m.games = []registry.GameInfo{
		{ID: "runner", Title: "Neon Runner"},
		{ID: "shooter", Title: "Galaxy Shooter"},
	}
	m.load()
	return m
}

func sendBoard(m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardLoadsHistoryAndStats(t *testing.T) {
	m := newTestBoard(t)

	if len(m.history) != 2 || m.history[0].Score != 30 {
		t.Fatalf("history = %+v, want 30 then 12", m.history)
	}
	if m.stats == nil || m.stats.BestScore != 30 || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Neon Runner", "Best", "30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := newTestBoard(t)

	m = sendBoard(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "shooter" || len(m.history) != 0 {
		t.Errorf("after tab: selected=%q rows=%d, want shooter with no rows", m.Selected(), len(m.history))
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty board message missing")
	}

	m = sendBoard(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "runner" {
		t.Errorf("tab should wrap to runner, got %q", m.Selected())
	}

	m = sendBoard(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != "shooter" {
		t.Errorf("shift+tab should wrap to shooter, got %q", m.Selected())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	if m := sendBoard(newTestBoard(t), tea.KeyMsg{Type: tea.KeyEsc}); !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
	if m := sendBoard(newTestBoard(t), keyRunes("q")); !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	m.games = []registry.GameInfo{{ID: "runner", Title: "Neon Runner"}}
	m.load()

	if m.history != nil || m.stats != nil {
		t.Error("a missing store should leave the board empty")
	}
	if !strings.Contains(m.View(), "never") {
		t.Error("stat cards should show defaults without a store")
	}
}

package tui

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// fakeGame records the frames it is stepped with and reports a scripted state.
type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return g.state
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *fakeGame, store *storage.Store) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, store, nil, cfg)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump, core.ActionFire}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionStart}},
		{"r", keyRunes("r"), []core.Action{core.ActionStart}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump, core.ActionUp}},
		{"a", keyRunes("a"), []core.Action{core.ActionLeft}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []core.Action{core.ActionRight}},
		{"s", keyRunes("s"), []core.Action{core.ActionDown}},
		{"p", keyRunes("p"), []core.Action{core.ActionPause}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionPause}},
		{"b", keyRunes("b"), []core.Action{core.ActionBack}},
		{"unbound", keyRunes("z"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Actions(tt.msg); !slices.Equal(got, tt.want) {
				t.Errorf("Actions(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		name      string
		action    core.Action
		repeating bool
		tickRate  int
		want      int
	}{
		{"move", core.ActionLeft, false, 60, 7},
		{"move repeat", core.ActionLeft, true, 60, 7},
		{"first fire bridges repeat delay", core.ActionFire, false, 60, 42},
		{"fire repeat", core.ActionFire, true, 60, 9},
		{"slow tick rate", core.ActionLeft, false, 1, 1},
		{"zero tick rate", core.ActionFire, false, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := holdTicks(holdWindow(tt.action, tt.repeating), tt.tickRate); got != tt.want {
				t.Errorf("holdTicks = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestModelPressIsEdgeTriggered(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionStart) {
		t.Error("first tick should see the Start press")
	}
	if g.frames[1].Has(core.ActionStart) {
		t.Error("Start press leaked into the next tick")
	}
	if g.frames[1].IsHeld(core.ActionStart) {
		t.Error("Start is not a holdable action")
	}
}

func TestModelHeldKeysExpire(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	window := holdTicks(moveWindow, m.config.TickRate)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < window+2; i++ {
		m = send(t, m, TickMsg{})
	}

	if !g.frames[0].Has(core.ActionLeft) {
		t.Fatal("first tick should see the Left press")
	}
	for i := 1; i < window; i++ {
		if g.frames[i].Has(core.ActionLeft) {
			t.Fatalf("tick %d: held key reported as a new press", i)
		}
		if !g.frames[i].IsHeld(core.ActionLeft) {
			t.Fatalf("tick %d: Left should still be held", i)
		}
	}
	if last := g.frames[len(g.frames)-1]; last.IsHeld(core.ActionLeft) {
		t.Error("Left should be released after the hold window")
	}
}

func TestModelFireHeldAcrossRepeatDelay(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	// First auto-repeat arrives about 500ms (30 ticks) after the press
	m = send(t, m, space)
	for i := 0; i < 30; i++ {
		m = send(t, m, TickMsg{})
	}
	for i, f := range g.frames {
		if !f.IsHeld(core.ActionFire) {
			t.Fatalf("tick %d: fire released before the first repeat", i)
		}
	}

	m = send(t, m, space)
	if got, want := m.held[core.ActionFire], holdTicks(fireRepeatWindow, m.config.TickRate); got != want {
		t.Errorf("repeat press hold = %d ticks, want %d", got, want)
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Started: true, Score: 4}}
	m := newTestModel(g, store)
	m = send(t, m, TickMsg{})

	g.state.GameOver = true
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	// Restart, then a second game over
	g.state = core.GameState{Started: true, Score: 9}
	m = send(t, m, TickMsg{})
	g.state.GameOver = true
	send(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 saved scores, got %d", len(scores))
	}
	if scores[0].Score != 9 || scores[1].Score != 4 {
		t.Errorf("saved scores = %d, %d; want 9, 4", scores[0].Score, scores[1].Score)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Started: true, GameOver: true}}
	send(t, newTestModel(g, store), TickMsg{})

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("zero score should not be stored, got high %d", high)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View() should render the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

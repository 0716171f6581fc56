package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Terminals report no key release, so held state is emulated from the
// keyboard's auto-repeat: a key counts as held for a window after each press.
// The first fire press outlasts the auto-repeat delay (typically 500-660ms);
// movement windows stay short.
const (
	fireFirstWindow  = 700 * time.Millisecond
	fireRepeatWindow = 150 * time.Millisecond
	moveWindow       = 120 * time.Millisecond
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Start      key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Pause      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns the default in-game bindings.
// Space both jumps and fires, so one key serves both games.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "title screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.Fire, k.Pause},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// Actions translates a key message into the game actions it triggers.
// A single key may map to several actions (space is Jump and Fire).
func (k GameKeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Start, core.ActionStart},
		{k.Jump, core.ActionJump},
		{k.Fire, core.ActionFire},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Pause, core.ActionPause},
		{k.Back, core.ActionBack},
		{k.Quit, core.ActionQuit},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// holdable reports whether an action keeps acting while its key is down.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		return true
	}
	return false
}

// holdWindow returns how long a holdable action stays held after a press.
// repeating is true when the press arrived while the key was still held.
func holdWindow(a core.Action, repeating bool) time.Duration {
	if a != core.ActionFire {
		return moveWindow
	}
	if repeating {
		return fireRepeatWindow
	}
	return fireFirstWindow
}

// holdTicks converts a hold window to simulation ticks.
func holdTicks(window time.Duration, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	n := int(window * time.Duration(tickRate) / time.Second)
	return max(n, 1)
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

const (
	historyLimit = 100 // rows loaded per game
	chromeHeight = 12  // title, tabs, stat cards, borders and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("198")).Padding(0, 1)
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("93")).Padding(0, 1).Align(lipgloss.Center)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the score history and stats of one game at a time.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	store   *storage.Store
	stats   *storage.GameStats
	history []storage.ScoreEntry
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	quit    bool
	back    bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newHistoryTable(height)
	m.load()
	return m
}

func newHistoryTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: 18},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("60")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("93"))
	t.SetStyles(s)
	return t
}

// load reads the selected game's history and stats. Read errors leave the
// board empty.
func (m *ScoreboardModel) load() {
	m.history, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if h, err := m.store.TopScores(id, historyLimit); err == nil {
			m.history = h
		}
		if st, err := m.store.GetGameStats(id); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, len(m.history))
	for i, e := range m.history {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the game selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	sections := []string{
		boardTitleStyle.Render("HIGH SCORES"),
		m.tabs(),
		m.cards(),
		m.body(),
		m.help.View(m.keys),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) cards() string {
	best, games, avg, last := "0", "0", "-", "never"
	if st := m.stats; st != nil && st.GamesCount > 0 {
		best = strconv.Itoa(max(st.BestScore, st.HighScore))
		games = strconv.Itoa(st.GamesCount)
		avg = fmt.Sprintf("%.1f", st.AvgScore)
		last = st.LastPlayed.Format("Jan 02")
	}

	card := func(label, value string) string {
		return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Best", best), card("Games", games), card("Average", avg), card("Last", last))
}

func (m ScoreboardModel) body() string {
	if len(m.history) == 0 {
		return frameStyle.Render(mutedStyle.Render(strings.Join([]string{
			"No scores recorded yet.",
			"Play a game to set a high score!",
		}, "\n")))
	}
	return frameStyle.Render(m.table.View())
}

// Selected returns the ID of the game on display, or "" with no games.
func (m ScoreboardModel) Selected() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

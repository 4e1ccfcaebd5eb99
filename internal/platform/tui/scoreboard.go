package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tinyarcade/internal/registry"
	"github.com/vovakirdan/tinyarcade/internal/storage"
)

const (
	maxScores      = 100
	runIDWidth     = 8
	playerMinWidth = 12
	playerMaxWidth = 24
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses saved runs one game at a time. Runs of the
// viewing player are marked with a star.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store
	player string

	entries []storage.ScoreEntry
	stats   *storage.GameStats
	table   table.Model
	help    help.Model
	keys    scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
// store may be nil, in which case every game is empty.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		player: player,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// load reads the selected game's runs and stats and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.entries, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID
		if entries, err := m.store.TopScores(id, maxScores); err == nil {
			m.entries = entries
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rebuild()
}

func (m *ScoreboardModel) rebuild() {
	m.table = table.New(
		table.WithColumns(scoreColumns(m.entries, m.width)),
		table.WithRows(scoreRows(m.entries, m.player)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

// hasResults reports whether any run saved a match result.
func hasResults(entries []storage.ScoreEntry) bool {
	for _, e := range entries {
		if e.Result != "" {
			return true
		}
	}
	return false
}

// scoreColumns lays out the table for width. The Match column appears only
// for games whose runs saved a result, and the Player column takes the
// slack.
func scoreColumns(entries []storage.ScoreEntry, width int) []table.Column {
	cols := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: playerMinWidth},
		{Title: "Score", Width: 7},
	}
	if hasResults(entries) {
		cols = append(cols, table.Column{Title: "Match", Width: 9})
	}
	cols = append(cols,
		table.Column{Title: "Run", Width: runIDWidth},
		table.Column{Title: "Date", Width: 12},
	)

	used := 6 // frame border and padding
	for _, c := range cols {
		used += c.Width + 2
	}
	if slack := width - used; slack > 0 {
		cols[1].Width = min(playerMinWidth+slack, playerMaxWidth)
	}
	return cols
}

func scoreRows(entries []storage.ScoreEntry, player string) []table.Row {
	withResult := hasResults(entries)
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rank := fmt.Sprintf("#%d", i+1)
		if player != "" && e.Player == player {
			rank += "*"
		}
		name := e.Player
		if name == "" {
			name = "-"
		}
		row := table.Row{rank, name, fmt.Sprintf("%d", e.Score)}
		if withResult {
			result := e.Result
			if result == "" {
				result = "-"
			}
			row = append(row, result)
		}
		row = append(row, shortRunID(e.RunID), e.CreatedAt.Format("Jan 02 15:04"))
		rows = append(rows, row)
	}
	return rows
}

// shortRunID trims a run id for display. Rows saved before runs were
// tracked have none.
func shortRunID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > runIDWidth {
		return id[:runIDWidth]
	}
	return id
}

func statsLine(s *storage.GameStats) string {
	if s == nil || s.GamesCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs  best %d  avg %.1f  last %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation between games and table scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// View renders the tab strip, the stats of the selected game and its runs.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if len(m.games) > 0 {
		tabs := make([]string, len(m.games))
		for i, g := range m.games {
			if i == m.cursor {
				tabs[i] = boardActiveTab.Render(g.Title)
			} else {
				tabs[i] = boardTabStyle.Render(g.Title)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
		b.WriteString(boardDimStyle.Render(statsLine(m.stats)))
		b.WriteString("\n")
	}

	body := m.table.View()
	if len(m.entries) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(boardFrameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program and reports whether
// the user went back rather than quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

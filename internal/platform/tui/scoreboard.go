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

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const (
	sidebarMinWidth = 80 // Narrower terminals get a one-line summary instead
	sidebarWidth    = 24
	boardLimit      = 100 // Rows loaded into the table
)

// ScoreLister reads the leaderboard.
type ScoreLister interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	GetStats() (*storage.Stats, error)
}

// BoardKeyMap holds the scoreboard bindings. It implements help.KeyMap.
type BoardKeyMap struct {
	Up, Down key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back}
}

func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// DefaultBoardKeyMap returns the scoreboard bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	bind := func(hint, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(hint, desc))
	}
	return BoardKeyMap{
		Up:      bind("↑/k", "up", "up", "k"),
		Down:    bind("↓/j", "down", "down", "j"),
		Refresh: bind("r", "reload", "r"),
		Back:    bind("esc", "back", "esc", "b", "tab"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardModel lists saved runs with a stats panel. Standalone, Back
// quits the program; embedded in another model, Back only sets IsGoingBack.
type ScoreboardModel struct {
	store   ScoreLister
	scores  []storage.ScoreEntry
	stats   *storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  BoardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
	embedded      bool
}

// NewScoreboardModel creates a standalone scoreboard and loads the scores.
func NewScoreboardModel(store ScoreLister, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultBoardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height, m.wide())
	m.reload()
	return m
}

func newEmbeddedScoreboard(store ScoreLister, width, height int) ScoreboardModel {
	m := NewScoreboardModel(store, width, height)
	m.embedded = true
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= sidebarMinWidth
}

// newScoreTable sizes the columns to the space left beside the sidebar.
func newScoreTable(width, height int, sidebar bool) table.Model {
	avail := width - 4
	if sidebar {
		avail -= sidebarWidth + 3
	}
	dateWidth, scoreWidth := 14, 10
	if avail > 50 {
		scoreWidth = 12
		dateWidth = min(avail-34, 20)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	styles.Selected = styles.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 6},
			{Title: "Score", Width: scoreWidth},
			{Title: "Host", Width: 8},
			{Title: "When", Width: dateWidth},
		}),
		table.WithHeight(max(height-8, 3)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

// reload fetches scores and stats again and refills the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.fillTable()
		return
	}

	var errs []error
	scores, err := m.store.TopScores(boardLimit)
	if err != nil {
		errs = append(errs, err)
	}
	stats, err := m.store.GetStats()
	if err != nil {
		errs = append(errs, err)
	}
	m.scores, m.stats = scores, stats
	if len(errs) > 0 {
		m.loadErr = errs[0]
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for rank, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(rank+1),
			strconv.Itoa(s.Score),
			s.Host,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height, m.wide())
		m.fillTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if !m.embedded {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) updateSize(msg tea.WindowSizeMsg) (ScoreboardModel, bool) {
	updated, _ := m.Update(msg)
	board, ok := updated.(ScoreboardModel)
	return board, ok
}

func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var body string
	if m.wide() {
		panel := "Stats\n" + strings.Repeat("─", sidebarWidth-4) + "\n" + strings.Join(m.statsLines(), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			boardBoxStyle.Width(sidebarWidth).Render(panel),
			"  ",
			boardBoxStyle.Render(m.tableView()),
		)
	} else {
		body = centerText(boardDimStyle.Render(strings.Join(m.statsLines(), "  ")), m.width) +
			"\n\n" + centerText(boardBoxStyle.Render(m.tableView()), m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(boardTitleStyle.Render("HIGH SCORES - Brick Breaker"), m.width),
		"",
		body,
		boardDimStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) statsLines() []string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return []string{"No runs yet"}
	}
	lines := []string{
		fmt.Sprintf("Runs:  %d", st.GamesCount),
		fmt.Sprintf("Best:  %d", st.HighScore),
		fmt.Sprintf("Avg:   %.0f", st.AvgScore),
		fmt.Sprintf("Total: %d", st.TotalScore),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, "Last:  "+st.LastPlayed.Format("Jan 02 15:04"))
	}
	return lines
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.loadErr != nil:
		return boardEmptyStyle.Render("Cannot load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardEmptyStyle.Render("No scores yet.\nFinish a run to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack reports whether Back was pressed.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether Quit was pressed.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard shows the scoreboard full screen until the user leaves.
func RunScoreboard(store ScoreLister, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/session"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Store is what the terminal host needs from score storage.
type Store interface {
	session.ScoreStore
	ScoreLister
}

// Options configures the terminal host.
type Options struct {
	Layout    breakout.Layout
	Palette   breakout.Palette
	Store     Store // Optional
	Logger    *log.Logger
	Runtime   core.RuntimeConfig
	NudgeStep float64 // Logical units per nudge key press
}

// Model is the Bubble Tea model hosting the brick breaker.
// Mutable state lives behind pointers so value receivers see one game.
type Model struct {
	screen *core.Screen
	canvas *cellCanvas
	frames *frameQueue
	bridge *session.Bridge
	store  Store
	logger *log.Logger

	keys      KeyMap
	help      help.Model
	board     ScoreboardModel
	showBoard bool

	config   core.RuntimeConfig
	nudge    float64
	status   string // Transient message shown in the HUD
	quitting bool
}

// NewModel creates a terminal host with the overlay closed.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-hudRows, 1))
	canvas := newCellCanvas(screen, opts.Layout.CanvasWidth, opts.Layout.CanvasHeight, hudRows)
	frames := &frameQueue{}

	bridge := session.New(canvas, frames, session.Options{
		Layout:  opts.Layout,
		Palette: opts.Palette,
		Store:   opts.Store,
		Logger:  logger,
		Host:    "tui",
	})

	return Model{
		screen: screen,
		canvas: canvas,
		frames: frames,
		bridge: bridge,
		store:  opts.Store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		nudge:  opts.NudgeStep,
	}
}

// Init does nothing: the frame clock starts with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)

	case TickMsg:
		m.frames.ticking = false
		m.frames.flush()
	}

	return m, tea.Batch(cmd, m.frames.schedule(m.config.TickRate))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showBoard {
		updated, cmd := m.board.Update(msg)
		if board, ok := updated.(ScoreboardModel); ok {
			m.board = board
		}
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			m.showBoard = false
		}
		return m, cmd
	}

	m.status = ""
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed"
			m.logger.Warn("cannot save screenshot", "error", err)
		} else {
			m.status = "saved " + filepath.Base(path)
		}

	case core.ActionLeft:
		m.nudgePaddle(-1)

	case core.ActionRight:
		m.nudgePaddle(1)

	case core.ActionStart:
		if err := m.bridge.StartGame(); err != nil {
			m.status = err.Error()
		} else {
			m.screen.Clear()
		}

	case core.ActionClose:
		m.bridge.Close()

	case core.ActionOpen:
		m.bridge.Open()

	case core.ActionScores:
		if m.store != nil && m.bridge.Phase() != session.PhasePlaying {
			m.board = newEmbeddedScoreboard(m.store, m.config.ScreenW, m.config.ScreenH)
			m.showBoard = true
		}
	}

	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.bridge.Close()
	m.quitting = true
	return m, tea.Quit
}

// handleMouse turns mouse motion over the terminal into pointer moves.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	// The terminal has no scroll or gesture default to suppress, so the
	// consumed result is unused.
	m.canvas.dispatch(breakout.InputEvent{
		Kind: breakout.PointerMove,
		Pos:  breakout.Point{X: float64(msg.X), Y: float64(msg.Y)},
	})
}

// nudgePaddle moves the paddle by one nudge step, routed through the same
// input path as the mouse.
func (m Model) nudgePaddle(dir float64) {
	if m.bridge.Phase() != session.PhasePlaying {
		return
	}
	p := m.bridge.Snapshot().Paddle
	center := p.X + p.Width/2 + dir*m.nudge
	m.canvas.dispatch(breakout.InputEvent{
		Kind: breakout.PointerMove,
		Pos:  breakout.Point{X: m.canvas.toDeviceX(center), Y: m.canvas.Bounds().Top},
	})
}

// handleResize processes window resize events. A run in progress keeps going
// at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-hudRows, 1))
	m.help.Width = msg.Width
	if m.showBoard {
		if board, ok := m.board.updateSize(msg); ok {
			m.board = board
		}
	}
	return m
}

// saveScreenshot writes the playfield as plain text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("brickbreaker_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	switch m.bridge.Phase() {
	case session.PhasePlaying:
		return m.hudLine() + "\n" + RenderScreen(m.screen)
	case session.PhaseIntro:
		return m.panel(
			"Move the mouse over the terminal to steer the paddle.\n"+
				"Break bricks for 100 points each. Don't let the ball fall!",
			m.keys.IntroHelp(),
		)
	default:
		body := fmt.Sprintf("Best: %d", m.bridge.Best())
		if m.bridge.Runs() > 0 {
			body = fmt.Sprintf("Last run: %d\n%s", m.bridge.LastScore(), body)
		}
		return m.panel(body, m.keys.HomeHelp())
	}
}

// hudLine renders the score bar above the playfield.
func (m Model) hudLine() string {
	left := hudStyle.Render(fmt.Sprintf(" SCORE %d  BEST %d ", m.bridge.Score(), max(m.bridge.Best(), m.bridge.Score())))
	right := m.help.ShortHelpView(m.keys.PlayHelp())
	if m.status != "" {
		right = statusStyle.Render(m.status)
	}

	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// panel renders a centered box with a title, body and help line.
func (m Model) panel(body string, bindings []key.Binding) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("BRICK BREAKER"),
		"",
		body,
		"",
		m.help.ShortHelpView(bindings),
	)
	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, statusStyle.Render(m.status))
	}
	return lipgloss.Place(
		max(m.config.ScreenW, 1), max(m.config.ScreenH, 1),
		lipgloss.Center, lipgloss.Center,
		panelStyle.Render(content),
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the mouse without a button held
	)

	_, err := p.Run()
	return err
}

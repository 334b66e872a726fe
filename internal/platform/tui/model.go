package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
	"github.com/ImplFerris/pico-rex/internal/games/dino"
)

// Model is the Bubble Tea model running one runner game.
type Model struct {
	game     *dino.Game
	screen   *core.Screen
	button   *HoldButton
	cfg      config.RunnerConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	status   string // Transient message, e.g. a saved screenshot path
	err      error
	quitting bool
}

// NewModel creates a model with a fresh game drawn onto its own screen.
func NewModel(cfg config.RunnerConfig, rng core.Random, logger *log.Logger) Model {
	screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	button := NewHoldButton(HoldWindow(cfg))
	game := dino.NewGame(cfg, screen, button, rng, dino.WithLogger(logger))

	return Model{
		game:   game,
		screen: screen,
		button: button,
		cfg:    cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Game returns the game driven by this model.
func (m Model) Game() *dino.Game {
	return m.game
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Init draws the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Render(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return tickCmd(m.cfg.Timing.Frame)
}

// errMsg carries a fatal game error into Update.
type errMsg struct{ err error }

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Jump):
		m.button.Press()
	}
	return m, nil
}

// handleTick runs one game tick and schedules the next one after the wait
// the game asked for.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.game.Tick()
	if err != nil {
		m.logger.Error("game stopped", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if res.Event == dino.EventReset {
		m.button.Release()
		m.status = ""
	}
	return m, tickCmd(res.Wait)
}

// saveScreenshot writes the presented frame to a text file and returns a
// status line.
func (m Model) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".picorex", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("picorex_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.game.State()))
	b.WriteString("\n")

	status := fmt.Sprintf("score %d  frame %d  %s", m.game.Score(), m.game.Frames(), m.game.State())
	b.WriteString(statusStyle.Render(status))
	if m.status != "" {
		b.WriteString("  " + helpStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.RunnerConfig, rng core.Random, logger *log.Logger) error {
	model := NewModel(cfg, rng, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// ErrorView formats a fatal error for printing after the program exits.
func ErrorView(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

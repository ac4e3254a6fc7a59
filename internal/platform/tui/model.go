// Package tui is the terminal front end: it maps key presses to game inputs
// and draws session snapshots with lipgloss inside a Bubble Tea program.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Options configures the game screen.
type Options struct {
	Mono   bool
	Width  int
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session    *game.Session
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	mono       bool
	width      int
	height     int
	highScore  int64
	quitting   bool
	scoreSaved bool // Whether the finished game has been recorded
}

// NewModel creates a model around an already started session.
// A nil store disables score recording.
func NewModel(session *game.Session, store *storage.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		store:   store,
		logger:  logger.WithPrefix("tui"),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		mono:    opts.Mono,
		width:   opts.Width,
		height:  opts.Height,
	}
	m.loadHighScore()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if in == game.InputNone {
		return m, nil
	}

	m.session.Handle(in)
	if in == game.InputRestart {
		m.scoreSaved = false
		m.loadHighScore()
	}

	ended := m.session.Outcome() != game.InProgress
	m.keys.Restart.SetEnabled(ended)
	if ended && !m.scoreSaved {
		m.saveScore()
	}

	return m, nil
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	snap := m.session.Snapshot()
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Target:  snap.Target,
		Score:   int64(snap.ScoreValue),
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Outcome: snap.Outcome.String(),
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("score not saved", "err", err)
		return
	}
	if int64(snap.ScoreValue) > m.highScore {
		m.highScore = int64(snap.ScoreValue)
	}
}

func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.session.Config().TargetExponent)
	if err != nil {
		m.logger.Warn("high score unavailable", "err", err)
		return
	}
	m.highScore = high
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(RenderStatus(snap, m.highScore))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(snap, m.mono))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	if m.width > 0 {
		return centerBlock(b.String(), m.width)
	}
	return b.String()
}

// Session returns the session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, store *storage.Store, opts Options) error {
	model := NewModel(session, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model hosting one engine.
//
// Bubble Tea delivers key presses and gravity ticks to Update one at a time,
// so every engine command is applied in arrival order with no locking.
type Model struct {
	engine   *tetris.Engine
	state    tetris.State
	palette  Palette
	store    *storage.Store
	recorder *replay.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model

	gen      uint64 // Current gravity schedule; bumped to cancel pending ticks
	runID    string
	saved    bool // Whether the current game is archived
	quitting bool
	back     bool
}

// genSeq hands out gravity schedule ids. Ids are unique across models so a
// tick left over from a finished game can never drive the next one.
var genSeq atomic.Uint64

func nextGen() uint64 {
	return genSeq.Add(1)
}

// NewModel creates a new Bubble Tea model for the given engine.
// store may be nil to play without an archive.
func NewModel(engine *tetris.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		engine:  engine,
		state:   engine.State(),
		palette: PaletteFor(engine.Config()),
		store:   store,
		logger:  log.New(io.Discard),
		config:  cfg,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		gen:     nextGen(),
		runID:   storage.NewRunID(),
	}
}

// WithLogger returns a copy of m that logs game events to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithRecorder returns a copy of m that records every applied command.
func (m Model) WithRecorder(r *replay.Recorder) Model {
	m.recorder = r
	return m
}

// WithBackToMenu enables the back key, used when a menu hosts the game.
func (m Model) WithBackToMenu() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// Init starts the gravity timer.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "run", m.runID, "player", m.config.Player, "seed", m.config.Seed)
	if !m.state.Running {
		return nil
	}
	return tickCmd(m.state.Interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.archive(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.archive(storage.EndQuit)
		m.back = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == tetris.CmdNone {
		return m, nil
	}
	if cmd == tetris.CmdReset {
		m.archive(storage.EndQuit)
	}
	return m.apply(cmd)
}

// handleTick applies a gravity step if the tick belongs to the current schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	m, next := m.apply(tetris.CmdSoftDrop)
	if next == nil && m.state.Running {
		next = tickCmd(m.state.Interval, m.gen)
	}
	return m, next
}

// apply feeds one command to the engine and returns a new gravity schedule
// when the running flag or the interval changed.
func (m Model) apply(cmd tetris.Command) (Model, tea.Cmd) {
	prev := m.state
	m.state = m.engine.Apply(cmd)
	m.recorder.Record(cmd)

	if cmd == tetris.CmdReset {
		m.runID = storage.NewRunID()
		m.saved = false
		m.logger.Info("game reset", "run", m.runID)
	}

	if a := m.state.Active; a != nil && prev.Active == nil {
		if t, ok := m.engine.Template(a.ID); ok {
			m.logger.Debug("piece spawned", "piece", t.Name)
		}
	}
	if m.state.Lines != prev.Lines && cmd != tetris.CmdReset {
		m.logger.Debug("rows cleared", "rows", m.state.LastCleared, "score", m.state.Score, "level", m.state.Level)
	}
	if m.state.Level != prev.Level && cmd != tetris.CmdReset {
		m.logger.Info("level up", "level", m.state.Level, "interval", m.state.Interval)
	}
	if m.state.Ended() && !prev.Ended() {
		m.logger.Info("game over", "run", m.runID, "score", m.state.Score, "lines", m.state.Lines)
		m.archive(storage.EndTopOut)
	}

	switch {
	case !m.state.Running:
		if prev.Running {
			m.gen = nextGen() // Stop the pending tick
		}
		return m, nil
	case !prev.Running || m.state.Interval != prev.Interval:
		m.gen = nextGen()
		return m, tickCmd(m.state.Interval, m.gen)
	}
	return m, nil
}

// archive saves the current game once. Games that never scored are only
// archived when they ended by topping out.
func (m *Model) archive(reason string) {
	if m.saved || m.store == nil {
		return
	}
	if m.state.Score == 0 && reason != storage.EndTopOut {
		return
	}
	m.saved = true

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:      m.runID,
		Player:     m.config.Player,
		Score:      m.state.Score,
		Level:      m.state.Level,
		Lines:      m.state.Lines,
		Seed:       m.config.Seed,
		Randomizer: m.config.Randomizer,
		EndReason:  reason,
	})
	if err != nil {
		m.logger.Error("could not archive game", "run", m.runID, "error", err)
		return
	}
	m.logger.Debug("game archived", "run", m.runID, "reason", reason)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawGame(m.screen, m.state, m.palette)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the last engine snapshot.
func (m Model) State() tetris.State {
	return m.state
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game for the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with a model for engine and returns
// the final engine state.
func Run(engine *tetris.Engine, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, rec *replay.Recorder) (tetris.State, error) {
	model := NewModel(engine, store, cfg).WithLogger(logger).WithRecorder(rec)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return engine.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return engine.State(), nil
}

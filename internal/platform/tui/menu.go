package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Menu rows, top to bottom.
const (
	menuRowStart = iota
	menuRowDifficulty
	menuRowRandomizer
	menuRowScores
	menuRowQuit
	menuRowCount
)

// MenuSelection is what the player picked before starting a game.
type MenuSelection struct {
	Difficulty config.DifficultyPreset
	Randomizer string
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	presets        []config.DifficultyPreset
	randomizers    []registry.Info
	presetIdx      int
	randIdx        int
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuSelection // Set when user starts a game
	openScoreboard bool
}

// NewMenuModel creates a new menu model preselecting def.
func NewMenuModel(cfg core.RuntimeConfig, def MenuSelection) MenuModel {
	m := MenuModel{
		presets:     config.Presets(),
		randomizers: registry.List(),
		presetIdx:   1, // normal
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
	}
	for i, p := range m.presets {
		if p == def.Difficulty {
			m.presetIdx = i
		}
	}
	for i, r := range m.randomizers {
		if r.Name == def.Randomizer {
			m.randIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionSelect:
		switch m.cursor {
		case menuRowStart:
			sel := m.Selection()
			m.selected = &sel
		case menuRowScores:
			m.openScoreboard = true
		case menuRowQuit:
			m.quitting = true
		default:
			m.cycle(1)
		}
	}

	return m, nil
}

// cycle moves the option under the cursor by delta, wrapping around.
func (m *MenuModel) cycle(delta int) {
	wrap := func(i, n int) int {
		if n == 0 {
			return 0
		}
		return ((i+delta)%n + n) % n
	}
	switch m.cursor {
	case menuRowDifficulty:
		m.presetIdx = wrap(m.presetIdx, len(m.presets))
	case menuRowRandomizer:
		m.randIdx = wrap(m.randIdx, len(m.randomizers))
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T E T R I S", m.width)))
	b.WriteString("\n\n")

	sel := m.Selection()
	rows := [menuRowCount]string{
		menuRowStart:      "Start game",
		menuRowDifficulty: fmt.Sprintf("Difficulty  < %s >", sel.Difficulty),
		menuRowRandomizer: fmt.Sprintf("Pieces      < %s >", m.randomizerTitle()),
		menuRowScores:     "High scores",
		menuRowQuit:       "Quit",
	}
	for i, row := range rows {
		line := "  " + row
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + row
			style = activeStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) randomizerTitle() string {
	if len(m.randomizers) == 0 {
		return "-"
	}
	return m.randomizers[m.randIdx].Title
}

// Selection returns the options currently shown.
func (m MenuModel) Selection() MenuSelection {
	sel := MenuSelection{Difficulty: config.DifficultyNormal}
	if len(m.presets) > 0 {
		sel.Difficulty = m.presets[m.presetIdx]
	}
	if len(m.randomizers) > 0 {
		sel.Randomizer = m.randomizers[m.randIdx].Name
	}
	return sel
}

// Selected returns the selection if the user started a game, or nil.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

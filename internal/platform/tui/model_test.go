package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/randomizer"
	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Player = "tester"
	cfg.Seed = 7
	return cfg
}

// tinyConfig is a 4x2 board with only the square piece: the first piece
// lands on the floor and the second cannot spawn.
func tinyConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Width, cfg.Height = 4, 2
	cfg.Templates = []tetris.Template{
		{ID: 1, Name: "O", Color: core.ColorYellow, Shape: tetris.Shape{{1, 1}, {1, 1}}},
	}
	return cfg
}

// barConfig is a 4x4 board with only the bar piece and a level every 100
// points, so one cleared row levels up.
func barConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.LevelThreshold = 100
	cfg.Templates = []tetris.Template{
		{ID: 1, Name: "I", Color: core.ColorCyan, Shape: tetris.Shape{
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
	}
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelInitSchedulesGravity(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())
	if m.Init() == nil {
		t.Fatal("Init should schedule a gravity tick")
	}
}

func TestModelTickSpawnsPiece(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())

	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	if m.State().Active == nil {
		t.Fatal("tick should spawn a piece")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelIgnoresStaleTick(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())

	m, cmd := update(t, m, TickMsg{Gen: m.gen + 1000})
	if m.State().Active != nil {
		t.Error("stale tick must not move the game")
	}
	if cmd != nil {
		t.Error("stale tick must not schedule another")
	}
}

func TestModelPauseCancelsGravity(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())
	oldGen := m.gen

	m, cmd := update(t, m, runeKey("p"))
	if m.State().Running {
		t.Fatal("p should pause")
	}
	if cmd != nil {
		t.Error("pausing should not schedule a tick")
	}
	if m.gen == oldGen {
		t.Error("pausing should start a new schedule")
	}

	m, _ = update(t, m, TickMsg{Gen: oldGen})
	if m.State().Active != nil {
		t.Error("tick from before the pause must be dropped")
	}

	pausedGen := m.gen
	m, cmd = update(t, m, runeKey("p"))
	if !m.State().Running {
		t.Fatal("p should resume")
	}
	if cmd == nil {
		t.Error("resuming should schedule a tick")
	}
	if m.gen == pausedGen {
		t.Error("resuming should start a new schedule")
	}
}

func TestModelMovesActivePiece(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Active.Position.X; got != 2 {
		t.Errorf("after left X = %d, want 2", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.State().Active.Position.Y; got != 19 {
		t.Errorf("after hard drop Y = %d, want 19", got)
	}
}

func TestModelArchivesTopOut(t *testing.T) {
	store := openTestStore(t)
	e, err := tetris.New(tinyConfig(), randomizer.NewSequence(0))
	if err != nil {
		t.Fatalf("tetris.New: %v", err)
	}
	m := NewModel(e, store, testRuntime())

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, TickMsg{Gen: m.gen})
	}
	if !m.State().Ended() {
		t.Fatalf("phase = %s, want ended", m.State().Phase)
	}
	if cmd != nil {
		t.Error("ended game should not schedule ticks")
	}

	entries, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("archived %d games, want 1", len(entries))
	}
	got := entries[0]
	if got.EndReason != storage.EndTopOut {
		t.Errorf("end reason = %q, want %q", got.EndReason, storage.EndTopOut)
	}
	if got.Player != "tester" || got.Seed != 7 {
		t.Errorf("entry = %+v, want player tester seed 7", got)
	}

	// Quitting after the archive does not save the game twice.
	_, _ = update(t, m, runeKey("q"))
	if entries, _ := store.AllScores(); len(entries) != 1 {
		t.Errorf("archived %d games after quit, want 1", len(entries))
	}
}

func TestModelQuitSkipsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(newBarEngine(t), store, testRuntime())

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}

	if entries, _ := store.AllScores(); len(entries) != 0 {
		t.Errorf("archived %d games, want 0", len(entries))
	}
}

func TestModelResetStartsNewRun(t *testing.T) {
	store := openTestStore(t)
	e, err := tetris.New(tinyConfig(), randomizer.NewSequence(0))
	if err != nil {
		t.Fatalf("tetris.New: %v", err)
	}
	m := NewModel(e, store, testRuntime())
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.gen})
	}
	firstRun := m.runID

	m, cmd := update(t, m, runeKey("r"))
	if !m.State().Running || m.State().Ended() {
		t.Fatal("r should start a new game")
	}
	if cmd == nil {
		t.Error("new game should schedule gravity")
	}
	if m.runID == firstRun {
		t.Error("new game should get a new run id")
	}
	if m.saved {
		t.Error("new game should not be marked archived")
	}
}

func TestModelRecordsCommands(t *testing.T) {
	rec := replay.NewRecorder(7, randomizer.NameUniform)
	m := NewModel(newBarEngine(t), nil, testRuntime()).WithRecorder(rec)

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg{Gen: m.gen + 1000}) // stale, not recorded
	_, _ = update(t, m, runeKey("x"))               // unbound, not recorded

	got := rec.Script().Commands
	want := []tetris.Command{tetris.CmdSoftDrop, tetris.CmdRight}
	if len(got) != len(want) {
		t.Fatalf("recorded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc should do nothing without a menu")
	}

	m = m.WithBackToMenu()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should leave for the menu")
	}
}

func TestModelViewShowsBoard(t *testing.T) {
	m := NewModel(newBarEngine(t), nil, testRuntime())
	if m.View() == "" {
		t.Error("View should render the board")
	}
}

func TestModelReschedulesOnLevelUp(t *testing.T) {
	e, err := tetris.New(barConfig(), randomizer.NewSequence(0))
	if err != nil {
		t.Fatalf("tetris.New: %v", err)
	}
	m := NewModel(e, nil, testRuntime())

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Error("hard drop should not reschedule gravity")
	}
	oldGen := m.gen

	m, cmd = update(t, m, TickMsg{Gen: oldGen})
	s := m.State()
	if s.Level != 2 || s.LastCleared != 1 {
		t.Fatalf("level = %d, cleared = %d, want level 2 after one row", s.Level, s.LastCleared)
	}
	if s.Interval != 800*time.Millisecond {
		t.Errorf("interval = %s, want 800ms", s.Interval)
	}
	if m.gen == oldGen {
		t.Error("level up should start a new schedule")
	}
	if cmd == nil {
		t.Error("level up should schedule a tick at the new interval")
	}

	m, cmd = update(t, m, TickMsg{Gen: oldGen})
	if m.State().Active != nil || cmd != nil {
		t.Error("tick from the old interval must be dropped")
	}

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Active == nil {
		t.Error("tick from the new schedule should spawn")
	}
}

func TestModelLogsSpawnedPiece(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m := NewModel(newBarEngine(t), nil, testRuntime()).WithLogger(logger)

	_, _ = update(t, m, TickMsg{Gen: m.gen})
	if !strings.Contains(buf.String(), "piece=I") {
		t.Errorf("log = %q, want spawned piece name", buf.String())
	}
}

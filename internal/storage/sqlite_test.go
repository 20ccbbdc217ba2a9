package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{Score: 300}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(ScoreEntry{Player: "local", Score: score, EndReason: EndTopOut}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	for _, e := range scores {
		if e.RunID == "" {
			t.Error("Expected a run ID to be assigned")
		}
		if e.Level != 1 {
			t.Errorf("Expected default level 1, got %d", e.Level)
		}
		if e.EndReason != EndTopOut {
			t.Errorf("Expected end reason %q, got %q", EndTopOut, e.EndReason)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore(ScoreEntry{Score: i * 100}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 1900 {
		t.Errorf("Expected top score 1900, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}

	all, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	store.SaveScore(ScoreEntry{Score: 400})
	store.SaveScore(ScoreEntry{Score: 1600})
	store.SaveScore(ScoreEntry{Score: 900})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1600 {
		t.Errorf("Expected high score 1600, got %d", high)
	}
}

func TestStoreScoreByRunID(t *testing.T) {
	store := openTestStore(t)

	entry := ScoreEntry{
		RunID:      NewRunID(),
		Player:     "alice",
		Score:      1200,
		Level:      2,
		Lines:      6,
		Seed:       42,
		Randomizer: "bag",
		EndReason:  EndQuit,
	}
	if _, err := store.SaveScore(entry); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	got, err := store.ScoreByRunID(entry.RunID)
	if err != nil {
		t.Fatalf("ScoreByRunID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected entry, got nil")
	}
	if got.Player != "alice" || got.Score != 1200 || got.Level != 2 || got.Lines != 6 ||
		got.Seed != 42 || got.Randomizer != "bag" || got.EndReason != EndQuit {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	missing, err := store.ScoreByRunID("no-such-run")
	if err != nil {
		t.Fatalf("ScoreByRunID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	id := NewRunID()
	if _, err := store.SaveScore(ScoreEntry{RunID: id, Score: 1}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{RunID: id, Score: 2}); err == nil {
		t.Error("Expected error saving a duplicate run ID")
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Player: "alice", Score: 100})
	store.SaveScore(ScoreEntry{Player: "bob", Score: 900})
	store.SaveScore(ScoreEntry{Player: "alice", Score: 300})

	scores, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for alice, got %d", len(scores))
	}
	if scores[0].Score != 300 {
		t.Errorf("Expected alice's best to be 300, got %d", scores[0].Score)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Score: 100})
	store.SaveScore(ScoreEntry{Score: 200})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore(ScoreEntry{Score: 100, Level: 1, Lines: 1})
	store.SaveScore(ScoreEntry{Score: 1300, Level: 2, Lines: 7})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 1300 {
		t.Errorf("HighScore = %d, want 1300", stats.HighScore)
	}
	if stats.AvgScore != 700 {
		t.Errorf("AvgScore = %v, want 700", stats.AvgScore)
	}
	if stats.TotalScore != 1400 {
		t.Errorf("TotalScore = %d, want 1400", stats.TotalScore)
	}
	if stats.TotalLines != 8 {
		t.Errorf("TotalLines = %d, want 8", stats.TotalLines)
	}
	if stats.BestLevel != 2 {
		t.Errorf("BestLevel = %d, want 2", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

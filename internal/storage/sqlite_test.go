package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	scores := []int{10, 25, 5, 42, 17}
	for _, score := range scores {
		if _, err := store.SaveScore("flappy", "ada", score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	entries, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(entries) != len(scores) {
		t.Fatalf("got %d entries, want %d", len(entries), len(scores))
	}

	// Ordered by score descending
	want := []int{42, 25, 17, 10, 5}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, want[i])
		}
		if e.GameID != "flappy" {
			t.Errorf("entry %d game = %q, want flappy", i, e.GameID)
		}
		if e.Player != "ada" {
			t.Errorf("entry %d player = %q, want ada", i, e.Player)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d has zero timestamp", i)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("flappy", "", i); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores("flappy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries, want 5", len(entries))
	}
	if entries[0].Score != 19 {
		t.Errorf("top score = %d, want 19", entries[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SaveScore("flappy", "", 7)
	store.SaveScore("flappy", "", 31)
	store.SaveScore("flappy", "", 12)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("high score = %d, want 31", high)
	}
}

func TestPlayerHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pixel", "ada", 9)
	store.SaveScore("pixel", "ada", 14)
	store.SaveScore("pixel", "grace", 30)
	store.SaveScore("flappy", "ada", 99)

	high, err := store.PlayerHighScore("pixel", "ada")
	if err != nil {
		t.Fatalf("PlayerHighScore() failed: %v", err)
	}
	if high != 14 {
		t.Errorf("ada's pixel high score = %d, want 14", high)
	}

	// Unknown player has no scores
	high, err = store.PlayerHighScore("pixel", "linus")
	if err != nil {
		t.Fatalf("PlayerHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("unknown player high score = %d, want 0", high)
	}
}

func TestScoresIsolatedPerGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "", 10)
	store.SaveScore("pixel", "", 20)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.AllScores("flappy")
	if len(flappyScores) != 0 {
		t.Errorf("flappy scores after clear = %d, want 0", len(flappyScores))
	}

	pixelScores, _ := store.AllScores("pixel")
	if len(pixelScores) != 1 {
		t.Errorf("pixel scores after clearing flappy = %d, want 1", len(pixelScores))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "ada", 10)
	store.SaveScore("flappy", "grace", 20)
	store.SaveScore("flappy", "", 30)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("high score = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("avg score = %f, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("total score = %d, want 60", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}

func TestGetAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "", 5)
	store.SaveScore("pixel", "ada", 8)
	store.SaveScore("pixel", "ada", 3)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("stats for %d games, want 2", len(stats))
	}
	if stats["pixel"].GamesCount != 2 || stats["pixel"].HighScore != 8 {
		t.Errorf("pixel stats = %+v", stats["pixel"])
	}
	if stats["flappy"].GamesCount != 1 {
		t.Errorf("flappy stats = %+v", stats["flappy"])
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("flappy", "", 1); err != nil {
		t.Errorf("SaveScore after nested create failed: %v", err)
	}
}

package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const testKey = "flappy-bird.max-score"

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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"scores.db", "scores.db"},
		{"~/.flappy/scores.db", filepath.Join(home, ".flappy", "scores.db")},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreMaxScore(t *testing.T) {
	store := openTestStore(t)

	if got := store.MaxScore(testKey); got != 0 {
		t.Errorf("MaxScore() on empty store = %d, expected 0", got)
	}

	if err := store.SetMaxScore(testKey, 12); err != nil {
		t.Fatalf("SetMaxScore() failed: %v", err)
	}
	if err := store.SetMaxScore(testKey, 15); err != nil {
		t.Fatalf("SetMaxScore() failed: %v", err)
	}
	if got := store.MaxScore(testKey); got != 15 {
		t.Errorf("MaxScore() = %d, expected 15", got)
	}
	if got := store.MaxScore("other"); got != 0 {
		t.Errorf("MaxScore() for another key = %d, expected 0", got)
	}
}

func TestStoreSetMaxScoreNeverLowers(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		set    int
		want   int
	}{
		{"higher replaces", "10", 12, 12},
		{"lower kept", "10", 6, 10},
		{"equal kept", "10", 10, 10},
		{"padded lower kept", " 10 ", 9, 10},
		{"text replaced", "lots", 4, 4},
		{"float replaced", "30.5", 4, 4},
		{"negative replaced", "-4", 1, 1},
		{"empty replaced", "", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", testKey, tt.stored); err != nil {
				t.Fatalf("insert failed: %v", err)
			}
			if err := store.SetMaxScore(testKey, tt.set); err != nil {
				t.Fatalf("SetMaxScore() failed: %v", err)
			}
			if got := store.MaxScore(testKey); got != tt.want {
				t.Errorf("MaxScore() after SetMaxScore(%d) over %q = %d, expected %d", tt.set, tt.stored, got, tt.want)
			}
		})
	}
}

func TestStoreMaxScoreMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"number", "42", 42},
		{"padded", " 7 ", 7},
		{"text", "lots", 0},
		{"float", "3.5", 0},
		{"negative", "-4", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", testKey, tt.raw); err != nil {
				t.Fatalf("insert failed: %v", err)
			}
			if got := store.MaxScore(testKey); got != tt.want {
				t.Errorf("MaxScore() with %q = %d, expected %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", "alice", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, s.Score, want[i])
		}
		if s.Player != "alice" || s.GameID != "flappy" {
			t.Errorf("scores[%d] = %+v", i, s)
		}
		if s.CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flappy", "", 100)
	store.SaveScore("flappy", "", 300)
	store.SaveScore("flappy", "", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "", 100)
	store.SaveScore("flappy", "", 200)
	store.SaveScore("other", "", 300)
	store.SetMaxScore(testKey, 200)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("flappy", 10); len(scores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other scores should not be affected by clearing flappy")
	}
	if got := store.MaxScore(testKey); got != 200 {
		t.Errorf("ClearScores should keep the max score, got %d", got)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("flappy", "", 2)
	store.SaveScore("flappy", "", 4)

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalScore != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, testKey, "flappy", "carol", log.New(io.Discard))

	rec.OnNewRecord(3)
	rec.OnGameOver(flappy.Result{Score: 3, MaxScore: 3, NewRecord: true})
	rec.OnGameOver(flappy.Result{Score: 0, MaxScore: 3})

	if got := store.MaxScore(testKey); got != 3 {
		t.Errorf("MaxScore() = %d, expected 3", got)
	}
	scores, err := store.AllScores("flappy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Player != "carol" {
		t.Errorf("scores = %+v, expected one round of 3 by carol", scores)
	}
}

func TestRecordersShareMaxScore(t *testing.T) {
	store := openTestStore(t)
	bob := NewRecorder(store, testKey, "flappy", "bob", log.New(io.Discard))
	alice := NewRecorder(store, testKey, "flappy", "alice", log.New(io.Discard))

	// Both sessions started from an empty store; bob sets the record first.
	bob.OnNewRecord(10)
	alice.OnNewRecord(6)

	if got := store.MaxScore(testKey); got != 10 {
		t.Errorf("MaxScore() = %d, expected 10 after a lower session record", got)
	}

	alice.OnNewRecord(11)
	if got := store.MaxScore(testKey); got != 11 {
		t.Errorf("MaxScore() = %d, expected 11", got)
	}
}

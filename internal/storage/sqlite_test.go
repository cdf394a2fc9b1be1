package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreReopenKeepsBest(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBestScore("alice", 12); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("alice")
	if err != nil || best != 12 {
		t.Errorf("BestScore() = (%d, %v), expected (12, nil)", best, err)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("bob")
	if err != nil || best != 0 {
		t.Fatalf("missing best should be 0, got (%d, %v)", best, err)
	}

	steps := []struct {
		write int
		want  int
	}{
		{5, 5},
		{3, 5},
		{5, 5},
		{9, 9},
		{0, 9},
	}
	for i, step := range steps {
		if err := store.SetBestScore("bob", step.write); err != nil {
			t.Fatalf("step %d: SetBestScore() failed: %v", i, err)
		}
		got, err := store.BestScore("bob")
		if err != nil {
			t.Fatalf("step %d: BestScore() failed: %v", i, err)
		}
		if got != step.want {
			t.Errorf("step %d: best = %d, expected %d", i, got, step.want)
		}
	}

	// Other players are independent
	if got, _ := store.BestScore("carol"); got != 0 {
		t.Errorf("carol best = %d, expected 0", got)
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "alice", Score: 10, Reason: "obstacle", Duration: 12500 * time.Millisecond},
		{Player: "alice", Score: 3, Reason: "boundary", Duration: 4 * time.Second},
		{Player: "bob", Score: 25, Reason: "obstacle", Duration: 30 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 25 || top[0].Player != "bob" || top[1].Score != 10 || top[2].Score != 3 {
		t.Errorf("runs not sorted by score: %+v", top)
	}
	if top[1].Duration != 12500*time.Millisecond || top[1].Reason != "obstacle" {
		t.Errorf("run fields not round-tripped: %+v", top[1])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	recent, err := store.RecentRuns("alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 10 {
		t.Errorf("recent runs should be newest first: %+v", recent)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Player: "p", Score: (i + 1) * 100}) //nolint:errcheck
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns(0)
	if err != nil || len(runs) != 5 {
		t.Errorf("TopRuns(0) = %d runs, %v", len(runs), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 without runs, got %d", high)
	}

	store.SaveRun(Run{Player: "alice", Score: 100}) //nolint:errcheck
	store.SaveRun(Run{Player: "alice", Score: 300}) //nolint:errcheck
	store.SaveRun(Run{Player: "bob", Score: 900})   //nolint:errcheck

	high, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Score: 100}) //nolint:errcheck
	store.SetBestScore("alice", 100)                //nolint:errcheck
	store.SaveRun(Run{Player: "bob", Score: 300})   //nolint:errcheck
	store.SetBestScore("bob", 300)                  //nolint:errcheck

	if err := store.ClearRuns("alice"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.RecentRuns("alice", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if best, _ := store.BestScore("alice"); best != 0 {
		t.Errorf("Expected best 0 after clear, got %d", best)
	}
	if best, _ := store.BestScore("bob"); best != 300 {
		t.Error("bob should not be affected by clearing alice")
	}
}

func TestGetPlayerStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetPlayerStats("alice")
	if err != nil {
		t.Fatalf("GetPlayerStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats expected, got %+v", stats)
	}

	for _, score := range []int{2, 4, 9} {
		store.SaveRun(Run{Player: "alice", Score: score}) //nolint:errcheck
	}
	store.SetBestScore("alice", 9) //nolint:errcheck

	stats, err = store.GetPlayerStats("alice")
	if err != nil {
		t.Fatalf("GetPlayerStats() failed: %v", err)
	}
	if stats.RunsCount != 3 || stats.Best != 9 || stats.TotalScore != 15 || stats.AvgScore != 5 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestBestStoreAdapter(t *testing.T) {
	store := openTestStore(t)

	bs := store.ForPlayer("")
	if bs.Player() != DefaultPlayer {
		t.Errorf("Player() = %q, expected %q", bs.Player(), DefaultPlayer)
	}

	if best, err := bs.ReadBest(); err != nil || best != 0 {
		t.Fatalf("ReadBest() = (%d, %v)", best, err)
	}
	if err := bs.WriteBest(7); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}
	if best, _ := bs.ReadBest(); best != 7 {
		t.Errorf("ReadBest() = %d, expected 7", best)
	}

	if err := bs.SaveRun(7, "obstacle", 3*time.Second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, _ := store.RecentRuns(DefaultPlayer, 1)
	if len(runs) != 1 || runs[0].Score != 7 {
		t.Errorf("run not saved for default player: %+v", runs)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

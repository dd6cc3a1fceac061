package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	records := []EpisodeRecord{
		{Seed: 7, Steps: 42, Reward: 42, Cause: "angle", Policy: "random"},
		{Seed: 7, Steps: 180, Reward: 180, Cause: "position", Policy: "right"},
		{Seed: 9, Steps: 95, Reward: 95, Cause: "angle", Policy: "random"},
	}
	for _, rec := range records {
		if _, err := store.SaveEpisode(rec); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	longest, err := store.LongestEpisodes(10)
	if err != nil {
		t.Fatalf("LongestEpisodes() failed: %v", err)
	}
	if len(longest) != 3 {
		t.Fatalf("Expected 3 episodes, got %d", len(longest))
	}
	if longest[0].Steps != 180 || longest[1].Steps != 95 || longest[2].Steps != 42 {
		t.Errorf("episodes not sorted by steps desc: %d, %d, %d",
			longest[0].Steps, longest[1].Steps, longest[2].Steps)
	}

	bySeed, err := store.EpisodesBySeed(7)
	if err != nil {
		t.Fatalf("EpisodesBySeed() failed: %v", err)
	}
	if len(bySeed) != 2 {
		t.Errorf("Expected 2 episodes for seed 7, got %d", len(bySeed))
	}

	best, err := store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if best != 180 {
		t.Errorf("LongestRun() = %d, want 180", best)
	}
}

func TestStoreLimits(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		rec := EpisodeRecord{Seed: int32(i), Steps: 10 * (i + 1), Reward: float64(10 * (i + 1)), Cause: "angle", Policy: "random"}
		if _, err := store.SaveEpisode(rec); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	got, err := store.LongestEpisodes(3)
	if err != nil {
		t.Fatalf("LongestEpisodes() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 episodes with limit 3, got %d", len(got))
	}

	recent, err := store.RecentEpisodes(2)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 recent episodes, got %d", len(recent))
	}
	if recent[0].Steps != 50 {
		t.Errorf("most recent episode steps = %d, want 50", recent[0].Steps)
	}
}

func TestStoreEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("LongestRun() on empty store = %d, want 0", best)
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveSeason("farm", s, nil); err != nil {
			t.Fatalf("SaveSeason() failed: %v", err)
		}
	}
	if _, err := store.SaveSeason("farm_sandbox", 500, nil); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}

	scores, err := store.TopScores("farm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}

	sandbox, err := store.TopScores("farm_sandbox", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(sandbox) != 1 {
		t.Errorf("Expected 1 sandbox score, got %d", len(sandbox))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveSeason("farm", (i+1)*100, nil)
	}

	scores, err := store.TopScores("farm", 3)
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

	high, err := store.HighScore("farm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveSeason("farm", 100, nil)
	store.SaveSeason("farm", 300, nil)
	store.SaveSeason("farm", 200, nil)

	high, err = store.HighScore("farm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveSeasonWithHarvests(t *testing.T) {
	store := openTestStore(t)

	harvests := []core.Harvest{
		{Crop: "Carrot", Points: 15},
		{Crop: "Wheat", Points: 10},
		{Crop: "Carrot", Points: 15},
	}
	if _, err := store.SaveSeason("farm", 40, harvests); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}

	got, err := store.Harvests("farm", 0)
	if err != nil {
		t.Fatalf("Harvests() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 harvests, got %d", len(got))
	}
	if got[0].Crop != "Carrot" || got[1].Crop != "Wheat" {
		t.Errorf("Harvests should be newest first: %v", got)
	}

	limited, _ := store.Harvests("farm", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 harvests with limit, got %d", len(limited))
	}

	totals, err := store.CropTotals("farm")
	if err != nil {
		t.Fatalf("CropTotals() failed: %v", err)
	}
	want := []CropTotal{{Crop: "Carrot", Count: 2, Points: 30}, {Crop: "Wheat", Count: 1, Points: 10}}
	if len(totals) != len(want) {
		t.Fatalf("totals = %v", totals)
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, expected %+v", i, totals[i], want[i])
		}
	}
}

func TestStoreHarvestsScopedToGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSeason("farm_sandbox", 50, []core.Harvest{{Crop: "Tree", Points: 50}}); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}
	got, _ := store.Harvests("farm_sandbox", 10)
	if len(got) != 1 || got[0].Points != 50 {
		t.Errorf("harvests = %v", got)
	}
	if other, _ := store.Harvests("farm", 10); len(other) != 0 {
		t.Error("harvests must be scoped to their game")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSeason("farm", 100, []core.Harvest{{Crop: "Carrot", Points: 15}})
	store.SaveSeason("farm", 200, nil)
	store.SaveSeason("farm_sandbox", 300, []core.Harvest{{Crop: "Wheat", Points: 10}})

	if err := store.ClearScores("farm"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("farm", 10); len(scores) != 0 {
		t.Errorf("Expected 0 farm scores after clear, got %d", len(scores))
	}
	if h, _ := store.Harvests("farm", 0); len(h) != 0 {
		t.Errorf("Expected 0 farm harvests after clear, got %d", len(h))
	}
	if scores, _ := store.TopScores("farm_sandbox", 10); len(scores) != 1 {
		t.Error("Sandbox scores should not be affected by clearing farm")
	}
	if h, _ := store.Harvests("farm_sandbox", 0); len(h) != 1 {
		t.Error("Sandbox harvests should not be affected by clearing farm")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveSeason("farm", i*10, nil)
	}

	scores, err := store.AllScores("farm")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("farm")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveSeason("farm", 100, []core.Harvest{{Crop: "Carrot", Points: 15}, {Crop: "Wheat", Points: 10}})
	store.SaveSeason("farm", 300, nil)

	stats, err := store.GetGameStats("farm")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Harvests != 2 {
		t.Errorf("harvests = %d, expected 2", stats.Harvests)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["farm"].Harvests != 2 {
		t.Errorf("all stats = %v", all)
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

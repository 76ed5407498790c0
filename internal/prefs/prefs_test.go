package prefs

import (
	"reflect"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if m.Int("HighScore", 7) != 7 {
		t.Error("missing key should return the default")
	}

	m.SetInt("HighScore", 120)
	m.SetString("UnlockedAchievements", "First Harvest,")
	m.SetString("Broken", "abc")

	if got := m.Int("HighScore", 0); got != 120 {
		t.Errorf("Int(HighScore) = %d, expected 120", got)
	}
	if got := m.String("UnlockedAchievements", ""); got != "First Harvest," {
		t.Errorf("String() = %q", got)
	}
	if got := m.Int("Broken", -1); got != -1 {
		t.Errorf("non-numeric value should fall back to the default, got %d", got)
	}

	expected := []string{"Broken", "HighScore", "UnlockedAchievements"}
	if !reflect.DeepEqual(m.Keys(), expected) {
		t.Errorf("Keys() = %v, expected %v", m.Keys(), expected)
	}

	m.Delete("Broken")
	if m.Has("Broken") {
		t.Error("Delete should remove the key")
	}
}

func TestGDataWithoutManager(t *testing.T) {
	s, err := NewGData(nil, nil)
	if err != nil {
		t.Fatalf("NewGData: %v", err)
	}
	s.SetInt("TotalPlants", 3)
	if err := s.Save(); err != nil {
		t.Errorf("Save without manager should not fail: %v", err)
	}
	if s.Int("TotalPlants", 0) != 3 {
		t.Error("values should still be readable in memory")
	}
}

func TestGDataPersists(t *testing.T) {
	manager, err := gdata.Open(gdata.Config{AppName: "tui_farm_prefs_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}

	first, err := NewGData(manager, nil)
	if err != nil {
		t.Fatalf("NewGData: %v", err)
	}
	first.SetInt("TotalScore", 345)
	first.SetString("FoodType_Carrot", "4")
	if err := first.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewGData(manager, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := second.Int("TotalScore", 0); got != 345 {
		t.Errorf("TotalScore after reload = %d, expected 345", got)
	}
	if got := second.Int("FoodType_Carrot", 0); got != 4 {
		t.Errorf("FoodType_Carrot after reload = %d, expected 4", got)
	}

	// Leave an empty map behind for the next run.
	for _, k := range second.Keys() {
		second.Delete(k)
	}
	_ = second.Save()
}

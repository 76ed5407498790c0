package farm

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/prefs"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

func newTestGame(t *testing.T, mode Mode, cfg config.FarmConfig) *Game {
	t.Helper()
	g := NewWithConfig(mode, cfg, registry.Options{Prefs: prefs.NewMemory()})
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24, TickRate: 30})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// run steps the game n ticks without input and returns every harvest reported.
func run(g *Game, n int) []core.Harvest {
	var out []core.Harvest
	for range n {
		out = append(out, g.Step(core.NewInputFrame()).Harvests...)
	}
	return out
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	g1 := newTestGame(t, ModeSeason, cfg)
	g2 := newTestGame(t, ModeSeason, cfg)

	script := map[int][]core.Action{
		5:   {core.ActionLeft},
		10:  {core.ActionConfirm},
		11:  {core.ActionSlot1},
		200: {core.ActionRight},
		201: {core.ActionRight},
		202: {core.ActionPlant},
		400: {core.ActionSlot4},
		401: {core.ActionUp},
		402: {core.ActionPlant},
		600: {core.ActionWater},
	}

	for i := range 3000 {
		in := press(script[i]...)
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Plants != 3 {
		t.Errorf("expected 3 plantings, got %d", s1.Plants)
	}
	if s1.Items == 0 {
		t.Error("pickups should have spawned after 100s")
	}
}

func TestPlantAndHarvestThroughInput(t *testing.T) {
	g := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	cell := g.SelectedCell()

	g.Step(press(core.ActionConfirm))
	if g.Overlay() != OverlaySeeds {
		t.Fatal("clicking a free cell should open seed selection")
	}
	g.Step(press(core.ActionSlot1))
	if g.Overlay() != OverlayNone {
		t.Fatal("choosing a seed should close the menu")
	}

	run(g, 60)
	if !cell.IsPlanted() || cell.Food().Crop().Name != "Carrot" {
		t.Fatal("carrot should be planted after the plant action")
	}
	if g.Stats().Plants() != 1 {
		t.Errorf("plants = %d, expected 1", g.Stats().Plants())
	}

	g.Step(press(core.ActionConfirm))
	if g.Message() != "Not ready for harvest yet!" {
		t.Errorf("message = %q", g.Message())
	}

	cell.Food().ForceCompleteGrowth()
	g.Step(press(core.ActionConfirm))
	harvests := run(g, 60)

	if len(harvests) != 1 || harvests[0] != (core.Harvest{Crop: "Carrot", Points: 15}) {
		t.Fatalf("harvests = %v", harvests)
	}
	if g.State().Score != 15 {
		t.Errorf("score = %d, expected 15", g.State().Score)
	}
	if !cell.IsFree() {
		t.Error("cell should be free after harvest")
	}
	if g.Inventory().Count("Carrot") != 1 {
		t.Error("harvesting a carrot should yield a Carrot item")
	}
}

func TestSeedMenuFreezesWorld(t *testing.T) {
	g := newTestGame(t, ModeSeason, config.DefaultFarmConfig())
	run(g, 30)
	before := g.Elapsed()

	g.Step(press(core.ActionSeedMenu))
	run(g, 30)
	if g.Elapsed() != before {
		t.Error("world should not advance while choosing a seed")
	}
	if g.Snapshot().State != StateSelect {
		t.Errorf("state = %s", g.Snapshot().State)
	}

	g.Step(press(core.ActionBack))
	run(g, 30)
	if g.Elapsed() <= before {
		t.Error("world should advance after closing the menu")
	}
}

func TestPlantOccupiedShowsMessage(t *testing.T) {
	g := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	if err := g.SelectedCell().Plant("Tree"); err != nil {
		t.Fatal(err)
	}
	g.Step(press(core.ActionPlant))
	if g.Message() != "Cannot plant in non-free cell!" {
		t.Errorf("message = %q", g.Message())
	}
	if g.Player().Task() != TaskNone {
		t.Error("no task should be ordered")
	}
}

func TestSeasonEndsAndRestarts(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Season.Length = 1
	g := newTestGame(t, ModeSeason, cfg)

	g.Step(press(core.ActionPause))
	run(g, 60)
	if g.State().GameOver || g.Elapsed() != 0 {
		t.Fatal("paused game must not advance")
	}
	g.Step(press(core.ActionPause))

	run(g, 40)
	if !g.State().GameOver {
		t.Fatal("season should end after its length")
	}
	if !strings.HasPrefix(g.Message(), "Game Over! Final Score:") {
		t.Errorf("message = %q", g.Message())
	}

	g.Step(press(core.ActionRestart))
	if g.State().GameOver || g.Elapsed() != 0 {
		t.Error("restart should start a new season")
	}
}

func TestSandboxNeverEnds(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Season.Length = 1
	g := newTestGame(t, ModeSandbox, cfg)
	run(g, 120)
	if g.State().GameOver {
		t.Error("sandbox has no season end")
	}
}

func TestExhaustionEndsGame(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Vitals.MaxHydration = 1
	cfg.Vitals.HydrationInterval = 0.1
	cfg.Vitals.MaxHealth = 1
	cfg.Vitals.StarvationDamage = 10
	g := newTestGame(t, ModeSandbox, cfg)

	run(g, 30)
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %s, expected game over", g.Snapshot().State)
	}
}

func TestCraftThroughInput(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Inventory.StartItems = []string{"Rock", "Rock", "Stick", "Stick", "Stick"}
	g := newTestGame(t, ModeSandbox, cfg)

	g.Step(press(core.ActionCraft))
	g.Step(press(core.ActionConfirm))
	if !strings.HasPrefix(g.Message(), "Missing materials") {
		t.Errorf("message = %q", g.Message())
	}
	if g.Inventory().Len() != 5 {
		t.Error("rejected craft must leave the inventory unchanged")
	}

	if err := g.Inventory().Add("Rock"); err != nil {
		t.Fatal(err)
	}
	g.Step(press(core.ActionConfirm))
	if g.Inventory().Count("Axe") != 1 || g.Inventory().Len() != 1 {
		t.Errorf("inventory = %v", g.Inventory().Items())
	}

	g.Step(press(core.ActionBack))
	if g.Overlay() != OverlayNone {
		t.Error("Esc should close crafting")
	}
}

func TestInventoryConsumeAndTrash(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Inventory.StartItems = []string{"Berry", "Rock", "Axe"}
	g := newTestGame(t, ModeSandbox, cfg)
	g.Vitals().SetHydration(50)

	g.Step(press(core.ActionInventory))
	g.Step(press(core.ActionConfirm))
	if g.Inventory().Has("Berry") {
		t.Error("Berry should be eaten")
	}
	if g.Vitals().Hydration() < 64 {
		t.Errorf("hydration = %v, expected the berry to restore 15", g.Vitals().Hydration())
	}

	g.Step(press(core.ActionTrash))
	if _, ok := g.trash.Pending(); !ok {
		t.Fatal("Rock should be pending deletion")
	}
	g.Step(press(core.ActionConfirm))
	if g.Inventory().Has("Rock") {
		t.Error("confirmed deletion should remove the Rock")
	}

	g.Step(press(core.ActionTrash))
	if !strings.Contains(g.Message(), "cannot be trashed") {
		t.Errorf("message = %q", g.Message())
	}
	if !g.Inventory().Has("Axe") {
		t.Error("Axe must not be trashable")
	}
}

func TestCareMessages(t *testing.T) {
	g := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	cell := g.SelectedCell()

	g.Step(press(core.ActionWater))
	if g.Message() != "Nothing to water here." {
		t.Errorf("message = %q", g.Message())
	}

	_ = cell.Plant("Carrot")
	g.Step(press(core.ActionWater))
	if g.Message() != "Carrot does not need watering." {
		t.Errorf("message = %q", g.Message())
	}

	cell.ForceClear()
	_ = cell.Plant("TreeB")
	g.Step(press(core.ActionFertilize))
	if !strings.HasPrefix(g.Message(), "Fertilized TreeB") {
		t.Errorf("message = %q", g.Message())
	}
}

func TestAchievementMessage(t *testing.T) {
	g := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	cell := g.SelectedCell()
	_ = cell.Plant("Grass")
	cell.Food().ForceCompleteGrowth()

	g.Step(press(core.ActionConfirm))
	run(g, 40)
	if !g.Stats().IsUnlocked("First Harvest") {
		t.Fatal("first harvest should unlock an achievement")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeSeason, config.DefaultFarmConfig())
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "Cell (3,3)") {
		t.Error("side panel should describe the selected cell")
	}
	if scr.Get(gridX, gridY) != '┌' {
		t.Errorf("expected a cell border at the grid origin, got %q", scr.Get(gridX, gridY))
	}

	small := core.NewScreen(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screens should show a warning")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"farm", "farm_sandbox"} {
		g, err := registry.Create(id, registry.Options{})
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %s, expected %s", g.ID(), id)
		}
	}
}

func TestStatsBeforeReset(t *testing.T) {
	store := prefs.NewMemory()
	store.SetInt(KeyTotalScore, 70)

	g := NewWithConfig(ModeSeason, config.DefaultFarmConfig(), registry.Options{Prefs: store})
	stats := g.Stats()
	if stats == nil {
		t.Fatal("Stats() returned nil before Reset")
	}
	if stats.Total() != 70 {
		t.Errorf("Total() = %d, expected 70", stats.Total())
	}
	if err := stats.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// The same stats carry into the first season
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 30})
	if g.Stats() != stats {
		t.Error("Reset replaced the lifetime stats")
	}
}

func TestFertilizeTimedCrop(t *testing.T) {
	season := newTestGame(t, ModeSeason, config.DefaultFarmConfig())
	_ = season.SelectedCell().Plant("Carrot")
	season.Step(press(core.ActionFertilize))
	if season.Message() != "Carrot does not need fertilizer." {
		t.Errorf("season message = %q", season.Message())
	}
	if season.SelectedCell().IsRipe() {
		t.Error("season fertilizer must not ripen timed crops")
	}

	sandbox := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	cell := sandbox.SelectedCell()
	_ = cell.Plant("Carrot")
	sandbox.Step(press(core.ActionFertilize))
	if !cell.IsRipe() {
		t.Fatal("sandbox fertilizer should ripen a timed crop")
	}
	if sandbox.Message() != "Carrot is ready for harvest!" {
		t.Errorf("sandbox message = %q", sandbox.Message())
	}
}

func TestClearCell(t *testing.T) {
	g := newTestGame(t, ModeSandbox, config.DefaultFarmConfig())
	cell := g.SelectedCell()

	g.Step(press(core.ActionTrash))
	if g.Message() != "Nothing to clear here." {
		t.Errorf("message = %q", g.Message())
	}

	_ = cell.Plant("Carrot")
	g.Step(press(core.ActionTrash))
	if !cell.IsFree() || cell.Food() != nil {
		t.Fatal("clearing should free the planted cell")
	}
	if g.Message() != "Plot cleared." {
		t.Errorf("message = %q", g.Message())
	}
	if g.State().Score != 0 {
		t.Errorf("clearing must not score, got %d", g.State().Score)
	}
}

package farm

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/growth"
	"github.com/vovakirdan/tui-farm/internal/inventory"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeSeason  Mode = "season"
	ModeSandbox Mode = "sandbox"
)

// Overlay is the panel drawn over the field. Seed selection freezes the
// world while it is open; inventory and crafting do not.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlaySeeds
	OverlayInventory
	OverlayCraft
)

// Game implements the farm game.
type Game struct {
	mode   Mode
	opts   registry.Options
	logger *log.Logger

	cfg    config.FarmConfig
	loaded bool

	rng      *rand.Rand
	tick     uint64
	elapsed  float64
	dt       float64
	tickRate int
	screenW  int
	screenH  int

	sun        *growth.Sun
	light      growth.LightSource
	nursery    *Nursery
	field      *Field
	player     *Player
	vitals     *Vitals
	stats      *Stats
	messages   *MessageBoard
	catalog    *inventory.Catalog
	inv        *inventory.Inventory
	crafter    *inventory.Crafter
	trash      *inventory.Trash
	difficulty *config.DifficultyManager

	cursor      core.Point
	overlay     Overlay
	seedIndex   int
	plantTarget *Cell
	listIndex   int
	pickupTimer float64

	harvests  []core.Harvest
	unlocks   []string
	gameOver  bool
	paused    bool
	endReason string
}

func init() {
	registry.Register("farm", func(o registry.Options) registry.Game {
		return New(o)
	})
	registry.Register("farm_sandbox", func(o registry.Options) registry.Game {
		return NewSandbox(o)
	})
}

// New creates a season game. Config is loaded on the first Reset.
func New(opts registry.Options) *Game {
	return newGame(ModeSeason, opts)
}

// NewSandbox creates an endless game.
func NewSandbox(opts registry.Options) *Game {
	return newGame(ModeSandbox, opts)
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.FarmConfig, opts registry.Options) *Game {
	g := newGame(mode, opts)
	g.cfg = cfg
	g.loaded = true
	return g
}

func newGame(mode Mode, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{mode: mode, opts: opts, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "farm_sandbox"
	}
	return "farm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Farm (Sandbox)"
	}
	return "Farm"
}

func (g *Game) loadConfig() {
	if g.loaded {
		return
	}
	cfg, err := config.LoadFarm(g.opts.ConfigPath)
	if err != nil {
		g.logger.Error("config load failed, using defaults", "err", err)
		cfg = config.DefaultFarmConfig()
	}
	if g.opts.Difficulty != "" {
		config.ApplyFarmPreset(&cfg, config.ParsePreset(g.opts.Difficulty))
	}
	g.cfg = cfg
	g.loaded = true
}

// Reset initializes/restarts the game. Lifetime statistics survive resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	fc := g.cfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsed = 0
	g.dt = cfg.TickSeconds()
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if fc.Sun.Fixed {
		g.sun = nil
		g.light = growth.FixedLight(fc.Sun.FixedIntensity)
	} else {
		g.sun = growth.NewSun(fc.Sun.MinIntensity, fc.Sun.MaxIntensity, fc.Sun.Speed)
		g.light = g.sun
	}

	g.ensureStats().ResetCurrent()

	g.nursery = NewNursery(fc, g.light, g.logger)
	g.field = NewField(fc.Grid.Width, fc.Grid.Height, g.nursery, g.stats, g.logger)
	g.field.Each(g.wireCell)

	g.vitals = NewVitals(fc.Vitals)
	g.player = NewPlayer(fc.Player, g.logger)
	g.player.OnStep = func(core.Point) { g.vitals.Travel(1) }
	g.player.OnCollect = g.collect
	g.player.OnTaskDone = g.taskDone

	g.messages = NewMessageBoard(fc.Messages.Duration, fc.Messages.InstructionsDuration)
	if fc.Messages.Welcome != "" {
		g.messages.Show(fc.Messages.Welcome)
	}

	g.catalog = inventory.NewCatalog(fc.Items...)
	g.inv = inventory.New(fc.Inventory.Capacity, g.logger)
	for _, name := range fc.Inventory.StartItems {
		if err := g.inv.Add(name); err != nil {
			g.logger.Warn("start item dropped", "item", name, "err", err)
		}
	}
	g.crafter = inventory.NewCrafter(g.inv, fc.Blueprints, g.logger)
	g.trash = inventory.NewTrash(g.inv, g.catalog, fc.Inventory.TrashTimeout, g.logger)
	g.difficulty = config.NewDifficultyManager(fc.Difficulty)

	start := g.field.Bounds()
	g.cursor = core.Point{
		X: core.Clamp(fc.Player.StartX, 0, start.W-1),
		Y: core.Clamp(fc.Player.StartY, 0, start.H-1),
	}
	g.overlay = OverlayNone
	g.seedIndex = 0
	g.plantTarget = nil
	g.listIndex = 0
	g.pickupTimer = 0
	g.harvests = nil
	g.unlocks = nil
	g.gameOver = false
	g.paused = false
	g.endReason = ""

	g.logger.Info("game reset", "mode", g.mode, "seed", cfg.Seed, "grid", fmt.Sprintf("%dx%d", g.field.Width(), g.field.Height()))
}

// ensureStats builds the lifetime statistics on first use, so they can be
// read and saved even when the game never started.
func (g *Game) ensureStats() *Stats {
	if g.stats != nil {
		return g.stats
	}
	g.loadConfig()
	g.stats = NewStats(g.opts.Prefs, g.cfg.Achievements, g.logger)
	g.stats.OnUnlock = func(a Achievement) {
		g.unlocks = append(g.unlocks, a.Name)
	}
	return g.stats
}

// wireCell connects cell events to statistics, messages and inventory.
func (g *Game) wireCell(c *Cell) {
	c.OnPlanted = func(_ *Cell, food *Food) {
		g.stats.RecordPlant(food.Crop().Name)
		food.OnRipe = func(f *Food) {
			g.logger.Debug("crop ripe", "crop", f.Crop().Name, "x", c.X, "y", c.Y)
		}
		food.OnStageChange = func(f *Food, prev, next int) {
			g.logger.Debug("stage changed", "crop", f.Crop().Name, "from", prev, "to", next)
		}
	}
	c.OnHarvested = func(_ *Cell, food *Food, res HarvestResult) {
		crop := food.Crop()
		g.messages.Show(res.Message)
		g.stats.RecordHarvest(crop.Name)
		g.harvests = append(g.harvests, core.Harvest{Crop: crop.Name, Points: res.Points})
		if crop.Yield == "" {
			return
		}
		if err := g.inv.Add(crop.Yield); err != nil {
			g.messages.Show("Inventory is full!")
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.harvests = nil

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	g.messages.Advance(g.dt)
	g.trash.Advance(g.dt)
	if !g.Frozen() {
		g.advance(g.dt)
	}
	g.flushUnlocks()

	return core.StepResult{State: g.State(), Harvests: g.harvests}
}

// Frozen reports whether an open panel stops the world clock.
func (g *Game) Frozen() bool {
	return g.overlay == OverlaySeeds || g.messages.InstructionsVisible()
}

// advance runs the simulation for dt seconds.
func (g *Game) advance(dt float64) {
	g.elapsed += dt
	if g.sun != nil {
		g.sun.Advance(dt)
	}
	g.field.Update(dt)
	g.player.Update(dt)

	score := g.stats.Current()
	g.vitals.Advance(dt, g.difficulty.HydrationInterval(g.cfg.Vitals.HydrationInterval, score, g.elapsed))
	g.spawnPickups(dt, score)

	switch {
	case g.vitals.Dead():
		g.endGame("You collapsed from exhaustion")
	case g.mode == ModeSeason && g.cfg.Season.Length > 0 && g.elapsed >= g.cfg.Season.Length:
		g.endGame("The season is over")
	}
}

func (g *Game) spawnPickups(dt float64, score int) {
	pc := g.cfg.Pickups
	if len(pc.Items) == 0 || pc.Interval <= 0 {
		return
	}
	g.pickupTimer += dt
	interval := g.difficulty.PickupInterval(pc.Interval, score, g.elapsed)
	if g.pickupTimer < interval {
		return
	}
	g.pickupTimer = 0
	if g.field.Items() >= pc.MaxOnField {
		return
	}
	free := g.field.FreeCells()
	if len(free) == 0 {
		return
	}
	c := free[g.rng.Intn(len(free))]
	c.Item = pc.Items[g.rng.Intn(len(pc.Items))]
	g.logger.Debug("pickup spawned", "item", c.Item, "x", c.X, "y", c.Y)
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.endReason = reason
	g.overlay = OverlayNone
	g.messages.HideInstructions()
	g.trash.Cancel()
	if err := g.stats.Save(); err != nil {
		g.logger.Error("saving stats", "err", err)
	}
	g.messages.Show(fmt.Sprintf("Game Over! Final Score: %d", g.stats.Current()))
	g.logger.Info("game over", "reason", reason, "score", g.stats.Current(), "elapsed", g.elapsed)
}

func (g *Game) flushUnlocks() {
	if len(g.unlocks) == 0 {
		return
	}
	g.messages.Show(fmt.Sprintf("Achievement Unlocked: %s!", g.unlocks[len(g.unlocks)-1]))
	g.unlocks = g.unlocks[:0]
}

// handleInput routes input to the open panel or the field.
func (g *Game) handleInput(in core.InputFrame) {
	if g.messages.InstructionsVisible() {
		if hasAny(in) {
			g.messages.HideInstructions()
		}
		return
	}

	switch g.overlay {
	case OverlaySeeds:
		g.handleSeedMenu(in)
	case OverlayInventory:
		g.handleInventory(in)
	case OverlayCraft:
		g.handleCraft(in)
	default:
		g.handleField(in)
	}
}

func hasAny(in core.InputFrame) bool {
	for _, v := range in.Actions {
		if v {
			return true
		}
	}
	return false
}

func (g *Game) handleField(in core.InputFrame) {
	b := g.field.Bounds()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, b.H-1)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, b.H-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, b.W-1)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, b.W-1)
	}

	if slot := in.Slot(); slot >= 0 {
		g.selectSeed(slot)
	}

	cell := g.SelectedCell()
	switch {
	case in.Has(core.ActionConfirm):
		g.interact(cell)
	case in.Has(core.ActionPlant):
		g.plantSelected(cell)
	case in.Has(core.ActionWater):
		g.water(cell)
	case in.Has(core.ActionFertilize):
		g.fertilize(cell)
	case in.Has(core.ActionTrash):
		g.clearCell(cell)
	case in.Has(core.ActionSeedMenu):
		g.openSeeds(nil)
	case in.Has(core.ActionInventory):
		g.openList(OverlayInventory)
	case in.Has(core.ActionCraft):
		g.openList(OverlayCraft)
	case in.Has(core.ActionHelp):
		g.messages.ShowInstructions()
	}
}

// interact is the click on a cell: pick up, open seeds, or harvest.
func (g *Game) interact(c *Cell) {
	if !g.player.IsIdle() {
		g.messages.Show("The farmer is busy!")
		return
	}
	switch {
	case c.IsFree() && c.Item != "":
		g.player.Order(TaskCollect, c, "")
	case c.IsFree():
		g.openSeeds(c)
	case c.IsRipe():
		g.player.Order(TaskHarvest, c, "")
	default:
		g.messages.Show("Not ready for harvest yet!")
	}
}

func (g *Game) plantSelected(c *Cell) {
	seed, ok := g.SelectedSeed()
	switch {
	case !ok:
		g.messages.Show("No seeds available!")
	case !g.player.IsIdle():
		g.messages.Show("The farmer is busy!")
	case !c.IsFree():
		g.messages.Show("Cannot plant in non-free cell!")
	case c.Item != "":
		g.messages.Show(fmt.Sprintf("Pick up the %s first!", c.Item))
	default:
		g.player.Order(TaskPlant, c, seed.Name)
	}
}

func (g *Game) water(c *Cell) {
	food := c.Food()
	if food == nil {
		g.messages.Show("Nothing to water here.")
		return
	}
	if !food.Water(g.cfg.Care.WaterAmount) {
		g.messages.Show(fmt.Sprintf("%s does not need watering.", food.Crop().Name))
		return
	}
	n, _ := food.Nurturer()
	g.messages.Show(fmt.Sprintf("Watered %s. Moisture: %.0f%%", food.Crop().Name, n.Moisture()*100))
}

func (g *Game) fertilize(c *Cell) {
	food := c.Food()
	if food == nil {
		g.messages.Show("Nothing to fertilize here.")
		return
	}
	if !food.Fertilize(g.cfg.Care.FertilizerAmount) {
		// Sandbox fertilizer ripens timed crops on the spot
		if g.mode == ModeSandbox && food.IsGrowing() {
			food.ForceCompleteGrowth()
			g.messages.Show(fmt.Sprintf("%s is ready for harvest!", food.Crop().Name))
			return
		}
		g.messages.Show(fmt.Sprintf("%s does not need fertilizer.", food.Crop().Name))
		return
	}
	n, _ := food.Nurturer()
	g.messages.Show(fmt.Sprintf("Fertilized %s. Nutrients: %.0f%%", food.Crop().Name, n.Nutrients()*100))
}

// clearCell digs up whatever grows or lies on c. Points are not awarded.
func (g *Game) clearCell(c *Cell) {
	switch {
	case g.player.Target() == c:
		g.messages.Show("The farmer is working there.")
	case c.IsFree() && c.Item == "":
		g.messages.Show("Nothing to clear here.")
	default:
		c.ForceClear()
		g.messages.Show("Plot cleared.")
	}
}

// collect moves the item lying on c into the inventory.
func (g *Game) collect(c *Cell) error {
	if err := g.inv.Add(c.Item); err != nil {
		return err
	}
	g.messages.Show(fmt.Sprintf("Picked up %s", c.Item))
	c.Item = ""
	return nil
}

func (g *Game) taskDone(task Task, c *Cell, err error) {
	switch {
	case err == nil && task == TaskPlant:
		g.messages.Show(fmt.Sprintf("Planted %s!", c.Food().Crop().Name))
	case err == nil:
	case errors.Is(err, ErrCellOccupied):
		g.messages.Show("Cannot plant in non-free cell!")
	case errors.Is(err, ErrNotRipe):
		g.messages.Show("Not ready for harvest yet!")
	case errors.Is(err, inventory.ErrInventoryFull):
		g.messages.Show("Inventory is full!")
	case errors.Is(err, ErrNoItem):
		g.messages.Show("Nothing to pick up here.")
	default:
		g.messages.Show(err.Error())
	}
}

// openSeeds opens seed selection. A non-nil target is planted as soon as
// a seed is chosen.
func (g *Game) openSeeds(target *Cell) {
	g.overlay = OverlaySeeds
	g.plantTarget = target
}

func (g *Game) closeOverlay() {
	g.overlay = OverlayNone
	g.plantTarget = nil
	g.listIndex = 0
	g.trash.Cancel()
}

func (g *Game) selectSeed(i int) {
	crops := g.nursery.Crops()
	if i < 0 || i >= len(crops) {
		return
	}
	g.seedIndex = i
}

func (g *Game) handleSeedMenu(in core.InputFrame) {
	crops := g.nursery.Crops()
	chosen := -1
	switch {
	case in.Has(core.ActionBack), in.Has(core.ActionSeedMenu):
		g.closeOverlay()
		return
	case in.Has(core.ActionUp):
		if len(crops) > 0 {
			g.seedIndex = (g.seedIndex - 1 + len(crops)) % len(crops)
		}
	case in.Has(core.ActionDown):
		if len(crops) > 0 {
			g.seedIndex = (g.seedIndex + 1) % len(crops)
		}
	case in.Has(core.ActionConfirm):
		chosen = g.seedIndex
	}
	if slot := in.Slot(); slot >= 0 && slot < len(crops) {
		chosen = slot
	}
	if chosen < 0 {
		return
	}

	g.seedIndex = chosen
	target := g.plantTarget
	g.closeOverlay()
	if target != nil {
		g.plantSelected(target)
	} else {
		g.messages.Show(fmt.Sprintf("Selected seed: %s", crops[chosen].Name))
	}
}

func (g *Game) openList(o Overlay) {
	g.overlay = o
	g.listIndex = 0
}

func (g *Game) moveList(in core.InputFrame, n int) {
	if n == 0 {
		g.listIndex = 0
		return
	}
	switch {
	case in.Has(core.ActionUp):
		g.listIndex = (g.listIndex - 1 + n) % n
	case in.Has(core.ActionDown):
		g.listIndex = (g.listIndex + 1) % n
	}
	g.listIndex = core.Clamp(g.listIndex, 0, n-1)
}

func (g *Game) handleInventory(in core.InputFrame) {
	if name, ok := g.trash.Pending(); ok {
		switch {
		case in.Has(core.ActionConfirm):
			if _, err := g.trash.Confirm(); err != nil {
				g.messages.Show(err.Error())
			} else {
				g.messages.Show(fmt.Sprintf("Deleted %s", name))
			}
		case in.Has(core.ActionBack):
			g.trash.Cancel()
			g.messages.Show(fmt.Sprintf("Kept %s", name))
		}
		return
	}

	if in.Has(core.ActionBack) || in.Has(core.ActionInventory) {
		g.closeOverlay()
		return
	}
	names := g.InventoryNames()
	g.moveList(in, len(names))
	if len(names) == 0 {
		return
	}
	name := names[g.listIndex]

	switch {
	case in.Has(core.ActionConfirm):
		eff, err := inventory.Consume(g.inv, g.catalog, name, g.vitals)
		if err != nil {
			g.messages.Show(fmt.Sprintf("%s cannot be eaten.", name))
			return
		}
		g.messages.Show(fmt.Sprintf("Ate %s (+%.0f hp, +%.0f cal, +%.0f water)", name, eff.Health, eff.Calories, eff.Hydration))
	case in.Has(core.ActionTrash):
		if err := g.trash.Request(name); err != nil {
			if errors.Is(err, inventory.ErrNotTrashable) {
				g.messages.Show(fmt.Sprintf("%s cannot be trashed.", name))
				return
			}
			g.messages.Show(err.Error())
		}
	}
}

func (g *Game) handleCraft(in core.InputFrame) {
	if in.Has(core.ActionBack) || in.Has(core.ActionCraft) {
		g.closeOverlay()
		return
	}
	recipes := g.crafter.Recipes()
	g.moveList(in, len(recipes))
	if len(recipes) == 0 || !in.Has(core.ActionConfirm) {
		return
	}
	bp := recipes[g.listIndex]
	err := g.crafter.Craft(bp)
	switch {
	case err == nil:
		g.messages.Show(fmt.Sprintf("Crafted %s!", bp.Name))
	case errors.Is(err, inventory.ErrMissingMaterials):
		g.messages.Show(fmt.Sprintf("Missing materials for %s", bp.Name))
	case errors.Is(err, inventory.ErrInventoryFull):
		g.messages.Show("Inventory is full!")
	default:
		g.messages.Show(err.Error())
	}
}

// InventoryNames returns the distinct held item names in slot order.
func (g *Game) InventoryNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range g.inv.Items() {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// SelectedCell returns the cell under the cursor.
func (g *Game) SelectedCell() *Cell { return g.field.CellAt(g.cursor.X, g.cursor.Y) }

// SelectedSeed returns the crop picked in the seed menu.
func (g *Game) SelectedSeed() (Crop, bool) {
	crops := g.nursery.Crops()
	if g.seedIndex < 0 || g.seedIndex >= len(crops) {
		return Crop{}, false
	}
	return crops[g.seedIndex], true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.stats != nil {
		score = g.stats.Current()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Field returns the grid.
func (g *Game) Field() *Field { return g.field }

// Player returns the farmer.
func (g *Game) Player() *Player { return g.player }

// Stats returns the score and lifetime statistics. It is never nil.
func (g *Game) Stats() *Stats { return g.ensureStats() }

// Inventory returns the farmer's inventory.
func (g *Game) Inventory() *inventory.Inventory { return g.inv }

// Vitals returns the farmer's vitals.
func (g *Game) Vitals() *Vitals { return g.vitals }

// Message returns the visible transient message.
func (g *Game) Message() string { return g.messages.Text() }

// Overlay returns the open panel.
func (g *Game) Overlay() Overlay { return g.overlay }

// Elapsed returns the simulated seconds since the last reset.
func (g *Game) Elapsed() float64 { return g.elapsed }

package farm

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateSelect   GameStateType = "selecting_seed"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Elapsed   float64
	Score     int
	Harvests  int
	Plants    int
	Planted   int // cells holding food
	Ripe      int
	Items     int // pickups lying on the field
	PlayerX   int
	PlayerY   int
	Player    string
	CursorX   int
	CursorY   int
	Bag       int
	Health    float64
	Calories  float64
	Hydration float64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.overlay == OverlaySeeds:
		state = StateSelect
	}

	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Elapsed:   g.elapsed,
		Score:     g.stats.Current(),
		Harvests:  g.stats.Harvests(),
		Plants:    g.stats.Plants(),
		Items:     g.field.Items(),
		PlayerX:   g.player.Position().X,
		PlayerY:   g.player.Position().Y,
		Player:    StateName(g.player.State()),
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		Bag:       g.inv.Len(),
		Health:    g.vitals.Health(),
		Calories:  g.vitals.Calories(),
		Hydration: g.vitals.Hydration(),
		State:     state,
	}
	g.field.Each(func(c *Cell) {
		if c.IsPlanted() {
			s.Planted++
		}
		if c.IsRipe() {
			s.Ripe++
		}
	})
	return s
}

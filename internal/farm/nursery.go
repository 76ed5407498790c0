package farm

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/growth"
)

// DefaultCropGrowTime is used for timed crops configured without a grow time.
const DefaultCropGrowTime = 60.0

// ErrUnknownCrop is returned when planting a crop that is not configured.
var ErrUnknownCrop = errors.New("farm: unknown crop")

// Crop is a plantable food kind.
type Crop struct {
	Name     string
	Kind     growth.Kind
	Points   int
	GrowTime float64
	Plant    growth.PlantDefinition
	Color    core.Color
	Glyph    rune
	Yield    string
}

// FoodFactory creates food for a crop name.
type FoodFactory interface {
	NewFood(crop string) (*Food, error)
}

// Nursery is the crop catalog and the FoodFactory used by cells.
type Nursery struct {
	crops  []Crop
	params growth.Params
	care   config.CareConfig
	light  growth.LightSource
	logger *log.Logger
}

// NewNursery builds the catalog from config. light may be nil.
func NewNursery(cfg config.FarmConfig, light growth.LightSource, logger *log.Logger) *Nursery {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	n := &Nursery{params: cfg.Growth, care: cfg.Care, light: light, logger: logger}
	for _, cc := range cfg.Crops {
		crop := Crop{
			Name:     cc.Name,
			Kind:     growth.ParseKind(cc.Kind),
			Points:   cc.Points,
			GrowTime: cc.GrowTime,
			Color:    core.ParseColor(cc.Color),
			Glyph:    firstRune(cc.Glyph, '?'),
			Yield:    cc.Yield,
		}
		if crop.Kind == growth.KindTimed && crop.GrowTime <= 0 {
			crop.GrowTime = DefaultCropGrowTime
		}
		if crop.Kind == growth.KindNurtured {
			def, ok := cfg.Plant(cc.Plant)
			if !ok {
				logger.Error("crop skipped, plant definition missing", "crop", cc.Name, "plant", cc.Plant)
				continue
			}
			crop.Plant = def
		}
		n.crops = append(n.crops, crop)
	}
	return n
}

// Crops returns the catalog in configuration order.
func (n *Nursery) Crops() []Crop {
	out := make([]Crop, len(n.crops))
	copy(out, n.crops)
	return out
}

// Crop returns the crop with the given name.
func (n *Nursery) Crop(name string) (Crop, bool) {
	for _, c := range n.crops {
		if c.Name == name {
			return c, true
		}
	}
	return Crop{}, false
}

// NewFood creates a freshly planted food item of the given crop.
func (n *Nursery) NewFood(name string) (*Food, error) {
	crop, ok := n.Crop(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCrop, name)
	}

	var tracker *growth.Tracker
	switch crop.Kind {
	case growth.KindNurtured:
		tracker = crop.Plant.NewTracker(n.params, n.care.InitialMoisture, n.care.InitialNutrients, n.light)
	default:
		tracker = growth.NewTracker(growth.NewTimed(crop.GrowTime), nil)
	}
	return newFood(crop, tracker, n.logger), nil
}

func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

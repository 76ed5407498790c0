package growth

// Params holds the tuning of the nurtured growth model.
type Params struct {
	MoistureDecay   float64 `yaml:"moisture_decay"`   // per second
	NutrientDecay   float64 `yaml:"nutrient_decay"`   // per second
	WaterBoost      float64 `yaml:"water_boost"`      // rate multiplier at full moisture
	FertilizerBoost float64 `yaml:"fertilizer_boost"` // rate multiplier at full nutrients
	SunFactor       float64 `yaml:"sun_factor"`       // rate multiplier at full sunlight
	MaxIntensity    float64 `yaml:"max_intensity"`    // light intensity treated as full sun
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MoistureDecay:   0.02,
		NutrientDecay:   0.01,
		WaterBoost:      0.5,
		FertilizerBoost: 0.8,
		SunFactor:       0.7,
		MaxIntensity:    1.2,
	}
}

// DefaultGrowTime is the base total grow time used when a plant
// definition does not set one.
const DefaultGrowTime = 300.0

// Nurtured grows continuously at a rate shaped by moisture, nutrients and
// an optional light source.
type Nurtured struct {
	params    Params
	baseRate  float64
	progress  float64
	moisture  float64
	nutrients float64
	light     LightSource
}

// NewNurtured creates a nurtured progression. baseTotalGrowTime is the time
// to full growth with no boosts; values below one second are treated as one.
// light may be nil, in which case sunlight does not affect the rate.
func NewNurtured(baseTotalGrowTime float64, p Params, moisture, nutrients float64, light LightSource) *Nurtured {
	return &Nurtured{
		params:    p,
		baseRate:  1 / max(1, baseTotalGrowTime),
		moisture:  clamp01(moisture),
		nutrients: clamp01(nutrients),
		light:     light,
	}
}

// Advance decays moisture and nutrients, then grows by rate*dt.
func (n *Nurtured) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	n.moisture = clamp01(n.moisture - n.params.MoistureDecay*dt)
	n.nutrients = clamp01(n.nutrients - n.params.NutrientDecay*dt)

	if n.progress < 1 {
		n.progress = clamp01(n.progress + n.Rate()*dt)
	}
}

// Rate returns the current growth rate in progress per second.
func (n *Nurtured) Rate() float64 {
	return n.baseRate *
		(1 + n.moisture*n.params.WaterBoost) *
		(1 + n.nutrients*n.params.FertilizerBoost) *
		n.sunMultiplier()
}

func (n *Nurtured) sunMultiplier() float64 {
	if n.light == nil || !n.light.Directional() {
		return 1
	}
	maxI := n.params.MaxIntensity
	if maxI <= 0 {
		maxI = 1
	}
	return 1 + clamp01(n.light.Intensity()/maxI)*n.params.SunFactor
}

func (n *Nurtured) Progress() float64 { return n.progress }

func (n *Nurtured) Done() bool { return n.progress >= 1 }

func (n *Nurtured) Complete() { n.progress = 1 }

func (n *Nurtured) Kind() Kind { return KindNurtured }

// ApplyWater raises moisture by amount, clamped to [0, 1].
func (n *Nurtured) ApplyWater(amount float64) {
	n.moisture = clamp01(n.moisture + amount)
}

// ApplyFertilizer raises nutrients by amount, clamped to [0, 1].
func (n *Nurtured) ApplyFertilizer(amount float64) {
	n.nutrients = clamp01(n.nutrients + amount)
}

func (n *Nurtured) Moisture() float64 { return n.moisture }

func (n *Nurtured) Nutrients() float64 { return n.nutrients }

package growth

import "math"

// LightSource provides sunlight to nurtured plants.
type LightSource interface {
	Intensity() float64
	// Directional reports whether the source counts as sunlight.
	Directional() bool
}

// Sun is a directional light whose intensity oscillates between a minimum
// and maximum over simulated time.
type Sun struct {
	min, max float64
	speed    float64
	t        float64
}

// NewSun creates a sun cycling between min and max intensity.
// speed scales how fast the cycle phase advances per second.
func NewSun(min, max, speed float64) *Sun {
	return &Sun{min: min, max: max, speed: speed}
}

// Advance moves the cycle forward by dt seconds.
func (s *Sun) Advance(dt float64) {
	s.t += dt * s.speed
}

// Intensity returns the current light intensity.
func (s *Sun) Intensity() float64 {
	n := math.Sin(s.t)*0.5 + 0.5
	return s.min + (s.max-s.min)*n
}

func (s *Sun) Directional() bool { return true }

// Daylight returns the intensity normalized to [0, 1] over the cycle range.
func (s *Sun) Daylight() float64 {
	if s.max == s.min {
		return 1
	}
	return clamp01((s.Intensity() - s.min) / (s.max - s.min))
}

// FixedLight is a directional light with constant intensity.
type FixedLight float64

func (f FixedLight) Intensity() float64 { return float64(f) }

func (f FixedLight) Directional() bool { return true }

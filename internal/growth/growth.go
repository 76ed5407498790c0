// Package growth models how planted things mature over simulated time.
//
// Two progression kinds share one interface: Timed crops ripen after a fixed
// duration, Nurtured plants grow at a rate driven by moisture, nutrients and
// sunlight. Both report progress in [0, 1] and never regress.
package growth

// Kind identifies the growth rule behind a Progression.
type Kind int

const (
	KindTimed Kind = iota
	KindNurtured
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTimed:
		return "timed"
	case KindNurtured:
		return "nurtured"
	}
	return "unknown"
}

// ParseKind maps a config name to a Kind. Unknown names are timed.
func ParseKind(s string) Kind {
	if s == "nurtured" {
		return KindNurtured
	}
	return KindTimed
}

// Progression advances a growth value toward completion.
type Progression interface {
	// Advance moves growth forward by dt seconds of simulated time.
	Advance(dt float64)
	// Progress returns the completion ratio in [0, 1].
	Progress() float64
	// Done reports whether progress has reached 1.
	Done() bool
	// Complete jumps straight to full growth.
	Complete()
	Kind() Kind
}

// Nurturer is implemented by progressions that respond to care actions.
type Nurturer interface {
	ApplyWater(amount float64)
	ApplyFertilizer(amount float64)
	Moisture() float64
	Nutrients() float64
}

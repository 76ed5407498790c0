package growth

// Timed ripens after a fixed duration.
type Timed struct {
	duration float64
	elapsed  float64
}

// NewTimed creates a progression that completes after duration seconds.
// A non-positive duration completes on the first Advance.
func NewTimed(duration float64) *Timed {
	return &Timed{duration: duration}
}

func (t *Timed) Advance(dt float64) {
	if dt <= 0 || t.Done() {
		return
	}
	t.elapsed += dt
	if t.duration > 0 && t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

func (t *Timed) Progress() float64 {
	if t.duration <= 0 {
		if t.elapsed > 0 {
			return 1
		}
		return 0
	}
	return clamp01(t.elapsed / t.duration)
}

func (t *Timed) Done() bool {
	return t.Progress() >= 1
}

func (t *Timed) Complete() {
	if t.duration <= 0 {
		t.elapsed = 1
		return
	}
	t.elapsed = t.duration
}

func (t *Timed) Kind() Kind { return KindTimed }

// Duration returns the configured grow time in seconds.
func (t *Timed) Duration() float64 { return t.duration }

// Remaining returns the seconds left until ripe.
func (t *Timed) Remaining() float64 {
	if t.Done() {
		return 0
	}
	return t.duration - t.elapsed
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

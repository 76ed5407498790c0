package farm

// Default message timings, in seconds.
const (
	DefaultMessageDuration      = 3.0
	DefaultInstructionsDuration = 15.0
)

// MessageBoard shows one transient message at a time and the toggleable
// instructions panel. Both hide on explicit timers advanced by the tick.
type MessageBoard struct {
	duration     float64
	instrTimeout float64

	text      string
	remaining float64

	instructions  bool
	instrLeft     float64
	instrAutoUsed bool
}

// NewMessageBoard creates a board. Non-positive durations use the defaults.
func NewMessageBoard(duration, instructionsDuration float64) *MessageBoard {
	if duration <= 0 {
		duration = DefaultMessageDuration
	}
	if instructionsDuration <= 0 {
		instructionsDuration = DefaultInstructionsDuration
	}
	return &MessageBoard{duration: duration, instrTimeout: instructionsDuration}
}

// Show replaces the current message and restarts its timer.
func (m *MessageBoard) Show(text string) {
	m.text = text
	m.remaining = m.duration
}

// Text returns the visible message, empty when hidden.
func (m *MessageBoard) Text() string { return m.text }

// ShowInstructions opens the instructions panel. Only the first opening
// hides itself automatically.
func (m *MessageBoard) ShowInstructions() {
	m.instructions = true
	if !m.instrAutoUsed {
		m.instrAutoUsed = true
		m.instrLeft = m.instrTimeout
	} else {
		m.instrLeft = 0
	}
}

// HideInstructions closes the instructions panel.
func (m *MessageBoard) HideInstructions() {
	m.instructions = false
	m.instrLeft = 0
}

// InstructionsVisible reports whether the instructions panel is open.
func (m *MessageBoard) InstructionsVisible() bool { return m.instructions }

// Advance runs both timers for dt seconds.
func (m *MessageBoard) Advance(dt float64) {
	if m.text != "" {
		m.remaining -= dt
		if m.remaining <= 0 {
			m.text = ""
			m.remaining = 0
		}
	}
	if m.instructions && m.instrLeft > 0 {
		m.instrLeft -= dt
		if m.instrLeft <= 0 {
			m.HideInstructions()
		}
	}
}

// Clear hides everything and rearms the instructions auto-hide.
func (m *MessageBoard) Clear() {
	m.text, m.remaining = "", 0
	m.instructions, m.instrLeft, m.instrAutoUsed = false, 0, false
}

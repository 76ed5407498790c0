// Package fsm provides the single-current-state machine shared by cells,
// food items and the player.
//
// The machine performs no transition validation. Which transitions are legal
// is decided by the owner (a cell only moves Free to Planted when a plant
// succeeds, for example).
package fsm

import (
	"io"

	"github.com/charmbracelet/log"
)

// StateID is an explicit tag identifying a state variant. Owners branch on
// the tag instead of inspecting the concrete state type.
type StateID int

// StateNone is reported by an empty machine.
const StateNone StateID = 0

// State is one behavioral phase of an owning entity.
// dt is the simulated time covered by the tick, in seconds.
type State interface {
	ID() StateID
	Enter()
	Update(dt float64)
	Exit()
}

// Machine holds exactly one current state at a time.
type Machine struct {
	name    string
	logger  *log.Logger
	current State
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transition and warning lines.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty machine. name identifies the owner in log lines.
func New(name string, opts ...Option) *Machine {
	m := &Machine{
		name:   name,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize sets the current state and enters it.
//
// Calling Initialize on a machine that already holds a state replaces it
// without calling Exit on the old state. That case is logged as a warning.
func (m *Machine) Initialize(s State) {
	if m.current != nil {
		m.logger.Warn("state machine initialized twice, previous state not exited",
			"machine", m.name, "previous", m.current.ID(), "next", s.ID())
	}
	m.current = s
	m.current.Enter()
}

// ChangeState exits the current state (if any), then enters s.
func (m *Machine) ChangeState(s State) {
	prev := StateNone
	if m.current != nil {
		prev = m.current.ID()
		m.current.Exit()
	}
	m.current = s
	m.logger.Debug("state change", "machine", m.name, "from", prev, "to", s.ID())
	m.current.Enter()
}

// UpdateState forwards the tick to the current state. No-op when empty.
func (m *Machine) UpdateState(dt float64) {
	if m.current == nil {
		return
	}
	m.current.Update(dt)
}

// CurrentID returns the tag of the current state, or StateNone.
func (m *Machine) CurrentID() StateID {
	if m.current == nil {
		return StateNone
	}
	return m.current.ID()
}

// Is reports whether the current state carries the given tag.
func (m *Machine) Is(id StateID) bool {
	return m.CurrentID() == id
}

// Nop is an embeddable base supplying empty Enter, Update and Exit.
type Nop struct{}

// Enter does nothing.
func (Nop) Enter() {}

// Update does nothing.
func (Nop) Update(float64) {}

// Exit does nothing.
func (Nop) Exit() {}

package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into semantic Intents and tracks the left button for gestures
type Machine struct {
	keyTable *KeyTable

	// contains reports whether a terminal cell is inside the drawing surface
	contains func(x, y int) bool

	pressed      bool
	lastX, lastY int
}

// NewMachine creates an input machine; contains bounds where gestures may start
func NewMachine(contains func(x, y int) bool) *Machine {
	if contains == nil {
		contains = func(int, int) bool { return true }
	}
	return &Machine{
		keyTable: DefaultKeyTable(),
		contains: contains,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// Pressed reports whether a gesture is in progress
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Reset drops any in-progress gesture without emitting an end
func (m *Machine) Reset() {
	m.pressed = false
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if t, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return &Intent{Type: IntentSelectSpell, Slot: int(r - '0')}
	}
	if t, ok := m.keyTable.Runes[r]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// processMouse turns button state transitions into gesture intents
// Leaving the surface while pressed ends the gesture like a release
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	inside := m.contains(x, y)

	switch {
	case down && !m.pressed:
		if !inside {
			return nil
		}
		m.pressed = true
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentGestureStart, X: x, Y: y}

	case down && m.pressed:
		if !inside {
			m.pressed = false
			return &Intent{Type: IntentGestureEnd, X: m.lastX, Y: m.lastY}
		}
		if x == m.lastX && y == m.lastY {
			return nil
		}
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentGestureMove, X: x, Y: y}

	case !down && m.pressed:
		m.pressed = false
		return &Intent{Type: IntentGestureEnd, X: x, Y: y}
	}
	return nil
}

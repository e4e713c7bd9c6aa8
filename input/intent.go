package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentResize      // Terminal resize event
	IntentPause       // p
	IntentToggleMute  // m
	IntentSelectSpell // 1-9, Slot holds the number

	// Gesture intents, X/Y in terminal cells
	IntentGestureStart
	IntentGestureMove
	IntentGestureEnd
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	Slot int
	X, Y int
}

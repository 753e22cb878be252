package input

// IntentType discriminates what a key press means to the front end
type IntentType uint8

const (
	IntentNone IntentType = iota

	// IntentAction publishes a controller action on the bus
	IntentAction

	// System-level intents, never published on the bus
	IntentQuit        // Ctrl+C, Ctrl+Q
	IntentToggleMute  // Ctrl+S
	IntentToggleDebug // F12

	// IntentKeypad is a character typed straight into an in-screen keypad (calculator digits/operators)
	IntentKeypad
)

// Intent is the resolved meaning of one key event
type Intent struct {
	Type   IntentType
	Action Action
	Rune   rune
}

package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C, Ctrl+Q
	IntentReset       // r
	IntentTogglePause // p
	IntentToggleMute  // m
	IntentResize      // Terminal resize event

	// Pointer
	IntentPointer // Primary button press, drag, release
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type    IntentType
	Pointer PointerEvent // Valid for IntentPointer
	Width   int          // Valid for IntentResize
	Height  int
}

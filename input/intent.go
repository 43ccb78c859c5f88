// Package input translates tcell events into game intents. It holds no game
// state beyond mouse button edges.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Esc, Ctrl+C
	IntentPause   // p
	IntentShare   // s toggles the share overlay
	IntentRestart // r
	IntentResize  // Terminal resize event
	IntentMusic   // m toggles background music

	// Wall game
	IntentMove    // arrows/hjkl, DX/DY in cells
	IntentRotate  // space toggles split direction
	IntentSplit   // enter splits at the cursor
	IntentSplitAt // mouse click splits at X/Y cell; Auto picks the direction

	// Paddle game
	IntentPaddleMove // DX is -1 or +1
	IntentDragStart  // X cell
	IntentDrag       // X cell
	IntentDragEnd
)

// Intent is one translated input
type Intent struct {
	Type IntentType
	DX   int
	DY   int
	X    int // Screen cell for mouse intents
	Y    int
	Auto bool // SplitAt: nearer-edge direction when true, perpendicular when false
}

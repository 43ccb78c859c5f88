package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for one game variant
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// systemKeys are shared by every variant
func systemKeys() KeyTable {
	return KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'p': {Type: IntentPause},
			's': {Type: IntentShare},
			'r': {Type: IntentRestart},
			'm': {Type: IntentMusic},
		},
	}
}

// WallKeys is the key table for the wall game
func WallKeys() KeyTable {
	kt := systemKeys()
	kt.SpecialKeys[tcell.KeyLeft] = Intent{Type: IntentMove, DX: -1}
	kt.SpecialKeys[tcell.KeyRight] = Intent{Type: IntentMove, DX: 1}
	kt.SpecialKeys[tcell.KeyUp] = Intent{Type: IntentMove, DY: -1}
	kt.SpecialKeys[tcell.KeyDown] = Intent{Type: IntentMove, DY: 1}
	kt.SpecialKeys[tcell.KeyEnter] = Intent{Type: IntentSplit}

	kt.Runes['h'] = Intent{Type: IntentMove, DX: -1}
	kt.Runes['l'] = Intent{Type: IntentMove, DX: 1}
	kt.Runes['k'] = Intent{Type: IntentMove, DY: -1}
	kt.Runes['j'] = Intent{Type: IntentMove, DY: 1}
	kt.Runes['H'] = Intent{Type: IntentMove, DX: -5}
	kt.Runes['L'] = Intent{Type: IntentMove, DX: 5}
	kt.Runes['K'] = Intent{Type: IntentMove, DY: -5}
	kt.Runes['J'] = Intent{Type: IntentMove, DY: 5}
	kt.Runes[' '] = Intent{Type: IntentRotate}
	return kt
}

// PaddleKeys is the key table for the paddle game
func PaddleKeys() KeyTable {
	kt := systemKeys()
	kt.SpecialKeys[tcell.KeyLeft] = Intent{Type: IntentPaddleMove, DX: -1}
	kt.SpecialKeys[tcell.KeyRight] = Intent{Type: IntentPaddleMove, DX: 1}
	kt.Runes['a'] = Intent{Type: IntentPaddleMove, DX: -1}
	kt.Runes['A'] = Intent{Type: IntentPaddleMove, DX: -1}
	kt.Runes['d'] = Intent{Type: IntentPaddleMove, DX: 1}
	kt.Runes['D'] = Intent{Type: IntentPaddleMove, DX: 1}
	kt.Runes[' '] = Intent{Type: IntentPause}
	return kt
}

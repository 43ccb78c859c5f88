package input

import "github.com/gdamore/tcell/v2"

// Mode selects mouse semantics
type Mode uint8

const (
	ModeWall Mode = iota
	ModePaddle
)

// Translator converts tcell events to intents. Not safe for concurrent use
type Translator struct {
	mode    Mode
	keys    KeyTable
	buttons tcell.ButtonMask // Buttons held at the previous mouse event
}

// NewTranslator creates a translator with the default table for mode
func NewTranslator(mode Mode) *Translator {
	keys := WallKeys()
	if mode == ModePaddle {
		keys = PaddleKeys()
	}
	return &Translator{mode: mode, keys: keys}
}

// Translate maps one event. Unbound input yields IntentNone
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (t *Translator) key(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if in, ok := t.keys.Runes[ev.Rune()]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := t.keys.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}

func (t *Translator) mouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	now := ev.Buttons()
	pressed := now &^ t.buttons
	released := t.buttons &^ now
	t.buttons = now

	if t.mode == ModePaddle {
		switch {
		case pressed&tcell.Button1 != 0:
			return Intent{Type: IntentDragStart, X: x, Y: y}
		case released&tcell.Button1 != 0:
			return Intent{Type: IntentDragEnd, X: x, Y: y}
		case now&tcell.Button1 != 0:
			return Intent{Type: IntentDrag, X: x, Y: y}
		}
		return Intent{}
	}

	switch {
	case pressed&tcell.Button1 != 0:
		return Intent{Type: IntentSplitAt, X: x, Y: y, Auto: true}
	case pressed&tcell.Button2 != 0:
		return Intent{Type: IntentSplitAt, X: x, Y: y}
	}
	return Intent{}
}

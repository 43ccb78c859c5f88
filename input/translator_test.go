package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestWallKeys(t *testing.T) {
	tr := NewTranslator(ModeWall)
	cases := []struct {
		ev   tcell.Event
		want Intent
	}{
		{key(tcell.KeyLeft), Intent{Type: IntentMove, DX: -1}},
		{char('j'), Intent{Type: IntentMove, DY: 1}},
		{char('L'), Intent{Type: IntentMove, DX: 5}},
		{char(' '), Intent{Type: IntentRotate}},
		{key(tcell.KeyEnter), Intent{Type: IntentSplit}},
		{char('p'), Intent{Type: IntentPause}},
		{char('s'), Intent{Type: IntentShare}},
		{char('r'), Intent{Type: IntentRestart}},
		{char('m'), Intent{Type: IntentMusic}},
		{char('q'), Intent{Type: IntentQuit}},
		{key(tcell.KeyEscape), Intent{Type: IntentQuit}},
		{key(tcell.KeyCtrlC), Intent{Type: IntentQuit}},
		{char('z'), Intent{}},
		{key(tcell.KeyF5), Intent{}},
		{tcell.NewEventResize(100, 40), Intent{Type: IntentResize}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tr.Translate(tc.ev))
	}
}

func TestPaddleKeys(t *testing.T) {
	tr := NewTranslator(ModePaddle)
	assert.Equal(t, Intent{Type: IntentPaddleMove, DX: -1}, tr.Translate(char('a')))
	assert.Equal(t, Intent{Type: IntentPaddleMove, DX: 1}, tr.Translate(char('D')))
	assert.Equal(t, Intent{Type: IntentPaddleMove, DX: 1}, tr.Translate(key(tcell.KeyRight)))
	assert.Equal(t, Intent{Type: IntentPause}, tr.Translate(char(' ')))
	assert.Equal(t, Intent{Type: IntentMusic}, tr.Translate(char('m')))
	assert.Equal(t, Intent{}, tr.Translate(char('h')))
}

func TestWallMouseFiresOnPressOnly(t *testing.T) {
	tr := NewTranslator(ModeWall)

	assert.Equal(t, Intent{Type: IntentSplitAt, X: 10, Y: 5, Auto: true}, tr.Translate(mouse(10, 5, tcell.Button1)))
	assert.Equal(t, Intent{}, tr.Translate(mouse(11, 5, tcell.Button1)), "held button does not repeat")
	assert.Equal(t, Intent{}, tr.Translate(mouse(11, 5, tcell.ButtonNone)))

	assert.Equal(t, Intent{Type: IntentSplitAt, X: 3, Y: 4}, tr.Translate(mouse(3, 4, tcell.Button2)))
}

func TestPaddleMouseDrag(t *testing.T) {
	tr := NewTranslator(ModePaddle)
	assert.Equal(t, IntentNone, tr.Translate(mouse(1, 1, tcell.ButtonNone)).Type)
	assert.Equal(t, Intent{Type: IntentDragStart, X: 20, Y: 18}, tr.Translate(mouse(20, 18, tcell.Button1)))
	assert.Equal(t, Intent{Type: IntentDrag, X: 25, Y: 18}, tr.Translate(mouse(25, 18, tcell.Button1)))
	assert.Equal(t, Intent{Type: IntentDragEnd, X: 26, Y: 18}, tr.Translate(mouse(26, 18, tcell.ButtonNone)))
}

package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// musicNote is one step of the background loop
const musicNote = 180 * time.Millisecond

// musicBars is a I-vi-IV-V progression in C, one broken chord per bar
var musicBars = [][]float64{
	{261.63, 329.63, 392.00, 329.63}, // C
	{220.00, 261.63, 329.63, 261.63}, // Am
	{174.61, 220.00, 261.63, 220.00}, // F
	{196.00, 246.94, 293.66, 246.94}, // G
}

// music is the looping background track. Ctrl pauses it in place so the
// voice stays in the mixer; vol is adjusted live
type music struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
}

// newMusic renders one pass of the progression into a buffer and loops it forever
func newMusic(rate beep.SampleRate, volume float64) (*music, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	for _, bar := range musicBars {
		s, err := arpeggio(rate, musicNote, bar...)
		if err != nil {
			return nil, fmt.Errorf("music: %w", err)
		}
		buf.Append(s)
	}

	vol := &effects.Volume{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())), Base: 2}
	m := &music{vol: vol, ctrl: &beep.Ctrl{Streamer: vol}}
	m.setVolume(volume)
	return m, nil
}

// setVolume applies a linear level. Caller holds the speaker lock when live
func (m *music) setVolume(v float64) {
	if v <= 0 {
		m.vol.Silent = true
		return
	}
	m.vol.Silent = false
	m.vol.Volume = math.Log2(v)
}

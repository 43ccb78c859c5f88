package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/MansourDch/jezzball-clone/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sweeping frequency
type oscillator struct {
	from, to float64 // Start and end frequency
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(from*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Log2(0) is -Inf, so zero volume is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped oscillator
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, defaultAttack, defaultRelease, rate)
}

// chime is a pure sine note from the beep generators, shaped like tone
func chime(freq float64, d time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %gHz: %w", freq, err)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, defaultAttack, d/2, rate), nil
}

// arpeggio plays sine notes back to back
func arpeggio(rate beep.SampleRate, d time.Duration, freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		n, err := chime(f, d, rate)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return beep.Seq(notes...), nil
}

// Build creates a ready-to-play effect at the given linear volume
func Build(t SoundType, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch t {
	case SoundBounce:
		s = newVolume(tone(660, bounceDuration, WaveSquare, rate), 0.25)
	case SoundSplitStart:
		s = newVolume(NewEnvelope(NewSweep(300, 600, startDuration, WaveSine, rate), startDuration, defaultAttack, defaultRelease, rate), 0.5)
	case SoundSplitComplete:
		s, err = arpeggio(rate, completeNote, 523.25, 783.99) // C5 G5
	case SoundSplitFail:
		noise := NewEnvelope(NewOscillator(0, failDuration, WaveNoise, rate), failDuration, defaultAttack, failDuration/2, rate)
		buzz := NewEnvelope(NewSweep(180, 60, failDuration, WaveSaw, rate), failDuration, defaultAttack, failDuration/2, rate)
		s = beep.Mix(newVolume(noise, 0.3), newVolume(buzz, 0.5))
	case SoundLevelUp:
		s, err = arpeggio(rate, levelUpNote, 523.25, 659.25, 783.99, 1046.50) // C5 E5 G5 C6
	case SoundGameOver:
		s, err = arpeggio(rate, gameOverNote, 392.00, 311.13, 261.63) // G4 Eb4 C4
	case SoundPaddleHit:
		s = newVolume(tone(440, paddleDuration, WaveSine, rate), 0.6)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, t)
	}
	if err != nil {
		return nil, err
	}
	return newVolume(s, volume), nil
}

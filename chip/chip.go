// Package chip turns sound-chip oscillator registers into discrete
// note observations, one voice at a time.
package chip

import (
	"chiproll/notes"
)

// Registers is the per-voice oscillator state sampled at one tick:
// the raw timer period, the length counter (0 = silenced) and the
// current envelope/DAC amplitude. Amplitude may be negative on
// sources that report signed DAC deltas; only its magnitude matters.
type Registers struct {
	Period    int
	Length    int
	Amplitude int
}

// Voice describes one channel of a sound chip and how to classify it.
type Voice struct {
	Name string
	Kind Kind

	// Melodic voices only.
	Clock     float64 // reference clock driving the timer, Hz
	Divider   int     // period→frequency divider: f = Clock/(Divider*(P+1))
	MinPeriod int     // periods below this are ultrasonic, treated as mute

	// Amplitude normalization ceiling (15 for 4-bit volumes, 127 for
	// the DMC DAC, 31 for the VRC6 saw accumulator).
	MaxAmp int

	// SamplePlayback voices only: the note shown while active.
	FixedNote notes.Note
}

// Classify maps one tick of register state to a (note, velocity)
// observation. A silent voice yields (notes.None, 0); this is regular
// steady-state output, never an error.
func (v Voice) Classify(r Registers) (notes.Note, float64) {
	amp := r.Amplitude
	if amp < 0 {
		amp = -amp
	}
	if r.Length == 0 || amp == 0 {
		return notes.None, 0
	}

	switch v.Kind {
	case Melodic:
		// Explicit mute below MinPeriod: such periods produce
		// ultrasonic frequencies, not quantizable notes.
		if r.Period < v.MinPeriod {
			return notes.None, 0
		}
		freq := v.Clock / (float64(v.Divider) * float64(r.Period+1))
		n := notes.FromFrequency(freq)
		if n == notes.None {
			return notes.None, 0
		}
		return n, v.velocity(amp)

	case Noise:
		// The 4-bit pitch setting maps inversely onto C2..D#3: a
		// shorter period sounds "higher". Rhythm display only.
		idx := r.Period & 0x0F
		return notes.Note(36 + (15 - idx)), v.velocity(amp)

	case SamplePlayback:
		return v.FixedNote, v.velocity(amp)
	}

	// RawPCM voices are fed from audio analysis, not registers.
	return notes.None, 0
}

func (v Voice) velocity(amp int) float64 {
	return min(1, float64(amp)/float64(v.MaxAmp))
}

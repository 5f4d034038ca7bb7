// Package notes quantizes frequencies to discrete 12-TET pitches and
// answers keyboard-layout questions about them.
package notes

import (
	"math"
	"strconv"
)

// Note is a pitch in twelve-tone equal temperament, numbered 0 to 127
// with 69 = A4 = 440 Hz. None means "no note".
type Note int

const None Note = -1

// A4 is the reference pitch.
const (
	refNote Note    = 69
	refFreq float64 = 440.0
)

// FromFrequency quantizes a frequency to the nearest semitone.
// Returns None for non-positive frequencies and for pitches outside
// the 0..127 range. Rounding is half away from zero.
func FromFrequency(freq float64) Note {
	if freq <= 0 {
		return None
	}
	n := Note(math.Round(float64(refNote) + 12*math.Log2(freq/refFreq)))
	if !n.Valid() {
		return None
	}
	return n
}

// Frequency is the exact inverse of FromFrequency at semitone centers.
// Diagnostics and tests only, not used on the classification path.
func (n Note) Frequency() float64 {
	return refFreq * math.Pow(2, float64(n-refNote)/12)
}

func (n Note) Valid() bool {
	return n >= 0 && n <= 127
}

// IsBlack reports whether the note is a black key. With C = 0, the
// black keys of an octave sit at positions 1, 3, 6, 8 and 10.
func (n Note) IsBlack() bool {
	switch n.PosInOctave() {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// Octave follows the usual numbering where note 60 is C4.
func (n Note) Octave() int {
	return int(n)/12 - 1
}

// PosInOctave is the chromatic position within the octave, 0 = C.
func (n Note) PosInOctave() int {
	return int(n) % 12
}

// Count of white keys before each chromatic position.
var whiteOffsets = [12]int{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 6}

// WhiteIndex is the index of the note among white keys only (black
// keys share the index of the white key below). Used for keyboard
// geometry.
func (n Note) WhiteIndex() int {
	return (int(n)/12)*7 + whiteOffsets[n.PosInOctave()]
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (n Note) String() string {
	if !n.Valid() {
		return "-"
	}
	return noteNames[n.PosInOctave()] + strconv.Itoa(n.Octave())
}

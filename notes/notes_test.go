package notes

import (
	"math"
	"testing"
)

func TestFromFrequencyRoundTrip(t *testing.T) {
	for n := Note(0); n <= 127; n++ {
		if got := FromFrequency(n.Frequency()); got != n {
			t.Errorf("FromFrequency(%v.Frequency()) = %v", n, got)
		}
	}
}

func TestFromFrequencyInvalid(t *testing.T) {
	for _, freq := range []float64{0, -1, -440, math.Inf(-1)} {
		if got := FromFrequency(freq); got != None {
			t.Errorf("FromFrequency(%v) = %v, want None", freq, got)
		}
	}

	// Out of the 0..127 note range.
	if got := FromFrequency(1); got != None {
		t.Errorf("FromFrequency(1 Hz) = %v, want None", got)
	}
	if got := FromFrequency(30000); got != None {
		t.Errorf("FromFrequency(30 kHz) = %v, want None", got)
	}
}

func TestFromFrequencyMidpoints(t *testing.T) {
	// Just below and above the midpoint between A4 and A#4. The
	// midpoint in note space is 69.5, i.e. 440*2^(0.5/12) Hz.
	mid := 440 * math.Pow(2, 0.5/12)

	if got := FromFrequency(mid * 0.9999); got != 69 {
		t.Errorf("just below midpoint: got %v, want A4 (69)", got)
	}
	if got := FromFrequency(mid * 1.0001); got != 70 {
		t.Errorf("just above midpoint: got %v, want A#4 (70)", got)
	}
}

func TestIsBlackOctavePeriodicity(t *testing.T) {
	for n := Note(0); n <= 127-12; n++ {
		if n.IsBlack() != (n + 12).IsBlack() {
			t.Errorf("IsBlack(%d) != IsBlack(%d)", n, n+12)
		}
	}
}

func TestKeyboardGeometry(t *testing.T) {
	tests := []struct {
		note   Note
		name   string
		octave int
		pos    int
		black  bool
	}{
		{60, "C4", 4, 0, false},
		{61, "C#4", 4, 1, true},
		{69, "A4", 4, 9, false},
		{0, "C-1", -1, 0, false},
		{127, "G9", 9, 7, false},
		{28, "E1", 1, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.note.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.note.Octave(); got != tt.octave {
				t.Errorf("Octave() = %d, want %d", got, tt.octave)
			}
			if got := tt.note.PosInOctave(); got != tt.pos {
				t.Errorf("PosInOctave() = %d, want %d", got, tt.pos)
			}
			if got := tt.note.IsBlack(); got != tt.black {
				t.Errorf("IsBlack() = %v, want %v", got, tt.black)
			}
		})
	}
}

func TestWhiteIndex(t *testing.T) {
	// An octave has 7 white keys: two consecutive Cs are 7 apart.
	if d := Note(72).WhiteIndex() - Note(60).WhiteIndex(); d != 7 {
		t.Errorf("white keys per octave = %d, want 7", d)
	}
	// E and F are adjacent white keys.
	if d := Note(65).WhiteIndex() - Note(64).WhiteIndex(); d != 1 {
		t.Errorf("F4 - E4 white index = %d, want 1", d)
	}
	// A black key shares the index of the white key below it.
	if Note(61).WhiteIndex() != Note(60).WhiteIndex() {
		t.Error("C#4 should share C4's white index")
	}
}

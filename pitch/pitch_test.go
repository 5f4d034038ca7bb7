package pitch

import (
	"math"
	"testing"
)

func sine(freq float64, rate, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return buf
}

func TestDetectSine(t *testing.T) {
	const rate = 44100

	for _, freq := range []float64{110, 220, 440, 1000} {
		got := Detect(sine(freq, rate, 2048), rate)
		if got == 0 {
			t.Fatalf("no pitch detected for %v Hz sine", freq)
		}
		if relerr := math.Abs(got-freq) / freq; relerr > 0.02 {
			t.Errorf("detected %v Hz for a %v Hz sine (%.1f%% off)", got, freq, 100*relerr)
		}
	}
}

func TestDetectTooFewSamples(t *testing.T) {
	if got := Detect(sine(440, 44100, MinWindow-1), 44100); got != 0 {
		t.Errorf("Detect on short window = %v, want 0", got)
	}
	if got := Detect(nil, 44100); got != 0 {
		t.Errorf("Detect(nil) = %v, want 0", got)
	}
}

func TestDetectNoise(t *testing.T) {
	// A deterministic uncorrelated signal should not clear the
	// correlation threshold.
	buf := make([]float64, 1024)
	seed := uint64(0x9E3779B97F4A7C15)
	for i := range buf {
		seed = seed*6364136223846793005 + 1442695040888963407
		buf[i] = float64(int32(seed>>33))/float64(1<<31) - 0.5
	}
	if got := Detect(buf, 44100); got != 0 {
		t.Errorf("Detect on noise = %v, want 0", got)
	}
}

func TestDetectSilence(t *testing.T) {
	if got := Detect(make([]float64, 1024), 44100); got != 0 {
		t.Errorf("Detect on silence = %v, want 0", got)
	}
}

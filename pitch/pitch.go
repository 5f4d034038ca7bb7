// Package pitch estimates the dominant frequency of a mono sample
// window with normalized autocorrelation.
package pitch

import "math"

// MinWindow is the smallest sample window Detect accepts.
const MinWindow = 64

// Detectable frequency bounds, expressed as lag limits: lags shorter
// than rate/MaxFreq or longer than rate/MinFreq are not searched.
const (
	MinFreq = 50
	MaxFreq = 2000
)

// acceptance threshold on the normalized correlation peak.
const minCorrelation = 0.5

// Detect returns the dominant frequency of samples, or 0 when the
// window is too small or no lag correlates strongly enough.
//
// Cost is O(len(samples) * lag range), which makes this the dominant
// cost of the raw-audio path. Callers on a real-time deadline must
// bound the window size and keep this out of any shared critical
// section.
func Detect(samples []float64, sampleRate int) float64 {
	if len(samples) < MinWindow {
		return 0
	}

	minLag := sampleRate / MaxFreq
	maxLag := min(len(samples)/2, sampleRate/MinFreq)

	bestCorr := 0.0
	bestLag := 0

	for lag := minLag; lag < maxLag; lag++ {
		var corr, energy1, energy2 float64
		for i := 0; i < len(samples)-lag; i++ {
			corr += samples[i] * samples[i+lag]
			energy1 += samples[i] * samples[i]
			energy2 += samples[i+lag] * samples[i+lag]
		}

		if energy1 > 0 && energy2 > 0 {
			corr /= math.Sqrt(energy1 * energy2)
			if corr > bestCorr {
				bestCorr = corr
				bestLag = lag
			}
		}
	}

	if bestCorr > minCorrelation && bestLag > 0 {
		return float64(sampleRate) / float64(bestLag)
	}
	return 0
}

package chip

// NTSCClock is the NTSC CPU clock rate, which also drives the APU
// oscillator timers.
const NTSCClock = 1789773.0

// dmcNote is shown while the sample channel plays: E1, low enough to
// sit under everything melodic.
const dmcNote = 28

// APUVoices is the fixed five-channel layout of the 2A03 APU. Voice
// order is the canonical one (pulse 1, pulse 2, triangle, noise, DMC)
// and doubles as the channel index.
func APUVoices() []Voice {
	return []Voice{
		{Name: "Sq1", Kind: Melodic, Clock: NTSCClock, Divider: 16, MinPeriod: 8, MaxAmp: 15},
		{Name: "Sq2", Kind: Melodic, Clock: NTSCClock, Divider: 16, MinPeriod: 8, MaxAmp: 15},
		{Name: "Tri", Kind: Melodic, Clock: NTSCClock, Divider: 16, MinPeriod: 8, MaxAmp: 15},
		{Name: "Noi", Kind: Noise, MaxAmp: 15},
		{Name: "DMC", Kind: SamplePlayback, MaxAmp: 127, FixedNote: dmcNote},
	}
}

// VRC6Voices is the three-channel layout of the VRC6 expansion chip.
// The saw channel steps its 5-bit accumulator every 14 clocks instead
// of the pulse channels' 16.
func VRC6Voices() []Voice {
	return []Voice{
		{Name: "V1", Kind: Melodic, Clock: NTSCClock, Divider: 16, MinPeriod: 8, MaxAmp: 15},
		{Name: "V2", Kind: Melodic, Clock: NTSCClock, Divider: 16, MinPeriod: 8, MaxAmp: 15},
		{Name: "Saw", Kind: Melodic, Clock: NTSCClock, Divider: 14, MinPeriod: 8, MaxAmp: 31},
	}
}

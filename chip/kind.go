package chip

// Kind discriminates the classification behavior of a voice. Adding a
// chip means adding voices of existing kinds (or a new kind with its
// own Classify arm), never index-based special cases.
type Kind uint8

//go:generate go tool stringer -type=Kind

const (
	// Melodic voices derive a true pitch from their period register.
	Melodic Kind = iota
	// Noise voices map their 4-bit pitch setting to a fixed low
	// range, as a rhythmic indicator only.
	Noise
	// SamplePlayback voices show one fixed note while a sample plays;
	// there is no pitch information to recover.
	SamplePlayback
	// RawPCM marks the voice populated by audio analysis when no
	// chip registers are available.
	RawPCM
)

// Package source feeds the note tracker: either raw PCM from a file
// or stdin, or a built-in register-level demo tune. Sources run on
// the producer side; the UI never touches them.
package source

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	log "chiproll/logger"
)

// A Source produces audio blocks and pushes the matching note
// observations into its tracker.
type Source interface {
	// Step produces one block and returns its duration, so the
	// caller can pace the producer loop. ok is false at end of
	// stream.
	Step() (d time.Duration, ok bool)

	// Now is the current transport time in seconds, safe to read
	// from the UI goroutine while the producer steps.
	Now() float64

	Close()
}

// transport publishes the producer's transport time to other
// goroutines.
type transport struct {
	bits atomic.Uint64
}

func (t *transport) set(now float64) {
	t.bits.Store(math.Float64bits(now))
}

func (t *transport) Now() float64 {
	return math.Float64frombits(t.bits.Load())
}

const audioBufferSize = 4096

// audioOut wraps one SDL playback device fed with interleaved s16le
// stereo blocks.
type audioOut struct {
	dev sdl.AudioDeviceID
}

func openAudioOut(sampleRate int) (*audioOut, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl audio init: %w", err)
	}

	spec := sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  audioBufferSize,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	sdl.PauseAudioDevice(dev, false)

	log.ModSource.InfoZ("audio device opened").
		Int("rate", sampleRate).
		End()
	return &audioOut{dev: dev}, nil
}

// queue hands an interleaved stereo block to SDL. Best effort: a full
// queue is logged, not fatal.
func (a *audioOut) queue(samples []int16) {
	if len(samples) == 0 {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*2)
	cpy := make([]byte, len(buf))
	copy(cpy, buf)

	if err := sdl.QueueAudio(a.dev, cpy); err != nil {
		log.ModSource.DebugZ("failed to queue audio buffer").Error(err).End()
	}
}

func (a *audioOut) close() {
	sdl.CloseAudioDevice(a.dev)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}

package source

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "chiproll/logger"
	"chiproll/roll"
)

// PCM reads headerless interleaved signed 16-bit little-endian stereo
// samples from a file or stdin, plays them back and feeds each block
// through the tracker's raw-audio fallback path.
type PCM struct {
	tracker *roll.Tracker
	rd      io.Reader
	file    *os.File // nil when reading stdin
	out     *audioOut

	rate   int
	frames int // frames per block

	raw     []byte
	samples []int16
	now     float64
	transport
}

// NewPCM opens path ("-" for stdin). With play false no audio device
// is opened and the stream is only analyzed.
func NewPCM(path string, tracker *roll.Tracker, sampleRate, blockFrames int, play bool) (*PCM, error) {
	p := &PCM{
		tracker: tracker,
		rate:    sampleRate,
		frames:  blockFrames,
		raw:     make([]byte, blockFrames*2*2),
		samples: make([]int16, blockFrames*2),
	}

	if path == "-" {
		p.rd = bufio.NewReader(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		p.file = f
		p.rd = bufio.NewReader(f)
	}

	if play {
		out, err := openAudioOut(sampleRate)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.out = out
	}

	log.ModSource.InfoZ("pcm source").
		String("path", path).
		Int("rate", sampleRate).
		Int("block", blockFrames).
		End()
	return p, nil
}

func (p *PCM) Step() (time.Duration, bool) {
	n, err := io.ReadFull(p.rd, p.raw)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if !errors.Is(err, io.EOF) {
			log.ModSource.Errorf("pcm read: %v", err)
		}
		return 0, false
	}

	nsamples := n / 2
	for i := 0; i < nsamples; i++ {
		p.samples[i] = int16(binary.LittleEndian.Uint16(p.raw[i*2:]))
	}
	block := p.samples[:nsamples]

	if p.out != nil {
		p.out.queue(block)
	}
	p.tracker.ApplyAudio(block, p.rate, p.now)

	d := time.Duration(float64(nsamples/2) / float64(p.rate) * float64(time.Second))
	p.now += d.Seconds()
	p.transport.set(p.now)

	// A short read means the stream ends after this block.
	return d, n == len(p.raw)
}

func (p *PCM) Close() {
	if p.out != nil {
		p.out.close()
	}
	if p.file != nil {
		p.file.Close()
	}
}

// Analyze runs the whole stream through the tracker without playback
// or pacing, publishing advisory progress when the stream size is
// known.
func (p *PCM) Analyze() error {
	var total int64
	if p.file != nil {
		fi, err := p.file.Stat()
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		total = fi.Size()
	}

	var done int64
	for ok := true; ok; {
		_, ok = p.Step()
		done += int64(len(p.raw))
		if total > 0 {
			p.tracker.SetProgress(min(1, float64(done)/float64(total)))
		}
	}
	p.tracker.SetProgress(1)
	return nil
}

package source

import (
	"math"
	"time"

	"github.com/arl/blip"

	"chiproll/chip"
	log "chiproll/logger"
	"chiproll/notes"
	"chiproll/roll"
)

// Demo pacing: one register tick per NTSC video frame.
const (
	frameClocks    = 29780
	framesPerStep  = 8
	demoSampleRate = 44100
)

// synthesis scale per amplitude unit.
const demoGain = 40

// Demo drives the tracker from a small built-in register-level tune,
// so the chip classification path can be seen (and heard) without an
// emulator attached. Square-wave synthesis only: good enough for a
// test signal.
type Demo struct {
	tracker *roll.Tracker
	voices  []chip.Voice
	regs    []chip.Registers
	obs     []roll.Observation
	synth   []synthVoice

	out    *audioOut
	buf    *blip.Buffer
	outbuf []int16

	frame int
	now   float64
	transport
}

type synthVoice struct {
	phase int   // clocks carried into the next frame
	high  bool  // current square polarity
	level int32 // last level handed to the blip buffer
}

func NewDemo(tracker *roll.Tracker, expansion bool, play bool) (*Demo, error) {
	voices := chip.APUVoices()
	if expansion {
		voices = append(voices, chip.VRC6Voices()...)
	}

	d := &Demo{
		tracker: tracker,
		voices:  voices,
		regs:    make([]chip.Registers, len(voices)),
		obs:     make([]roll.Observation, len(voices)),
		synth:   make([]synthVoice, len(voices)),
		buf:     blip.NewBuffer(demoSampleRate / 10),
		outbuf:  make([]int16, demoSampleRate/10*2),
	}
	d.buf.SetRates(chip.NTSCClock, demoSampleRate)

	if play {
		out, err := openAudioOut(demoSampleRate)
		if err != nil {
			return nil, err
		}
		d.out = out
	}

	log.ModSource.InfoZ("demo source").
		Int("voices", len(voices)).
		Bool("expansion", expansion).
		End()
	return d, nil
}

func (d *Demo) Step() (time.Duration, bool) {
	d.pattern()

	for i, v := range d.voices {
		note, vel := v.Classify(d.regs[i])
		d.obs[i] = roll.Observation{Note: note, Velocity: vel}
	}
	d.tracker.ApplyTick(d.obs, d.now)

	d.mix()

	d.frame++
	var dt = float64(frameClocks) / chip.NTSCClock
	d.now += dt
	d.transport.set(d.now)
	return time.Duration(dt * float64(time.Second)), true
}

// The tune: a looping E-minor arpeggio with an echoing second square,
// a bass triangle and an offbeat noise tick. Nothing fancy, but it
// exercises onsets, sustains, note changes and releases on every
// voice kind.
var (
	demoMelody = []notes.Note{64, 67, 71, 76, 67, 71, 76, 79, 64, 67, 71, 76, 71, 76, 79, 83}
	demoBass   = []notes.Note{40, 40, 43, 45}
)

func (d *Demo) pattern() {
	step := d.frame / framesPerStep
	pos := d.frame % framesPerStep

	// Sq1 leads; a plucky decay across the step refreshes the
	// sustain velocity without re-triggering.
	melody := demoMelody[step%len(demoMelody)]
	d.regs[0] = chip.Registers{
		Period:    d.periodFor(0, melody),
		Length:    1,
		Amplitude: 14 - pos,
	}

	// Sq2 echoes one step behind, an octave down and quieter.
	if step > 0 {
		echo := demoMelody[(step-1)%len(demoMelody)] - 12
		d.regs[1] = chip.Registers{
			Period:    d.periodFor(1, echo),
			Length:    1,
			Amplitude: 7 - pos/2,
		}
	}

	// Triangle holds the bass root for four steps.
	bass := demoBass[(step/4)%len(demoBass)]
	d.regs[2] = chip.Registers{
		Period:    d.periodFor(2, bass),
		Length:    1,
		Amplitude: 12,
	}

	// Noise ticks on the offbeat, short.
	d.regs[3] = chip.Registers{}
	if step%2 == 1 && pos < 2 {
		d.regs[3] = chip.Registers{Period: 12, Length: 1, Amplitude: 10}
	}

	// DMC stays idle; its slot still goes through classification.
	d.regs[4] = chip.Registers{}

	// Expansion voices, when present: a sustained fifth pad and a
	// slow saw bass.
	if len(d.voices) > 5 {
		d.regs[5] = chip.Registers{Period: d.periodFor(5, 71), Length: 1, Amplitude: 4}
		d.regs[6] = chip.Registers{Period: d.periodFor(6, 76), Length: 1, Amplitude: 4}
		d.regs[7] = chip.Registers{Period: d.periodFor(7, bass+12), Length: 1, Amplitude: 16}
	}
}

// periodFor inverts the voice's period→frequency relation so the
// classifier lands exactly on the wanted note.
func (d *Demo) periodFor(voice int, n notes.Note) int {
	v := d.voices[voice]
	return int(math.Round(v.Clock/(float64(v.Divider)*n.Frequency()))) - 1
}

// mix renders one frame of square waves through the blip buffer and
// queues it, duplicating mono onto both stereo channels.
func (d *Demo) mix() {
	for i, v := range d.voices {
		if v.Kind != chip.Melodic {
			continue
		}
		sv := &d.synth[i]
		r := d.regs[i]

		if r.Length == 0 || r.Amplitude == 0 || r.Period < v.MinPeriod {
			if sv.level != 0 {
				d.buf.AddDelta(0, -sv.level)
				sv.level = 0
			}
			continue
		}

		half := v.Divider * (r.Period + 1) / 2
		amp := int32(r.Amplitude * demoGain)

		t := sv.phase
		for ; t < frameClocks; t += half {
			sv.high = !sv.high
			target := -amp
			if sv.high {
				target = amp
			}
			d.buf.AddDelta(uint64(t), target-sv.level)
			sv.level = target
		}
		sv.phase = t - frameClocks
	}

	d.buf.EndFrame(frameClocks)

	if d.out == nil {
		d.buf.ReadSamples(d.outbuf, d.buf.SamplesAvailable(), blip.Stereo)
		return
	}

	count := d.buf.ReadSamples(d.outbuf, d.buf.SamplesAvailable(), blip.Stereo)
	for i := 0; i < count*2; i += 2 {
		d.outbuf[i+1] = d.outbuf[i]
	}
	d.out.queue(d.outbuf[:count*2])
}

func (d *Demo) Close() {
	if d.out != nil {
		d.out.close()
	}
}

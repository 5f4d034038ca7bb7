// Package roll tracks per-channel note observations over time and
// maintains the bounded event history behind the piano-roll display.
//
// A Tracker is written by the audio/emulation thread (ApplyTick,
// ApplyAudio) and read by the UI thread (Snapshot, Window). All state
// lives behind a single mutex; the locking discipline is that every
// exported method is a complete critical section, and everything
// expensive (classification, pitch detection) happens before the lock
// is taken.
package roll

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	log "chiproll/logger"
	"chiproll/notes"
	"chiproll/pitch"
)

// MaxEvents bounds the history log. Eviction is FIFO over closed
// events; an event still sounding is never evicted, so the log may
// transiently hold up to MaxEvents + number-of-channels entries.
const MaxEvents = 2000

// MinVelocity is the activity threshold: at or below it a channel is
// silent no matter what note the classifier reported.
const MinVelocity = 0.05

// Raw-audio fallback tuning: empirical RMS gain, per-tick velocity
// decay for channels without real data, and the minimum raw sample
// count worth analyzing.
const (
	rmsGain       = 3.0
	fallbackDecay = 0.9
	minRawSamples = 128
)

// Display defaults.
const (
	DefaultRollSeconds = 4.0
	DefaultOctaveLow   = 2
	DefaultOctaveHigh  = 7
)

// Observation is one classifier output for one channel at one tick.
type Observation struct {
	Note     notes.Note
	Velocity float64
}

// ChannelState is the current snapshot of one channel. Note is
// notes.None and Active false whenever Velocity is at or below
// MinVelocity.
type ChannelState struct {
	Channel  int
	Note     notes.Note
	Velocity float64
	Active   bool
}

// Event is one piano-roll entry. While the note is still sounding,
// Active is true and Duration is 0; closing the event finalizes
// Duration and clears Active.
type Event struct {
	Channel  int
	Note     notes.Note
	Velocity float64 // velocity at onset, never rewritten
	Start    float64 // seconds, monotonic within a session
	Duration float64 // seconds, 0 while open
	Active   bool
}

// Tracker owns the shared visualization state.
type Tracker struct {
	mu     sync.Mutex
	states []ChannelState
	prev   []notes.Note // previous tick's sounding note per channel
	events []Event
	open   []int // per channel, index into events of the open event, -1 if none

	fallback int // channel fed by raw-audio analysis

	rollSeconds float64
	octaveLow   int
	octaveHigh  int

	// Advisory only (offline pre-analysis progress), deliberately
	// outside the mutex.
	progress atomic.Uint64
}

// New creates a Tracker for a fixed number of channels.
func New(numChannels int) *Tracker {
	t := &Tracker{
		states:      make([]ChannelState, numChannels),
		prev:        make([]notes.Note, numChannels),
		open:        make([]int, numChannels),
		rollSeconds: DefaultRollSeconds,
		octaveLow:   DefaultOctaveLow,
		octaveHigh:  DefaultOctaveHigh,
	}
	t.clearLocked()

	// Historically the triangle slot: the most melodic channel of the
	// primary chip layout.
	t.fallback = 0
	if numChannels > 2 {
		t.fallback = 2
	}
	return t
}

func (t *Tracker) NumChannels() int {
	return len(t.states)
}

// ApplyTick feeds one tick of classifier observations, one per
// channel, at transport time now (seconds).
func (t *Tracker) ApplyTick(obs []Observation, now float64) {
	if len(obs) != len(t.states) {
		panic(fmt.Sprintf("roll: %d observations for %d channels", len(obs), len(t.states)))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for ch, o := range obs {
		t.applyChannel(ch, o.Note, o.Velocity, now)
	}
}

// ApplyFrequencies feeds one tick of already-detected per-channel
// frequencies and normalized amplitudes, for collaborators that do
// their own spectral analysis. A frequency of 0 means silence.
func (t *Tracker) ApplyFrequencies(freqs, amps []float64, now float64) {
	if len(freqs) != len(t.states) || len(amps) != len(t.states) {
		panic(fmt.Sprintf("roll: %d/%d values for %d channels", len(freqs), len(amps), len(t.states)))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for ch := range freqs {
		t.applyChannel(ch, notes.FromFrequency(freqs[ch]), amps[ch], now)
	}
}

// ApplyAudio feeds a block of interleaved signed 16-bit stereo
// samples, for sources that expose no chip registers. The dominant
// pitch lands on the fallback channel; every other channel decays by
// a fixed factor per block until inactive. The decay is a heuristic
// stand-in for missing per-channel data, not a measured quantity.
//
// Mono conversion, RMS and autocorrelation all run before the lock is
// taken, so the critical section stays as short as a register tick.
func (t *Tracker) ApplyAudio(samples []int16, sampleRate int, now float64) {
	if len(samples) < minRawSamples {
		return
	}

	mono := make([]float64, len(samples)/2)
	for i := range mono {
		left := float64(samples[i*2]) / 32768
		right := float64(samples[i*2+1]) / 32768
		mono[i] = (left + right) * 0.5
	}

	var rms float64
	for _, s := range mono {
		rms += s * s
	}
	rms = math.Sqrt(rms / float64(len(mono)))

	freq := pitch.Detect(mono, sampleRate)
	note := notes.FromFrequency(freq)
	vel := min(1, rms*rmsGain)

	t.mu.Lock()
	defer t.mu.Unlock()

	for ch := range t.states {
		if ch == t.fallback {
			t.applyChannel(ch, note, vel, now)
		} else {
			// Re-observe the previous note at a decayed velocity; the
			// state machine closes the channel once it falls below
			// the threshold.
			t.applyChannel(ch, t.prev[ch], t.states[ch].Velocity*fallbackDecay, now)
		}
	}
}

// applyChannel runs the two-state (Silent/Sounding) transition for
// one channel. Caller holds t.mu.
func (t *Tracker) applyChannel(ch int, note notes.Note, vel float64, now float64) {
	if vel <= MinVelocity {
		note = notes.None
	}
	prev := t.prev[ch]

	switch {
	case note == notes.None:
		if prev != notes.None {
			t.closeEvent(ch, now)
		}
		t.prev[ch] = notes.None
		t.states[ch] = ChannelState{Channel: ch, Note: notes.None}

	case note == prev:
		// Sustain: refresh the displayed velocity, keep the onset
		// velocity recorded in the open event.
		t.states[ch].Velocity = vel

	default:
		if prev != notes.None {
			t.closeEvent(ch, now)
		}
		t.openEvent(ch, note, vel, now)
	}
}

// Caller holds t.mu.
func (t *Tracker) openEvent(ch int, note notes.Note, vel float64, now float64) {
	t.events = append(t.events, Event{
		Channel:  ch,
		Note:     note,
		Velocity: vel,
		Start:    now,
		Active:   true,
	})
	t.open[ch] = len(t.events) - 1
	t.prev[ch] = note
	t.states[ch] = ChannelState{Channel: ch, Note: note, Velocity: vel, Active: true}

	t.evictLocked()

	log.ModRoll.DebugZ("note on").
		Int("channel", ch).
		Stringer("note", note).
		Float64("velocity", vel).
		End()
}

// Caller holds t.mu.
func (t *Tracker) closeEvent(ch int, now float64) {
	idx := t.open[ch]
	if idx < 0 || !t.events[idx].Active {
		// Structurally unreachable: prev[ch] is only non-None while
		// an open event exists for ch.
		panic(fmt.Sprintf("roll: no open event for channel %d", ch))
	}
	ev := &t.events[idx]
	ev.Active = false
	ev.Duration = now - ev.Start
	t.open[ch] = -1

	log.ModRoll.DebugZ("note off").
		Int("channel", ch).
		Stringer("note", ev.Note).
		Float64("duration", ev.Duration).
		End()
}

// evictLocked drops the oldest closed events until the log is back
// under capacity. Open events are skipped, never dropped. Caller
// holds t.mu.
func (t *Tracker) evictLocked() {
	for len(t.events) > MaxEvents {
		victim := -1
		for i := range t.events {
			if !t.events[i].Active {
				victim = i
				break
			}
		}
		if victim == -1 {
			// Everything is open. At most one open event per channel
			// exists, so the overshoot is bounded by the channel
			// count.
			return
		}

		t.events = append(t.events[:victim], t.events[victim+1:]...)
		for ch := range t.open {
			if t.open[ch] > victim {
				t.open[ch]--
			}
		}
	}
}

// Snapshot returns a copy of the current per-channel states.
func (t *Tracker) Snapshot() []ChannelState {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]ChannelState, len(t.states))
	copy(out, t.states)
	return out
}

// Window returns a copy of the events that intersect the time range
// [now-seconds, now]. Open events extend to now.
func (t *Tracker) Window(now, seconds float64) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Event
	for _, ev := range t.events {
		end := ev.Start + ev.Duration
		if ev.Active {
			end = now
		}
		if end < now-seconds || ev.Start > now {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Events returns a copy of the whole history log, oldest first.
func (t *Tracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Reset clears all channel state and the history log in one critical
// section, so a concurrent reader never observes a partial clear.
// Display settings and the progress counter are unaffected.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearLocked()
}

func (t *Tracker) clearLocked() {
	for ch := range t.states {
		t.states[ch] = ChannelState{Channel: ch, Note: notes.None}
		t.prev[ch] = notes.None
		t.open[ch] = -1
	}
	t.events = t.events[:0]
}

// SetFallbackChannel selects the channel populated by ApplyAudio.
func (t *Tracker) SetFallbackChannel(ch int) error {
	if ch < 0 || ch >= len(t.states) {
		return fmt.Errorf("fallback channel %d out of range [0, %d)", ch, len(t.states))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallback = ch
	return nil
}

// SetRollSeconds sets the visible time window of the roll.
func (t *Tracker) SetRollSeconds(s float64) error {
	if s <= 0 {
		return fmt.Errorf("roll window must be positive, got %v", s)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollSeconds = s
	return nil
}

func (t *Tracker) RollSeconds() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rollSeconds
}

// SetOctaveRange sets the displayed octave span, low exclusive of
// high.
func (t *Tracker) SetOctaveRange(low, high int) error {
	if low >= high {
		return fmt.Errorf("invalid octave range [%d, %d]", low, high)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.octaveLow, t.octaveHigh = low, high
	return nil
}

func (t *Tracker) OctaveRange() (low, high int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.octaveLow, t.octaveHigh
}

// SetProgress publishes the advisory pre-analysis progress, 0 to 1.
// Lock-free on purpose: it is best-effort display data.
func (t *Tracker) SetProgress(p float64) {
	t.progress.Store(math.Float64bits(p))
}

func (t *Tracker) Progress() float64 {
	return math.Float64frombits(t.progress.Load())
}

package chip

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chiproll/notes"
)

func TestMelodicClassify(t *testing.T) {
	sq := APUVoices()[0]

	tests := []struct {
		name string
		regs Registers
		note notes.Note
		vel  float64
	}{
		// Period 253 at the NTSC clock is ~440.4 Hz, i.e. A4.
		{"a440", Registers{Period: 253, Length: 10, Amplitude: 15}, 69, 1},
		{"half volume", Registers{Period: 253, Length: 10, Amplitude: 7}, 69, 7.0 / 15},
		{"zero length", Registers{Period: 253, Length: 0, Amplitude: 15}, notes.None, 0},
		{"zero amplitude", Registers{Period: 253, Length: 10, Amplitude: 0}, notes.None, 0},
		{"ultrasonic", Registers{Period: 7, Length: 10, Amplitude: 15}, notes.None, 0},
		{"period zero", Registers{Period: 0, Length: 10, Amplitude: 15}, notes.None, 0},
		{"negative amplitude", Registers{Period: 253, Length: 10, Amplitude: -15}, 69, 1},
		{"amplitude over max", Registers{Period: 253, Length: 10, Amplitude: 99}, 69, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, vel := sq.Classify(tt.regs)
			if note != tt.note || vel != tt.vel {
				t.Errorf("Classify(%+v) = (%v, %v), want (%v, %v)",
					tt.regs, note, vel, tt.note, tt.vel)
			}
		})
	}
}

func TestNoiseClassify(t *testing.T) {
	noi := APUVoices()[3]

	// Shortest period setting maps to the top of the indicator range,
	// longest to the bottom.
	if note, _ := noi.Classify(Registers{Period: 0, Length: 1, Amplitude: 8}); note != 51 {
		t.Errorf("period 0: note %v, want 51", note)
	}
	if note, _ := noi.Classify(Registers{Period: 15, Length: 1, Amplitude: 8}); note != 36 {
		t.Errorf("period 15: note %v, want 36 (C2)", note)
	}
	// Only the low 4 bits are the pitch setting.
	if note, _ := noi.Classify(Registers{Period: 0x8F, Length: 1, Amplitude: 8}); note != 36 {
		t.Errorf("period 0x8F: note %v, want 36", note)
	}
	if note, vel := noi.Classify(Registers{Period: 5, Length: 0, Amplitude: 8}); note != notes.None || vel != 0 {
		t.Errorf("silenced noise: (%v, %v), want (None, 0)", note, vel)
	}
}

func TestSamplePlaybackClassify(t *testing.T) {
	dmc := APUVoices()[4]

	note, vel := dmc.Classify(Registers{Period: 0, Length: 100, Amplitude: 64})
	if note != 28 {
		t.Errorf("active DMC note = %v, want 28 (E1)", note)
	}
	if vel != 64.0/127 {
		t.Errorf("active DMC velocity = %v, want %v", vel, 64.0/127)
	}

	note, vel = dmc.Classify(Registers{Period: 0, Length: 0, Amplitude: 64})
	if note != notes.None || vel != 0 {
		t.Errorf("idle DMC = (%v, %v), want (None, 0)", note, vel)
	}
}

func TestLayouts(t *testing.T) {
	apu := APUVoices()
	if len(apu) != 5 {
		t.Fatalf("APU voice count = %d, want 5", len(apu))
	}
	vrc6 := VRC6Voices()
	if len(vrc6) != 3 {
		t.Fatalf("VRC6 voice count = %d, want 3", len(vrc6))
	}

	wantNames := []string{"Sq1", "Sq2", "Tri", "Noi", "DMC", "V1", "V2", "Saw"}
	var names []string
	for _, v := range append(apu, vrc6...) {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("voice names mismatch (-want +got):\n%s", diff)
	}

	// The saw channel steps every 14 clocks, so the same period
	// register sounds higher than on a pulse channel.
	saw := vrc6[2]
	pulse := vrc6[0]
	sawNote, _ := saw.Classify(Registers{Period: 300, Length: 1, Amplitude: 20})
	pulseNote, _ := pulse.Classify(Registers{Period: 300, Length: 1, Amplitude: 10})
	if sawNote <= pulseNote {
		t.Errorf("saw note %v should be above pulse note %v for equal periods", sawNote, pulseNote)
	}
}

func TestKindString(t *testing.T) {
	if got := SamplePlayback.String(); got != "SamplePlayback" {
		t.Errorf("String() = %q", got)
	}
}

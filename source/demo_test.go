package source

import (
	"testing"

	"chiproll/notes"
	"chiproll/roll"
)

func TestDemoFeedsTracker(t *testing.T) {
	tr := roll.New(5)
	d, err := NewDemo(tr, false, false)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	// Four pattern steps.
	for i := 0; i < 4*framesPerStep; i++ {
		if _, ok := d.Step(); !ok {
			t.Fatal("demo ended")
		}
	}

	states := tr.Snapshot()
	if !states[0].Active {
		t.Error("lead square silent")
	}
	if !states[2].Active {
		t.Error("bass triangle silent")
	}
	if states[4].Active {
		t.Error("DMC should stay idle")
	}

	// The lead must have hit the opening melody notes exactly: the
	// register stream is generated by inverting the classifier's own
	// period relation.
	var leadNotes []notes.Note
	for _, ev := range tr.Events() {
		if ev.Channel == 0 {
			leadNotes = append(leadNotes, ev.Note)
		}
	}
	want := []notes.Note{64, 67, 71, 76}
	if len(leadNotes) != len(want) {
		t.Fatalf("lead events = %v, want %v", leadNotes, want)
	}
	for i := range want {
		if leadNotes[i] != want[i] {
			t.Fatalf("lead events = %v, want %v", leadNotes, want)
		}
	}
}

func TestDemoExpansionVoices(t *testing.T) {
	tr := roll.New(8)
	d, err := NewDemo(tr, true, false)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	for i := 0; i < framesPerStep; i++ {
		d.Step()
	}

	states := tr.Snapshot()
	for _, ch := range []int{5, 6, 7} {
		if !states[ch].Active {
			t.Errorf("expansion channel %d silent", ch)
		}
	}
	if states[7].Note != 52 {
		t.Errorf("saw note = %v, want 52 (bass + octave)", states[7].Note)
	}
}

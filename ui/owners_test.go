package ui

import (
	"testing"

	"chiproll/notes"
	"chiproll/roll"
)

func TestNoteOwnersTieBreak(t *testing.T) {
	states := []roll.ChannelState{
		{Channel: 0, Note: 60, Velocity: 0.5, Active: true},
		{Channel: 1, Note: 60, Velocity: 0.5, Active: true},
		{Channel: 2, Note: 64, Velocity: 0.2, Active: true},
		{Channel: 3, Note: 64, Velocity: 0.9, Active: true},
		{Channel: 4, Note: notes.None, Active: false},
	}

	owner, vel := noteOwners(states)

	// Exact tie: the later channel wins.
	if owner[60] != 1 {
		t.Errorf("owner[60] = %d, want 1 (later channel on tie)", owner[60])
	}
	// Higher velocity wins regardless of order.
	if owner[64] != 3 || vel[64] != 0.9 {
		t.Errorf("owner[64] = %d vel %v, want channel 3 at 0.9", owner[64], vel[64])
	}
	// Untouched notes have no owner.
	if owner[61] != -1 {
		t.Errorf("owner[61] = %d, want -1", owner[61])
	}
}

func TestNoteOwnersDeterministic(t *testing.T) {
	states := []roll.ChannelState{
		{Channel: 0, Note: 72, Velocity: 0.4, Active: true},
		{Channel: 1, Note: 72, Velocity: 0.4, Active: true},
		{Channel: 2, Note: 72, Velocity: 0.4, Active: true},
	}
	for i := 0; i < 10; i++ {
		owner, _ := noteOwners(states)
		if owner[72] != 2 {
			t.Fatalf("run %d: owner[72] = %d, want 2", i, owner[72])
		}
	}
}

package ui

import (
	"chiproll/roll"
)

// noteOwners flattens per-channel states into a per-note owner map
// for keyboard painting, when several channels press the same key.
//
// Tie-break is deterministic: the higher current velocity wins, and
// an exact tie goes to the channel iterated later. Presentation
// policy only; the per-channel states stay authoritative.
func noteOwners(states []roll.ChannelState) (owner [128]int, velocity [128]float64) {
	for i := range owner {
		owner[i] = -1
	}
	for _, st := range states {
		if !st.Active || !st.Note.Valid() {
			continue
		}
		n := int(st.Note)
		if owner[n] == -1 || st.Velocity >= velocity[n] {
			owner[n] = st.Channel
			velocity[n] = st.Velocity
		}
	}
	return owner, velocity
}

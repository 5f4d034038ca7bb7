package roll

import (
	"strings"
	"testing"

	"github.com/go-faster/jx"
)

func TestWriteEvents(t *testing.T) {
	events := []Event{
		{Channel: 0, Note: 69, Velocity: 0.8, Start: 1.5, Duration: 0.5},
		{Channel: 3, Note: 36, Velocity: 1, Start: 2, Active: true},
	}

	var sb strings.Builder
	if err := WriteEvents(&sb, events); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	// Each line must be a valid standalone JSON object.
	for i, line := range lines {
		d := jx.DecodeStr(line)
		if typ := d.Next(); typ != jx.Object {
			t.Errorf("line %d is %v, want an object", i, typ)
		}
		if err := d.Skip(); err != nil {
			t.Errorf("line %d: %v", i, err)
		}
	}

	if !strings.Contains(lines[0], `"name":"A4"`) {
		t.Errorf("first line misses note name: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"active":true`) {
		t.Errorf("second line misses active flag: %s", lines[1])
	}
}

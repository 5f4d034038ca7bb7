package roll

import (
	"io"

	"github.com/go-faster/jx"
)

// WriteEvents writes events as JSON, one object per line, oldest
// first. Offline analysis output; the Tracker itself never persists
// anything.
func WriteEvents(w io.Writer, events []Event) error {
	var enc jx.Encoder
	for _, ev := range events {
		enc.Reset()
		enc.Obj(func(e *jx.Encoder) {
			e.Field("channel", func(e *jx.Encoder) { e.Int(ev.Channel) })
			e.Field("note", func(e *jx.Encoder) { e.Int(int(ev.Note)) })
			e.Field("name", func(e *jx.Encoder) { e.Str(ev.Note.String()) })
			e.Field("velocity", func(e *jx.Encoder) { e.Float64(ev.Velocity) })
			e.Field("start", func(e *jx.Encoder) { e.Float64(ev.Start) })
			e.Field("duration", func(e *jx.Encoder) { e.Float64(ev.Duration) })
			e.Field("active", func(e *jx.Encoder) { e.Bool(ev.Active) })
		})
		if _, err := w.Write(append(enc.Bytes(), '\n')); err != nil {
			return err
		}
	}
	return nil
}

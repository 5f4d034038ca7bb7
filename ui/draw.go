package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"chiproll/notes"
)

// noteSpan converts the tracker's octave range into the inclusive
// note range shown on screen. C of the low octave to C of the high
// one, with the +12 offset of the usual octave numbering.
func (w *Window) noteSpan() (start, end notes.Note) {
	lo, hi := w.tracker.OctaveRange()
	return notes.Note(lo*12 + 12), notes.Note(hi*12 + 12)
}

func (w *Window) drawKeyboard(x, y, width, height int32) {
	start, end := w.noteSpan()
	owner, velocity := noteOwners(w.tracker.Snapshot())

	whiteCount := 0
	for n := start; n <= end; n++ {
		if !n.IsBlack() {
			whiteCount++
		}
	}
	if whiteCount == 0 {
		return
	}

	whiteW := float64(width) / float64(whiteCount)
	blackW := whiteW * 0.65
	blackH := float64(height) * 0.6

	drawKey := func(kx, kw, kh float64, n notes.Note, black bool) {
		c := colorWhiteKey
		if black {
			c = colorBlackKey
		}
		if ch := owner[n]; ch >= 0 && velocity[n] > 0.05 {
			c = channelColor(ch)
			// brightness follows velocity
			bright := 0.5 + 0.5*velocity[n]
			c.R = uint8(float64(c.R) * bright)
			c.G = uint8(float64(c.G) * bright)
			c.B = uint8(float64(c.B) * bright)
			c.A = 255
		}

		rect := sdl.Rect{
			X: x + int32(kx), Y: y,
			W: int32(kw) - 1, H: int32(kh),
		}
		setColor(w.renderer, c)
		w.renderer.FillRect(&rect)
		setColor(w.renderer, colorKeyBorder)
		w.renderer.DrawRect(&rect)
	}

	// White keys first, black keys painted over them.
	idx := 0
	for n := start; n <= end; n++ {
		if n.IsBlack() {
			continue
		}
		drawKey(float64(idx)*whiteW, whiteW, float64(height), n, false)
		idx++
	}
	idx = 0
	for n := start; n <= end; n++ {
		if n.IsBlack() {
			continue
		}
		if n+1 <= end && (n + 1).IsBlack() {
			bx := float64(idx)*whiteW + whiteW - blackW/2
			drawKey(bx, blackW, blackH, n+1, true)
		}
		idx++
	}
}

func (w *Window) drawRoll(x, y, width, height int32, now float64) {
	start, end := w.noteSpan()
	span := int32(end-start) + 1
	noteH := float64(height) / float64(span)

	seconds := w.tracker.RollSeconds()
	timeStart := now - seconds
	pxPerSecond := float64(width) / seconds

	// Horizontal pitch grid, C lines emphasized.
	for n := start; n <= end; n++ {
		gy := y + int32(float64(int32(end-n))*noteH)
		c := colorGridWhite
		if n.IsBlack() {
			c = colorGridBlack
		}
		setColor(w.renderer, c)
		w.renderer.DrawLine(x, gy, x+width, gy)

		if n.PosInOctave() == 0 {
			setColor(w.renderer, colorGridC)
			w.renderer.DrawLine(x, gy+1, x+width, gy+1)
		}
	}

	// Vertical time grid every half second.
	const timeGrid = 0.5
	for t := math.Floor(timeStart/timeGrid) * timeGrid; t <= now; t += timeGrid {
		gx := x + int32((t-timeStart)*pxPerSecond)
		if gx < x || gx > x+width {
			continue
		}
		setColor(w.renderer, colorGridTime)
		w.renderer.DrawLine(gx, y, gx, y+height)
	}

	// Note rectangles, open ones extended to the playhead.
	for _, ev := range w.tracker.Window(now, seconds) {
		if ev.Note < start || ev.Note > end {
			continue
		}
		endTime := ev.Start + ev.Duration
		if ev.Active {
			endTime = now
		}

		x1 := math.Max((ev.Start-timeStart)*pxPerSecond, 0)
		x2 := math.Min((endTime-timeStart)*pxPerSecond, float64(width))
		if x2 <= x1 {
			continue
		}

		gy := y + int32(float64(int32(end-ev.Note))*noteH)
		rect := sdl.Rect{
			X: x + int32(x1), Y: gy + 1,
			W: int32(x2 - x1), H: max(int32(noteH)-1, 1),
		}
		setColor(w.renderer, channelColor(ev.Channel))
		w.renderer.FillRect(&rect)
		setColor(w.renderer, sdl.Color{R: 255, G: 255, B: 255, A: 100})
		w.renderer.DrawRect(&rect)
	}

	// Playhead at the right edge.
	setColor(w.renderer, colorPlayhead)
	w.renderer.DrawLine(x+width-1, y, x+width-1, y+height)
}

// Package ui paints the piano keyboard and the scrolling note roll
// from read-only tracker snapshots.
package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	log "chiproll/logger"
	"chiproll/roll"
)

const (
	defaultWidth   = 1024
	defaultHeight  = 480
	keyboardHeight = 90
)

// Window is the SDL window + renderer pair, driven from the main
// goroutine only.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	tracker  *roll.Tracker
}

func NewWindow(title string, tracker *roll.Tracker) (*Window, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl video init: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		defaultWidth, defaultHeight,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return &Window{window: window, renderer: renderer, tracker: tracker}, nil
}

// HandleEvents drains pending SDL events. Returns false once the user
// asked to quit. Keyboard shortcuts tweak the tracker's display
// settings in place.
func (w *Window) HandleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return false
			case sdl.K_LEFT:
				w.adjustRollSeconds(+0.5) // slower scroll
			case sdl.K_RIGHT:
				w.adjustRollSeconds(-0.5)
			case sdl.K_UP:
				w.shiftOctaves(+1)
			case sdl.K_DOWN:
				w.shiftOctaves(-1)
			}
		}
	}
	return true
}

func (w *Window) adjustRollSeconds(delta float64) {
	s := w.tracker.RollSeconds() + delta
	if s < 1 {
		s = 1
	}
	if s > 10 {
		s = 10
	}
	if err := w.tracker.SetRollSeconds(s); err != nil {
		log.ModUI.Warnf("roll window: %v", err)
	}
}

func (w *Window) shiftOctaves(delta int) {
	lo, hi := w.tracker.OctaveRange()
	if lo+delta < 0 || hi+delta > 9 {
		return
	}
	if err := w.tracker.SetOctaveRange(lo+delta, hi+delta); err != nil {
		log.ModUI.Warnf("octave range: %v", err)
	}
}

// Draw renders one frame of the roll and keyboard at transport time
// now.
func (w *Window) Draw(now float64) {
	width, height := w.window.GetSize()

	setColor(w.renderer, colorBackground)
	w.renderer.Clear()

	rollH := height - keyboardHeight
	w.drawRoll(0, 0, width, rollH, now)
	w.drawKeyboard(0, rollH, width, keyboardHeight)
	w.drawProgress(width, height)

	w.renderer.Present()
}

func (w *Window) drawProgress(width, height int32) {
	p := w.tracker.Progress()
	if p <= 0 || p >= 1 {
		return
	}
	setColor(w.renderer, colorProgressBar)
	w.renderer.FillRect(&sdl.Rect{
		X: 0, Y: height - 3,
		W: int32(float64(width) * p), H: 3,
	})
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func setColor(r *sdl.Renderer, c sdl.Color) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
}

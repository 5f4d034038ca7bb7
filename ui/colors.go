package ui

import "github.com/veandco/go-sdl2/sdl"

// Channel colors, primary chip first, expansion after. Indexes line
// up with the tracker's channel indices.
var channelColors = []sdl.Color{
	{R: 255, G: 80, B: 80, A: 220},   // Sq1 - red
	{R: 255, G: 160, B: 60, A: 220},  // Sq2 - orange
	{R: 80, G: 180, B: 255, A: 220},  // Tri - blue
	{R: 230, G: 80, B: 230, A: 220},  // Noi - magenta
	{R: 230, G: 230, B: 80, A: 220},  // DMC - yellow
	{R: 80, G: 230, B: 140, A: 220},  // VRC6 pulse 1 - green
	{R: 140, G: 230, B: 230, A: 220}, // VRC6 pulse 2 - cyan
	{R: 180, G: 140, B: 255, A: 220}, // VRC6 saw - violet
}

func channelColor(ch int) sdl.Color {
	return channelColors[ch%len(channelColors)]
}

var (
	colorBackground  = sdl.Color{R: 25, G: 25, B: 30, A: 255}
	colorWhiteKey    = sdl.Color{R: 250, G: 250, B: 250, A: 255}
	colorBlackKey    = sdl.Color{R: 30, G: 30, B: 35, A: 255}
	colorKeyBorder   = sdl.Color{R: 40, G: 40, B: 40, A: 255}
	colorGridWhite   = sdl.Color{R: 45, G: 45, B: 55, A: 255}
	colorGridBlack   = sdl.Color{R: 35, G: 35, B: 40, A: 255}
	colorGridC       = sdl.Color{R: 60, G: 60, B: 70, A: 255}
	colorGridTime    = sdl.Color{R: 50, G: 50, B: 60, A: 255}
	colorPlayhead    = sdl.Color{R: 255, G: 255, B: 255, A: 200}
	colorProgressBar = sdl.Color{R: 90, G: 180, B: 90, A: 255}
)

package timerview

import (
	"image"
	"image/color"
	"math"

	"timetracker/internal/core/countdown"
	"timetracker/internal/core/indicator"
)

var (
	idleColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	workColor  = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	relaxColor = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	trackColor = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	clearColor = color.NRGBA{}
)

const (
	ringRadiusFraction    = 0.42
	ringThicknessFraction = 0.07
	strokeAlpha           = 0.7
)

// ButtonLabel returns the main button text for the latest event.
// Right after a phase ends while idle the button names the next phase.
func ButtonLabel(event countdown.Event) string {
	if event.State != countdown.StateIdle {
		return "Pause"
	}
	if event.Type == countdown.EventModeSwitch {
		return event.Mode.Title()
	}
	return "Start"
}

// StrokeColor returns the ring color: black before a work phase begins,
// then red for work and green for relax.
func StrokeColor(event countdown.Event) color.NRGBA {
	if event.Mode == countdown.ModeRelax {
		return relaxColor
	}
	if event.State == countdown.StateIdle && event.Remaining == event.Total {
		return idleColor
	}
	return workColor
}

// RingPixel shades one pixel of a w×h indicator raster.
func RingPixel(x, y, w, h int, strokeEnd float64, stroke color.NRGBA) color.Color {
	side := math.Min(float64(w), float64(h))
	ring := indicator.Ring{
		Radius:    side * ringRadiusFraction,
		Thickness: side * ringThicknessFraction,
	}
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	cx := float64(w) / 2
	cy := float64(h) / 2

	if ring.Contains(px, py, cx, cy, strokeEnd) {
		return blend(stroke, strokeAlpha)
	}
	if ring.Contains(px, py, cx, cy, 1) {
		return trackColor
	}
	return clearColor
}

// RingImage rasterizes the whole indicator for one frame.
func RingImage(w, h int, strokeEnd float64, stroke color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, RingPixel(x, y, w, h, strokeEnd, stroke))
		}
	}
	return img
}

func blend(value color.NRGBA, alpha float64) color.NRGBA {
	value.A = uint8(float64(value.A) * alpha)
	return value
}

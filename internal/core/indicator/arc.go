package indicator

import (
	"fmt"
	"math"
)

// TopAngle is 12 o'clock in screen coordinates (y grows downwards).
const TopAngle = -math.Pi / 2

// Arc is a counter-clockwise circular segment in radians, as seen on
// screen.
type Arc struct {
	Start float64
	Sweep float64
}

// End returns the angle where the arc stops.
func (arc Arc) End() float64 {
	return arc.Start - arc.Sweep
}

// StrokeEnd maps elapsed progress to the visible share of the ring.
// The ring is full when a phase starts and empty when it ends.
func StrokeEnd(progress float64) float64 {
	return clamp01(1 - progress)
}

// ArcFor returns the arc drawn for a stroke end in [0, 1].
func ArcFor(strokeEnd float64) Arc {
	return Arc{
		Start: TopAngle,
		Sweep: clamp01(strokeEnd) * 2 * math.Pi,
	}
}

// Ring describes the indicator track.
type Ring struct {
	Radius    float64
	Thickness float64
}

// Contains reports whether the point (x, y) lies on the visible stroke of
// a ring centered at (cx, cy).
func (ring Ring) Contains(x, y, cx, cy, strokeEnd float64) bool {
	dx := x - cx
	dy := y - cy
	distance := math.Hypot(dx, dy)
	half := ring.Thickness / 2
	if distance < ring.Radius-half || distance > ring.Radius+half {
		return false
	}

	arc := ArcFor(strokeEnd)
	if arc.Sweep <= 0 {
		return false
	}
	if arc.Sweep >= 2*math.Pi {
		return true
	}
	return counterClockwiseOffset(arc.Start, math.Atan2(dy, dx)) <= arc.Sweep
}

// FormatSeconds renders a countdown label as MM:SS.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// counterClockwiseOffset returns the on-screen angle travelled from start
// to angle in [0, 2π). With y growing downwards that is a decreasing angle.
func counterClockwiseOffset(start, angle float64) float64 {
	offset := math.Mod(start-angle, 2*math.Pi)
	if offset < 0 {
		offset += 2 * math.Pi
	}
	return offset
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

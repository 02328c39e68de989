package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"timetracker/internal/core/countdown"
	"timetracker/internal/core/indicator"

	"fyne.io/fyne/v2"
)

const iconSize = 64

var iconColors = map[countdown.State]color.NRGBA{
	countdown.StateIdle:  {R: 60, G: 60, B: 60, A: 255},
	countdown.StateWork:  {R: 255, G: 59, B: 48, A: 255},
	countdown.StateRelax: {R: 52, G: 199, B: 89, A: 255},
}

var iconCache sync.Map

// Icon returns the ring icon for a countdown state.
func Icon(state countdown.State) (fyne.Resource, error) {
	name := fmt.Sprintf("icon_%s.png", state)
	if cached, ok := iconCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	fill, ok := iconColors[state]
	if !ok {
		return nil, fmt.Errorf("load resource %s: unknown state", name)
	}

	data, err := renderRing(fill)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	iconCache.Store(name, resource)
	return resource, nil
}

// MustIcon returns the icon or panics on error.
func MustIcon(state countdown.State) fyne.Resource {
	resource, err := Icon(state)
	if err != nil {
		panic(err)
	}
	return resource
}

func renderRing(fill color.NRGBA) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	ring := indicator.Ring{Radius: iconSize * 0.38, Thickness: iconSize * 0.18}
	center := float64(iconSize) / 2
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			if ring.Contains(float64(x)+0.5, float64(y)+0.5, center, center, 1) {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

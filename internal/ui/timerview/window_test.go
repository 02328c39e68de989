package timerview

import (
	"testing"
	"time"

	"timetracker/internal/core/countdown"
	"timetracker/internal/ui/animation"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestWindow(t *testing.T, initial countdown.Event) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	view := New(app, initial, animation.Config{FrameInterval: time.Millisecond, Duration: 5 * time.Millisecond}, Callbacks{})
	t.Cleanup(view.Close)
	return view
}

func TestRenderKeepsTitleColor(t *testing.T) {
	view := newTestWindow(t, countdown.Event{Type: countdown.EventProgress, Mode: countdown.ModeWork, State: countdown.StateIdle, Remaining: 10, Total: 10})
	assert.Equal(t, workColor, view.titleLabel.Color)

	view.Render(countdown.Event{Type: countdown.EventModeSwitch, Mode: countdown.ModeRelax, State: countdown.StateIdle, Remaining: 5, Total: 5})
	assert.Equal(t, workColor, view.titleLabel.Color)
	assert.Equal(t, "00:05", view.timerLabel.Text)
	assert.Equal(t, "Relax", view.mainButton.Text)
}

func TestDrawRendersWholeFrame(t *testing.T) {
	view := newTestWindow(t, countdown.Event{Type: countdown.EventProgress, Mode: countdown.ModeWork, State: countdown.StateWork, Remaining: 10, Total: 10})

	img := view.draw(50, 30)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

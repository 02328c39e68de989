package timerview

import (
	"context"
	"image"
	"image/color"
	"sync"

	"timetracker/internal/core/countdown"
	"timetracker/internal/core/indicator"
	"timetracker/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines the actions behind the window controls.
type Callbacks struct {
	OnToggle func()
	OnSwitch func()
}

// Window is the single timer screen.
type Window struct {
	window       fyne.Window
	titleLabel   *canvas.Text
	timerLabel   *canvas.Text
	modeLabel    *canvas.Text
	ring         *canvas.Raster
	mainButton   *widget.Button
	switchButton *widget.Button
	animator     *animation.StrokeAnimator
	callbacks    Callbacks

	mu        sync.Mutex
	strokeEnd float64
	stroke    color.NRGBA
}

// New creates the timer window. It starts hidden.
func New(app fyne.App, initial countdown.Event, animationConfig animation.Config, callbacks Callbacks) *Window {
	window := app.NewWindow("TimeTracker")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:    window,
		callbacks: callbacks,
		strokeEnd: 1,
		stroke:    idleColor,
	}

	view.titleLabel = canvas.NewText("Pomodoro", workColor)
	view.titleLabel.Alignment = fyne.TextAlignCenter
	view.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.titleLabel.TextSize = 30

	view.timerLabel = canvas.NewText(indicator.FormatSeconds(initial.Remaining), color.Black)
	view.timerLabel.Alignment = fyne.TextAlignCenter
	view.timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.timerLabel.TextSize = 56

	view.modeLabel = canvas.NewText(initial.Mode.Title(), color.Black)
	view.modeLabel.Alignment = fyne.TextAlignCenter
	view.modeLabel.TextSize = 16

	view.ring = canvas.NewRaster(view.draw)
	view.ring.SetMinSize(fyne.NewSize(300, 300))

	view.mainButton = widget.NewButton("Start", func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.mainButton.Importance = widget.HighImportance

	view.switchButton = widget.NewButton("Skip", func() {
		if view.callbacks.OnSwitch != nil {
			view.callbacks.OnSwitch()
		}
	})

	view.animator = animation.New(animationConfig, func(strokeEnd float64) {
		fyne.Do(func() {
			view.setStroke(strokeEnd)
		})
	})

	labels := container.NewVBox(layout.NewSpacer(), view.timerLabel, view.modeLabel, layout.NewSpacer())
	dial := container.NewStack(view.ring, labels)
	buttons := container.NewGridWithColumns(2, view.mainButton, view.switchButton)
	content := container.NewBorder(container.NewPadded(view.titleLabel), container.NewPadded(buttons), nil, nil, dial)

	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 520))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	view.Render(initial)
	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window; the countdown keeps running.
func (view *Window) Hide() {
	view.window.Hide()
}

// Render applies an engine event. It must run on the fyne thread.
func (view *Window) Render(event countdown.Event) {
	view.timerLabel.Text = indicator.FormatSeconds(event.Remaining)
	view.timerLabel.Refresh()
	view.modeLabel.Text = event.Mode.Title()
	view.modeLabel.Refresh()
	view.mainButton.SetText(ButtonLabel(event))

	stroke := StrokeColor(event)
	view.mu.Lock()
	view.stroke = stroke
	view.mu.Unlock()

	target := indicator.StrokeEnd(event.Progress)
	if event.Type == countdown.EventProgress && event.State != countdown.StateIdle {
		view.animator.AnimateTo(context.Background(), target)
		return
	}
	view.animator.Jump(target)
}

// Close stops animations.
func (view *Window) Close() {
	view.animator.Stop()
}

func (view *Window) setStroke(strokeEnd float64) {
	view.mu.Lock()
	view.strokeEnd = strokeEnd
	view.mu.Unlock()
	view.ring.Refresh()
}

func (view *Window) draw(w, h int) image.Image {
	view.mu.Lock()
	strokeEnd := view.strokeEnd
	stroke := view.stroke
	view.mu.Unlock()
	return RingImage(w, h, strokeEnd, stroke)
}

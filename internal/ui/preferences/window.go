package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"timetracker/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(model.PomodoroConfig) error
	work     *widget.Entry
	relax    *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(model.PomodoroConfig) error) *Window {
	window := app.NewWindow("TimeTracker Settings")

	work := widget.NewEntry()
	relax := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), work, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Relax"), relax, widget.NewLabel("sec")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 200))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window: window,
		onSave: onSave,
		work:   work,
		relax:  relax,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(strconv.Itoa(settings.WorkSeconds))
	prefs.relax.SetText(strconv.Itoa(settings.RelaxSeconds))
}

func (prefs *Window) handleSave() {
	settings, invalid := prefs.settings.Parse(prefs.work.Text, prefs.relax.Text)
	if len(invalid) > 0 {
		dialog.ShowError(fmt.Errorf("%s: enter a whole number of seconds above zero", strings.Join(invalid, ", ")), prefs.window)
		return
	}

	if prefs.onSave != nil {
		if err := prefs.onSave(settings.PomodoroConfig()); err != nil {
			dialog.ShowError(err, prefs.window)
			return
		}
	}
	prefs.settings = settings
	prefs.window.Hide()
}

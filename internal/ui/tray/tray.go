package tray

import (
	"fmt"

	"timetracker/internal/core/countdown"
	"timetracker/internal/core/indicator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnToggle      func()
	OnSwitch      func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	switchItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnToggle) })
	manager.switchItem = fyne.NewMenuItem("Skip to Relax", func() { call(manager.callbacks.OnSwitch) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) })

	manager.refreshMenu()
	return manager
}

// Render updates the menu from an engine event.
func (manager *Manager) Render(event countdown.Event) {
	manager.statusItem.Label = "Status: " + StatusText(event)
	manager.toggleItem.Label = ToggleLabel(event)
	manager.switchItem.Label = "Skip to " + event.Mode.Other().Title()
	manager.refreshMenu()
}

// StatusText describes the phase and remaining time, e.g. "work 00:07".
func StatusText(event countdown.Event) string {
	status := fmt.Sprintf("%s %s", event.Mode, indicator.FormatSeconds(event.Remaining))
	if event.State == countdown.StateIdle {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

// ToggleLabel returns the start/pause item text.
func ToggleLabel(event countdown.Event) string {
	if event.State == countdown.StateIdle {
		return "Start"
	}
	return "Pause"
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("TimeTracker",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShowTimer) }),
		fyne.NewMenuItem("Preferences", func() { call(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.switchItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	))
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

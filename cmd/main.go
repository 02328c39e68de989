package main

import (
	"errors"
	"log"
	"time"

	"timetracker/internal/core/countdown"
	"timetracker/internal/core/model"
	"timetracker/internal/platform"
	"timetracker/internal/storage"
	"timetracker/internal/ui/animation"
	"timetracker/internal/ui/preferences"
	"timetracker/internal/ui/timerview"
	"timetracker/internal/ui/tray"
	"timetracker/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "TimeTracker"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return
		}
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settingsDir, err := storage.SettingsDir(platform.NewService(), appName)
	if err != nil {
		log.Printf("settings dir: %v", err)
	}
	config := model.DefaultPomodoroConfig()
	if settingsDir != "" {
		loaded, err := storage.LoadSettings(settingsDir)
		if err != nil {
			log.Printf("load settings: %v", err)
		}
		config = loaded
	}

	keeper, err := countdown.New(config, countdown.Options{TickInterval: time.Second})
	if err != nil {
		log.Printf("settings rejected, using defaults: %v", err)
		keeper, err = countdown.New(model.DefaultPomodoroConfig(), countdown.Options{TickInterval: time.Second})
		if err != nil {
			log.Fatalf("create countdown: %v", err)
		}
	}

	fyneApp := app.NewWithID("com.timetracker.app")
	fyneApp.SetIcon(resources.MustIcon(countdown.StateWork))

	initial := keeper.Snapshot()
	timerWindow := timerview.New(fyneApp, initial, animation.DefaultConfig(), timerview.Callbacks{
		OnToggle: keeper.Toggle,
		OnSwitch: keeper.Switch,
	})

	prefsWindow := preferences.New(fyneApp, preferences.FromConfig(keeper.Config()), func(updated model.PomodoroConfig) error {
		if err := storage.PersistSettings(settingsDir, updated, keeper); err != nil {
			log.Printf("save settings: %v", err)
			return err
		}
		return nil
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimer:   timerWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnToggle:      keeper.Toggle,
			OnSwitch:      keeper.Switch,
			OnReset:       keeper.Reset,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.Render(initial)
		desktopApp.SetSystemTrayIcon(resources.MustIcon(initial.State))
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	lastState := initial.State
	keeper.Observe(countdown.ObserverFunc(func(event countdown.Event) {
		fyne.Do(func() {
			timerWindow.Render(event)
			if !hasTray {
				return
			}
			trayManager.Render(event)
			if event.State != lastState {
				lastState = event.State
				desktopApp.SetSystemTrayIcon(resources.MustIcon(event.State))
			}
		})
	}))

	fyneApp.Lifecycle().SetOnStopped(func() {
		keeper.Close()
		timerWindow.Close()
	})

	timerWindow.Show()
	fyneApp.Run()
}

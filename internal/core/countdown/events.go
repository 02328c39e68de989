package countdown

import "time"

// Mode is the current Pomodoro phase.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeRelax Mode = "relax"
)

// Other returns the phase that follows mode.
func (mode Mode) Other() Mode {
	if mode == ModeWork {
		return ModeRelax
	}
	return ModeWork
}

// Title returns the display name of the phase.
func (mode Mode) Title() string {
	if mode == ModeRelax {
		return "Relax"
	}
	return "Work"
}

// State combines the running flag with the mode.
type State string

const (
	StateIdle  State = "idle"
	StateWork  State = "work"
	StateRelax State = "relax"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStarted       EventType = "started"
	EventPaused        EventType = "paused"
	EventProgress      EventType = "progress"
	EventModeSwitch    EventType = "mode_switch"
	EventConfigChanged EventType = "config_changed"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Mode      Mode
	State     State
	Remaining int
	Total     int
	Progress  float64
	At        time.Time
}

// Observer consumes engine events.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// OnEvent calls fn(event).
func (fn ObserverFunc) OnEvent(event Event) {
	fn(event)
}

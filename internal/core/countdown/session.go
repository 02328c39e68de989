package countdown

// Session is the countdown record owned by an Engine.
// Remaining stays within [0, Total] and Total is always positive.
type Session struct {
	Mode      Mode
	Total     int
	Remaining int
	Running   bool
}

// State reports Idle when paused, otherwise the running mode.
func (session Session) State() State {
	if !session.Running {
		return StateIdle
	}
	if session.Mode == ModeRelax {
		return StateRelax
	}
	return StateWork
}

// Progress returns the elapsed share of the current phase in [0, 1].
func (session Session) Progress() float64 {
	if session.Total <= 0 {
		return 1
	}
	progress := 1 - float64(session.Remaining)/float64(session.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

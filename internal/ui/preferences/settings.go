package preferences

import (
	"strconv"
	"time"

	"timetracker/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkSeconds  int
	RelaxSeconds int
}

// FromConfig converts engine durations to editable settings.
func FromConfig(config model.PomodoroConfig) Settings {
	return Settings{
		WorkSeconds:  config.WorkSeconds(),
		RelaxSeconds: config.RelaxSeconds(),
	}
}

// PomodoroConfig converts settings to engine durations.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Work:  time.Duration(settings.WorkSeconds) * time.Second,
		Relax: time.Duration(settings.RelaxSeconds) * time.Second,
	}
}

// Parse reads the entry texts. Invalid entries keep the current value
// and are reported in the second result.
func (settings Settings) Parse(work, relax string) (Settings, []string) {
	var invalid []string
	if seconds, ok := parsePositiveInt(work); ok {
		settings.WorkSeconds = seconds
	} else {
		invalid = append(invalid, "work")
	}
	if seconds, ok := parsePositiveInt(relax); ok {
		settings.RelaxSeconds = seconds
	} else {
		invalid = append(invalid, "relax")
	}
	return settings, invalid
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

package config

import "time"

// Timer settings.
const (
	TickInterval         = time.Second
	DefaultFocusDuration = 25 * time.Minute
)

// PresetDurations are the quick-start choices offered by the setup view.
var PresetDurations = []time.Duration{
	5 * time.Minute,
	15 * time.Minute,
	25 * time.Minute,
	45 * time.Minute,
}

// Application settings.
const (
	AppName         = "focus"
	DBFileName      = "focus.db"
	DefaultTaskName = "Unnamed task"
)

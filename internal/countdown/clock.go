package countdown

import "time"

// Clock provides the current time. The indirection lets tests drive the state
// machine against a controlled clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

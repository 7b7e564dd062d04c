package models

import "time"

// CountdownStatus enumerates the derived states of the countdown.
type CountdownStatus string

const (
	StatusIdle     CountdownStatus = "idle"
	StatusRunning  CountdownStatus = "running"
	StatusPaused   CountdownStatus = "paused"
	StatusFinished CountdownStatus = "finished"
)

// CountdownState is the complete countdown value. The absolute end time is the
// single source of truth; remaining time and status are derived from it, so
// real time spent suspended (sleep, UI stalls) is always reflected correctly.
// Mutations replace the whole value, never individual fields.
type CountdownState struct {
	EndTime      *time.Time // nil means idle
	LastDuration time.Duration
	IsPaused     bool
	PausedAt     *time.Time
	TaskName     string
}

// Status derives the countdown status at the given instant.
func (s CountdownState) Status(now time.Time) CountdownStatus {
	if s.EndTime == nil {
		return StatusIdle
	}
	if s.IsPaused {
		return StatusPaused
	}
	if !s.EndTime.After(now) {
		return StatusFinished
	}
	return StatusRunning
}

// Remaining derives the remaining time at the given instant. While paused the
// value is frozen at EndTime-PausedAt. Nil means no countdown is set.
func (s CountdownState) Remaining(now time.Time) *time.Duration {
	if s.EndTime == nil {
		return nil
	}
	var rem time.Duration
	if s.IsPaused && s.PausedAt != nil {
		rem = s.EndTime.Sub(*s.PausedAt)
	} else {
		rem = s.EndTime.Sub(now)
	}
	if rem < 0 {
		rem = 0
	}
	return &rem
}

// FocusSession records one countdown run, finished or abandoned. A session is
// created open when the countdown starts and receives exactly one terminal
// mutation setting EndTime, Duration and IsCompleted.
type FocusSession struct {
	ID          string
	TaskName    string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    time.Duration
	IsCompleted bool
	CreatedAt   time.Time
}

// FocusStatistics aggregates session counts and durations over a time window.
// It is recomputed on demand and never persisted.
type FocusStatistics struct {
	TodayTotal     time.Duration
	WeekTotal      time.Duration
	MonthTotal     time.Duration
	AllTimeTotal   time.Duration
	SessionCount   int
	CompletedCount int
}

// SessionGroup buckets the sessions of one calendar day.
type SessionGroup struct {
	Date     time.Time
	Sessions []FocusSession
}

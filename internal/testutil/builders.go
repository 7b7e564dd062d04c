package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/focus/internal/models"
)

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.FocusSession
}

func NewSession() *SessionBuilder {
	now := time.Now()
	return &SessionBuilder{
		session: models.FocusSession{
			ID:        uuid.NewString(),
			TaskName:  "Test Task",
			StartTime: now,
			CreatedAt: now,
		},
	}
}

func (b *SessionBuilder) WithTaskName(name string) *SessionBuilder {
	b.session.TaskName = name
	return b
}

func (b *SessionBuilder) WithStartTime(t time.Time) *SessionBuilder {
	b.session.StartTime = t
	b.session.CreatedAt = t
	return b
}

func (b *SessionBuilder) WithDuration(d time.Duration) *SessionBuilder {
	b.session.Duration = d
	return b
}

// Completed marks the session finished at StartTime+Duration.
func (b *SessionBuilder) Completed() *SessionBuilder {
	end := b.session.StartTime.Add(b.session.Duration)
	b.session.EndTime = &end
	b.session.IsCompleted = true
	return b
}

func (b *SessionBuilder) Build() models.FocusSession {
	return b.session
}

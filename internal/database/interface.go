package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/focus/internal/models"
)

// SessionStore defines the persistence operations the history layer needs:
// insert, one terminal update, predicate+sort fetch, and delete.
//
//go:generate mockgen -source=interface.go -destination=../history/mock_store_test.go -package=history
type SessionStore interface {
	InsertSession(ctx context.Context, s *models.FocusSession) error
	FinishSession(ctx context.Context, id string, endTime time.Time, duration time.Duration, completed bool) error
	SessionsSince(ctx context.Context, since time.Time) ([]models.FocusSession, error)
	AllSessions(ctx context.Context) ([]models.FocusSession, error)
	DeleteSession(ctx context.Context, id string) error
}

var _ SessionStore = (*Database)(nil)

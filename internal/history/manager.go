// Package history records finished focus sessions and answers aggregate
// queries over them. Persistence failures are never fatal: every operation
// degrades to an empty or no-op result so the countdown keeps working
// without history tracking.
package history

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/focus/internal/countdown"
	"github.com/akyairhashvil/focus/internal/database"
	"github.com/akyairhashvil/focus/internal/models"
	"github.com/akyairhashvil/focus/internal/util"
)

// Manager is the session statistics store facade over a SessionStore.
// A nil store is tolerated; all queries then return empty results.
type Manager struct {
	store database.SessionStore
	clock func() time.Time
}

var _ countdown.Recorder = (*Manager)(nil)

func NewManager(store database.SessionStore) *Manager {
	return &Manager{store: store, clock: time.Now}
}

// CreateSession inserts a new open session record and returns it. Returns nil
// when persistence is unavailable or the insert fails; the caller proceeds
// without history tracking.
func (m *Manager) CreateSession(ctx context.Context, taskName string) *models.FocusSession {
	if m.store == nil {
		return nil
	}
	now := m.clock()
	session := &models.FocusSession{
		ID:        uuid.NewString(),
		TaskName:  taskName,
		StartTime: now,
		CreatedAt: now,
	}
	if err := m.store.InsertSession(ctx, session); err != nil {
		util.LogError("create session", err)
		return nil
	}
	return session
}

// FinishSession applies the single terminal mutation to the referenced
// session: end time now, the given duration, and the completion flag.
func (m *Manager) FinishSession(ctx context.Context, session *models.FocusSession, duration time.Duration, completed bool) {
	if m.store == nil || session == nil {
		return
	}
	end := m.clock()
	if err := m.store.FinishSession(ctx, session.ID, end, duration, completed); err != nil {
		util.LogError("finish session", err)
		return
	}
	session.EndTime = &end
	session.Duration = duration
	session.IsCompleted = completed
}

// QueryStatistics aggregates all sessions with start time >= since. The
// today/week/month totals are re-filtered against the current calendar
// boundaries, not the query window; AllTimeTotal sums the fetched set.
func (m *Manager) QueryStatistics(ctx context.Context, since time.Time) models.FocusStatistics {
	var stats models.FocusStatistics
	if m.store == nil {
		return stats
	}
	sessions, err := m.store.SessionsSince(ctx, since)
	if err != nil {
		util.LogError("query statistics", err)
		return stats
	}

	now := m.clock()
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	stats.SessionCount = len(sessions)
	for _, s := range sessions {
		if s.IsCompleted {
			stats.CompletedCount++
		}
		stats.AllTimeTotal += s.Duration
		if !s.StartTime.Before(dayStart) {
			stats.TodayTotal += s.Duration
		}
		if !s.StartTime.Before(weekStart) {
			stats.WeekTotal += s.Duration
		}
		if !s.StartTime.Before(monthStart) {
			stats.MonthTotal += s.Duration
		}
	}
	return stats
}

// TodayStatistics aggregates sessions started since the start of today.
func (m *Manager) TodayStatistics(ctx context.Context) models.FocusStatistics {
	return m.QueryStatistics(ctx, startOfDay(m.clock()))
}

// WeekStatistics aggregates sessions started since Monday of this week.
func (m *Manager) WeekStatistics(ctx context.Context) models.FocusStatistics {
	return m.QueryStatistics(ctx, startOfWeek(m.clock()))
}

// MonthStatistics aggregates sessions started since the first of this month.
func (m *Manager) MonthStatistics(ctx context.Context) models.FocusStatistics {
	return m.QueryStatistics(ctx, startOfMonth(m.clock()))
}

// AllTimeStatistics aggregates every recorded session.
func (m *Manager) AllTimeStatistics(ctx context.Context) models.FocusStatistics {
	return m.QueryStatistics(ctx, time.Time{})
}

// AllSessions returns every session, newest start first. Empty on failure.
func (m *Manager) AllSessions(ctx context.Context) []models.FocusSession {
	if m.store == nil {
		return nil
	}
	sessions, err := m.store.AllSessions(ctx)
	if err != nil {
		util.LogError("list sessions", err)
		return nil
	}
	return sessions
}

// SessionsGroupedByDate buckets every session by the calendar day of its
// start time, newest day first. Within a group the fetch order (newest start
// first) is preserved.
func (m *Manager) SessionsGroupedByDate(ctx context.Context) []models.SessionGroup {
	sessions := m.AllSessions(ctx)
	if len(sessions) == 0 {
		return nil
	}

	grouped := make(map[time.Time][]models.FocusSession)
	for _, s := range sessions {
		day := startOfDay(s.StartTime)
		grouped[day] = append(grouped[day], s)
	}

	groups := make([]models.SessionGroup, 0, len(grouped))
	for day, daySessions := range grouped {
		groups = append(groups, models.SessionGroup{Date: day, Sessions: daySessions})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date.After(groups[j].Date) })
	return groups
}

// DeleteSession removes a session record. Statistics are recomputed lazily on
// the next query, so there is nothing to invalidate here.
func (m *Manager) DeleteSession(ctx context.Context, id string) {
	if m.store == nil {
		return
	}
	if err := m.store.DeleteSession(ctx, id); err != nil {
		util.LogError("delete session", err)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns Monday 00:00 of t's ISO week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

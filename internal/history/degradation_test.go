package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

func TestCreateSessionDegradesOnInsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockSessionStore(ctrl)
	store.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))

	m := NewManager(store)
	if session := m.CreateSession(context.Background(), "task"); session != nil {
		t.Fatalf("expected nil session on insert failure, got %+v", session)
	}
}

func TestQueryStatisticsDegradesOnFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockSessionStore(ctrl)
	store.EXPECT().SessionsSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))

	m := NewManager(store)
	stats := m.QueryStatistics(context.Background(), time.Time{})
	if stats.SessionCount != 0 || stats.AllTimeTotal != 0 {
		t.Fatalf("expected empty statistics on fetch failure, got %+v", stats)
	}
}

func TestFinishSessionLeavesHandleUntouchedOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockSessionStore(ctrl)
	store.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().FinishSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database is locked"))

	m := NewManager(store)
	session := m.CreateSession(context.Background(), "task")
	if session == nil {
		t.Fatalf("expected a session handle")
	}
	m.FinishSession(context.Background(), session, 10*time.Minute, true)
	if session.EndTime != nil || session.IsCompleted {
		t.Fatalf("expected handle untouched on finish failure, got %+v", session)
	}
}

func TestAllSessionsDegradesOnFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockSessionStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	m := NewManager(store)
	if sessions := m.AllSessions(context.Background()); len(sessions) != 0 {
		t.Fatalf("expected no sessions on fetch failure, got %d", len(sessions))
	}
}

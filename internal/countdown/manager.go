package countdown

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akyairhashvil/focus/internal/models"
)

// ErrInvalidDuration is returned by Start when the requested duration is not
// positive. The countdown state is left untouched.
var ErrInvalidDuration = errors.New("countdown duration must be positive")

// Recorder is the session-history collaborator. Start opens a session through
// it and the completion tick closes the session as completed. A nil Recorder
// disables history tracking; the countdown itself keeps working.
type Recorder interface {
	CreateSession(ctx context.Context, taskName string) *models.FocusSession
	FinishSession(ctx context.Context, session *models.FocusSession, duration time.Duration, completed bool)
}

// Subscriber receives the full countdown state after every mutation and every
// tick, in publish order. Callbacks run with the manager's mutex released, so
// a subscriber may block or call back into the Manager; a slow subscriber
// delays later notifications but never wedges the state machine.
type Subscriber func(models.CountdownState)

// Manager drives the countdown state machine: idle -> running -> paused ->
// running -> finished, with a one second tick republishing state while
// running. All public operations and tick delivery are serialized on one
// mutex, so observers never see a partially updated state; notifications are
// drained off the lock, one at a time, in mutation order.
type Manager struct {
	mu          sync.Mutex
	state       models.CountdownState
	session     *models.FocusSession
	subscribers []Subscriber
	pending     []models.CountdownState
	delivering  bool

	clock        Clock
	tickInterval time.Duration
	recorder     Recorder

	stopTick   chan struct{}
	generation uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock substitutes the time source.
func WithClock(c Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithTickInterval overrides the nominal one second tick period.
func WithTickInterval(d time.Duration) Option {
	return func(m *Manager) { m.tickInterval = d }
}

// WithRecorder wires the session-history collaborator.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		clock:        SystemClock,
		tickInterval: time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers an observer. Observers are notified in registration
// order, once per mutation and once per tick.
func (m *Manager) Subscribe(sub Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, sub)
}

// State returns a snapshot of the current countdown state.
func (m *Manager) State() models.CountdownState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Status derives the current status from the snapshot and the clock.
func (m *Manager) Status() models.CountdownStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Status(m.clock.Now())
}

// Remaining derives the current remaining time. Nil means idle.
func (m *Manager) Remaining() *time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Remaining(m.clock.Now())
}

// Session returns the in-flight session record, or nil when none is open.
// The reference is transient: the history store owns the record.
func (m *Manager) Session() *models.FocusSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Start arms the countdown for the given duration and begins ticking. A new
// open session is created through the recorder. Starting over a running,
// paused or finished countdown simply re-arms it.
func (m *Manager) Start(d time.Duration, taskName string) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTickerLocked()
	now := m.clock.Now()
	end := now.Add(d)
	m.state = models.CountdownState{
		EndTime:      &end,
		LastDuration: d,
		TaskName:     taskName,
	}
	m.session = nil
	if m.recorder != nil {
		m.session = m.recorder.CreateSession(context.Background(), taskName)
	}
	m.startTickerLocked()
	m.publishLocked()
	return nil
}

// Pause freezes the countdown. No-op unless running. The ticker is stopped
// before the frozen snapshot is computed so no stale tick can race the pause.
// Remaining time is rounded up to the next whole second: a paused display
// never shows less time than was actually left.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if m.state.Status(now) != models.StatusRunning {
		return
	}
	m.stopTickerLocked()

	rem := roundUpSecond(m.state.EndTime.Sub(now))
	end := now.Add(rem)
	m.state = models.CountdownState{
		EndTime:      &end,
		LastDuration: m.state.LastDuration,
		IsPaused:     true,
		PausedAt:     &now,
		TaskName:     m.state.TaskName,
	}
	m.publishLocked()
}

// Resume continues a paused countdown, shifting the end time by the pause
// duration. No-op unless paused.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if m.state.Status(now) != models.StatusPaused || m.state.PausedAt == nil {
		return
	}
	pauseDuration := now.Sub(*m.state.PausedAt)
	end := m.state.EndTime.Add(pauseDuration)
	m.state = models.CountdownState{
		EndTime:      &end,
		LastDuration: m.state.LastDuration,
		TaskName:     m.state.TaskName,
	}
	m.startTickerLocked()
	m.publishLocked()
}

// TogglePause dispatches to Pause or Resume based on the current status.
func (m *Manager) TogglePause() {
	switch m.Status() {
	case models.StatusRunning:
		m.Pause()
	case models.StatusPaused:
		m.Resume()
	}
}

// Reset unconditionally returns the countdown to idle and stops the ticker.
// An open session is not finalized here: whether an abandoned run is recorded
// as incomplete is the caller's policy, applied before Reset.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTickerLocked()
	m.state = models.CountdownState{}
	m.session = nil
	m.publishLocked()
}

// tick runs once per tick interval while the countdown is armed. The
// generation guard drops ticks that fired before a cancellation but acquired
// the lock after it.
func (m *Manager) tick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		return
	}
	if m.state.IsPaused {
		return
	}
	now := m.clock.Now()
	if rem := m.state.Remaining(now); rem != nil && *rem <= 0 {
		m.stopTickerLocked()
		if m.recorder != nil && m.session != nil {
			m.recorder.FinishSession(context.Background(), m.session, m.state.LastDuration, true)
			m.session = nil
		}
	}
	// Republish unchanged fields so observers driven by change notifications
	// still receive one update per second while running.
	m.publishLocked()
}

func (m *Manager) startTickerLocked() {
	stop := make(chan struct{})
	m.stopTick = stop
	m.generation++
	gen := m.generation

	ticker := time.NewTicker(m.tickInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				m.tick(gen)
			}
		}
	}()
}

func (m *Manager) stopTickerLocked() {
	if m.stopTick != nil {
		close(m.stopTick)
		m.stopTick = nil
	}
	// Invalidate ticks already fired but not yet holding the lock.
	m.generation++
}

// publishLocked queues the current state and drains the queue in FIFO order.
// Each callback runs with the mutex released: a subscriber feeding a blocking
// sink (an event loop, a channel) cannot deadlock against a public operation
// holding the lock. The delivering flag keeps the drain single threaded, so
// publishes that land mid drain are delivered by the active drainer and
// ordering is preserved.
func (m *Manager) publishLocked() {
	m.pending = append(m.pending, m.state)
	if m.delivering {
		return
	}
	m.delivering = true
	for len(m.pending) > 0 {
		state := m.pending[0]
		m.pending = m.pending[1:]
		subs := make([]Subscriber, len(m.subscribers))
		copy(subs, m.subscribers)
		m.mu.Unlock()
		for _, sub := range subs {
			sub(state)
		}
		m.mu.Lock()
	}
	m.delivering = false
}

func roundUpSecond(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return ((d + time.Second - 1) / time.Second) * time.Second
}

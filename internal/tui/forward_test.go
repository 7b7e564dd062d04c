package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/focus/internal/countdown"
	"github.com/akyairhashvil/focus/internal/history"
	"github.com/akyairhashvil/focus/internal/models"
)

func waitForStatus(t *testing.T, manager *countdown.Manager, want models.CountdownStatus) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for manager.Status() != want {
		if time.Now().After(deadline) {
			t.Fatalf("engine never reached %s; status %s", want, manager.Status())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Runs the real wiring end to end: a headless program whose Update triggers
// engine mutations, with ForwardStates carrying the resulting publishes and
// ticker republishes back into the event loop.
func TestForwardStatesDeliversIntoRunningProgram(t *testing.T) {
	hist := history.NewManager(nil)
	manager := countdown.NewManager(
		countdown.WithTickInterval(20*time.Millisecond),
		countdown.WithRecorder(hist),
	)
	t.Cleanup(manager.Reset)

	p := tea.NewProgram(NewModel(manager, hist), tea.WithInput(&bytes.Buffer{}), tea.WithoutRenderer())
	ForwardStates(manager, p.Send)

	results := make(chan tea.Model, 1)
	go func() {
		final, err := p.Run()
		if err != nil {
			t.Errorf("program run failed: %v", err)
		}
		results <- final
	}()

	// Enter starts the countdown from inside Update; the notification must not
	// wedge the event loop.
	p.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForStatus(t, manager, models.StatusRunning)

	// Let a few ticker republishes flow through the forwarder.
	time.Sleep(100 * time.Millisecond)

	p.Send(tea.KeyMsg{Type: tea.KeySpace})
	waitForStatus(t, manager, models.StatusPaused)

	// Give the paused push time to land in Update before quitting.
	time.Sleep(200 * time.Millisecond)
	p.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	select {
	case final := <-results:
		m := mustModel(t, final)
		if m.state.EndTime == nil {
			t.Fatalf("expected pushed engine state to reach the model")
		}
		if !m.state.IsPaused {
			t.Fatalf("expected the paused push delivered before quit, got %+v", m.state)
		}
	case <-time.After(5 * time.Second):
		p.Kill()
		t.Fatalf("event loop never exited")
	}
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/focus/internal/countdown"
	"github.com/akyairhashvil/focus/internal/models"
)

const stateQueueSize = 64

// ForwardStates registers a subscriber that carries every engine publish into
// the program's event loop as a StateMsg. Sends run on a dedicated goroutine:
// the engine callback only enqueues, so a busy or blocked event loop can never
// stall the state machine, and a mutation triggered from inside Update cannot
// deadlock against its own notification. When the queue overflows the oldest
// update is dropped; states are full replacements, so the newest always wins.
func ForwardStates(manager *countdown.Manager, send func(tea.Msg)) {
	updates := make(chan models.CountdownState, stateQueueSize)
	manager.Subscribe(func(state models.CountdownState) {
		for {
			select {
			case updates <- state:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	go func() {
		for state := range updates {
			send(StateMsg(state))
		}
	}()
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/focus/internal/config"
	"github.com/akyairhashvil/focus/internal/countdown"
	"github.com/akyairhashvil/focus/internal/database"
	"github.com/akyairhashvil/focus/internal/history"
	"github.com/akyairhashvil/focus/internal/tui"
	"github.com/akyairhashvil/focus/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "focus must be run in a terminal")
		os.Exit(1)
	}

	ctx := context.Background()

	// A failed open is not fatal: the countdown runs without history tracking.
	var store database.SessionStore
	if db := openDatabase(ctx); db != nil {
		defer db.Close()
		store = db
	}

	hist := history.NewManager(store)
	manager := countdown.NewManager(
		countdown.WithTickInterval(config.TickInterval),
		countdown.WithRecorder(hist),
	)

	p := tea.NewProgram(tui.NewModel(manager, hist), tea.WithAltScreen())

	// Push every engine state change and tick into the UI event loop.
	tui.ForwardStates(manager, p.Send)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	manager.Reset()
}

// openDatabase ensures the data directory exists and opens the session store.
// Returns nil when either step fails.
func openDatabase(ctx context.Context) *database.Database {
	root := util.DataDir(config.AppName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		util.LogError("create data dir", err)
		return nil
	}
	db, err := database.Open(ctx, filepath.Join(root, config.DBFileName))
	if err != nil {
		util.LogError("open database", err)
		return nil
	}
	return db
}

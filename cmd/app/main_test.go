package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/focus/internal/config"
)

func TestOpenDatabaseCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	db := openDatabase(context.Background())
	if db == nil {
		t.Fatalf("expected an open database")
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})

	dbPath := filepath.Join(dir, config.AppName, config.DBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file at %s: %v", dbPath, err)
	}
}

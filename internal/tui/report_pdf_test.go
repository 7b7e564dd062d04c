package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/focus/internal/database"
	"github.com/akyairhashvil/focus/internal/history"
)

func TestGeneratePDFReportWritesFile(t *testing.T) {
	ctx := context.Background()
	docsDir := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docsDir)

	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})

	hist := history.NewManager(db)
	session := hist.CreateSession(ctx, "Report me")
	hist.FinishSession(ctx, session, 25*time.Minute, true)

	path, err := GeneratePDFReport(ctx, hist)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected report file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty report file")
	}
	if filepath.Dir(path) != filepath.Join(docsDir, "FOCUS") {
		t.Fatalf("expected report under the documents reports dir, got %s", path)
	}
}

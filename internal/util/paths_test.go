package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonorsXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir("focus"); got != filepath.Join("/tmp/xdg-data", "focus") {
		t.Fatalf("unexpected data dir: %s", got)
	}
}

func TestDocumentsDirHonorsXDGDocumentsDir(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/tmp/docs")
	if got := DocumentsDir(); got != "/tmp/docs" {
		t.Fatalf("unexpected documents dir: %s", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DOCUMENTS_DIR=\"$HOME/Documents\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Documents" {
		t.Fatalf("unexpected parsed dir: %s", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %s", got)
	}
}

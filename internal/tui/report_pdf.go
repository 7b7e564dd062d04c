package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/focus/internal/config"
	"github.com/akyairhashvil/focus/internal/history"
	"github.com/akyairhashvil/focus/internal/util"
)

// GeneratePDFReport writes the full session history, grouped by day, to a PDF
// in the user's reports directory and returns the file path.
func GeneratePDFReport(ctx context.Context, hist *history.Manager) (string, error) {
	stats := hist.AllTimeStatistics(ctx)
	groups := hist.SessionsGroupedByDate(ctx)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Focus History")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Sessions: %d (%d completed)", stats.SessionCount, stats.CompletedCount))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total focus time: %s", FormatDuration(stats.AllTimeTotal)))
	pdf.Ln(12)

	for _, group := range groups {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, group.Date.Format("Mon, 02 Jan 2006"))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		for _, s := range group.Sessions {
			status := "[ ]"
			if s.IsCompleted {
				status = "[x]"
			}
			line := fmt.Sprintf("  %s %s  %s  %s", status, s.StartTime.Format("15:04"), FormatDuration(s.Duration), s.TaskName)
			pdf.MultiCell(0, 8, line, "", "", false)
		}
		pdf.Ln(4)
	}

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("focus_history_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return filename, nil
}

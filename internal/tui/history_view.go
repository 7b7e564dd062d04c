package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/focus/internal/models"
)

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlR {
		path, err := GeneratePDFReport(context.Background(), m.history)
		if err != nil {
			m.statusMessage = fmt.Sprintf("Report failed: %v", err)
		} else {
			m.statusMessage = "Report written to " + path
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "h":
		m.statusMessage = ""
		if m.state.Status(time.Now()) == models.StatusIdle {
			m.view = viewSetup
		} else {
			m.view = viewTimer
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		return m, nil
	case "d":
		if m.cursor < len(m.flat) {
			m.history.DeleteSession(context.Background(), m.flat[m.cursor].ID)
			m = m.refreshHistory()
			if m.cursor >= len(m.flat) && m.cursor > 0 {
				m.cursor = len(m.flat) - 1
			}
		}
		return m, nil
	case "t":
		m = m.cycleTheme()
		return m, nil
	}
	return m, nil
}

func (m Model) renderHistory() string {
	var b strings.Builder

	b.WriteString(m.renderHeaderFrame(m.theme.Header.Render("HISTORY")))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")

	if len(m.groups) == 0 {
		b.WriteString(m.theme.Dim.Render("  No sessions recorded yet.") + "\n")
	}

	rowWidth := m.width - 6
	if rowWidth < 20 {
		rowWidth = 20
	}

	idx := 0
	for _, group := range m.groups {
		b.WriteString(m.theme.Highlight.Render("  "+group.Date.Format("Mon, 02 Jan 2006")) + "\n")
		for _, s := range group.Sessions {
			b.WriteString(m.renderSessionRow(s, idx == m.cursor, rowWidth) + "\n")
			idx++
		}
	}

	if m.statusMessage != "" {
		b.WriteString("\n" + m.theme.Highlight.Render("  "+m.statusMessage) + "\n")
	}

	b.WriteString("\n" + m.renderFooter("up/down: select  |  d: delete  |  ctrl+r: pdf report  |  esc: back"))
	return b.String()
}

func (m Model) renderStats() string {
	line := fmt.Sprintf(
		"Today %s  |  Week %s  |  Month %s  |  All time %s  |  %d sessions, %d completed",
		FormatDuration(m.stats.TodayTotal),
		FormatDuration(m.stats.WeekTotal),
		FormatDuration(m.stats.MonthTotal),
		FormatDuration(m.stats.AllTimeTotal),
		m.stats.SessionCount,
		m.stats.CompletedCount,
	)
	return m.theme.Task.Render("  "+line) + "\n"
}

func (m Model) renderSessionRow(s models.FocusSession, selected bool, width int) string {
	mark := "[ ]"
	style := m.theme.Task
	if s.IsCompleted {
		mark = "[x]"
		style = m.theme.CompletedTask
	}
	cursor := "  "
	if selected {
		cursor = m.theme.Focused.Render("> ")
		style = m.theme.Focused
	}
	row := fmt.Sprintf("%s %s  %-6s  %s", mark, s.StartTime.Format("15:04"), FormatDuration(s.Duration), s.TaskName)
	return "  " + cursor + style.Render(ansi.Truncate(row, width, "…"))
}

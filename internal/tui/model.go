package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/focus/internal/config"
	"github.com/akyairhashvil/focus/internal/countdown"
	"github.com/akyairhashvil/focus/internal/history"
	"github.com/akyairhashvil/focus/internal/models"
)

// StateMsg delivers a countdown state into the UI. The engine pushes these
// through its subscriber list and Program.Send; the UI never polls a clock.
type StateMsg models.CountdownState

// viewMode defines the high-level mode of the application.
type viewMode int

const (
	viewSetup viewMode = iota
	viewTimer
	viewHistory
)

// Model is the root bubbletea model. It renders whatever countdown state the
// engine last published and forwards key presses to the engine; all timing
// decisions live on the engine side.
type Model struct {
	manager *countdown.Manager
	history *history.Manager
	theme   Theme

	view  viewMode
	state models.CountdownState

	taskInput    textinput.Model
	minutesInput textinput.Model
	focusIdx     int
	presetIdx    int
	progress     progress.Model

	stats  models.FocusStatistics
	groups []models.SessionGroup
	flat   []models.FocusSession
	cursor int

	themeIdx      int
	statusMessage string
	err           error
	width         int
	height        int
}

func NewModel(manager *countdown.Manager, hist *history.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = config.DefaultTaskName
	ti.CharLimit = 80
	ti.Width = 36
	ti.Focus()

	mi := textinput.New()
	mi.Placeholder = strconv.Itoa(int(config.DefaultFocusDuration.Minutes()))
	mi.CharLimit = 3
	mi.Width = 6

	m := Model{
		manager:      manager,
		history:      hist,
		theme:        CurrentTheme,
		taskInput:    ti,
		minutesInput: mi,
		progress:     progress.New(progress.WithDefaultGradient()),
		state:        manager.State(),
	}
	m.progress.Width = 30
	if m.state.Status(time.Now()) != models.StatusIdle {
		m.view = viewTimer
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 20
		if w > 40 {
			w = 40
		}
		if w > 0 {
			m.progress.Width = w
		}
		return m, nil
	case StateMsg:
		m.state = models.CountdownState(msg)
		if m.view == viewTimer && m.state.Status(time.Now()) == models.StatusFinished {
			m.statusMessage = "Session complete."
		}
		return m, nil
	}

	switch m.view {
	case viewSetup:
		return m.updateSetup(msg)
	case viewTimer:
		return m.updateTimer(msg)
	case viewHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.startFromInputs()
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.focusIdx = (m.focusIdx + 1) % 2
			if m.focusIdx == 0 {
				m.taskInput.Focus()
				m.minutesInput.Blur()
			} else {
				m.taskInput.Blur()
				m.minutesInput.Focus()
			}
			return m, nil
		case tea.KeyLeft, tea.KeyRight:
			if m.focusIdx == 1 {
				if msg.Type == tea.KeyRight {
					m.presetIdx = (m.presetIdx + 1) % len(config.PresetDurations)
				} else {
					m.presetIdx = (m.presetIdx + len(config.PresetDurations) - 1) % len(config.PresetDurations)
				}
				preset := config.PresetDurations[m.presetIdx]
				m.minutesInput.SetValue(strconv.Itoa(int(preset.Minutes())))
				return m, nil
			}
		case tea.KeyEsc:
			return m.openHistory()
		}
	}

	if m.focusIdx == 0 {
		m.taskInput, cmd = m.taskInput.Update(msg)
	} else {
		m.minutesInput, cmd = m.minutesInput.Update(msg)
	}
	return m, cmd
}

func (m Model) startFromInputs() (tea.Model, tea.Cmd) {
	duration := config.DefaultFocusDuration
	if val := strings.TrimSpace(m.minutesInput.Value()); val != "" {
		minutes, err := strconv.Atoi(val)
		if err != nil || minutes < 1 {
			m.err = fmt.Errorf("minutes must be a positive number")
			return m, nil
		}
		duration = time.Duration(minutes) * time.Minute
	}
	taskName := strings.TrimSpace(m.taskInput.Value())
	if taskName == "" {
		taskName = config.DefaultTaskName
	}

	if err := m.manager.Start(duration, taskName); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.statusMessage = ""
	m.view = viewTimer
	return m, nil
}

func (m Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case " ", "p":
		m.manager.TogglePause()
		return m, nil
	case "x":
		m.abandonSession()
		m.manager.Reset()
		m.statusMessage = ""
		m.view = viewSetup
		return m, nil
	case "h":
		return m.openHistory()
	case "t":
		m = m.cycleTheme()
		return m, nil
	case "enter", "n":
		if m.state.Status(time.Now()) == models.StatusFinished {
			m.manager.Reset()
			m.statusMessage = ""
			m.view = viewSetup
		}
		return m, nil
	}
	return m, nil
}

// abandonSession records the open session as incomplete with the elapsed time
// so far. Must run before Reset clears the session reference. Elapsed time is
// computed from a fresh engine snapshot, not the cached view state, which may
// not have received a push yet.
func (m *Model) abandonSession() {
	session := m.manager.Session()
	if session == nil {
		return
	}
	state := m.manager.State()
	elapsed := state.LastDuration
	if rem := m.manager.Remaining(); rem != nil {
		elapsed = state.LastDuration - *rem
	}
	if elapsed < 0 {
		elapsed = 0
	}
	m.history.FinishSession(context.Background(), session, elapsed, false)
}

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	m = m.refreshHistory()
	m.cursor = 0
	m.view = viewHistory
	return m, nil
}

func (m Model) refreshHistory() Model {
	ctx := context.Background()
	m.stats = m.history.AllTimeStatistics(ctx)
	m.groups = m.history.SessionsGroupedByDate(ctx)
	m.flat = m.flat[:0]
	for _, group := range m.groups {
		m.flat = append(m.flat, group.Sessions...)
	}
	return m
}

func (m Model) cycleTheme() Model {
	m.themeIdx = (m.themeIdx + 1) % len(themeOrder)
	SetTheme(themeOrder[m.themeIdx])
	m.theme = CurrentTheme
	return m
}

func (m Model) View() string {
	var body string
	switch m.view {
	case viewSetup:
		body = m.renderSetup()
	case viewTimer:
		body = m.renderTimer()
	case viewHistory:
		body = m.renderHistory()
	}
	return m.theme.Base.Render(body)
}

func (m Model) renderSetup() string {
	var b strings.Builder

	b.WriteString(m.renderHeaderFrame(m.theme.Header.Render("FOCUS")))
	b.WriteString("\n\n")

	taskLabel := "Task"
	minutesLabel := "Minutes"
	if m.focusIdx == 0 {
		taskLabel = m.theme.Focused.Render("Task")
	} else {
		minutesLabel = m.theme.Focused.Render("Minutes")
	}
	b.WriteString(fmt.Sprintf("  %s\n  %s\n\n", taskLabel, m.theme.Input.Render(m.taskInput.View())))
	b.WriteString(fmt.Sprintf("  %s\n  %s\n", minutesLabel, m.theme.Input.Width(12).Render(m.minutesInput.View())))

	presets := make([]string, len(config.PresetDurations))
	for i, d := range config.PresetDurations {
		presets[i] = strconv.Itoa(int(d.Minutes()))
	}
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  presets: %sm", strings.Join(presets, "/"))))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + m.theme.Paused.Render("  "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.renderFooter("enter: start  |  tab: switch field  |  left/right: presets  |  esc: history  |  ctrl+c: quit"))
	return b.String()
}

func (m Model) renderTimer() string {
	now := time.Now()
	status := m.state.Status(now)

	clock := "00:00"
	if rem := m.state.Remaining(now); rem != nil {
		clock = FormatClock(*rem)
	}

	var line string
	var style lipgloss.Style
	switch status {
	case models.StatusPaused:
		line = fmt.Sprintf("PAUSED  |  %s  |  %s remaining", m.state.TaskName, clock)
		style = m.theme.Paused
	case models.StatusFinished:
		line = fmt.Sprintf("COMPLETE  |  %s  |  %s", m.state.TaskName, FormatDuration(m.state.LastDuration))
		style = m.theme.Focused
	case models.StatusRunning:
		bar := ""
		if rem := m.state.Remaining(now); rem != nil && m.state.LastDuration > 0 {
			frac := 1 - float64(*rem)/float64(m.state.LastDuration)
			bar = "  |  " + m.progress.ViewAs(frac)
		}
		line = fmt.Sprintf("FOCUSING  |  %s%s  |  %s remaining", m.state.TaskName, bar, clock)
		style = m.theme.Timer
	default:
		line = "Ready"
		style = m.theme.Dim
	}

	var b strings.Builder
	b.WriteString(m.renderHeaderFrame(style.Render(line)))
	b.WriteString("\n")
	if m.statusMessage != "" {
		b.WriteString("\n" + m.theme.Highlight.Render("  "+m.statusMessage) + "\n")
	}

	help := "space: pause/resume  |  x: stop  |  h: history  |  t: theme  |  q: quit"
	if status == models.StatusFinished {
		help = "enter: new session  |  h: history  |  q: quit"
	}
	b.WriteString("\n" + m.renderFooter(help))
	return b.String()
}

func (m Model) renderHeaderFrame(content string) string {
	frame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	extra := lipgloss.Width(frame.Render(""))
	width := m.width - extra
	if width < 1 {
		width = lipgloss.Width(content) + 2
	}
	return frame.Width(width).Render(content)
}

func (m Model) renderFooter(help string) string {
	return m.theme.Dim.Render("  " + help)
}

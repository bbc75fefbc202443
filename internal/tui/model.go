// Package tui provides the Bubble Tea report session interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sahko/internal/model"
	"github.com/verte-zerg/sahko/internal/report"
	"github.com/verte-zerg/sahko/internal/stats"
	"github.com/verte-zerg/sahko/internal/store"
)

type state int

const (
	stateMainMenu state = iota
	statePromptStart
	statePromptEnd
	statePromptMonth
	statePostMenu
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	reportStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea report session. Records are loaded
// once before the session starts and stay read-only for its lifetime.
type Model struct {
	records []model.Record
	cfg     model.Config
	archive *store.Store

	state     state
	input     textinput.Model
	startDate time.Time
	rep       model.Report
	hasReport bool

	status string
	errMsg string

	quitting bool
}

// NewModel constructs a session model. archive may be nil; written
// reports are then not recorded in the history database.
func NewModel(records []model.Record, cfg model.Config, archive *store.Store) *Model {
	input := textinput.New()
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return &Model{
		records: records,
		cfg:     cfg,
		archive: archive,
		state:   stateMainMenu,
		input:   input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	switch m.state {
	case stateMainMenu:
		return m.updateMainMenu(keyMsg)
	case statePromptStart, statePromptEnd, statePromptMonth:
		return m.updatePrompt(keyMsg)
	case statePostMenu:
		return m.updatePostMenu(keyMsg)
	}
	return m, nil
}

func (m *Model) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.startPrompt(statePromptStart, "Start date (dd.mm.yyyy): ")
		return m, textinput.Blink
	case "2":
		m.startPrompt(statePromptMonth, "Month (1-12): ")
		return m, textinput.Blink
	case "3":
		m.showReport(report.BuildYear(m.records, m.cfg.Year))
		return m, nil
	case "4", "q":
		m.quitting = true
		return m, tea.Quit
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyEnter {
			m.errMsg = "Invalid selection. Please choose a valid option (1-4)."
		}
		return m, nil
	}
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.toMainMenu()
		return m, nil
	case tea.KeyEnter:
		m.submitPrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt() {
	value := strings.TrimSpace(m.input.Value())
	switch m.state {
	case statePromptStart:
		start, err := stats.ParseDate(value)
		if err != nil {
			m.errMsg = "Invalid date format. Please try again."
			m.input.SetValue("")
			return
		}
		m.startDate = start
		m.startPrompt(statePromptEnd, "End date (dd.mm.yyyy): ")
	case statePromptEnd:
		end, err := stats.ParseDate(value)
		if err != nil {
			m.errMsg = "Invalid date format. Please try again."
			m.input.SetValue("")
			return
		}
		rep, err := report.BuildRange(m.records, m.startDate, end)
		if errors.Is(err, report.ErrInvalidRange) {
			m.errMsg = "Start date is after end date. Please try again."
			m.startPrompt(statePromptStart, "Start date (dd.mm.yyyy): ")
			return
		}
		m.showReport(rep)
	case statePromptMonth:
		month, err := strconv.Atoi(value)
		if err != nil || month < 1 || month > 12 {
			m.errMsg = "Invalid month. Please enter a number between 1 and 12."
			m.input.SetValue("")
			return
		}
		rep, err := report.BuildMonth(m.records, m.cfg.Year, month)
		if err != nil {
			m.errMsg = "Invalid month. Please enter a number between 1 and 12."
			m.input.SetValue("")
			return
		}
		m.showReport(rep)
	}
}

func (m *Model) updatePostMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.writeReport()
		return m, nil
	case "2":
		m.toMainMenu()
		return m, nil
	case "3", "q":
		m.quitting = true
		return m, tea.Quit
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyEnter {
			m.errMsg = "Invalid selection. Please choose a valid option (1-3)."
		}
		return m, nil
	}
}

func (m *Model) startPrompt(next state, prompt string) {
	m.state = next
	m.errMsg = ""
	m.status = ""
	m.input.Prompt = prompt
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) showReport(rep model.Report) {
	m.rep = rep
	m.hasReport = true
	m.state = statePostMenu
	m.input.Blur()
	m.errMsg = ""
	m.status = ""
}

func (m *Model) toMainMenu() {
	m.state = stateMainMenu
	m.input.Blur()
	m.errMsg = ""
	m.status = ""
}

// writeReport persists the current report and archives it. Failures are
// reported as a status line; the session stays in the post menu.
func (m *Model) writeReport() {
	if err := report.WriteFile(m.cfg.OutputPath, m.rep.Lines); err != nil {
		m.errMsg = fmt.Sprintf("Could not write the report file: %v.", err)
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("Report written to %q.", m.cfg.OutputPath)
	if m.archive == nil {
		return
	}
	if _, err := m.archive.InsertReport(context.Background(), m.rep, m.cfg.OutputPath, time.Now()); err != nil {
		m.status = fmt.Sprintf("Report written to %q (archiving failed).", m.cfg.OutputPath)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	switch m.state {
	case stateMainMenu:
		b.WriteString(titleStyle.Render("Main Menu"))
		b.WriteString("\n")
		b.WriteString(menuStyle.Render(strings.Join([]string{
			"1. Create a daily report for a date range",
			"2. Create a monthly report",
			"3. Create the yearly report",
			"4. Exit",
		}, "\n")))
		b.WriteString("\n")
	case statePromptStart, statePromptEnd, statePromptMonth:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case statePostMenu:
		b.WriteString(reportStyle.Render(m.rep.Body()))
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Report Menu"))
		b.WriteString("\n")
		b.WriteString(menuStyle.Render(strings.Join([]string{
			fmt.Sprintf("1. Write report to %q", m.cfg.OutputPath),
			"2. Create a new report",
			"3. Exit",
		}, "\n")))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.footerHint()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) footerHint() string {
	switch m.state {
	case statePromptStart, statePromptEnd, statePromptMonth:
		return "enter confirm · esc back · ctrl+c quit"
	default:
		return "press a number · ctrl+c quit"
	}
}

// Report returns the most recently built report, if any. Used by the
// entrypoint to echo the final report after the session ends.
func (m *Model) Report() (model.Report, bool) {
	return m.rep, m.hasReport
}

package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmartens/dayflow/internal/cli/formatter"
)

// shellModel is the bubbletea Model for the interactive REPL.
type shellModel struct {
	input  textinput.Model
	app    *App
	output []string

	history    []string
	historyIdx int

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = formatter.StylePurple.Render("dayflow> ")
	ti.CharLimit = 200

	return shellModel{
		input:  ti,
		app:    app,
		output: []string{formatter.FormatShellWelcome()},
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		if len(m.history) > 0 && m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIdx < len(m.history) {
			m.historyIdx++
			if m.historyIdx == len(m.history) {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
		}
		return m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		if line == "" {
			return m, nil
		}

		m.history = append(m.history, line)
		m.historyIdx = len(m.history)
		m.output = append(m.output, formatter.Dim("> "+line))

		out, quit := m.dispatch(line)
		if out != "" {
			m.output = append(m.output, out)
		}
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	var b strings.Builder
	for _, block := range m.output {
		b.WriteString(block)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	return b.String()
}

// dispatch runs one shell command and returns its rendered output plus
// whether the shell should exit.
func (m *shellModel) dispatch(line string) (string, bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	ctx := context.Background()

	switch cmd {
	case "exit", "quit":
		return formatter.Dim("bye"), true

	case "help":
		return formatter.FormatShellHelp(), false

	case "sync":
		res, err := m.app.Sync.Sync(ctx)
		if err != nil {
			return shellError(err), false
		}
		return formatter.FormatSyncResult(res), false

	case "today":
		day, err := m.app.Plan.PlanToday(ctx)
		if err != nil {
			return shellError(err), false
		}
		return formatter.FormatDaySchedule(*day), false

	case "plan":
		days := defaultPlanDays
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return shellError(errBadDays(args[0])), false
			}
			days = parsed
		}
		schedules, err := m.app.Plan.PlanDays(ctx, days)
		if err != nil {
			return shellError(err), false
		}
		return formatter.FormatMultiDay(schedules), false

	case "explain":
		if len(args) != 1 {
			return formatter.Dim("usage: explain <task-id>"), false
		}
		exp, err := m.app.Plan.Explain(ctx, args[0])
		if err != nil {
			return shellError(err), false
		}
		return formatter.FormatExplanation(exp, time.Now()), false

	case "config":
		return formatter.FormatConfig(m.app.Config, m.app.ConfigPath), false

	default:
		return formatter.Dim("unknown command " + strconv.Quote(cmd) + ", try `help`"), false
	}
}

func shellError(err error) string {
	return formatter.StyleRed.Render("error: " + err.Error())
}

type errBadDays string

func (e errBadDays) Error() string {
	return "days must be a positive number, got " + strconv.Quote(string(e))
}

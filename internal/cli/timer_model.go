package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	timerMinBarWidth = 10
	timerMaxBarWidth = 60
)

// timerTickMsg asks the model to re-read the clock.
type timerTickMsg time.Time

type timerKeys struct {
	Skip key.Binding
	Quit key.Binding
}

func defaultTimerKeys() timerKeys {
	return timerKeys{
		Skip: key.NewBinding(key.WithKeys("s", "n"), key.WithHelp("s", "skip to next")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k timerKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Skip, k.Quit} }
func (k timerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// timerModel drives a PomodoroTimer: it counts down the running session and
// moves to the next one when time is up or the user skips. Time comes from
// the timer's clock; ticks only trigger a re-read.
type timerModel struct {
	pomodoro  *focus.PomodoroTimer
	keys      timerKeys
	help      help.Model
	bar       progress.Model
	interval  time.Duration
	maxCycles int
	notice    string
	done      bool
}

// newTimerModel starts the first work session. A non-positive interval
// disables ticking, for tests that send timerTickMsg themselves.
func newTimerModel(p *focus.PomodoroTimer, maxCycles int, interval time.Duration) timerModel {
	bar := progress.New(
		progress.WithGradient(string(formatter.ColorGreen), string(formatter.ColorHeader)),
		progress.WithoutPercentage(),
	)
	bar.Width = 40

	p.StartWork()
	return timerModel{
		pomodoro:  p,
		keys:      defaultTimerKeys(),
		help:      help.New(),
		bar:       bar,
		interval:  interval,
		maxCycles: maxCycles,
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.tick()
}

func (m timerModel) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return timerTickMsg(t) })
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, timerMinBarWidth), timerMaxBarWidth)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Skip):
			m.advance()
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil

	case timerTickMsg:
		if m.pomodoro.Status().Status == "completed" {
			m.advance()
			if m.done {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// advance finishes the running session and starts the next one, or stops
// once maxCycles work sessions are done.
func (m *timerModel) advance() {
	wasWork := m.pomodoro.IsWorkSession
	m.pomodoro.CompleteSession()

	if !wasWork {
		m.notice = "Break completed! Ready for work."
		m.pomodoro.StartWork()
		return
	}
	if m.maxCycles > 0 && m.pomodoro.SessionCount >= m.maxCycles {
		m.done = true
		return
	}
	m.notice = "Session completed! Time for a break."
	m.pomodoro.StartBreak()
}

func (m timerModel) View() string {
	if m.done {
		return ""
	}
	current := m.pomodoro.Current()
	if current == nil {
		return ""
	}

	label := "Focus"
	style := formatter.StyleHeader
	number := m.pomodoro.SessionCount + 1
	if !m.pomodoro.IsWorkSession {
		number = m.pomodoro.SessionCount
		label = "Break"
		if current.Duration == m.pomodoro.LongBreakDuration && current.Duration != m.pomodoro.BreakDuration {
			label = "Long break"
		}
		style = lipgloss.NewStyle().Foreground(formatter.ColorGreen).Bold(true)
	}

	total := time.Duration(current.Duration) * time.Minute
	pct := 0.0
	if total > 0 {
		pct = float64(current.Elapsed()) / float64(total)
	}

	var b strings.Builder
	b.WriteString(style.Render(strings.ToUpper(label)) + formatter.Dim(fmt.Sprintf("  #%d", number)) + "\n\n")
	b.WriteString("  " + formatter.Bold(formatter.FormatClock(current.TimeRemaining())) + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(min(pct, 1)) + "\n\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Completed sessions: %d", m.pomodoro.SessionCount)) + "\n")
	if m.notice != "" {
		b.WriteString(formatter.StylePurple.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// summary is printed after the program exits.
func (m timerModel) summary() string {
	n := m.pomodoro.SessionCount
	if n == 1 {
		return "Nice work: 1 focus session completed."
	}
	return fmt.Sprintf("Nice work: %d focus sessions completed.", n)
}

package focus

import (
	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/domain"
)

// LongBreakEvery is the number of completed work sessions between long breaks.
const LongBreakEvery = 4

// PomodoroStatus is a snapshot of a PomodoroTimer.
type PomodoroStatus struct {
	Status           string // idle, active or completed
	Kind             string // Work or Break
	RemainingMinutes int
	RemainingSeconds int
	SessionCount     int
	Message          string
}

// PomodoroTimer alternates work and break sessions, inserting a long break
// after every LongBreakEvery work sessions.
type PomodoroTimer struct {
	WorkDuration      int
	BreakDuration     int
	LongBreakDuration int
	SessionCount      int
	IsWorkSession     bool

	current *domain.FocusSession
	clock   clock.Clock
}

// NewPomodoroTimer creates a timer. Non-positive durations take the classic
// 25/5/15 defaults.
func NewPomodoroTimer(work, brk, longBreak int, c clock.Clock) *PomodoroTimer {
	if work <= 0 {
		work = 25
	}
	if brk <= 0 {
		brk = 5
	}
	if longBreak <= 0 {
		longBreak = 15
	}
	return &PomodoroTimer{
		WorkDuration:      work,
		BreakDuration:     brk,
		LongBreakDuration: longBreak,
		IsWorkSession:     true,
		clock:             clock.OrSystem(c),
	}
}

// Current returns the running session, or nil when idle.
func (p *PomodoroTimer) Current() *domain.FocusSession { return p.current }

func (p *PomodoroTimer) StartWork() {
	p.current = domain.NewFocusSession(domain.TechniquePomodoro, p.WorkDuration, p.BreakDuration, p.clock)
	p.current.Start()
	p.IsWorkSession = true
}

// StartBreak starts a break. The break is long when SessionCount is a
// multiple of LongBreakEvery, which includes a break taken before any work.
func (p *PomodoroTimer) StartBreak() {
	length := p.BreakDuration
	if p.SessionCount%LongBreakEvery == 0 {
		length = p.LongBreakDuration
	}
	p.current = domain.NewFocusSession(domain.TechniquePomodoro, length, 0, p.clock)
	p.current.Start()
	p.IsWorkSession = false
}

// CompleteSession finishes the running session. Only work sessions count.
func (p *PomodoroTimer) CompleteSession() {
	if p.current == nil {
		return
	}
	p.current.Complete()
	if p.IsWorkSession {
		p.SessionCount++
	}
	p.current = nil
}

func (p *PomodoroTimer) kind() string {
	if p.IsWorkSession {
		return "Work"
	}
	return "Break"
}

func (p *PomodoroTimer) Status() PomodoroStatus {
	if p.current == nil {
		return PomodoroStatus{Status: "idle", Message: "No active session", SessionCount: p.SessionCount}
	}

	if p.current.IsActive() {
		remaining := int(p.current.TimeRemaining().Seconds())
		return PomodoroStatus{
			Status:           "active",
			Kind:             p.kind(),
			RemainingMinutes: remaining / 60,
			RemainingSeconds: remaining % 60,
			SessionCount:     p.SessionCount,
		}
	}

	msg := "Break completed! Ready for work."
	if p.IsWorkSession {
		msg = "Session completed! Time for a break."
	}
	return PomodoroStatus{
		Status:       "completed",
		Kind:         p.kind(),
		SessionCount: p.SessionCount,
		Message:      msg,
	}
}

package focus

import (
	"testing"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPomodoroTimer_IdleStatus(t *testing.T) {
	p := NewPomodoroTimer(0, 0, 0, nil)
	assert.Equal(t, 25, p.WorkDuration)
	assert.Equal(t, 5, p.BreakDuration)
	assert.Equal(t, 15, p.LongBreakDuration)

	st := p.Status()
	assert.Equal(t, "idle", st.Status)
	assert.Equal(t, "No active session", st.Message)
}

func TestPomodoroTimer_WorkCycle(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	p := NewPomodoroTimer(25, 5, 15, c)

	p.StartWork()
	c.Advance(90 * time.Second)
	st := p.Status()
	assert.Equal(t, "active", st.Status)
	assert.Equal(t, "Work", st.Kind)
	assert.Equal(t, 23, st.RemainingMinutes)
	assert.Equal(t, 30, st.RemainingSeconds)

	c.Advance(24 * time.Minute)
	st = p.Status()
	assert.Equal(t, "completed", st.Status)
	assert.Equal(t, "Session completed! Time for a break.", st.Message)

	p.CompleteSession()
	assert.Equal(t, 1, p.SessionCount)
	assert.Nil(t, p.Current())
}

func TestPomodoroTimer_LongBreakEveryFourth(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	p := NewPomodoroTimer(25, 5, 15, c)

	var breaks []int
	for i := 0; i < LongBreakEvery; i++ {
		p.StartWork()
		p.CompleteSession()
		p.StartBreak()
		require.NotNil(t, p.Current())
		breaks = append(breaks, p.Current().Duration)
		p.CompleteSession()
	}

	assert.Equal(t, []int{5, 5, 5, 15}, breaks)
	assert.Equal(t, LongBreakEvery, p.SessionCount, "breaks do not count")
}

func TestPomodoroTimer_BreakCompletedMessage(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	p := NewPomodoroTimer(25, 5, 15, c)
	p.SessionCount = 1
	p.StartBreak()
	c.Advance(6 * time.Minute)

	st := p.Status()
	assert.Equal(t, "Break", st.Kind)
	assert.Equal(t, "Break completed! Ready for work.", st.Message)
}

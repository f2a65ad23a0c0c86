package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/alexanderramin/focuscoach/internal/teatest"
	"github.com/alexanderramin/focuscoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimerDriver(t *testing.T, maxCycles int) (*teatest.Driver, *focus.PomodoroTimer, func(time.Duration)) {
	t.Helper()
	clk := testutil.NewTestClock()
	p := focus.NewPomodoroTimer(25, 5, 15, clk)
	d := teatest.New(t, newTimerModel(p, maxCycles, 0), teatest.WithSize(80, 24))
	d.DrainInit()
	return d, p, clk.Advance
}

func timerView(d *teatest.Driver) string {
	return stripANSI(d.View())
}

func TestTimerModel_CountsDown(t *testing.T) {
	d, p, advance := newTimerDriver(t, 0)

	assert.True(t, p.IsWorkSession)
	assert.Contains(t, timerView(d), "FOCUS  #1")
	assert.Contains(t, timerView(d), "25:00")

	advance(90 * time.Second)
	d.Send(timerTickMsg{})
	assert.Contains(t, timerView(d), "23:30")
	assert.Contains(t, timerView(d), "Completed sessions: 0")
	assert.Zero(t, d.Dropped)
}

func TestTimerModel_AdvancesWhenTimeIsUp(t *testing.T) {
	d, p, advance := newTimerDriver(t, 0)

	advance(25 * time.Minute)
	d.Send(timerTickMsg{})

	assert.False(t, p.IsWorkSession)
	assert.Equal(t, 1, p.SessionCount)
	view := timerView(d)
	assert.Contains(t, view, "BREAK  #1")
	assert.Contains(t, view, "05:00")
	assert.Contains(t, view, "Session completed! Time for a break.")

	advance(5 * time.Minute)
	d.Send(timerTickMsg{})
	assert.True(t, p.IsWorkSession)
	view = timerView(d)
	assert.Contains(t, view, "FOCUS  #2")
	assert.Contains(t, view, "Break completed! Ready for work.")
}

func TestTimerModel_SkipAndLongBreak(t *testing.T) {
	d, p, _ := newTimerDriver(t, 0)

	// Work and break alternate; skipping ends each one early.
	for range focus.LongBreakEvery*2 - 1 {
		d.PressKey('s')
	}

	assert.Equal(t, focus.LongBreakEvery, p.SessionCount)
	require.False(t, p.IsWorkSession)
	assert.Equal(t, 15, p.Current().Duration)
	assert.Contains(t, timerView(d), "LONG BREAK  #4")
}

func TestTimerModel_StopsAfterMaxCycles(t *testing.T) {
	d, p, advance := newTimerDriver(t, 1)

	advance(25 * time.Minute)
	d.Send(timerTickMsg{})

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
	assert.Equal(t, 1, p.SessionCount)

	m, ok := d.Model.(timerModel)
	require.True(t, ok)
	assert.Equal(t, "Nice work: 1 focus session completed.", m.summary())
}

func TestTimerModel_Quit(t *testing.T) {
	d, p, _ := newTimerDriver(t, 0)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Zero(t, p.SessionCount, "quitting does not count the running session")
	m := d.Model.(timerModel)
	assert.Equal(t, "Nice work: 0 focus sessions completed.", m.summary())
}

func TestTimerModel_EscQuits(t *testing.T) {
	d, _, _ := newTimerDriver(t, 0)
	d.PressEsc()
	assert.True(t, d.Quitting)
}

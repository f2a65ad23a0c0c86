// Package teatest drives bubbletea models synchronously in tests.
//
// The driver calls Update directly and runs each returned Cmd, feeding its
// message back in until nothing is left. Cmds that block, such as tea.Tick,
// are given a short deadline and dropped when they miss it; tests send the
// tick messages themselves.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may run.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds from timer-backed ones.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd yields tea.QuitMsg. The runtime normally
	// consumes that message, so models rarely record it themselves.
	Quitting bool

	// Dropped counts Cmds abandoned for missing cmdTimeout.
	Dropped int
}

// New creates a Driver. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds. It does
// nothing after the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := execCmdWithTimeout(cmd)
	if !ok {
		d.Dropped++
		return
	}
	if msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs cmd on a goroutine and reports false when it does
// not return within cmdTimeout. The goroutine still finishes on its own.
func execCmdWithTimeout(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

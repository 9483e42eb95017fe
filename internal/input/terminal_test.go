package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"tile-sandbox/internal/render"
)

func newTestTerminal(t *testing.T) *Terminal {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	scr.SetSize(40, 20)
	t.Cleanup(scr.Fini)
	// Events are fed directly; the poll goroutine is not started.
	return &Terminal{
		State:  NewState(),
		events: make(chan tcell.Event, 8),
		canvas: render.NewTerminal(scr, 10, 20),
	}
}

func TestTerminalKeyLastsOneFrame(t *testing.T) {
	term := newTestTerminal(t)
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift)
	term.Poll()
	assert.True(t, term.KeyPressed('g'))
	assert.True(t, term.KeyDown('g'))

	term.Poll()
	assert.False(t, term.KeyDown('g'))
	assert.True(t, term.KeyReleased('g'))
}

func TestTerminalSpecialKeys(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyTab},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace},
		{tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), Key('3')},
	}
	for _, c := range cases {
		got, ok := keyFromEvent(c.ev)
		assert.True(t, ok)
		assert.Equal(t, c.want, got)
	}
}

func TestTerminalMouse(t *testing.T) {
	term := newTestTerminal(t)
	term.events <- tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone)
	term.Poll()
	x, y := term.Pointer()
	assert.Equal(t, 35, x)
	assert.Equal(t, 50, y)
	assert.True(t, term.ButtonPressed(ButtonLeft))

	term.Poll()
	assert.True(t, term.ButtonDown(ButtonLeft), "mouse buttons are levels")

	term.events <- tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone)
	term.Poll()
	assert.True(t, term.ButtonReleased(ButtonLeft))
}

func TestTerminalClosed(t *testing.T) {
	term := newTestTerminal(t)
	close(term.events)
	term.Poll()
	assert.True(t, term.Closed())
}

func TestTerminalCloseStopsBlockedReader(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	scr.SetSize(40, 20)
	t.Cleanup(scr.Fini)
	term := NewTerminal(scr, nil)

	// Nobody polls, so the queue fills and the reader blocks on send.
	assert.Eventually(t, func() bool {
		scr.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
		return len(term.events) == cap(term.events)
	}, 2*time.Second, time.Millisecond)
	scr.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)

	term.Close()
	term.Close()
	select {
	case <-term.exited:
	case <-time.After(time.Second):
		t.Fatal("event goroutine still running after Close")
	}
}

func TestTerminalCloseWithoutReader(t *testing.T) {
	term := newTestTerminal(t)
	assert.NotPanics(t, term.Close)
}

package input

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"tile-sandbox/internal/render"
)

// Terminal folds tcell events into a State once per frame.
//
// Terminals report key presses but never releases, so a key counts as held
// for exactly the frame in which its event arrived. Mouse events carry the
// full button mask and are tracked as levels.
type Terminal struct {
	*State
	events chan tcell.Event
	canvas *render.Terminal
	closed bool

	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once
}

// NewTerminal starts a goroutine that reads screen events until the screen
// is finalized or Close is called. canvas supplies the cell→pixel mapping
// and is re-synced on resize.
func NewTerminal(screen tcell.Screen, canvas *render.Terminal) *Terminal {
	t := &Terminal{
		State:  NewState(),
		events: make(chan tcell.Event, 64),
		canvas: canvas,
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(t.exited)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()
	return t
}

// Close stops the event goroutine even if nobody drains the queue. It is
// safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		if t.done != nil {
			close(t.done)
		}
	})
}

// Poll begins a new frame and applies every event queued since the last
// call. It never blocks.
func (t *Terminal) Poll() {
	t.Advance()
	t.ReleaseKeys()
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				return
			}
			t.handle(ev)
		default:
			return
		}
	}
}

// Closed reports whether the screen has stopped delivering events.
func (t *Terminal) Closed() bool { return t.closed }

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if t.canvas != nil {
			t.canvas.Sync()
		}
	case *tcell.EventKey:
		if k, ok := keyFromEvent(ev); ok {
			t.SetKey(k, true)
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		if t.canvas != nil {
			cam := t.canvas.Camera()
			px, py := cam.CellToPixel(cx, cy)
			t.SetPointer(px+cam.CellW/2, py+cam.CellH/2)
		} else {
			t.SetPointer(cx, cy)
		}
		mask := ev.Buttons()
		t.SetButton(ButtonLeft, mask&tcell.Button1 != 0)
		t.SetButton(ButtonRight, mask&tcell.Button2 != 0)
		t.SetButton(ButtonMiddle, mask&tcell.Button3 != 0)
	}
}

// keyFromEvent maps a tcell key event to a Key.
func keyFromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyRune:
		return Key(unicode.ToLower(ev.Rune())), true
	}
	return 0, false
}

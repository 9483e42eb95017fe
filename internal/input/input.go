// Package input exposes point-in-time keyboard and pointer queries that a
// simulation polls once per tick.
package input

// Key identifies a keyboard key. Printable keys are their lower-case rune;
// special keys are negative.
type Key rune

const (
	KeyEscape Key = -(iota + 1)
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace Key = ' '
)

var keyNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return string(rune(k))
}

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	numButtons
)

// Input is the per-frame query surface. Pressed and Released are true only
// in the frame where the transition happened.
type Input interface {
	Pointer() (x, y int)
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	KeyReleased(k Key) bool
	ButtonDown(b Button) bool
	ButtonPressed(b Button) bool
	ButtonReleased(b Button) bool
}

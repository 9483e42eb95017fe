package input

import "maps"

// State is an Input snapshot built by a backend. Backends call Advance at
// the start of a frame and then report the current levels with SetKey,
// SetButton and SetPointer.
type State struct {
	x, y     int
	keys     map[Key]bool
	prevKeys map[Key]bool
	buttons  [numButtons]bool
	prevBtns [numButtons]bool
}

// NewState returns a State with nothing held.
func NewState() *State {
	return &State{keys: make(map[Key]bool), prevKeys: make(map[Key]bool)}
}

// Advance starts a new frame: current levels become the previous ones.
func (s *State) Advance() {
	clear(s.prevKeys)
	maps.Copy(s.prevKeys, s.keys)
	s.prevBtns = s.buttons
}

// SetKey records whether k is held.
func (s *State) SetKey(k Key, down bool) {
	if down {
		s.keys[k] = true
		return
	}
	delete(s.keys, k)
}

// ReleaseKeys marks every key as up.
func (s *State) ReleaseKeys() { clear(s.keys) }

// SetButton records whether b is held.
func (s *State) SetButton(b Button, down bool) {
	if b < numButtons {
		s.buttons[b] = down
	}
}

// SetPointer records the pointer position in pixels.
func (s *State) SetPointer(x, y int) { s.x, s.y = x, y }

func (s *State) Pointer() (int, int) { return s.x, s.y }

func (s *State) KeyDown(k Key) bool     { return s.keys[k] }
func (s *State) KeyPressed(k Key) bool  { return s.keys[k] && !s.prevKeys[k] }
func (s *State) KeyReleased(k Key) bool { return !s.keys[k] && s.prevKeys[k] }

func (s *State) ButtonDown(b Button) bool {
	return b < numButtons && s.buttons[b]
}

func (s *State) ButtonPressed(b Button) bool {
	return b < numButtons && s.buttons[b] && !s.prevBtns[b]
}

func (s *State) ButtonReleased(b Button) bool {
	return b < numButtons && !s.buttons[b] && s.prevBtns[b]
}

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tile-sandbox/internal/input"
)

// Input samples ebiten's keyboard and mouse into a State once per frame.
// Unlike a terminal, ebiten reports real key levels, so held keys stay
// down across frames.
type Input struct {
	*input.State
	pressed []ebiten.Key
}

// NewInput returns an Input with nothing held.
func NewInput() *Input {
	return &Input{State: input.NewState()}
}

// Poll begins a new frame from the current device state.
func (in *Input) Poll() {
	in.Advance()
	in.ReleaseKeys()
	in.pressed = inpututil.AppendPressedKeys(in.pressed[:0])
	for _, k := range in.pressed {
		if key, ok := translateKey(k); ok {
			in.SetKey(key, true)
		}
	}
	in.SetPointer(ebiten.CursorPosition())
	in.SetButton(input.ButtonLeft, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	in.SetButton(input.ButtonRight, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	in.SetButton(input.ButtonMiddle, ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))
}

// Closed reports a window close request.
func (in *Input) Closed() bool { return ebiten.IsWindowBeingClosed() }

func translateKey(k ebiten.Key) (input.Key, bool) {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return input.Key('a' + rune(k-ebiten.KeyA)), true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return input.Key('0' + rune(k-ebiten.KeyDigit0)), true
	}
	switch k {
	case ebiten.KeyEscape:
		return input.KeyEscape, true
	case ebiten.KeyEnter:
		return input.KeyEnter, true
	case ebiten.KeyTab:
		return input.KeyTab, true
	case ebiten.KeyBackspace:
		return input.KeyBackspace, true
	case ebiten.KeySpace:
		return input.KeySpace, true
	case ebiten.KeyArrowUp:
		return input.KeyUp, true
	case ebiten.KeyArrowDown:
		return input.KeyDown, true
	case ebiten.KeyArrowLeft:
		return input.KeyLeft, true
	case ebiten.KeyArrowRight:
		return input.KeyRight, true
	}
	return 0, false
}

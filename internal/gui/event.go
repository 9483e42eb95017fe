package gui

import "fmt"

// EventKind says what a widget event carries.
type EventKind uint8

const (
	EventBrushSize EventKind = iota
	EventClear
	EventSave
	EventGridToggle
	EventImageSelect
)

var eventNames = [...]string{"brush-size", "clear", "save", "grid-toggle", "image-select"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event is sent by a widget to whoever drains the panel's event channel.
type Event struct {
	Kind  EventKind
	Value int    // brush size
	On    bool   // grid toggle
	Path  string // selected image
}

// publish sends ev without blocking. Events beyond the channel buffer are
// dropped; one frame of input never produces that many.
func publish(ch chan<- Event, ev Event) bool {
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}

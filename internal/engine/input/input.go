// Package input translates SDL2 events into painter events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventWheel
	EventKeyDown
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Key identifies the keys the painter reacts to. Anything else is
// dropped during translation.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyR
	KeyF12
	KeyEscape
)

// Event is one processed input event. Pointer coordinates are canvas
// pixels with the origin at the top left. WheelDelta follows the
// classic wheel convention: +120 per notch toward the screen.
type Event struct {
	Type       EventType
	X, Y       float32
	Button     Button
	Shift      bool
	WheelDelta float32
	Key        Key
	Width      int
	Height     int
}

// Input polls SDL events and converts them to painter events.
type Input struct {
	events []Event
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to painter events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if key := mapKey(e.Keysym.Scancode); key != KeyNone {
					i.events = append(i.events, Event{
						Type:  EventKeyDown,
						Key:   key,
						Shift: shiftHeld(),
					})
				}
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:  EventPointerMove,
				X:     float32(e.X),
				Y:     float32(e.Y),
				Shift: shiftHeld(),
			})

		case *sdl.MouseButtonEvent:
			t := EventPointerUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				t = EventPointerDown
			}
			i.events = append(i.events, Event{
				Type:   t,
				X:      float32(e.X),
				Y:      float32(e.Y),
				Button: mapButton(e.Button),
				Shift:  shiftHeld(),
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:       EventWheel,
				WheelDelta: float32(e.Y) * 120,
				Shift:      shiftHeld(),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func shiftHeld() bool {
	return sdl.GetModState()&sdl.KMOD_SHIFT != 0
}

func mapKey(code sdl.Scancode) Key {
	switch code {
	case sdl.SCANCODE_TAB:
		return KeyTab
	case sdl.SCANCODE_R:
		return KeyR
	case sdl.SCANCODE_F12:
		return KeyF12
	case sdl.SCANCODE_ESCAPE:
		return KeyEscape
	default:
		return KeyNone
	}
}

func mapButton(button uint8) Button {
	switch button {
	case sdl.BUTTON_LEFT:
		return ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return ButtonSecondary
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

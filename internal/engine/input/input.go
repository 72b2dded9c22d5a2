// Package input turns the SDL event queue into per-frame viewer input:
// a small event list plus held-key and drag state.
package input

import "github.com/veandco/go-sdl2/sdl"

// EventType tags the events the viewer reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
)

// Event is one processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	WheelY float32
}

// Input drains the SDL queue once per frame. Beyond the event list it
// tracks held keys and buttons and accumulates left-drag motion and
// wheel scroll between Updates.
type Input struct {
	events  []Event
	held    map[sdl.Scancode]bool
	buttons map[uint8]bool

	dragX, dragY float32
	wheelY       float32

	quit bool
}

// New returns an empty input state.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		held:    make(map[sdl.Scancode]bool),
		buttons: make(map[uint8]bool),
	}
}

// Update drains pending SDL events and reports whether the viewer
// should quit.
func (in *Input) Update() bool {
	in.events = in.events[:0]
	in.dragX, in.dragY = 0, 0
	in.wheelY = 0
	in.quit = false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		in.dispatch(ev)
	}
	return in.quit
}

func (in *Input) dispatch(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		in.quit = true
		in.events = append(in.events, Event{Type: EventQuit})

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			in.events = append(in.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		in.key(e)

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			in.buttons[e.Button] = true
		} else {
			delete(in.buttons, e.Button)
		}

	case *sdl.MouseMotionEvent:
		if in.buttons[sdl.BUTTON_LEFT] {
			in.dragX += float32(e.XRel)
			in.dragY += float32(e.YRel)
		}

	case *sdl.MouseWheelEvent:
		in.wheelY += float32(e.Y)
		in.events = append(in.events, Event{Type: EventMouseWheel, WheelY: float32(e.Y)})
	}
}

// key tracks held state and emits edge events. Repeats refresh the
// held map but never produce a second EventKeyDown.
func (in *Input) key(e *sdl.KeyboardEvent) {
	code := e.Keysym.Scancode
	switch e.Type {
	case sdl.KEYDOWN:
		in.held[code] = true
		if e.Repeat == 0 {
			in.events = append(in.events, Event{Type: EventKeyDown, Key: code})
		}
	case sdl.KEYUP:
		delete(in.held, code)
		in.events = append(in.events, Event{Type: EventKeyUp, Key: code})
	}
}

// Events returns the events gathered by the last Update.
func (in *Input) Events() []Event {
	return in.events
}

// IsKeyDown reports whether the key is currently held.
func (in *Input) IsKeyDown(code sdl.Scancode) bool {
	return in.held[code]
}

// IsKeyPressed reports whether the key went down this frame.
func (in *Input) IsKeyPressed(code sdl.Scancode) bool {
	for _, e := range in.events {
		if e.Type == EventKeyDown && e.Key == code {
			return true
		}
	}
	return false
}

// Drag returns mouse motion accumulated while the left button was
// held, in pixels, since the last Update.
func (in *Input) Drag() (float32, float32) {
	return in.dragX, in.dragY
}

// Wheel returns scroll accumulated since the last Update, positive
// away from the user.
func (in *Input) Wheel() float32 {
	return in.wheelY
}

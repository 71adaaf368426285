// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies processed events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// SizeFunc reports the drawable size after a window size change. When nil,
// the window event's own dimensions are used.
type SizeFunc func() (int, int)

// Input polls SDL events and dispatches them to subscribers.
type Input struct {
	events []Event
	size   SizeFunc
	quit   bool

	resize []func(width, height int)
	keys   map[sdl.Scancode][]func()
}

// New creates a new input handler.
func New(size SizeFunc) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		size:   size,
		keys:   make(map[sdl.Scancode][]func()),
	}
}

// OnResize registers fn to be called with the new drawable size.
func (i *Input) OnResize(fn func(width, height int)) {
	i.resize = append(i.resize, fn)
}

// OnKey registers fn to be called when key is pressed.
func (i *Input) OnKey(key sdl.Scancode, fn func()) {
	i.keys[key] = append(i.keys[key], fn)
}

// Update polls SDL events, dispatches them and returns true once a quit
// has been requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.Dispatch(Event{Type: EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.Dispatch(Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.Dispatch(Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.Dispatch(Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	return i.quit
}

// Dispatch records e and runs its subscribers.
func (i *Input) Dispatch(e Event) {
	switch e.Type {
	case EventQuit:
		i.quit = true
	case EventWindowResize:
		if i.size != nil {
			e.Width, e.Height = i.size()
		}
		for _, fn := range i.resize {
			fn(e.Width, e.Height)
		}
	case EventKeyDown:
		for _, fn := range i.keys[e.Key] {
			fn()
		}
	}
	i.events = append(i.events, e)
}

// Quit requests the loop to end on the next Update.
func (i *Input) Quit() {
	i.quit = true
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

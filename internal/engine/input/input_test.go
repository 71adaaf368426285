package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestResizeUsesDrawableSize(t *testing.T) {
	in := New(func() (int, int) { return 1600, 1200 })

	var gotW, gotH int
	in.OnResize(func(w, h int) { gotW, gotH = w, h })
	in.Dispatch(Event{Type: EventWindowResize, Width: 800, Height: 600})

	if gotW != 1600 || gotH != 1200 {
		t.Errorf("resize: got %dx%d, want 1600x1200", gotW, gotH)
	}
}

func TestResizeWithoutSizeFunc(t *testing.T) {
	in := New(nil)

	calls := 0
	in.OnResize(func(w, h int) {
		calls++
		if w != 800 || h != 600 {
			t.Errorf("resize: got %dx%d, want 800x600", w, h)
		}
	})
	in.OnResize(func(int, int) { calls++ })
	in.Dispatch(Event{Type: EventWindowResize, Width: 800, Height: 600})

	if calls != 2 {
		t.Errorf("handlers called: got %d, want 2", calls)
	}
}

func TestKeyHandlers(t *testing.T) {
	in := New(nil)

	pressed := 0
	in.OnKey(sdl.SCANCODE_F12, func() { pressed++ })

	in.Dispatch(Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12})
	in.Dispatch(Event{Type: EventKeyUp, Key: sdl.SCANCODE_F12})
	in.Dispatch(Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE})

	if pressed != 1 {
		t.Errorf("F12 handler: got %d calls, want 1", pressed)
	}
	if !in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("expected ESC to be recorded")
	}
	if len(in.Events()) != 3 {
		t.Errorf("events: got %d, want 3", len(in.Events()))
	}
}

func TestQuit(t *testing.T) {
	in := New(nil)
	in.OnKey(sdl.SCANCODE_ESCAPE, in.Quit)

	in.Dispatch(Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE})
	if !in.quit {
		t.Error("ESC handler should request quit")
	}

	in = New(nil)
	in.Dispatch(Event{Type: EventQuit})
	if !in.quit {
		t.Error("quit event should request quit")
	}
}

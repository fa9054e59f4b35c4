// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies the kind of a processed event.
type EventType int

// Event types the demo reacts to.
const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Action is what a key press asks the application to do.
type Action int

// Key actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to demo events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := convert(event); ok {
			i.events = append(i.events, ev)
			if ev.Type == EventQuit || ActionFor(ev) == ActionQuit {
				quit = true
			}
		}
	}

	return quit
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}
	}
	return Event{}, false
}

// ActionFor maps a key press to an action: Escape quits, F12 takes a screenshot.
func ActionFor(ev Event) Action {
	if ev.Type != EventKeyDown {
		return ActionNone
	}
	switch ev.Key {
	case sdl.K_ESCAPE:
		return ActionQuit
	case sdl.K_F12:
		return ActionScreenshot
	default:
		return ActionNone
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Requested reports whether any key press in the last Update asked for action.
func (i *Input) Requested(action Action) bool {
	for _, e := range i.events {
		if ActionFor(e) == action {
			return true
		}
	}
	return false
}

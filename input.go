package thicket

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrManagerClosed is returned by Alloc after the manager has been closed.
var ErrManagerClosed = errors.New("thicket: input manager closed")

// InputResource is a device handle handed out by an InputManager.
type InputResource interface {
	ID() uint32
	Close()
}

// InputManager owns a family of input devices. The Engine calls Update once
// per tick before the top state updates, and Close once on shutdown, which
// releases every resource still allocated.
type InputManager interface {
	Alloc() (InputResource, error)
	Free(rsc InputResource) bool
	Update()
	Close()
}

// InputEventType identifies a kind of input event.
type InputEventType uint8

const (
	InputKeyDown InputEventType = iota // fires on the tick a key goes down
	InputKeyUp                         // fires on the tick a key is released
	InputChar                          // fires for each typed character
)

// String returns the event type name.
func (t InputEventType) String() string {
	switch t {
	case InputKeyDown:
		return "keydown"
	case InputKeyUp:
		return "keyup"
	case InputChar:
		return "char"
	default:
		return "unknown"
	}
}

// InputEvent is what input managers publish through their Gateway.
type InputEvent struct {
	Type   InputEventType
	Device uint32 // ID of the InputResource that observed the event
	Frame  uint64 // manager tick counter, starting at 1
	Key    ebiten.Key
	Char   rune
}

// Gateway is the messaging handle input managers publish events to. It is
// passed in by the caller; see the ecs package for a Donburi-backed one.
type Gateway interface {
	Publish(event InputEvent)
}

// GatewayFunc adapts a plain function to Gateway.
type GatewayFunc func(event InputEvent)

// Publish calls f(event).
func (f GatewayFunc) Publish(event InputEvent) {
	f(event)
}

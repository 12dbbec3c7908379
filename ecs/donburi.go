package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for thicket input events.
var InputEventType = events.NewEventType[thicket.InputEvent]()

type donburiGateway struct {
	world donburi.World
}

// NewDonburiGateway creates a Gateway backed by a Donburi world. Events are
// queued on InputEventType and delivered by ProcessEvents.
func NewDonburiGateway(world donburi.World) thicket.Gateway {
	return &donburiGateway{world: world}
}

func (g *donburiGateway) Publish(event thicket.InputEvent) {
	InputEventType.Publish(g.world, event)
}

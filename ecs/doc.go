// Package ecs provides ECS adapters for thicket's input managers.
//
// The primary adapter is [NewDonburiGateway], which bridges input events
// (key down, key up, typed characters) into a [Donburi] world as typed events.
// Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	gateway := ecs.NewDonburiGateway(world)
//	keyboards := thicket.NewKeyboardManager(gateway, nil)
//	engine := thicket.NewEngine(cfg, keyboards)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

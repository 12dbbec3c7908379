// Package thicket is a game-object tree for [Ebitengine] games.
//
// A [ContainerState] owns a forest of objects and drives four passes over it:
// update, render, wakeup and close. Every object embeds [Node], which carries
// its children and its destruction mark, and implements whichever of the
// [Object] hooks it needs.
//
// # Quick start
//
//	type Box struct {
//		thicket.Node
//		X, Y float64
//	}
//
//	func (b *Box) OnUpdate() {
//		b.X++
//		if b.X > 640 {
//			b.MarkForDestruction()
//		}
//	}
//
//	func (b *Box) OnRender(r *thicket.RendererContainer) {
//		x, y := b.X, b.Y
//		r.Draw(0, func(screen *ebiten.Image) { /* draw at x, y */ })
//	}
//
//	state := thicket.NewContainerState()
//	state.Add(&Box{})
//
//	engine := thicket.NewEngine(thicket.RunConfig{Title: "Boxes"})
//	engine.Push(state)
//	thicket.Run(engine)
//
// # Traversal rules
//
// Every pass is pre-order: a parent's hook runs before its children's, and
// siblings are visited in the order they were added.
//
// Update skips objects marked for destruction but leaves them in place.
// Children added during an update pass are first updated on the next pass.
//
// Render is where marked objects are swept. A marked object is unlinked and
// OnDestroy runs on it and then on its whole subtree, whatever their own
// marks. Everything else renders into a fresh [RendererContainer], which is
// sorted and drawn onto the screen at the end of the pass. An object marked
// during update is therefore destroyed by the next render, and never if no
// render follows.
//
// Wakeup reaches every object still in the tree, marked or not, with the
// same arguments.
//
// Close destroys everything that is left.
//
// # States
//
// [Engine] runs a stack of [State] values (ContainerState is one) as an
// [ebiten.Game]. Popping a state closes it and wakes the one below with the
// arguments given to [Engine.Pop].
//
// # Input
//
// [KeyboardManager] is an [InputManager] that hands out [Keyboard] resources
// and publishes key events to a [Gateway]. The ecs subpackage provides a
// Gateway backed by a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package thicket

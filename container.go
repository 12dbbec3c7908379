package thicket

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// ContainerState is a State that owns a forest of top-level objects and
// drives update, render, wakeup and teardown over all of them. The zero value
// is ready to use.
//
// Embed it and populate the tree with Add in the constructor:
//
//	type PlayState struct{ thicket.ContainerState }
//
//	func NewPlayState() *PlayState {
//		s := &PlayState{}
//		s.Add(newPlayer())
//		return s
//	}
type ContainerState struct {
	objects []Object
	debug   bool

	// Reused storage for each pass's RendererContainer.
	commands []RenderCommand
	sortBuf  []RenderCommand
}

// NewContainerState creates an empty container.
func NewContainerState() *ContainerState {
	return &ContainerState{
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Add appends a top-level object. Same panics as Node.AddChild.
func (s *ContainerState) Add(o Object) {
	if o == nil {
		panic("thicket: cannot add nil object")
	}
	n := o.objectNode()
	checkAttachable(n)
	if n.ID == 0 {
		n.ID = nextObjectID()
	}
	n.parent = nil
	n.owned = true
	s.objects = append(s.objects, o)
}

// Objects returns the top-level objects. The returned slice MUST NOT be mutated.
func (s *ContainerState) Objects() []Object {
	return s.objects
}

// NumObjects returns the number of top-level objects.
func (s *ContainerState) NumObjects() int {
	return len(s.objects)
}

// Update runs one update pass. Marked objects are skipped, not swept; sweeping
// only happens in Render.
func (s *ContainerState) Update() {
	objects := s.objects
	for _, o := range objects {
		if !o.objectNode().destroy {
			updateTree(o)
		}
	}
}

// Render runs one render pass into a fresh RendererContainer: marked objects
// are destroyed with their subtrees and unlinked, the rest render. The
// collected commands are then drawn onto screen.
func (s *ContainerState) Render(screen *ebiten.Image) {
	r := newRendererContainer(s.commands, s.sortBuf)

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	sweepOrRender(&s.objects, r)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.rendered = r.rendered
		stats.swept = r.swept
		stats.commandCount = len(r.commands)
		t0 = time.Now()
	}

	r.render(screen)

	if s.debug {
		stats.flushTime = time.Since(t0)
		s.debugLog(stats)
	}

	// Keep the grown buffers for the next pass, without holding on to closures.
	clear(r.commands)
	clear(r.sortBuf)
	s.commands = r.commands[:0]
	s.sortBuf = r.sortBuf[:0]
}

// Wakeup delivers args to every object in the tree, pre-order. Called when the
// state above this one is popped.
func (s *ContainerState) Wakeup(args ...any) {
	for _, o := range s.objects {
		wakeupTree(o, args)
	}
}

// Close destroys every remaining object and empties the container. Calling it
// again is a no-op.
func (s *ContainerState) Close() {
	objects := s.objects
	s.objects = nil
	for _, o := range objects {
		destroyTree(o)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// that reach a destroyed object panic, tree depth and child count warnings
// are printed, and per-pass stats are logged to stderr.
func (s *ContainerState) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

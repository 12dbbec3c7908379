package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// State is one entry of the Engine's state stack. ContainerState implements it.
type State interface {
	// Update runs once per tick while the state is on top.
	Update()
	// Render draws the state onto screen while it is on top.
	Render(screen *ebiten.Image)
	// Wakeup is called when the state above this one is popped, with the
	// arguments given to Pop.
	Wakeup(args ...any)
	// Close is called exactly once when the state leaves the stack.
	Close()
}

type stackOpKind uint8

const (
	opPush stackOpKind = iota
	opPop
)

type stackOp struct {
	kind  stackOpKind
	state State
	args  []any
}

// Engine is an ebiten.Game that runs a stack of States. Only the top state is
// updated and rendered. Input managers are updated once per tick before the
// top state.
type Engine struct {
	cfg      RunConfig
	states   []State
	pending  []stackOp
	inputs   []InputManager
	overlay  *ContainerState
	updating bool
	closed   bool
}

// NewEngine creates an engine with an empty stack. The given input managers
// are owned by the engine and closed with it.
func NewEngine(cfg RunConfig, inputs ...InputManager) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:     cfg,
		inputs:  inputs,
		overlay: NewContainerState(),
	}
	if cfg.Debug {
		e.overlay.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		e.overlay.Add(NewFPSCounter())
	}
	return e
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() RunConfig {
	return e.cfg
}

// AddInputManager registers another input manager with the engine.
func (e *Engine) AddInputManager(m InputManager) {
	e.inputs = append(e.inputs, m)
}

// Push places s on top of the stack. Called during Update, the push takes
// effect once the current tick finishes.
func (e *Engine) Push(s State) {
	if s == nil {
		panic("thicket: cannot push nil state")
	}
	e.schedule(stackOp{kind: opPush, state: s})
}

// Pop closes the top state and wakes the one below it with args. Called during
// Update, the pop takes effect once the current tick finishes. Popping an
// empty stack is a no-op.
func (e *Engine) Pop(args ...any) {
	e.schedule(stackOp{kind: opPop, args: args})
}

// Top returns the state on top of the stack, or nil.
func (e *Engine) Top() State {
	if len(e.states) == 0 {
		return nil
	}
	return e.states[len(e.states)-1]
}

// Len returns the stack depth.
func (e *Engine) Len() int {
	return len(e.states)
}

// Update implements ebiten.Game. It returns ebiten.Termination once the stack
// is empty.
func (e *Engine) Update() error {
	if e.closed {
		return ebiten.Termination
	}
	e.updating = true
	for _, m := range e.inputs {
		m.Update()
	}
	if top := e.Top(); top != nil {
		top.Update()
	}
	e.overlay.Update()
	e.updating = false

	e.applyPending()
	if len(e.states) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	if top := e.Top(); top != nil {
		top.Render(screen)
	}
	e.overlay.Render(screen)
}

// Layout implements ebiten.Game.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Close closes every state from the top down without waking any of them,
// then the overlay and the input managers. Calling it again is a no-op.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.pending = nil
	for i := len(e.states) - 1; i >= 0; i-- {
		e.states[i].Close()
		e.states[i] = nil
	}
	e.states = nil
	e.overlay.Close()
	for _, m := range e.inputs {
		m.Close()
	}
}

func (e *Engine) schedule(op stackOp) {
	if e.closed {
		return
	}
	if e.updating {
		e.pending = append(e.pending, op)
		return
	}
	e.apply(op)
}

// applyPending runs the stack operations queued during the last tick in the
// order they were requested.
func (e *Engine) applyPending() {
	for len(e.pending) > 0 {
		op := e.pending[0]
		e.pending[0] = stackOp{}
		e.pending = e.pending[1:]
		e.apply(op)
	}
	e.pending = nil
}

func (e *Engine) apply(op stackOp) {
	switch op.kind {
	case opPush:
		e.states = append(e.states, op.state)
	case opPop:
		n := len(e.states)
		if n == 0 {
			return
		}
		top := e.states[n-1]
		e.states[n-1] = nil
		e.states = e.states[:n-1]
		top.Close()
		if next := e.Top(); next != nil {
			next.Wakeup(op.args...)
		}
	}
}

package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is an object that animates one float64 field and removes itself from
// the tree when it finishes. Add it anywhere in a ContainerState:
//
//	box.AddChild(thicket.NewTween("fade", &box.Alpha, 0, 0.5, ease.OutQuad))
//
// Each OnUpdate advances the tween by one tick (1/TPS seconds unless SetStep
// is used). On the tick it finishes, OnComplete runs and the tween marks
// itself for destruction.
type Tween struct {
	Node

	// OnComplete, if set, runs once when the tween finishes.
	OnComplete func()

	tween *gween.Tween
	field *float64
	step  float32
	bound *Node
	done  bool
}

// NewTween creates a tween from the field's current value to to over duration
// seconds using the easing function.
func NewTween(name string, field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
		step:  float32(1.0 / float64(ebiten.TPS())),
	}
	t.Name = name
	return t
}

// SetStep overrides the time advanced per update, in seconds.
func (t *Tween) SetStep(dt float32) {
	t.step = dt
}

// Bind stops the tween as soon as o is marked for destruction or destroyed.
func (t *Tween) Bind(o Object) {
	t.bound = o.objectNode()
}

// Done reports whether the tween has finished or been stopped.
func (t *Tween) Done() bool {
	return t.done
}

// Stop ends the tween without running OnComplete.
func (t *Tween) Stop() {
	if t.done {
		return
	}
	t.done = true
	t.MarkForDestruction()
}

func (t *Tween) OnUpdate() {
	if t.done {
		return
	}
	if t.bound != nil && (t.bound.destroy || t.bound.destroyed) {
		t.Stop()
		return
	}
	val, finished := t.tween.Update(t.step)
	*t.field = float64(val)
	if !finished {
		return
	}
	t.done = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
	t.MarkForDestruction()
}

package thicket

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAnimatesAndSweeps(t *testing.T) {
	s := NewContainerState()
	holder := NewNode("holder")
	s.Add(holder)

	value := 0.0
	completed := 0
	tw := NewTween("slide", &value, 100, 1.0, ease.Linear)
	tw.SetStep(0.25)
	tw.OnComplete = func() { completed++ }
	holder.AddChild(tw)

	s.Update()
	if math.Abs(value-25) > 0.01 {
		t.Errorf("value after 1 step = %v, want 25", value)
	}
	for range 3 {
		s.Update()
	}
	if math.Abs(value-100) > 0.01 {
		t.Errorf("value at end = %v, want 100", value)
	}
	if !tw.Done() || !tw.MarkedForDestruction() {
		t.Error("finished tween should be done and marked")
	}
	if completed != 1 {
		t.Errorf("OnComplete ran %d times, want 1", completed)
	}
	if holder.NumChildren() != 1 {
		t.Error("tween should stay linked until a render pass")
	}

	s.Update()
	if completed != 1 {
		t.Errorf("OnComplete ran %d times after extra update, want 1", completed)
	}

	s.Render(nil)
	if holder.NumChildren() != 0 || !tw.IsDestroyed() {
		t.Error("render should sweep the finished tween")
	}
}

func TestTweenBoundObjectStopsIt(t *testing.T) {
	s := NewContainerState()
	target := NewNode("target")
	s.Add(target)

	value := 0.0
	tw := NewTween("fade", &value, 1, 1.0, ease.Linear)
	tw.SetStep(0.1)
	completed := false
	tw.OnComplete = func() { completed = true }
	tw.Bind(target)
	s.Add(tw)

	s.Update()
	before := value
	target.MarkForDestruction()
	s.Update()

	if value != before {
		t.Errorf("value changed after target was marked: %v -> %v", before, value)
	}
	if !tw.Done() || !tw.MarkedForDestruction() {
		t.Error("tween should stop once its target is marked")
	}
	if completed {
		t.Error("OnComplete should not run when stopped")
	}

	s.Render(nil)
	if s.NumObjects() != 0 {
		t.Errorf("NumObjects = %d, want 0", s.NumObjects())
	}
}

func TestTweenStop(t *testing.T) {
	value := 5.0
	tw := NewTween("t", &value, 10, 1.0, ease.Linear)
	tw.Stop()
	tw.Stop()
	tw.OnUpdate()
	if value != 5 {
		t.Errorf("value = %v, want 5 after Stop", value)
	}
	if !tw.MarkedForDestruction() {
		t.Error("stopped tween should be marked")
	}
}

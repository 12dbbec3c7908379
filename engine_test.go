package thicket

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

// stateProbe is a State that records its lifecycle into a shared log.
type stateProbe struct {
	name   string
	log    *[]string
	update func()
	args   [][]any
}

func (s *stateProbe) Update() {
	*s.log = append(*s.log, "update "+s.name)
	if s.update != nil {
		s.update()
	}
}

func (s *stateProbe) Render(*ebiten.Image) { *s.log = append(*s.log, "render "+s.name) }

func (s *stateProbe) Wakeup(args ...any) {
	*s.log = append(*s.log, "wakeup "+s.name)
	s.args = append(s.args, args)
}

func (s *stateProbe) Close() { *s.log = append(*s.log, "close "+s.name) }

// inputProbe is an InputManager that records calls.
type inputProbe struct {
	log *[]string
}

func (m *inputProbe) Alloc() (InputResource, error) { return nil, errors.New("unsupported") }
func (m *inputProbe) Free(InputResource) bool       { return false }
func (m *inputProbe) Update()                       { *m.log = append(*m.log, "input update") }
func (m *inputProbe) Close()                        { *m.log = append(*m.log, "input close") }

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(RunConfig{})
	w, h := e.Layout(1920, 1080)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
	if e.Top() != nil || e.Len() != 0 {
		t.Error("new engine should have an empty stack")
	}
}

func TestEnginePushOutsideTickIsImmediate(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{Width: 320, Height: 240})
	a := &stateProbe{name: "a", log: &log}
	e.Push(a)
	if e.Top() != State(a) {
		t.Fatal("Top should be a")
	}
	if w, h := e.Layout(0, 0); w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}
}

func TestEngineUpdateOrder(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{}, &inputProbe{log: &log})
	e.Push(&stateProbe{name: "a", log: &log})
	e.Push(&stateProbe{name: "b", log: &log})

	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	e.Draw(nil)

	want := []string{"input update", "update b", "render b"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestEnginePopWakesWithArgs(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{})
	menu := &stateProbe{name: "menu", log: &log}
	e.Push(menu)
	var game *stateProbe
	game = &stateProbe{name: "game", log: &log, update: func() {
		e.Pop("won", 120)
		if e.Top() != State(game) {
			t.Error("pop during a tick should be deferred")
		}
	}}
	e.Push(game)

	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := []string{"update game", "close game", "wakeup menu"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]any{{"won", 120}}, menu.args); diff != "" {
		t.Errorf("wakeup args mismatch (-want +got):\n%s", diff)
	}
	if e.Top() != State(menu) {
		t.Error("Top should be menu after pop")
	}
}

func TestEngineTerminatesOnEmptyStack(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{})
	e.Push(&stateProbe{name: "only", log: &log, update: func() { e.Pop() }})

	err := e.Update()
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
	if diff := cmp.Diff([]string{"update only", "close only"}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestEnginePushDuringTickDeferred(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{})
	next := &stateProbe{name: "next", log: &log}
	first := &stateProbe{name: "first", log: &log}
	first.update = func() {
		if len(log) == 1 {
			e.Push(next)
		}
	}
	e.Push(first)

	_ = e.Update()
	if e.Top() != State(next) {
		t.Fatal("pushed state should be on top after the tick")
	}
	_ = e.Update()

	if diff := cmp.Diff([]string{"update first", "update next"}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestEnginePopEmptyIsNoop(t *testing.T) {
	e := NewEngine(RunConfig{})
	e.Pop("ignored")
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
}

func TestEnginePushNilPanics(t *testing.T) {
	expectPanic(t, "nil state", func() {
		NewEngine(RunConfig{}).Push(nil)
	})
}

func TestEngineCloseTopDownOnce(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{}, &inputProbe{log: &log})
	e.Push(&stateProbe{name: "a", log: &log})
	e.Push(&stateProbe{name: "b", log: &log})

	e.Close()
	e.Close()

	want := []string{"close b", "close a", "input close"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(e.Update(), ebiten.Termination) {
		t.Error("Update after Close should terminate")
	}
}

func TestEngineRunsContainerStates(t *testing.T) {
	var log []string
	e := NewEngine(RunConfig{})

	menu := NewContainerState()
	menu.Add(newProbe("title", &log))
	level := NewContainerState()
	enemy := newProbe("enemy", &log)
	enemy.update = func(p *probe) {
		p.MarkForDestruction()
		e.Pop("cleared")
	}
	level.Add(enemy)

	e.Push(menu)
	e.Push(level)
	_ = e.Update()

	want := []string{"update enemy", "destroy enemy", "wakeup title"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineShowFPSAddsOverlay(t *testing.T) {
	e := NewEngine(RunConfig{ShowFPS: true})
	if e.overlay.NumObjects() != 1 {
		t.Fatalf("overlay objects = %d, want 1", e.overlay.NumObjects())
	}
	if _, ok := e.overlay.Objects()[0].(*FPSCounter); !ok {
		t.Error("overlay object should be an FPSCounter")
	}
}

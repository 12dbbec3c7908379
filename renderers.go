package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawFunc draws one submission onto the pass's target image.
type DrawFunc func(screen *ebiten.Image)

// RenderCommand is a single draw submission collected during a render pass.
type RenderCommand struct {
	RenderLayer uint8
	GlobalOrder int
	Draw        DrawFunc

	treeOrder int // assigned on submit for stable sort
}

// RendererContainer is the per-pass sink objects write to from OnRender.
// Commands are held until the end of the pass, then sorted by RenderLayer,
// GlobalOrder and submission order, and drawn onto the target. A
// RendererContainer is finalized exactly once.
type RendererContainer struct {
	commands  []RenderCommand
	sortBuf   []RenderCommand
	treeOrder int
	finalized bool

	// pass counters, reported in debug mode
	rendered int
	swept    int
}

// newRendererContainer creates a sink reusing the given buffers' storage.
func newRendererContainer(commands, sortBuf []RenderCommand) *RendererContainer {
	return &RendererContainer{commands: commands[:0], sortBuf: sortBuf[:0]}
}

// Submit queues cmd for this pass. Commands with a nil Draw are ignored.
// Panics if the pass has already been finalized.
func (r *RendererContainer) Submit(cmd RenderCommand) {
	if r.finalized {
		panic("thicket: submit to finalized renderer")
	}
	if cmd.Draw == nil {
		return
	}
	r.treeOrder++
	cmd.treeOrder = r.treeOrder
	r.commands = append(r.commands, cmd)
}

// Draw queues fn on the given layer.
func (r *RendererContainer) Draw(layer uint8, fn DrawFunc) {
	r.Submit(RenderCommand{RenderLayer: layer, Draw: fn})
}

// DrawImage queues a plain DrawImage of img on the given layer. op is copied,
// so the caller may reuse it.
func (r *RendererContainer) DrawImage(layer uint8, img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if img == nil {
		return
	}
	var opts ebiten.DrawImageOptions
	if op != nil {
		opts = *op
	}
	r.Draw(layer, func(screen *ebiten.Image) {
		screen.DrawImage(img, &opts)
	})
}

// Len returns the number of commands queued so far.
func (r *RendererContainer) Len() int {
	return len(r.commands)
}

// Finalized reports whether the pass has been flushed.
func (r *RendererContainer) Finalized() bool {
	return r.finalized
}

// render sorts the queued commands and draws them onto screen.
func (r *RendererContainer) render(screen *ebiten.Image) {
	if r.finalized {
		panic("thicket: renderer finalized twice")
	}
	r.finalized = true
	r.mergeSort()
	for i := range r.commands {
		r.commands[i].Draw(screen)
	}
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	if a.GlobalOrder != b.GlobalOrder {
		return a.GlobalOrder < b.GlobalOrder
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *RendererContainer) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]RenderCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

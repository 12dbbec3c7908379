package thicket

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshInterval = 0.5

// FPSCounter is an object that shows the current FPS and TPS in the top-left
// corner. The text is refreshed about every half second.
type FPSCounter struct {
	Node

	X, Y  int
	Layer uint8

	elapsed float64
	text    string
}

// NewFPSCounter creates an FPS counter drawn on the topmost layer.
func NewFPSCounter() *FPSCounter {
	c := &FPSCounter{Layer: 255}
	c.Name = "fps_counter"
	c.elapsed = fpsRefreshInterval
	return c
}

// Text returns the last refreshed readout.
func (c *FPSCounter) Text() string {
	return c.text
}

func (c *FPSCounter) OnUpdate() {
	c.elapsed += 1.0 / float64(ebiten.TPS())
	if c.elapsed < fpsRefreshInterval {
		return
	}
	c.elapsed = 0
	c.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (c *FPSCounter) OnRender(r *RendererContainer) {
	if c.text == "" {
		return
	}
	text, x, y := c.text, c.X, c.Y
	r.Draw(c.Layer, func(screen *ebiten.Image) {
		ebitenutil.DebugPrintAt(screen, text, x, y)
	})
}

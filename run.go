package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window and logical screen size in pixels.
	// Zero means 640x480.
	Width, Height int
	// TPS is the tick rate. Zero keeps ebiten's default (60).
	TPS int
	// ShowFPS draws an FPS/TPS readout over the top state.
	ShowFPS bool
	// Debug turns on debug mode for the engine's overlay, which also enables
	// the package-wide destroyed-object checks.
	Debug bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// Run opens a window, runs e until its state stack empties or the window is
// closed, then closes e.
func Run(e *Engine) error {
	defer e.Close()

	cfg := e.Config()
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(e)
}

// Package app runs a quill scene as an interactive editor window on
// Ebitengine.
//
//	scene := quill.NewDemoScene()
//	if err := app.Run(scene, app.RunConfig{Title: "Quill"}); err != nil {
//		log.Fatal(err)
//	}
package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/quill"
)

const (
	defaultTitle  = "Quill"
	defaultWidth  = 600
	defaultHeight = 400
)

// RunConfig configures the window created by Run. Zero fields take defaults.
type RunConfig struct {
	Title   string
	Width   int // canvas width in pixels; also the window width
	Height  int // canvas height in pixels; also the window height
	ShowFPS bool
	Debug   bool // enables scene debug mode (timings and tree warnings via quill.Logger)

	// Resizable lets the user resize the window; the canvas follows the
	// window size and the scene origin stays at its center.
	Resizable bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// Run opens a window and runs the editor on scene until the window closes.
func Run(scene *quill.Scene, cfg RunConfig) error {
	if scene == nil {
		return fmt.Errorf("app: run: %w", quill.ErrNilNode)
	}
	cfg = cfg.withDefaults()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if err := ebiten.RunGame(NewEditor(scene, cfg)); err != nil {
		return fmt.Errorf("app: run: %w", err)
	}
	return nil
}

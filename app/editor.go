package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/quill"
	"github.com/phanxgames/quill/raster"
)

const (
	nudgeStep     = 10.0 // scene units per arrow key press
	rotateStep    = 15.0 // degrees per Q/E press
	scaleStep     = 1.1  // size factor per +/- press
	tweenDuration = 0.15 // seconds
)

// Editor is an ebiten.Game that edits a quill scene with the mouse and
// keyboard. Selection is ordinary editor state, not part of the scene.
//
// Controls: click to select, drag to move, arrows nudge, Q/E rotate,
// +/- resize, PageUp/PageDown change stacking, Delete removes, Escape
// deselects.
type Editor struct {
	scene    *quill.Scene
	renderer *quill.Renderer
	rast     *raster.Rasterizer
	cfg      RunConfig

	sel    quill.Selection
	tweens []*quill.TweenGroup

	dragging   bool
	dragOffset quill.Vec2 // node position minus pointer, in parent space

	lastErr error
}

// NewEditor creates an editor for scene.
func NewEditor(scene *quill.Scene, cfg RunConfig) *Editor {
	cfg = cfg.withDefaults()
	return &Editor{
		scene:    scene,
		renderer: quill.NewRenderer(float64(cfg.Width), float64(cfg.Height)),
		rast:     raster.New(nil),
		cfg:      cfg,
	}
}

// Selection returns the editor's selection state.
func (e *Editor) Selection() *quill.Selection {
	return &e.sel
}

// Update applies this tick's input, advances tweens, and resyncs the
// selection outline.
func (e *Editor) Update() error {
	e.advanceTweens(tickSeconds(ebiten.TPS(), ebiten.ActualFPS()))

	cx, cy := ebiten.CursorPosition()
	p := e.renderer.Viewport().CanvasToScene(float64(cx), float64(cy))
	e.handlePointer(p,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	e.handleKeys()

	e.sel.Sync()
	return nil
}

// tickSeconds is the time one Update call advances. With SyncWithFPS the
// tick rate is negative, so the measured frame rate is used, or 60 Hz
// before one is known.
func tickSeconds(tps int, actualFPS float64) float32 {
	switch {
	case tps > 0:
		return float32(1 / float64(tps))
	case actualFPS > 0:
		return float32(1 / actualFPS)
	default:
		return 1.0 / 60
	}
}

// handlePointer runs one pointer event against a fresh frame snapshot.
func (e *Editor) handlePointer(p quill.Vec2, justPressed, pressed bool) {
	if justPressed {
		ordered := e.scene.Frame()
		hit := quill.Pick(p, ordered, e.sel.Outline())
		if hit == nil {
			e.sel.Clear()
			e.dragging = false
			return
		}
		if err := e.sel.Select(e.scene, hit); err != nil {
			quill.Logger().Warn("app: select failed", "node", hit.Name, "err", err)
			return
		}
		e.cancelTweens(hit)
		if pp, ok := parentPoint(hit, p); ok {
			e.dragging = true
			e.dragOffset = quill.Vec2{X: hit.X, Y: hit.Y}.Sub(pp)
		}
		return
	}
	if !pressed {
		e.dragging = false
		return
	}
	n := e.sel.Node()
	if !e.dragging || n == nil {
		return
	}
	if pp, ok := parentPoint(n, p); ok {
		pos := pp.Add(e.dragOffset)
		n.SetPosition(pos.X, pos.Y)
	}
}

func (e *Editor) handleKeys() {
	n := e.sel.Node()
	if n == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		e.tween(quill.TweenPosition(n, n.X-nudgeStep, n.Y, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		e.tween(quill.TweenPosition(n, n.X+nudgeStep, n.Y, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		e.tween(quill.TweenPosition(n, n.X, n.Y+nudgeStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		e.tween(quill.TweenPosition(n, n.X, n.Y-nudgeStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		e.tween(quill.TweenRotation(n, n.R+rotateStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		e.tween(quill.TweenRotation(n, n.R-rotateStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		e.tween(quill.TweenSize(n, n.W*scaleStep, n.H*scaleStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		e.tween(quill.TweenSize(n, n.W/scaleStep, n.H/scaleStep, tweenDuration, ease.OutQuad))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		_, hi := quill.StackingRange(e.scene.Flatten(), e.sel.Outline())
		n.SetZIndex(hi + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		lo, _ := quill.StackingRange(e.scene.Flatten(), e.sel.Outline())
		n.SetZIndex(lo - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		e.sel.Clear()
		e.dragging = false
		e.scene.Remove(n)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.sel.Clear()
		e.dragging = false
	}
}

// tween starts g, replacing any running tween on the same node.
func (e *Editor) tween(g *quill.TweenGroup) {
	e.cancelTweens(g.Target())
	e.tweens = append(e.tweens, g)
}

// cancelTweens drops running tweens on n, leaving its fields where they are.
func (e *Editor) cancelTweens(n *quill.Node) {
	kept := e.tweens[:0]
	for _, t := range e.tweens {
		if t.Target() != n {
			kept = append(kept, t)
		}
	}
	clear(e.tweens[len(kept):])
	e.tweens = kept
}

func (e *Editor) advanceTweens(dt float32) {
	kept := e.tweens[:0]
	for _, t := range e.tweens {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	clear(e.tweens[len(kept):])
	e.tweens = kept
}

// Draw renders the scene. Frame errors are logged once per distinct error
// and never stop the loop.
func (e *Editor) Draw(screen *ebiten.Image) {
	e.rast.SetTarget(screen)
	if _, err := e.renderer.Render(e.scene, e.rast); err != nil {
		if e.lastErr == nil || err.Error() != e.lastErr.Error() {
			quill.Logger().Error("app: frame incomplete", "err", err)
		}
		e.lastErr = err
	} else {
		e.lastErr = nil
	}
	if e.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps a fixed canvas unless the window is resizable, in which case
// the canvas follows the window.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := e.cfg.Width, e.cfg.Height
	if e.cfg.Resizable {
		w, h = outsideWidth, outsideHeight
	}
	if vp := e.renderer.Viewport(); vp.Width != float64(w) || vp.Height != float64(h) {
		e.renderer.Resize(float64(w), float64(h))
	}
	return w, h
}

// parentPoint maps a scene point into n's parent space, where n.X and n.Y
// live.
func parentPoint(n *quill.Node, p quill.Vec2) (quill.Vec2, bool) {
	parent := n.Parent()
	if parent == nil {
		return p, true
	}
	return parent.WorldToLocal(p)
}

package quill

import (
	"errors"
	"time"
)

// DrawCommand is a single draw description handed to the rasterizer.
type DrawCommand struct {
	Node     *Node
	Geometry GeometryKind

	// Transform maps the node's unit shape to the [-1, 1] device range:
	// projection · world transform.
	Transform Matrix

	Fill   Color
	Stroke Color

	// StrokeWidth is the stroke thickness in local unit-shape space, already
	// divided by the local-to-pixel scale so it renders at the node's
	// requested screen width.
	StrokeWidth float64

	Texture Texture
}

// Float32 returns the combined transform as 9 column-major floats.
func (c *DrawCommand) Float32() [9]float32 {
	return c.Transform.Float32()
}

// Rasterizer consumes ordered draw commands. An error means the rasterizer
// cannot continue this frame (lost context, GPU error); the renderer stops
// submitting and reports it.
type Rasterizer interface {
	Draw(cmd *DrawCommand) error
}

// FrameRasterizer is a Rasterizer that also wants frame boundaries.
type FrameRasterizer interface {
	Rasterizer
	BeginFrame(clear Color) error
	EndFrame() error
}

// Renderer turns an ordered drawable list into draw commands for a viewport.
// It never modifies the scene.
type Renderer struct {
	viewport   Viewport
	projection Matrix
}

// NewRenderer creates a renderer for a width x height pixel surface.
func NewRenderer(width, height float64) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Resize updates the viewport and projection.
func (r *Renderer) Resize(width, height float64) {
	r.viewport = Viewport{Width: width, Height: height}
	r.projection = r.viewport.Projection()
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Projection returns the scene-to-device matrix.
func (r *Renderer) Projection() Matrix {
	return r.projection
}

// Command builds the draw command for a node whose world transform is
// current. Non-drawable kinds return a *GeometryError.
func (r *Renderer) Command(n *Node) (DrawCommand, error) {
	if _, ok := GeometryFor(n.Geometry); !ok {
		return DrawCommand{}, &GeometryError{Node: n, Kind: n.Geometry}
	}
	combined := r.projection.Multiply(n.worldTransform)
	var sw float64
	if n.StrokeWidth > 0 {
		if scale := PixelScale(combined, r.viewport); scale > 0 {
			sw = n.StrokeWidth / scale
		}
	}
	return DrawCommand{
		Node:        n,
		Geometry:    n.Geometry,
		Transform:   combined,
		Fill:        n.Fill,
		Stroke:      n.Stroke,
		StrokeWidth: sw,
		Texture:     n.Texture,
	}, nil
}

// PixelScale returns how many device pixels one local unit covers under the
// combined transform: the local basis vectors are mapped to pixels and their
// lengths averaged. A degenerate transform yields 0.
func PixelScale(combined Matrix, vp Viewport) float64 {
	o := combined.Transform(Vec2{0, 0})
	ex := combined.Transform(Vec2{1, 0}).Sub(o)
	ey := combined.Transform(Vec2{0, 1}).Sub(o)
	// Device range spans 2 units across the viewport.
	sx := Vec2{ex.X * vp.Width / 2, ex.Y * vp.Height / 2}.Len()
	sy := Vec2{ey.X * vp.Width / 2, ey.Y * vp.Height / 2}.Len()
	return (sx + sy) / 2
}

// Submit sends one command per node of ordered, in order. Nodes with an
// unknown geometry are skipped and reported; the first rasterizer error
// abandons the rest of the list. It returns the number of commands the
// rasterizer accepted and all errors joined.
func (r *Renderer) Submit(ordered []*Node, rast Rasterizer) (int, error) {
	var errs []error
	drawn := 0
	for _, n := range ordered {
		cmd, err := r.Command(n)
		if err != nil {
			Logger().Warn("quill: skipping node", "node", n.Name, "id", n.ID, "err", err)
			errs = append(errs, err)
			continue
		}
		if err := rast.Draw(&cmd); err != nil {
			Logger().Error("quill: rasterizer failed, abandoning frame",
				"node", n.Name, "id", n.ID, "drawn", drawn, "err", err)
			errs = append(errs, &RasterError{Node: n, Err: err})
			break
		}
		drawn++
	}
	return drawn, errors.Join(errs...)
}

// Render runs one frame: the top-down transform pass, ordering, and
// submission. FrameRasterizers are cleared to the scene's ClearColor first.
func (r *Renderer) Render(s *Scene, rast Rasterizer) (int, error) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.Update()

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	ordered := s.Ordered()

	if s.debug {
		stats.orderTime = time.Since(t0)
		t0 = time.Now()
	}

	fr, framed := rast.(FrameRasterizer)
	if framed {
		if err := fr.BeginFrame(s.ClearColor); err != nil {
			Logger().Error("quill: begin frame failed", "err", err)
			return 0, &RasterError{Node: s.root, Err: err}
		}
	}

	drawn, err := r.Submit(ordered, rast)

	if framed {
		if endErr := fr.EndFrame(); endErr != nil {
			err = errors.Join(err, &RasterError{Node: s.root, Err: endErr})
		}
	}

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = drawn
		stats.skipped = len(ordered) - drawn
		debugLog(stats)
	}
	return drawn, err
}

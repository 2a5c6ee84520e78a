// Package raster draws quill draw commands onto an [ebiten.Image].
//
// Fills are built from the shared unit-shape geometry catalog. Strokes are a
// ring between the unit outline and the outline inset by the command's
// local-space stroke width, so stroke thickness is decided in shape space
// exactly like the picking predicates decide containment.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/quill"
)

// ErrNoTarget is returned when drawing without a target image.
var ErrNoTarget = errors.New("raster: no target image")

// Rasterizer implements quill.FrameRasterizer on top of ebiten.
// It is not safe for concurrent use.
type Rasterizer struct {
	target *ebiten.Image

	// AntiAlias enables ebiten's anti-aliased triangle rendering.
	AntiAlias bool

	textures map[quill.Texture]*ebiten.Image
	verts    []ebiten.Vertex
	inds     []uint16
}

var _ quill.FrameRasterizer = (*Rasterizer)(nil)

// New creates a rasterizer drawing into target. target may be nil and set
// later with SetTarget, typically once per ebiten Draw call.
func New(target *ebiten.Image) *Rasterizer {
	return &Rasterizer{
		target:   target,
		textures: make(map[quill.Texture]*ebiten.Image),
	}
}

// SetTarget changes the image drawn into.
func (r *Rasterizer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Viewport returns the target size as a quill viewport.
func (r *Rasterizer) Viewport() quill.Viewport {
	if r.target == nil {
		return quill.Viewport{}
	}
	b := r.target.Bounds()
	return quill.Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// BeginFrame clears the target.
func (r *Rasterizer) BeginFrame(clear quill.Color) error {
	if r.target == nil {
		return ErrNoTarget
	}
	r.target.Fill(clear.NRGBA())
	return nil
}

// EndFrame is a no-op; every Draw submits immediately.
func (r *Rasterizer) EndFrame() error {
	return nil
}

// Draw renders one command: the fill (textured when the command carries a
// texture) followed by the stroke.
func (r *Rasterizer) Draw(cmd *quill.DrawCommand) error {
	if r.target == nil {
		return ErrNoTarget
	}
	g, ok := quill.GeometryFor(cmd.Geometry)
	if !ok {
		return fmt.Errorf("raster: %s: %w", cmd.Geometry, quill.ErrUnknownGeometry)
	}
	vp := r.Viewport()

	src, textured := r.textureImage(cmd.Texture)
	if textured || cmd.Fill.A > 0 {
		srcW, srcH := 1.0, 1.0
		if textured {
			b := src.Bounds()
			srcW, srcH = float64(b.Dx()), float64(b.Dy())
		} else {
			src = whitePixel()
		}
		r.verts, r.inds = AppendFill(r.verts[:0], r.inds[:0], g, cmd.Transform, cmd.Fill, vp, srcW, srcH)
		r.drawTriangles(src)
	}

	if cmd.StrokeWidth > 0 && cmd.Stroke.A > 0 {
		r.verts, r.inds = AppendStroke(r.verts[:0], r.inds[:0], g, cmd.Transform, cmd.Stroke, cmd.StrokeWidth, vp)
		r.drawTriangles(whitePixel())
	}
	return nil
}

func (r *Rasterizer) drawTriangles(src *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = r.AntiAlias
	r.target.DrawTriangles(r.verts, r.inds, src, &op)
}

// textureImage resolves a texture handle. ebiten images are used as-is; other
// image.Image values are uploaded once and cached by handle, so handles must
// be comparable (pointer types such as *image.RGBA are).
func (r *Rasterizer) textureImage(t quill.Texture) (*ebiten.Image, bool) {
	switch tex := t.(type) {
	case nil:
		return nil, false
	case *ebiten.Image:
		return tex, tex != nil
	case image.Image:
		if img, ok := r.textures[t]; ok {
			return img, true
		}
		img := ebiten.NewImageFromImage(tex)
		r.textures[t] = img
		return img, true
	default:
		return nil, false
	}
}

// Forget drops a cached upload for t, e.g. after the caller replaced the
// texture's pixels.
func (r *Rasterizer) Forget(t quill.Texture) {
	if img, ok := r.textures[t]; ok {
		img.Deallocate()
		delete(r.textures, t)
	}
}

var whitePixelImage *ebiten.Image

// whitePixel is a 1x1 white image used as the source of solid fills.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(quill.ColorWhite.NRGBA())
	}
	return whitePixelImage
}

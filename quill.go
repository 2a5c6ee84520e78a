package quill

import (
	"fmt"
	"image"
	"math"
)

// Vec2 is a 2D point or direction used for scene, local and device
// coordinates throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Texture is an image a drawable node is filled with. The handle is shared,
// not owned: nodes never load or release it. *ebiten.Image and every
// image.Image satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// GeometryKind selects the unit shape a node draws and is picked by.
// The set is closed; [GeometryNone] marks a non-drawable container.
type GeometryKind uint8

const (
	GeometryNone      GeometryKind = iota // container, draws nothing
	GeometryRectangle                     // unit square centered at the origin
	GeometryTriangle                      // apex (0,-0.5), base (-0.5,0.5)-(0.5,0.5)
	GeometryEllipse                       // unit-diameter circle centered at the origin
)

var geometryNames = [...]string{
	GeometryNone:      "none",
	GeometryRectangle: "rectangle",
	GeometryTriangle:  "triangle",
	GeometryEllipse:   "ellipse",
}

// String returns the lower-case name of the kind.
func (k GeometryKind) String() string {
	if int(k) < len(geometryNames) {
		return geometryNames[k]
	}
	return fmt.Sprintf("GeometryKind(%d)", uint8(k))
}

// ParseGeometryKind returns the kind with the given name.
func ParseGeometryKind(name string) (GeometryKind, error) {
	for i, n := range geometryNames {
		if n == name {
			return GeometryKind(i), nil
		}
	}
	return GeometryNone, fmt.Errorf("quill: parse geometry %q: %w", name, ErrUnknownGeometry)
}

// Drawable reports whether the kind is one of the drawable shapes.
func (k GeometryKind) Drawable() bool {
	return k >= GeometryRectangle && k <= GeometryEllipse
}

package raster

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/quill"
)

// AppendFill appends the fill triangles of g under the combined transform to
// verts and inds. Positions are mapped from the device range to target pixels
// of vp. Source coordinates span a srcW x srcH image with the shape's local
// top (+y) at image row 0. Colors are premultiplied.
func AppendFill(verts []ebiten.Vertex, inds []uint16, g *quill.Geometry, combined quill.Matrix,
	fill quill.Color, vp quill.Viewport, srcW, srcH float64) ([]ebiten.Vertex, []uint16) {
	c := fill.Premultiplied()
	base := len(verts)
	for _, p := range g.Triangles() {
		x, y := vp.DeviceToCanvas(combined.Transform(p))
		verts = append(verts, vertex(x, y, (p.X+0.5)*srcW, (0.5-p.Y)*srcH, c))
	}
	for i := base; i < len(verts); i++ {
		inds = append(inds, uint16(i))
	}
	return verts, inds
}

// AppendStroke appends a ring of triangles between the outline of g and the
// outline inset by width local units. A width at least as large as the
// shape's inradius fills the shape completely.
func AppendStroke(verts []ebiten.Vertex, inds []uint16, g *quill.Geometry, combined quill.Matrix,
	stroke quill.Color, width float64, vp quill.Viewport) ([]ebiten.Vertex, []uint16) {
	outer := g.Outline()
	inner := Inset(outer, width)
	c := stroke.Premultiplied()

	base := len(verts)
	for i := range outer {
		ox, oy := vp.DeviceToCanvas(combined.Transform(outer[i]))
		ix, iy := vp.DeviceToCanvas(combined.Transform(inner[i]))
		verts = append(verts, vertex(ox, oy, 0.5, 0.5, c), vertex(ix, iy, 0.5, 0.5, c))
	}
	n := len(outer)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0 := uint16(base + 2*i)
		i0 := o0 + 1
		o1 := uint16(base + 2*j)
		i1 := o1 + 1
		inds = append(inds, o0, o1, i0, i0, o1, i1)
	}
	return verts, inds
}

// Inset shrinks a convex outline toward its incenter so every edge moves
// inward by width. The unit shapes are tangential polygons (or a circle), so
// scaling about the incenter offsets all edges equally.
func Inset(outline []quill.Vec2, width float64) []quill.Vec2 {
	center, radius := incircle(outline)
	k := 0.0
	if radius > 0 {
		k = math.Max(0, (radius-width)/radius)
	}
	out := make([]quill.Vec2, len(outline))
	for i, p := range outline {
		out[i] = quill.Vec2{
			X: center.X + (p.X-center.X)*k,
			Y: center.Y + (p.Y-center.Y)*k,
		}
	}
	return out
}

// incircle returns the incenter and inradius of a triangle, or the centroid
// and the smallest center-to-edge distance of any other convex outline.
func incircle(outline []quill.Vec2) (quill.Vec2, float64) {
	n := len(outline)
	if n == 3 {
		a, b, c := outline[0], outline[1], outline[2]
		la := b.Sub(c).Len()
		lb := c.Sub(a).Len()
		lc := a.Sub(b).Len()
		per := la + lb + lc
		if per == 0 {
			return a, 0
		}
		center := quill.Vec2{
			X: (la*a.X + lb*b.X + lc*c.X) / per,
			Y: (la*a.Y + lb*b.Y + lc*c.Y) / per,
		}
		area := math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
		return center, 2 * area / per
	}
	var center quill.Vec2
	for _, p := range outline {
		center = center.Add(p)
	}
	center = quill.Vec2{X: center.X / float64(n), Y: center.Y / float64(n)}
	radius := math.Inf(1)
	for i := range outline {
		radius = math.Min(radius, edgeDistance(center, outline[i], outline[(i+1)%n]))
	}
	return center, radius
}

func edgeDistance(p, a, b quill.Vec2) float64 {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return p.Sub(a).Len()
	}
	return math.Abs(d.X*(p.Y-a.Y)-d.Y*(p.X-a.X)) / l
}

func vertex(x, y, sx, sy float64, c quill.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   float32(sx),
		SrcY:   float32(sy),
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}

package quill

import "math"

// unitHalf is the half extent of every unit shape. Rasterizer vertex data and
// the picking predicates both derive from it.
const unitHalf = 0.5

// ellipseSegments is the number of fan segments approximating the ellipse.
const ellipseSegments = 64

// Topology describes how Geometry.Positions form triangles.
type Topology uint8

const (
	TopologyTriangleList Topology = iota // every three positions form a triangle
	TopologyTriangleFan                  // triangles (0, i, i+1)
)

// Geometry is the vertex data of a unit shape in local space. UVs map the
// shape's bounding square to [0, 1].
type Geometry struct {
	Kind      GeometryKind
	Positions []Vec2
	UVs       []Vec2
	Topology  Topology
}

// triangleVertices are the local-space corners of the unit triangle.
var triangleVertices = [3]Vec2{
	{0, -unitHalf},
	{-unitHalf, unitHalf},
	{unitHalf, unitHalf},
}

var geometryCatalog = [...]*Geometry{
	GeometryRectangle: {
		Kind: GeometryRectangle,
		Positions: []Vec2{
			{-unitHalf, -unitHalf}, {unitHalf, -unitHalf}, {-unitHalf, unitHalf},
			{-unitHalf, unitHalf}, {unitHalf, -unitHalf}, {unitHalf, unitHalf},
		},
		Topology: TopologyTriangleList,
	},
	GeometryTriangle: {
		Kind:      GeometryTriangle,
		Positions: triangleVertices[:],
		Topology:  TopologyTriangleList,
	},
	GeometryEllipse: newEllipseGeometry(ellipseSegments),
}

func init() {
	for _, g := range geometryCatalog {
		if g != nil && g.UVs == nil {
			g.UVs = boxUVs(g.Positions)
		}
	}
}

// GeometryFor returns the catalog entry for kind. ok is false for
// GeometryNone and unknown kinds. The returned data is shared and must not
// be modified.
func GeometryFor(kind GeometryKind) (g *Geometry, ok bool) {
	if int(kind) >= len(geometryCatalog) || geometryCatalog[kind] == nil {
		return nil, false
	}
	return geometryCatalog[kind], true
}

// Outline returns the boundary vertices of the shape in winding order, without
// repeating the first vertex.
func (g *Geometry) Outline() []Vec2 {
	switch g.Kind {
	case GeometryRectangle:
		return []Vec2{{-unitHalf, -unitHalf}, {unitHalf, -unitHalf}, {unitHalf, unitHalf}, {-unitHalf, unitHalf}}
	case GeometryEllipse:
		// Drop the center and the closing duplicate of the first rim vertex.
		return g.Positions[1 : len(g.Positions)-1]
	default:
		return g.Positions
	}
}

// Triangles expands the positions into an independent triangle list.
func (g *Geometry) Triangles() []Vec2 {
	if g.Topology == TopologyTriangleList {
		return g.Positions
	}
	out := make([]Vec2, 0, 3*(len(g.Positions)-2))
	for i := 1; i+1 < len(g.Positions); i++ {
		out = append(out, g.Positions[0], g.Positions[i], g.Positions[i+1])
	}
	return out
}

func newEllipseGeometry(segments int) *Geometry {
	pos := make([]Vec2, 0, segments+2)
	pos = append(pos, Vec2{})
	for i := 0; i <= segments; i++ {
		s, c := math.Sincos(float64(i) / float64(segments) * 2 * math.Pi)
		pos = append(pos, Vec2{c * unitHalf, s * unitHalf})
	}
	return &Geometry{Kind: GeometryEllipse, Positions: pos, Topology: TopologyTriangleFan}
}

func boxUVs(pos []Vec2) []Vec2 {
	uvs := make([]Vec2, len(pos))
	for i, p := range pos {
		uvs[i] = Vec2{p.X + unitHalf, p.Y + unitHalf}
	}
	return uvs
}

// Contains reports whether the local-space point lies inside the unit shape
// of kind. Edges count as inside. GeometryNone contains nothing.
func (k GeometryKind) Contains(p Vec2) bool {
	switch k {
	case GeometryRectangle:
		return math.Abs(p.X) <= unitHalf && math.Abs(p.Y) <= unitHalf
	case GeometryTriangle:
		return triangleContains(triangleVertices, p)
	case GeometryEllipse:
		nx := p.X / unitHalf
		ny := p.Y / unitHalf
		return nx*nx+ny*ny <= 1
	default:
		return false
	}
}

// triangleContains is a barycentric test: p is inside iff all three weights
// are non-negative.
func triangleContains(t [3]Vec2, p Vec2) bool {
	a, b, c := t[0], t[1], t[2]
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)
	den := v0.X*v1.Y - v1.X*v0.Y
	if den == 0 {
		return false
	}
	u := (v2.X*v1.Y - v1.X*v2.Y) / den
	v := (v0.X*v2.Y - v2.X*v0.Y) / den
	return u >= 0 && v >= 0 && 1-u-v >= 0
}

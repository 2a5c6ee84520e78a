package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenRotation, TweenFill) and call Update(dt) each frame, before the
// frame's transform pass.
//
// There is no global animation manager. Callers own their groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done becomes true once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Target returns the animated node.
func (g *TweenGroup) Target() *Node {
	return g.target
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates node.X and node.Y to the given coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenSize animates node.W and node.H to the given size.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.W, toW, duration, fn)
	g.add(&node.H, toH, duration, fn)
	return g
}

// TweenRotation animates node.R to the target angle in degrees.
func TweenRotation(node *Node, toDeg float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.R, toDeg, duration, fn)
	return g
}

// TweenFill animates all four components of node.Fill to the target color.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Fill.R, to.R, duration, fn)
	g.add(&node.Fill.G, to.G, duration, fn)
	g.add(&node.Fill.B, to.B, duration, fn)
	g.add(&node.Fill.A, to.A, duration, fn)
	return g
}

package quill

import (
	"fmt"
	"math"
)

// outlineStrokeWidth is the selection outline thickness in screen pixels.
const outlineStrokeWidth = 1

// NewOutline returns a detached rectangle covering target's local box: no
// fill, a 1px white stroke, and a stacking key above everything else.
func NewOutline(target *Node) *Node {
	o := NewRectangle(target.Name+"#outline", target.W, target.H)
	o.Fill = ColorTransparent
	o.Stroke = ColorWhite
	o.StrokeWidth = outlineStrokeWidth
	o.ZIndex = math.Inf(1)
	copyLocalTransform(o, target)
	return o
}

// Selection tracks one selected node and its outline overlay. It is plain
// caller-held state; the zero value selects nothing.
type Selection struct {
	scene   *Scene
	node    *Node
	outline *Node
}

// Select makes n the selected node of scene s and attaches an outline next
// to it, under the same parent. Any previous selection is cleared first.
func (sel *Selection) Select(s *Scene, n *Node) error {
	sel.Clear()
	if n == nil {
		return ErrNilNode
	}
	if n == s.root || !s.Contains(n) {
		return fmt.Errorf("quill: select %q: %w", n.Name, ErrNotInScene)
	}
	outline := NewOutline(n)
	if err := n.parent.AddChild(outline); err != nil {
		return err
	}
	sel.scene = s
	sel.node = n
	sel.outline = outline
	return nil
}

// Sync copies the selected node's local transform to the outline. If the
// node, or any of its ancestors, has left the scene meanwhile, the selection
// is cleared.
func (sel *Selection) Sync() {
	if sel.node == nil {
		return
	}
	if sel.node.parent == nil || !sel.scene.Contains(sel.node) {
		sel.Clear()
		return
	}
	if sel.outline.parent != sel.node.parent {
		sel.outline.RemoveFromParent()
		if err := sel.node.parent.AddChild(sel.outline); err != nil {
			sel.Clear()
			return
		}
	}
	copyLocalTransform(sel.outline, sel.node)
}

// Clear drops the selection and detaches the outline.
func (sel *Selection) Clear() {
	if sel.outline != nil {
		sel.outline.RemoveFromParent()
	}
	sel.scene = nil
	sel.node = nil
	sel.outline = nil
}

// Node returns the selected node, or nil.
func (sel *Selection) Node() *Node {
	return sel.node
}

// Outline returns the overlay node, or nil. Pass it to Pick as the excluded
// node so clicks go through it.
func (sel *Selection) Outline() *Node {
	return sel.outline
}

func copyLocalTransform(dst, src *Node) {
	dst.X, dst.Y, dst.R = src.X, src.Y, src.R
	dst.W, dst.H = src.W, src.H
}

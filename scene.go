package quill

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// defaultClearColor is the dark grey background of a new scene.
var defaultClearColor = Color{0.2, 0.2, 0.2, 1}

// Scene owns the node tree. The root is a container that is always present,
// never drawn and never removed.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor is the background the renderer clears to each frame.
	ClearColor Color
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.sceneRoot = true
	return &Scene{
		root:       root,
		ClearColor: defaultClearColor,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches nodes to the root in the given order, after any existing
// children. A node that cannot be attached is skipped; the failures are
// returned joined and the remaining nodes are still added.
func (s *Scene) Add(nodes ...*Node) error {
	return s.addTo(s.root, nodes)
}

// AddTo attaches nodes under parent, which must belong to this scene.
func (s *Scene) AddTo(parent *Node, nodes ...*Node) error {
	if parent == nil {
		return ErrNilNode
	}
	if !s.Contains(parent) {
		return fmt.Errorf("quill: add to %q: %w", parent.Name, ErrNotInScene)
	}
	return s.addTo(parent, nodes)
}

func (s *Scene) addTo(parent *Node, nodes []*Node) error {
	var errs []error
	for i, n := range nodes {
		if err := parent.AddChild(n); err != nil {
			errs = append(errs, fmt.Errorf("quill: add node %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Remove detaches node, and with it its subtree, from its parent. It is a
// no-op returning false when node is the root, is detached, or belongs to a
// different tree. The node's own children are left untouched so the subtree
// can be added again elsewhere.
func (s *Scene) Remove(node *Node) bool {
	if node == nil || node == s.root || !s.Contains(node) {
		return false
	}
	return node.RemoveFromParent()
}

// Contains reports whether node is the root or one of its descendants.
func (s *Scene) Contains(node *Node) bool {
	return node != nil && node.Root() == s.root
}

// Update runs the full top-down world transform pass from the root. It must
// complete before any draw or pick reads a world transform.
func (s *Scene) Update() {
	updateWorldTransform(s.root, Identity())
}

// Flatten returns every drawable node in pre-order: a parent before its
// children, children in insertion order. Containers are skipped but still
// descended into. A fresh slice is returned on each call.
func (s *Scene) Flatten() []*Node {
	return flatten(s.root, nil)
}

func flatten(n *Node, list []*Node) []*Node {
	if n.IsDrawable() {
		list = append(list, n)
	}
	for _, child := range n.children {
		list = flatten(child, list)
	}
	return list
}

// Ordered returns Flatten sorted by ascending ZIndex, keeping pre-order
// position among equal keys. This is the painter's order: later entries
// cover earlier ones, and picking scans it in reverse.
func (s *Scene) Ordered() []*Node {
	list := s.Flatten()
	SortByZIndex(list)
	return list
}

// Frame runs Update and returns the ordered drawable list. Draw and pick
// passes of the same frame or gesture should share one Frame result.
func (s *Scene) Frame() []*Node {
	s.Update()
	return s.Ordered()
}

// SortByZIndex stably sorts nodes by ascending ZIndex.
func SortByZIndex(nodes []*Node) {
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
}

// StackingRange returns the lowest and highest finite ZIndex among nodes,
// ignoring exclude. It returns 0, 0 when there is none.
func StackingRange(nodes []*Node, exclude *Node) (lo, hi float64) {
	found := false
	for _, n := range nodes {
		z := n.ZIndex
		if n == exclude || math.IsInf(z, 0) || math.IsNaN(z) {
			continue
		}
		if !found {
			lo, hi, found = z, z, true
			continue
		}
		lo = min(lo, z)
		hi = max(hi, z)
	}
	return lo, hi
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-frame timing stats are sent to Logger().
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (s *Scene) DebugMode() bool {
	return s.debug
}

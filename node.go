package quill

// nodeIDCounter is a plain counter; quill is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the sole scene graph element. Drawable shapes and container groups
// share one flat struct; Geometry selects which.
//
// W and H are scale factors applied to the unit shape, so a rectangle with
// W=100, H=50 covers 100x50 scene units before rotation. R is in degrees.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Classification
	Geometry GeometryKind
	ZIndex   float64 // stacking key; ties keep traversal order

	// Hierarchy. Children own their nodes; parent is a lookup-only back
	// reference maintained by AddChild/RemoveChild.
	parent    *Node
	children  []*Node
	sceneRoot bool

	// Transform (local)
	X, Y float64
	R    float64
	W, H float64

	// Computed by Update, valid only after a full top-down pass.
	worldTransform Matrix

	// Style
	Fill        Color
	Stroke      Color
	StrokeWidth float64 // screen pixels, not local units
	Texture     Texture

	// Metadata
	UserData any
}

// NewNode creates a detached node drawing the given geometry. Drawable nodes
// start at 100x100 with a white fill and an opaque black, zero-width stroke.
// GeometryNone produces a container.
func NewNode(name string, kind GeometryKind) *Node {
	n := &Node{
		ID:             nextNodeID(),
		Name:           name,
		Geometry:       kind,
		W:              1,
		H:              1,
		Fill:           ColorWhite,
		Stroke:         ColorBlack,
		worldTransform: Identity(),
	}
	if kind != GeometryNone {
		n.W, n.H = 100, 100
	}
	return n
}

// NewContainer creates a group node with no visual output.
func NewContainer(name string) *Node {
	return NewNode(name, GeometryNone)
}

// NewRectangle creates a w x h rectangle node.
func NewRectangle(name string, w, h float64) *Node {
	n := NewNode(name, GeometryRectangle)
	n.W, n.H = w, h
	return n
}

// NewTriangle creates a w x h triangle node.
func NewTriangle(name string, w, h float64) *Node {
	n := NewNode(name, GeometryTriangle)
	n.W, n.H = w, h
	return n
}

// NewEllipse creates an ellipse node with diameters w and h.
func NewEllipse(name string, w, h float64) *Node {
	n := NewNode(name, GeometryEllipse)
	n.W, n.H = w, h
	return n
}

// IsDrawable reports whether the node emits a draw command.
func (n *Node) IsDrawable() bool {
	return n.Geometry != GeometryNone
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. The child must be
// detached: adding a node that already has a parent returns
// ErrAlreadyAttached and leaves the tree untouched. Use Reparent to move.
// A scene root can never be a child.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.sceneRoot {
		return ErrSceneRoot
	}
	if isAncestor(child, n) {
		return ErrCycle
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	child.parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return nil
}

// AddChildren appends the nodes in order. It stops at the first failure and
// returns its error; nodes before it stay attached.
func (n *Node) AddChildren(children ...*Node) error {
	for _, c := range children {
		if err := n.AddChild(c); err != nil {
			return err
		}
	}
	return nil
}

// RemoveChild detaches child from this node, keeping the child's own
// subtree intact. It reports false if child is not a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	n.removeChildByPtr(child)
	child.parent = nil
	return true
}

// RemoveChildren detaches each of the given children from n and returns how
// many were removed. Nodes that are not children of n are ignored.
func (n *Node) RemoveChildren(children ...*Node) int {
	removed := 0
	for _, c := range children {
		if n.RemoveChild(c) {
			removed++
		}
	}
	return removed
}

// RemoveFromParent detaches this node from its parent.
// No-op returning false if this node has no parent.
func (n *Node) RemoveFromParent() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.RemoveChild(n)
}

// Reparent moves this node to the end of newParent's children. On error the
// node stays where it was.
func (n *Node) Reparent(newParent *Node) error {
	if newParent == nil {
		return ErrNilNode
	}
	if n.sceneRoot {
		return ErrSceneRoot
	}
	if isAncestor(n, newParent) {
		return ErrCycle
	}
	n.RemoveFromParent()
	return newParent.AddChild(n)
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the topmost ancestor, or n itself when detached.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Property setters ---

// SetZIndex sets the node's stacking key.
func (n *Node) SetZIndex(z float64) {
	n.ZIndex = z
}

// SetFill sets the fill color.
func (n *Node) SetFill(c Color) {
	n.Fill = c
}

// SetStroke sets the stroke color and its width in screen pixels. Negative
// widths are stored as zero.
func (n *Node) SetStroke(c Color, width float64) {
	n.Stroke = c
	n.StrokeWidth = max(width, 0)
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

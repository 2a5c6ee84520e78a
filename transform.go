package quill

// LocalTransform returns T(X,Y)·R(R)·S(W,H) for this node.
func (n *Node) LocalTransform() Matrix {
	return Translation(n.X, n.Y).Multiply(Rotation(n.R)).Multiply(Scaling(n.W, n.H))
}

// WorldTransform returns the world matrix computed by the last Update pass.
// It is stale as soon as the node or any ancestor changes.
func (n *Node) WorldTransform() Matrix {
	return n.worldTransform
}

// Update recomputes the world transform of n and its whole subtree, top-down.
// The parent's cached world transform is used as-is, so Update must run on
// the topmost changed ancestor (normally the scene root) every frame.
func (n *Node) Update() {
	parent := Identity()
	if n.parent != nil {
		parent = n.parent.worldTransform
	}
	updateWorldTransform(n, parent)
}

// updateWorldTransform recomputes a node's worldTransform and recurses.
// Every node is recomputed every pass; there is no dirty tracking.
func updateWorldTransform(n *Node, parentTransform Matrix) {
	n.worldTransform = parentTransform.Multiply(n.LocalTransform())
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's W and H scale factors.
func (n *Node) SetSize(w, h float64) {
	n.W = w
	n.H = h
}

// SetRotation sets the node's rotation in degrees.
func (n *Node) SetRotation(deg float64) {
	n.R = deg
}

// --- Coordinate conversion ---

// WorldToLocal converts a scene-space point to this node's local (unit
// shape) space. ok is false when the world transform is not invertible.
func (n *Node) WorldToLocal(p Vec2) (local Vec2, ok bool) {
	inv, ok := n.worldTransform.Invert()
	if !ok {
		return Vec2{}, false
	}
	return inv.Transform(p), true
}

// LocalToWorld converts a local-space point to scene space.
func (n *Node) LocalToWorld(p Vec2) Vec2 {
	return n.worldTransform.Transform(p)
}

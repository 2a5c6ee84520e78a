package quill

// Pick returns the topmost node in ordered whose shape contains the
// scene-space point, or nil. ordered must be in painter's order (see
// Scene.Ordered) with world transforms already updated; it is scanned
// back-to-front so the last-drawn node wins. exclude, typically a selection
// outline, is never returned. Nodes whose world transform cannot be inverted
// are skipped.
func Pick(point Vec2, ordered []*Node, exclude *Node) *Node {
	n, _ := PickLocal(point, ordered, exclude)
	return n
}

// PickLocal is like Pick but also returns the point in the hit node's local
// unit-shape space.
func PickLocal(point Vec2, ordered []*Node, exclude *Node) (*Node, Vec2) {
	for i := len(ordered) - 1; i >= 0; i-- {
		n := ordered[i]
		if n == exclude {
			continue
		}
		local, ok := n.WorldToLocal(point)
		if !ok {
			continue
		}
		if n.Geometry.Contains(local) {
			return n, local
		}
	}
	return nil, Vec2{}
}

// PickAt runs a full frame pass (Update then Ordered) and picks against its
// result. Callers that already hold the frame's ordered list should use Pick.
func (s *Scene) PickAt(point Vec2, exclude *Node) *Node {
	return Pick(point, s.Frame(), exclude)
}

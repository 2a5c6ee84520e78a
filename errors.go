package quill

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNode is returned when a nil node is passed to a tree operation.
	ErrNilNode = errors.New("quill: nil node")

	// ErrAlreadyAttached is returned when adding a node that already has a
	// parent. Move nodes with Reparent or detach them first.
	ErrAlreadyAttached = errors.New("quill: node is already attached")

	// ErrCycle is returned when an add would make a node its own ancestor.
	ErrCycle = errors.New("quill: adding child would create a cycle")

	// ErrSceneRoot is returned when a scene's root would be attached under
	// another node.
	ErrSceneRoot = errors.New("quill: scene root cannot be attached")

	// ErrNotInScene is returned when a parent passed to Scene.AddTo does not
	// belong to the scene.
	ErrNotInScene = errors.New("quill: node is not part of the scene")

	// ErrUnknownGeometry marks a node whose geometry kind has no entry in the
	// geometry catalog.
	ErrUnknownGeometry = errors.New("quill: unknown geometry")

	// ErrRasterizer marks a failure reported by the rasterizer.
	ErrRasterizer = errors.New("quill: rasterizer failure")
)

// GeometryError reports a node skipped during render submission because its
// geometry kind is not drawable.
type GeometryError struct {
	Node *Node
	Kind GeometryKind
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("quill: node %q (id %d): unknown geometry %s", e.Node.Name, e.Node.ID, e.Kind)
}

func (e *GeometryError) Unwrap() error { return ErrUnknownGeometry }

// RasterError reports the rasterizer failing on a draw command. Submission of
// the frame stops at Node.
type RasterError struct {
	Node *Node
	Err  error
}

func (e *RasterError) Error() string {
	return fmt.Sprintf("quill: rasterizer failed at node %q (id %d): %v", e.Node.Name, e.Node.ID, e.Err)
}

// Unwrap exposes both ErrRasterizer and the underlying rasterizer error.
func (e *RasterError) Unwrap() []error { return []error{ErrRasterizer, e.Err} }

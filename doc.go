// Package quill is the retained-mode core of a 2D vector editor: a scene
// graph of transformable, stylable shapes, z-ordered draw submission to a
// rasterizer, and exact point-in-shape picking.
//
// # Quick start
//
//	scene := quill.NewScene()
//	rect := quill.NewRectangle("rect", 100, 50)
//	rect.X = 100
//	scene.Add(rect)
//
//	ordered := scene.Frame()                   // transform pass + painter's order
//	hit := quill.Pick(quill.Vec2{X: 100}, ordered, nil) // rect
//
// To see it on screen, run the scene with package app, or draw frames
// yourself with a [Renderer] and the ebiten rasterizer in package raster.
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root]; a
// node's world transform is parentWorld · T(X,Y) · R(R) · S(W,H), computed
// top-down by [Scene.Update] once per frame. Geometry picks one of three
// unit shapes (rectangle, triangle, ellipse, all centered at the origin with
// extent ±0.5) or none for a container. W and H scale the unit shape.
//
// A node has at most one parent. [Node.AddChild] rejects nodes that are
// already attached; use [Node.Reparent] to move one.
//
// # Coordinates
//
// Scene space has its origin at the canvas center and y growing upward.
// [Viewport.CanvasToScene] maps pointer pixels into it and
// [Viewport.Projection] maps it to the rasterizer's [-1, 1] device range.
// Rotation is in degrees, counter-clockwise.
//
// # Ordering
//
// [Scene.Ordered] flattens drawable nodes in pre-order and stably sorts them
// by ZIndex. Rendering draws that list in slice order, so later nodes cover
// earlier ones; [Pick] scans it in reverse so the visually topmost shape wins.
//
// # Logging
//
// quill is silent by default. Install a [log/slog] logger with [SetLogger]
// to see skipped nodes, rasterizer failures and, in debug mode, frame
// timings.
package quill

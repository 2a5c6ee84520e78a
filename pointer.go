package quill

// Viewport is the size of the drawing surface in device pixels. Scene space
// has its origin at the viewport center with y growing upward; canvas pixels
// have their origin at the top-left with y growing downward.
type Viewport struct {
	Width, Height float64
}

// CanvasToScene converts a canvas pixel coordinate to scene space.
func (v Viewport) CanvasToScene(px, py float64) Vec2 {
	return Vec2{px - v.Width/2, v.Height/2 - py}
}

// SceneToCanvas converts a scene-space point to canvas pixels.
func (v Viewport) SceneToCanvas(p Vec2) (px, py float64) {
	return p.X + v.Width/2, v.Height/2 - p.Y
}

// ScaleClient converts a pointer position reported in client units of a
// surface displayed at clientW x clientH (for example a CSS-scaled canvas or
// a HiDPI window) to canvas pixels. A zero client size returns the input.
func (v Viewport) ScaleClient(cx, cy, clientW, clientH float64) (px, py float64) {
	if clientW == 0 || clientH == 0 {
		return cx, cy
	}
	return cx * v.Width / clientW, cy * v.Height / clientH
}

// Projection returns the matrix mapping scene space to the [-1, 1] device
// range for this viewport, consistent with CanvasToScene.
func (v Viewport) Projection() Matrix {
	return Orthographic(-v.Width/2, v.Width/2, v.Height/2, -v.Height/2)
}

// DeviceToCanvas converts a device-range point ([-1, 1], y up) to canvas
// pixels.
func (v Viewport) DeviceToCanvas(d Vec2) (px, py float64) {
	return (d.X + 1) / 2 * v.Width, (1 - d.Y) / 2 * v.Height
}

package quill

import (
	"errors"
	"image"
	"math"
	"testing"
)

// recordingRasterizer records every command it accepts. failAt makes the
// call with that 1-based index fail.
type recordingRasterizer struct {
	cmds   []DrawCommand
	calls  int
	failAt int
	err    error
}

func (r *recordingRasterizer) Draw(cmd *DrawCommand) error {
	r.calls++
	if r.failAt > 0 && r.calls == r.failAt {
		return r.err
	}
	r.cmds = append(r.cmds, *cmd)
	return nil
}

// framedRasterizer adds frame boundaries to recordingRasterizer.
type framedRasterizer struct {
	recordingRasterizer
	began, ended int
	clear        Color
	beginErr     error
	endErr       error
}

func (r *framedRasterizer) BeginFrame(clear Color) error {
	r.began++
	r.clear = clear
	return r.beginErr
}

func (r *framedRasterizer) EndFrame() error {
	r.ended++
	return r.endErr
}

var errBoom = errors.New("boom")

func TestRendererProjection(t *testing.T) {
	r := NewRenderer(600, 400)
	if vp := r.Viewport(); vp.Width != 600 || vp.Height != 400 {
		t.Errorf("Viewport = %+v", vp)
	}
	assertMatrix(t, "projection", r.Projection(), Viewport{600, 400}.Projection())

	r.Resize(200, 100)
	assertVec(t, "resized", r.Projection().Transform(Vec2{100, 50}), Vec2{1, 1})
}

func TestCommandCombinedTransform(t *testing.T) {
	s := NewScene()
	n := NewRectangle("n", 100, 50)
	n.SetPosition(100, 0)
	n.SetFill(Color{1, 0, 0, 1})
	_ = s.Add(n)
	s.Update()

	r := NewRenderer(600, 400)
	cmd, err := r.Command(n)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Node != n || cmd.Geometry != GeometryRectangle || cmd.Fill != n.Fill || cmd.Stroke != n.Stroke {
		t.Errorf("command fields not copied: %+v", cmd)
	}
	// Local (0.5,0.5) is scene (150,25), i.e. device (0.5, 0.125).
	assertVec(t, "corner", cmd.Transform.Transform(Vec2{0.5, 0.5}), Vec2{0.5, 0.125})
	assertMatrix(t, "combined", cmd.Transform, r.Projection().Multiply(n.WorldTransform()))

	f := cmd.Float32()
	if f[6] != float32(cmd.Transform[2]) || f[7] != float32(cmd.Transform[5]) {
		t.Errorf("Float32 translation = %v, %v", f[6], f[7])
	}
}

func TestPixelScale(t *testing.T) {
	vp := Viewport{600, 400}
	proj := vp.Projection()
	tests := []struct {
		name  string
		world Matrix
		want  float64
	}{
		{"100x50", Scaling(100, 50), 75},
		{"rotated 45", Rotation(45).Multiply(Scaling(100, 50)), 75},
		{"translated", Translation(-200, 120).Multiply(Scaling(10, 10)), 10},
		{"degenerate", Scaling(0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PixelScale(proj.Multiply(tt.world), vp)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("PixelScale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandStrokeWidthInLocalUnits(t *testing.T) {
	s := NewScene()
	n := NewRectangle("n", 100, 50)
	n.SetStroke(ColorBlack, 2)
	_ = s.Add(n)
	s.Update()

	cmd, err := NewRenderer(600, 400).Command(n)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cmd.StrokeWidth-2.0/75) > 1e-9 {
		t.Errorf("StrokeWidth = %v, want %v", cmd.StrokeWidth, 2.0/75)
	}
}

func TestCommandZeroScaleNoStroke(t *testing.T) {
	s := NewScene()
	n := NewRectangle("n", 0, 0)
	n.SetStroke(ColorBlack, 2)
	_ = s.Add(n)
	s.Update()

	cmd, err := NewRenderer(600, 400).Command(n)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.StrokeWidth != 0 || math.IsNaN(cmd.StrokeWidth) {
		t.Errorf("StrokeWidth = %v, want 0", cmd.StrokeWidth)
	}
}

func TestCommandUnknownGeometry(t *testing.T) {
	r := NewRenderer(600, 400)
	for _, kind := range []GeometryKind{GeometryNone, GeometryKind(9)} {
		n := NewRectangle("bad", 1, 1)
		n.Geometry = kind
		_, err := r.Command(n)
		var gerr *GeometryError
		if !errors.As(err, &gerr) || gerr.Kind != kind || gerr.Node != n {
			t.Errorf("Command(%v) err = %v, want *GeometryError", kind, err)
		}
		if !errors.Is(err, ErrUnknownGeometry) {
			t.Errorf("Command(%v) err does not wrap ErrUnknownGeometry", kind)
		}
	}
}

func TestSubmitInOrder(t *testing.T) {
	s := NewScene()
	a := NewRectangle("a", 10, 10)
	a.SetZIndex(2)
	b := NewEllipse("b", 10, 10)
	c := NewTriangle("c", 10, 10)
	c.SetZIndex(1)
	_ = s.Add(a, b, c)

	var rast recordingRasterizer
	drawn, err := NewRenderer(600, 400).Submit(s.Frame(), &rast)
	if err != nil {
		t.Fatal(err)
	}
	if drawn != 3 || len(rast.cmds) != 3 {
		t.Fatalf("drawn = %d, commands = %d, want 3", drawn, len(rast.cmds))
	}
	want := []*Node{b, c, a}
	for i, cmd := range rast.cmds {
		if cmd.Node != want[i] {
			t.Errorf("command %d = %q, want %q", i, cmd.Node.Name, want[i].Name)
		}
	}
}

func TestSubmitSkipsUnknownGeometry(t *testing.T) {
	s := NewScene()
	a := NewRectangle("a", 10, 10)
	bad := NewRectangle("bad", 10, 10)
	c := NewRectangle("c", 10, 10)
	_ = s.Add(a, bad, c)
	ordered := s.Frame()
	bad.Geometry = GeometryKind(42)

	var rast recordingRasterizer
	drawn, err := NewRenderer(600, 400).Submit(ordered, &rast)
	if drawn != 2 {
		t.Errorf("drawn = %d, want 2", drawn)
	}
	if !errors.Is(err, ErrUnknownGeometry) {
		t.Fatalf("err = %v, want ErrUnknownGeometry", err)
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Node != bad {
		t.Errorf("GeometryError node = %v, want bad", gerr)
	}
	if len(rast.cmds) != 2 || rast.cmds[0].Node != a || rast.cmds[1].Node != c {
		t.Error("the remaining nodes were not drawn in order")
	}
}

func TestSubmitAbortsOnRasterizerError(t *testing.T) {
	s := NewScene()
	a := NewRectangle("a", 10, 10)
	b := NewRectangle("b", 10, 10)
	c := NewRectangle("c", 10, 10)
	_ = s.Add(a, b, c)

	rast := recordingRasterizer{failAt: 2, err: errBoom}
	drawn, err := NewRenderer(600, 400).Submit(s.Frame(), &rast)
	if drawn != 1 {
		t.Errorf("drawn = %d, want 1", drawn)
	}
	if rast.calls != 2 {
		t.Errorf("rasterizer called %d times, want 2", rast.calls)
	}
	if !errors.Is(err, ErrRasterizer) || !errors.Is(err, errBoom) {
		t.Errorf("err = %v, want ErrRasterizer wrapping boom", err)
	}
	var rerr *RasterError
	if !errors.As(err, &rerr) || rerr.Node != b {
		t.Errorf("RasterError = %v, want node b", rerr)
	}
}

func TestRenderFrameBoundaries(t *testing.T) {
	s := NewScene()
	s.ClearColor = Color{0, 0, 1, 1}
	n := NewRectangle("n", 10, 10)
	_ = s.Add(n)
	n.X = 30 // not yet applied; Render runs the transform pass

	var rast framedRasterizer
	drawn, err := NewRenderer(600, 400).Render(s, &rast)
	if err != nil {
		t.Fatal(err)
	}
	if drawn != 1 || rast.began != 1 || rast.ended != 1 {
		t.Errorf("drawn=%d began=%d ended=%d, want 1/1/1", drawn, rast.began, rast.ended)
	}
	if rast.clear != s.ClearColor {
		t.Errorf("clear = %v, want %v", rast.clear, s.ClearColor)
	}
	assertVec(t, "center", rast.cmds[0].Transform.Transform(Vec2{}), Vec2{30.0 / 300, 0})
}

func TestRenderBeginFrameError(t *testing.T) {
	s := NewScene()
	_ = s.Add(NewRectangle("n", 10, 10))

	rast := framedRasterizer{beginErr: errBoom}
	drawn, err := NewRenderer(600, 400).Render(s, &rast)
	if drawn != 0 || rast.calls != 0 {
		t.Errorf("drawn=%d calls=%d, want nothing drawn", drawn, rast.calls)
	}
	if !errors.Is(err, ErrRasterizer) || !errors.Is(err, errBoom) {
		t.Errorf("err = %v", err)
	}
	if rast.ended != 0 {
		t.Error("EndFrame called after a failed BeginFrame")
	}
}

func TestRenderEndFrameError(t *testing.T) {
	s := NewScene()
	_ = s.Add(NewRectangle("n", 10, 10))

	rast := framedRasterizer{endErr: errBoom}
	drawn, err := NewRenderer(600, 400).Render(s, &rast)
	if drawn != 1 {
		t.Errorf("drawn = %d, want 1", drawn)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestRenderPlainRasterizer(t *testing.T) {
	s := NewDemoScene()
	var rast recordingRasterizer
	drawn, err := NewRenderer(600, 400).Render(s, &rast)
	if err != nil || drawn != 4 {
		t.Errorf("Render = %d, %v, want 4, nil", drawn, err)
	}
}

func TestCommandCarriesTexture(t *testing.T) {
	s := NewScene()
	n := NewRectangle("n", 10, 10)
	tex := image.NewRGBA(image.Rect(0, 0, 4, 4))
	n.Texture = tex
	_ = s.Add(n)

	var rast recordingRasterizer
	if _, err := NewRenderer(600, 400).Render(s, &rast); err != nil {
		t.Fatal(err)
	}
	if rast.cmds[0].Texture != Texture(tex) {
		t.Error("texture handle not passed through")
	}
}

func TestRenderDoesNotModifyScene(t *testing.T) {
	s := NewDemoScene()
	before := names(s.Flatten())
	var rast recordingRasterizer
	_, _ = NewRenderer(600, 400).Render(s, &rast)
	after := names(s.Flatten())
	if len(before) != len(after) {
		t.Fatalf("Render changed the tree: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Render changed the tree: %v -> %v", before, after)
		}
	}
}

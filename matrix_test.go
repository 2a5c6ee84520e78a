package quill

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("%s =\n%v\nwant\n%v", name, got, want)
	}
}

// --- Constructors ---

func TestIdentity(t *testing.T) {
	assertMatrix(t, "identity", Identity(), Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assertVec(t, "identity*p", Identity().Transform(Vec2{3, -4}), Vec2{3, -4})
}

func TestTranslation(t *testing.T) {
	assertVec(t, "translate", Translation(10, 20).Transform(Vec2{1, 2}), Vec2{11, 22})
	assertVec(t, "translate vector", Translation(10, 20).TransformVector(Vec2{1, 2}), Vec2{1, 2})
}

func TestRotationCounterClockwise(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		in   Vec2
		want Vec2
	}{
		{"0", 0, Vec2{1, 0}, Vec2{1, 0}},
		{"90 x-axis", 90, Vec2{1, 0}, Vec2{0, 1}},
		{"90 y-axis", 90, Vec2{0, 1}, Vec2{-1, 0}},
		{"180", 180, Vec2{1, 0}, Vec2{-1, 0}},
		{"-90", -90, Vec2{1, 0}, Vec2{0, -1}},
		{"360", 360, Vec2{2, 3}, Vec2{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "rotate", Rotation(tt.deg).Transform(tt.in), tt.want)
		})
	}
}

func TestScaling(t *testing.T) {
	assertVec(t, "scale", Scaling(2, 3).Transform(Vec2{1, 1}), Vec2{2, 3})
}

func TestOrthographicCenteredYUp(t *testing.T) {
	proj := Orthographic(-300, 300, 200, -200)
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{0, 0}, Vec2{0, 0}},
		{Vec2{300, 200}, Vec2{1, 1}},
		{Vec2{-300, -200}, Vec2{-1, -1}},
		{Vec2{150, -100}, Vec2{0.5, -0.5}},
	}
	for _, tt := range tests {
		assertVec(t, "ortho", proj.Transform(tt.in), tt.want)
	}
}

func TestOrthographicCornerOrigin(t *testing.T) {
	// left=0, right=w, top=h, bottom=0: origin at the bottom-left corner.
	proj := Orthographic(0, 600, 400, 0)
	assertVec(t, "bottom-left", proj.Transform(Vec2{0, 0}), Vec2{-1, -1})
	assertVec(t, "top-right", proj.Transform(Vec2{600, 400}), Vec2{1, 1})
}

// --- Multiply ---

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix{2, 1, 3, 4, 5, 6, 0, 0, 1}
	assertMatrix(t, "id*m", Identity().Multiply(m), m)
	assertMatrix(t, "m*id", m.Multiply(Identity()), m)
}

func TestMultiplyAppliesRightOperandFirst(t *testing.T) {
	ts := Translation(10, 0).Multiply(Scaling(2, 2))
	st := Scaling(2, 2).Multiply(Translation(10, 0))
	assertVec(t, "T·S", ts.Transform(Vec2{1, 1}), Vec2{12, 2})
	assertVec(t, "S·T", st.Transform(Vec2{1, 1}), Vec2{22, 2})
}

func TestMultiplyTRS(t *testing.T) {
	m := Translation(10, 20).Multiply(Rotation(90)).Multiply(Scaling(2, 3))
	// (1,0) -> scale (2,0) -> rotate (0,2) -> translate (10,22)
	assertVec(t, "TRS", m.Transform(Vec2{1, 0}), Vec2{10, 22})
}

func TestMultiplyAssociative(t *testing.T) {
	a := Translation(3, -2).Multiply(Rotation(30))
	b := Scaling(2, 0.5)
	c := Rotation(-75).Multiply(Translation(1, 1))
	assertMatrix(t, "(ab)c = a(bc)", a.Multiply(b).Multiply(c), a.Multiply(b.Multiply(c)))
}

// --- Invert ---

func TestInvertRoundTrip(t *testing.T) {
	mats := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translation(-40, 17)},
		{"rotate", Rotation(33)},
		{"scale", Scaling(100, 0.25)},
		{"trs", Translation(100, -50).Multiply(Rotation(-120)).Multiply(Scaling(40, 75))},
		{"projection", Orthographic(-300, 300, 200, -200).Multiply(Translation(5, 5))},
	}
	points := []Vec2{{0, 0}, {1, 0}, {-37.5, 12.25}, {1000, -1000}}
	for _, tt := range mats {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert reported singular")
			}
			assertMatrix(t, "m*inv", tt.m.Multiply(inv), Identity())
			for _, p := range points {
				got := inv.Transform(tt.m.Transform(p))
				if math.Abs(got.X-p.X) > 1e-5 || math.Abs(got.Y-p.Y) > 1e-5 {
					t.Errorf("inv(m(%v)) = %v", p, got)
				}
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero width", Scaling(0, 1)},
		{"zero height", Translation(5, 5).Multiply(Scaling(10, 0))},
		{"near zero", Scaling(1e-7, 1e-7)},
		{"nan", Scaling(math.NaN(), 1)},
		{"zero value", Matrix{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok {
				t.Fatalf("Invert(%v) ok = true, want false", tt.m)
			}
			assertMatrix(t, "fallback", inv, Identity())
		})
	}
}

func TestDeterminant(t *testing.T) {
	assertNear(t, "det scale", Scaling(2, 3).Determinant(), 6)
	assertNear(t, "det rotation", Rotation(47).Determinant(), 1)
	assertNear(t, "det trs", Translation(9, 9).Multiply(Rotation(10)).Multiply(Scaling(4, 5)).Determinant(), 20)
}

// --- Float32 ---

func TestFloat32ColumnMajor(t *testing.T) {
	got := Translation(5, 6).Float32()
	want := [9]float32{1, 0, 0, 0, 1, 0, 5, 6, 1}
	if got != want {
		t.Errorf("Float32 = %v, want %v", got, want)
	}
}

package quill

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// NewDemoScene builds the starter document: a red rectangle, a green circle
// and two blue triangles.
func NewDemoScene() *Scene {
	s := NewScene()

	rect := NewRectangle("rect", 100, 50)
	rect.X = 100
	rect.Fill = Color{1, 0, 0, 1}

	circ := NewEllipse("circle", 50, 50)
	circ.X, circ.Y = -50, 50
	circ.Fill = Color{0, 1, 0, 1}

	tri := NewTriangle("tri", 50, 75)
	tri.X, tri.Y = -50, -50
	tri.Fill = Color{0, 0, 1, 1}

	tri2 := NewTriangle("tri2", 50, 75)
	tri2.X, tri2.Y = -150, -50
	tri2.Fill = Color{0, 0, 1, 1}

	// Fresh detached nodes cannot fail to attach.
	_ = s.Add(rect, circ, tri, tri2)
	return s
}

// NewGridScene builds a 10x10 grid of outlined squares whose random tilt
// grows toward the bottom rows. rng may be nil for a fixed seed.
func NewGridScene(rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	s := NewScene()
	s.ClearColor = Color{0.05, 0.05, 0.05, 1}

	const (
		n    = 10
		side = 500.0
	)
	l := side / n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sq := NewRectangle(fmt.Sprintf("cell-%d-%d", i, j), l, l)
			sq.Fill = s.ClearColor
			sq.SetStroke(Color{0.25, 0.75, 0.25, 1}, 1)
			sq.X = l*float64(j) - side/2 + l/2
			sq.Y = l*float64(i) - side/2 + l/2
			sq.R = (rng.Float64()*2 - 1) * 3 * float64(n-i-1)
			_ = s.Add(sq)
		}
	}
	return s
}

// NewPhyllotaxisScene builds a sunflower of ellipses placed at golden-angle
// increments, colored around the hue wheel.
func NewPhyllotaxisScene() *Scene {
	s := NewScene()

	const (
		petalSize   = 20.0
		totalPetals = 300
		scale       = 15.0
	)
	goldenAngle := 137.5 * math.Pi / 180

	for i := 1; i < totalPetals; i++ {
		angle := float64(i) * goldenAngle
		radius := scale * math.Sqrt(float64(i))
		t := float64(i) / totalPetals

		petal := NewEllipse(fmt.Sprintf("petal-%d", i), petalSize, petalSize)
		petal.Fill = Color{
			R: 0.5 + 0.5*math.Sin(2*math.Pi*t),
			G: 0.5 + 0.5*math.Sin(2*math.Pi*(t+0.33)),
			B: 0.5 + 0.5*math.Sin(2*math.Pi*(t+0.66)),
			A: 1,
		}
		petal.X = radius * math.Cos(angle)
		petal.Y = radius * math.Sin(angle)
		_ = s.Add(petal)
	}
	return s
}

package scene

import "image/color"

type Point struct {
	X, Y float64
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
	Alpha  float64
	Phase  float64
}

type ShapeKind int

const (
	Triangle ShapeKind = iota
	Square
	Hexagon
	Sphere
	Cube
	Origami
)

func (k ShapeKind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Hexagon:
		return "hexagon"
	case Sphere:
		return "sphere"
	case Cube:
		return "cube"
	case Origami:
		return "origami"
	}
	return "unknown"
}

// Shape keeps its size, kind and colour for its whole life; only position
// and rotation evolve.
type Shape struct {
	X, Y           float64
	Size           float64
	Rotation       float64
	RotationSpeed  float64
	DriftX, DriftY float64
	Kind           ShapeKind
	Color          color.NRGBA
	Alpha          float64
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
	// DiagonalRight runs from top-left to bottom-right.
	DiagonalRight
	// DiagonalLeft runs from top-right to bottom-left.
	DiagonalLeft
)

// GridLine never moves; Offset locates it along its axis and only its
// rendered brightness oscillates.
type GridLine struct {
	Orientation Orientation
	Offset      float64
	Alpha       float64
	Phase       float64
	Flow        float64
	Color       color.NRGBA
}

type RibbonPoint struct {
	X     float64
	RestY float64
	Y     float64
}

type Ribbon struct {
	Points    []RibbonPoint
	Wave      float64
	Amplitude float64
	Color     color.NRGBA
	Alpha     float64
}

// WaveComponent contributes Amplitude*sin((x + clock*Speed)*Frequency + Phase).
type WaveComponent struct {
	Amplitude float64
	Speed     float64
	Frequency float64
	Phase     float64
}

// WaveBand is a stateless sinusoidal line anchored at Base*height.
type WaveBand struct {
	Base       float64
	Color      color.NRGBA
	Alpha      float64
	Width      float64
	Components []WaveComponent
}

// Pointer is the last known cursor position in surface coordinates.
type Pointer struct {
	X, Y   float64
	Active bool
}

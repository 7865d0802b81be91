package scene

import "math"

const (
	ellipseSegments = 36
	cubeDepth       = 20
	origamiPoints   = 8
)

// place rotates local points by rot and moves them to (x, y).
func place(pts []Point, x, y, rot float64) []Point {
	sin, cos := math.Sincos(rot)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// TrianglePoints is an isosceles triangle with its apex up.
func TrianglePoints(size float64) []Point {
	return []Point{
		{0, -size},
		{-size * 0.866, size * 0.5},
		{size * 0.866, size * 0.5},
	}
}

func SquarePoints(size float64) []Point {
	return []Point{
		{-size, -size},
		{size, -size},
		{size, size},
		{-size, size},
	}
}

func HexagonPoints(size float64) []Point {
	pts := make([]Point, 6)
	for i := range pts {
		angle := float64(i) * math.Pi / 3
		pts[i] = Point{size * math.Cos(angle), size * math.Sin(angle)}
	}
	return pts
}

// EllipsePoints samples an ellipse with radii rx, ry tilted by tilt.
func EllipsePoints(rx, ry, tilt float64) []Point {
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / ellipseSegments
		pts[i] = Point{rx * math.Cos(a), ry * math.Sin(a)}
	}
	return place(pts, 0, 0, tilt)
}

// SpherePoints returns the wireframe outline: 8 meridians followed by
// 3 parallels, each as a closed loop.
func SpherePoints(size float64) [][]Point {
	loops := make([][]Point, 0, 11)
	for i := 0; i < 8; i++ {
		fi := float64(i)
		minor := math.Abs(size * math.Cos(fi*math.Pi/8))
		loops = append(loops, EllipsePoints(size, minor, fi*math.Pi/4))
	}
	for i := 1; i < 4; i++ {
		r := size * math.Sin(float64(i)*math.Pi/4)
		loops = append(loops, EllipsePoints(r, r, 0))
	}
	return loops
}

// CubePoints returns the front face followed by the two open edge paths
// that fake depth.
func CubePoints(size float64) (face, top, side []Point) {
	half := size / 2
	face = []Point{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	top = []Point{
		{half, -half},
		{half + cubeDepth, -half - cubeDepth},
		{-half + cubeDepth, -half - cubeDepth},
		{-half, -half},
	}
	side = []Point{
		{half, half},
		{half + cubeDepth, half - cubeDepth},
		{half + cubeDepth, -half - cubeDepth},
	}
	return face, top, side
}

// OrigamiPoints is an 8-point star alternating outer and inner radius.
func OrigamiPoints(size float64) []Point {
	pts := make([]Point, origamiPoints*2)
	for i := range pts {
		r := size
		if i%2 == 1 {
			r = size * 0.5
		}
		angle := float64(i) * math.Pi / origamiPoints
		pts[i] = Point{math.Cos(angle) * r, math.Sin(angle) * r}
	}
	return pts
}

package scene

import "image/color"

type op struct {
	kind  string
	pts   []Point
	color color.NRGBA
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "rect", pts: []Point{{x, y}, {x + w, y + h}}, color: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "circle", pts: []Point{{cx, cy}}, color: c})
}

func (r *recorder) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "ring", pts: []Point{{cx, cy}}, color: c})
}

func (r *recorder) StrokePath(pts []Point, width float64, c color.NRGBA, closed bool) {
	r.ops = append(r.ops, op{kind: "path", pts: append([]Point(nil), pts...), color: c})
}

func (r *recorder) FillPolygon(pts []Point, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "polygon", pts: append([]Point(nil), pts...), color: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

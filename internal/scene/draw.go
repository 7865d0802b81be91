package scene

import (
	"image/color"
	"math"
)

// Canvas is the drawable surface. Colours carry straight (non-premultiplied)
// alpha.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	StrokePath(pts []Point, width float64, c color.NRGBA, closed bool)
	// FillPolygon fills a polygon that is star-shaped around its centroid.
	FillPolygon(pts []Point, c color.NRGBA)
}

const (
	glowAlpha = 0.25
	fillAlpha = 0.1
)

func ParticleOpacity(p *Particle, s ParticleStyle, clock uint64) float64 {
	pulse := s.PulseBase + s.PulseDepth*math.Sin(float64(clock)*s.PulseRate+p.Phase)
	return clamp01(p.Alpha * clamp01(pulse))
}

func ShapeOpacity(sh *Shape, s ShapeStyle, clock uint64) float64 {
	return clamp01(sh.Alpha + math.Sin(float64(clock)*0.01+sh.X*0.01)*s.AlphaWobble)
}

func GridOpacity(l *GridLine, s GridStyle, clock uint64) float64 {
	t := float64(clock)
	wave := clamp01(s.PulseBase + s.PulseDepth*math.Sin(t*s.PulseRate+l.Phase))
	flow := clamp01(s.FlowBase + s.FlowDepth*math.Sin((t*s.FlowRate+l.Flow)*s.FlowFreq))
	return clamp01(l.Alpha * wave * flow)
}

func DrawParticle(c Canvas, p *Particle, s ParticleStyle, clock uint64) {
	alpha := ParticleOpacity(p, s, clock)
	if alpha <= 0 {
		return
	}
	if s.Glow {
		c.FillCircle(p.X, p.Y, p.Radius*2.5, withAlpha(p.Color, alpha*glowAlpha))
	}
	c.FillCircle(p.X, p.Y, p.Radius, withAlpha(p.Color, alpha))
}

func DrawShape(c Canvas, sh *Shape, s ShapeStyle, clock uint64) {
	alpha := ShapeOpacity(sh, s, clock)
	if alpha <= 0 {
		return
	}
	stroke := withAlpha(sh.Color, alpha)
	fill := withAlpha(sh.Color, alpha*fillAlpha)
	width := s.LineWidth

	outline := func(pts []Point, closed bool) {
		placed := place(pts, sh.X, sh.Y, sh.Rotation)
		if s.Glow {
			c.StrokePath(placed, width*3, withAlpha(sh.Color, alpha*glowAlpha), closed)
		}
		c.StrokePath(placed, width, stroke, closed)
	}

	switch sh.Kind {
	case Triangle:
		outline(TrianglePoints(sh.Size), true)
	case Square:
		outline(SquarePoints(sh.Size), true)
	case Hexagon:
		outline(HexagonPoints(sh.Size), true)
	case Sphere:
		for _, loop := range SpherePoints(sh.Size) {
			outline(loop, true)
		}
	case Cube:
		face, top, side := CubePoints(sh.Size)
		c.FillPolygon(place(face, sh.X, sh.Y, sh.Rotation), fill)
		outline(face, true)
		outline(top, false)
		outline(side, false)
	case Origami:
		star := OrigamiPoints(sh.Size)
		c.FillPolygon(place(star, sh.X, sh.Y, sh.Rotation), fill)
		outline(star, true)
	}
}

func DrawGridLine(c Canvas, l *GridLine, w, h float64, s GridStyle, clock uint64) {
	alpha := GridOpacity(l, s, clock)
	if alpha <= 0 {
		return
	}
	var from, to Point
	switch l.Orientation {
	case Vertical:
		from, to = Point{l.Offset, 0}, Point{l.Offset, h}
	case Horizontal:
		from, to = Point{0, l.Offset}, Point{w, l.Offset}
	case DiagonalRight:
		from, to = Point{l.Offset, 0}, Point{l.Offset + h, h}
	case DiagonalLeft:
		from, to = Point{w - l.Offset, 0}, Point{w - l.Offset - h, h}
	}
	c.StrokePath([]Point{from, to}, s.LineWidth, withAlpha(l.Color, alpha), false)
}

func DrawRibbon(c Canvas, rb *Ribbon, s RibbonStyle) {
	if len(rb.Points) < 2 {
		return
	}
	pts := make([]Point, len(rb.Points))
	for i, p := range rb.Points {
		pts[i] = Point{p.X, p.Y}
	}
	alpha := clamp01(rb.Alpha)
	if s.Glow {
		c.StrokePath(pts, s.Width*3, withAlpha(rb.Color, alpha*glowAlpha), false)
	}
	c.StrokePath(pts, s.Width, withAlpha(rb.Color, alpha), false)
}

// waveStep is the horizontal sampling distance for wave bands.
const waveStep = 5

func DrawWave(c Canvas, b *WaveBand, w, h float64, clock uint64) {
	if w <= 0 {
		return
	}
	pts := make([]Point, 0, int(w/waveStep)+2)
	for x := 0.0; x < w; x += waveStep {
		pts = append(pts, Point{x, b.At(x, h, clock)})
	}
	pts = append(pts, Point{w, b.At(w, h, clock)})
	c.StrokePath(pts, b.Width, withAlpha(b.Color, b.Alpha), false)
}

// GradientAt returns the radial background colour at t in [0,1] from the
// centre outwards. The hue swings with the clock.
func GradientAt(t float64, clock uint64) color.NRGBA {
	shift := math.Sin(float64(clock)*0.01) * 30
	inner := hsl(240+shift, 0.4, 0.08)
	mid := hsl(260+shift, 0.5, 0.12)
	outer := hsl(220+shift, 0.6, 0.05)
	t = clamp01(t)
	if t < 0.5 {
		return toNRGBA(inner.BlendRgb(mid, t*2))
	}
	return toNRGBA(mid.BlendRgb(outer, (t-0.5)*2))
}

func DrawBackground(c Canvas, w, h float64, s BackgroundStyle, clock uint64) {
	switch s.Mode {
	case BackgroundFade:
		c.FillRect(0, 0, w, h, s.Fade)
	case BackgroundGradient:
		c.FillRect(0, 0, w, h, GradientAt(1, clock))
		rings := s.Rings
		if rings <= 0 {
			rings = 1
		}
		radius := math.Max(w, h)
		for i := rings; i > 0; i-- {
			t := float64(i) / float64(rings)
			c.FillCircle(w/2, h/2, radius*t, GradientAt(t, clock))
		}
	}
}

package scene

import "math"

// NewParticles seeds s.Count particles uniformly over [0,w)x[0,h).
func NewParticles(w, h int, s ParticleStyle, r *Rand) []Particle {
	particles := make([]Particle, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		particles = append(particles, Particle{
			X:      r.Float64() * float64(w),
			Y:      r.Float64() * float64(h),
			VX:     r.Spread(s.Speed),
			VY:     r.Spread(s.Speed),
			Radius: r.Range(s.MinRadius, s.MaxRadius),
			Color:  s.Palette.Pick(r),
			Alpha:  r.Range(s.MinAlpha, s.MaxAlpha),
			Phase:  r.Angle(),
		})
	}
	return particles
}

func NewShapes(w, h int, s ShapeStyle, r *Rand) []Shape {
	if len(s.Kinds) == 0 {
		return nil
	}
	shapes := make([]Shape, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		kind := s.Kinds[r.IntN(len(s.Kinds))]
		clr := s.Palette.Pick(r)
		if c, ok := s.KindColors[kind]; ok {
			clr = c
		}
		shapes = append(shapes, Shape{
			X:             r.Float64() * float64(w),
			Y:             r.Float64() * float64(h),
			Size:          r.Range(s.MinSize, s.MaxSize),
			RotationSpeed: r.Spread(s.SpinSpeed),
			DriftX:        r.Spread(s.Drift),
			DriftY:        r.Spread(s.Drift),
			Kind:          kind,
			Color:         clr,
			Alpha:         s.Alpha,
		})
	}
	return shapes
}

// NewGridLines lays one line per Spacing pixels. The count depends only on
// w, h and the spacing; randomness only jitters each line's phase.
func NewGridLines(w, h int, s GridStyle, r *Rand) []GridLine {
	if s.Spacing <= 0 || len(s.Palette) == 0 {
		return nil
	}
	var lines []GridLine
	add := func(o Orientation, offset float64) {
		line := GridLine{
			Orientation: o,
			Offset:      offset,
			Alpha:       s.Alpha,
			Phase:       r.Angle(),
			Color:       s.Palette.At(len(lines)),
		}
		if s.Diagonal {
			line.Flow = r.Float64() * 1000
		}
		lines = append(lines, line)
	}

	if s.Diagonal {
		diag := math.Hypot(float64(w), float64(h))
		for _, o := range []Orientation{DiagonalRight, DiagonalLeft} {
			for off := -diag; off < diag; off += s.Spacing {
				add(o, off)
			}
		}
		return lines
	}

	for x := 0.0; x < float64(w); x += s.Spacing {
		add(Vertical, x)
	}
	for y := 0.0; y < float64(h); y += s.Spacing {
		add(Horizontal, y)
	}
	return lines
}

// NewRibbons builds ribbons whose sample x and rest y never change after
// creation.
func NewRibbons(w, h int, s RibbonStyle, r *Rand) []Ribbon {
	if s.Segments <= 0 {
		return nil
	}
	ribbons := make([]Ribbon, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		points := make([]RibbonPoint, s.Segments)
		for j := range points {
			rest := float64(h)*0.5 + math.Sin(float64(j)*0.5)*100
			points[j] = RibbonPoint{
				X:     float64(j) / float64(s.Segments) * float64(w),
				RestY: rest,
				Y:     rest,
			}
		}
		ribbons = append(ribbons, Ribbon{
			Points:    points,
			Wave:      r.Angle(),
			Amplitude: r.Range(s.MinAmplitude, s.MaxAmplitude),
			Color:     s.Palette.Pick(r),
			Alpha:     s.Alpha,
		})
	}
	return ribbons
}

// NewWaveBands copies the configured bands so a generation never shares
// component slices with the effect set.
func NewWaveBands(bands []WaveBand) []WaveBand {
	out := make([]WaveBand, len(bands))
	for i, b := range bands {
		b.Components = append([]WaveComponent(nil), b.Components...)
		out[i] = b
	}
	return out
}

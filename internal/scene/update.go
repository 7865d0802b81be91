package scene

import "math"

// AttractionForce is the pointer pull factor at distance d: (radius-d)/radius
// inside the radius, zero outside. It peaks at 1 when d is 0.
func AttractionForce(d, radius float64) float64 {
	if radius <= 0 || d >= radius || math.IsNaN(d) {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (radius - d) / radius
}

// Update advances the particle one tick inside a w x h torus.
func (p *Particle) Update(w, h float64, s ParticleStyle, ptr Pointer) {
	if ptr.Active {
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		if force := AttractionForce(math.Hypot(dx, dy), s.PointerRadius); force > 0 {
			p.VX += dx * force * s.PointerPull
			p.VY += dy * force * s.PointerPull
		}
	}
	if s.MaxSpeed > 0 {
		if speed := math.Hypot(p.VX, p.VY); speed > s.MaxSpeed {
			p.VX *= s.MaxSpeed / speed
			p.VY *= s.MaxSpeed / speed
		}
	}

	p.X = wrap(p.X+p.VX, w)
	p.Y = wrap(p.Y+p.VY, h)
	p.Phase += s.PhaseStep
}

// Update spins and drifts the shape, teleporting it to the opposite margin
// once it is more than s.Margin outside the viewport.
func (sh *Shape) Update(w, h float64, clock uint64, s ShapeStyle) {
	sh.Rotation += sh.RotationSpeed

	sh.X += sh.DriftX
	sh.Y += sh.DriftY
	if s.FlowDrift != 0 {
		t := float64(clock) * 0.005
		sh.X += math.Sin(t+sh.Y*0.001) * s.FlowDrift
		sh.Y += math.Cos(t+sh.X*0.001) * s.FlowDrift
	}

	m := s.Margin
	if sh.X < -m {
		sh.X = w + m
	} else if sh.X > w+m {
		sh.X = -m
	}
	if sh.Y < -m {
		sh.Y = h + m
	} else if sh.Y > h+m {
		sh.Y = -m
	}
}

// Update advances the wave phase and recomputes each sample's y from its
// rest position.
func (rb *Ribbon) Update(s RibbonStyle) {
	rb.Wave += s.WaveStep
	for i := range rb.Points {
		pt := &rb.Points[i]
		pt.Y = pt.RestY + math.Sin(rb.Wave+float64(i)*s.Spatial)*rb.Amplitude
	}
}

// At returns the band's y coordinate at x for the given clock.
func (b WaveBand) At(x, height float64, clock uint64) float64 {
	y := height * b.Base
	t := float64(clock)
	for _, c := range b.Components {
		y += math.Sin((x+t*c.Speed)*c.Frequency+c.Phase) * c.Amplitude
	}
	return y
}

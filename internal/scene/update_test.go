package scene

import (
	"math"
	"testing"
)

func TestParticleWrapInvariant(t *testing.T) {
	const w, h = 300.0, 200.0
	style := Trails().Particles
	style.Speed = 5
	rng := NewSeededRand(11)
	particles := NewParticles(int(w), int(h), style, rng)

	for tick := 0; tick < 2000; tick++ {
		// Sweep the pointer around so attraction keeps changing velocities.
		ptr := Pointer{
			X:      w/2 + math.Cos(float64(tick)*0.05)*120,
			Y:      h/2 + math.Sin(float64(tick)*0.05)*80,
			Active: true,
		}
		for i := range particles {
			p := &particles[i]
			p.Update(w, h, style, ptr)
			if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
				t.Fatalf("Tick %d: particle %d escaped to (%v, %v)", tick, i, p.X, p.Y)
			}
		}
	}
}

func TestParticleWrapsToOppositeEdge(t *testing.T) {
	style := Gradient().Particles
	p := Particle{X: 99.5, Y: 0.2, VX: 1, VY: -0.5}
	p.Update(100, 100, style, Pointer{})
	if math.Abs(p.X-0.5) > 1e-9 {
		t.Errorf("Expected x to wrap to 0.5, got %v", p.X)
	}
	if math.Abs(p.Y-99.7) > 1e-9 {
		t.Errorf("Expected y to wrap to 99.7, got %v", p.Y)
	}
}

func TestAttractionForce(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 1},
		{75, 0.5},
		{150, 0},
		{400, 0},
		{-5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := AttractionForce(tt.d, 150)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AttractionForce(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestParticleUnderPointerStaysFinite(t *testing.T) {
	style := Trails().Particles
	p := Particle{X: 50, Y: 50, VX: 0.1, VY: -0.1}
	p.Update(100, 100, style, Pointer{X: 50, Y: 50, Active: true})

	for _, v := range []float64{p.X, p.Y, p.VX, p.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Expected finite state, got %+v", p)
		}
	}
	if p.VX != 0.1 || p.VY != -0.1 {
		t.Errorf("Zero offset must not change velocity, got (%v, %v)", p.VX, p.VY)
	}
}

func TestParticleDriftsTowardPointer(t *testing.T) {
	style := Trails().Particles
	p := Particle{X: 100, Y: 100}
	p.Update(1000, 1000, style, Pointer{X: 200, Y: 100, Active: true})
	if p.VX <= 0 {
		t.Errorf("Expected positive x velocity toward pointer, got %v", p.VX)
	}
	if p.VX > style.PointerPull*100 {
		t.Errorf("Pull %v larger than one tick of force", p.VX)
	}

	q := Particle{X: 100, Y: 100}
	q.Update(1000, 1000, style, Pointer{X: 600, Y: 100, Active: true})
	if q.VX != 0 {
		t.Errorf("Pointer beyond radius must not pull, got %v", q.VX)
	}
}

func TestShapeMarginInvariant(t *testing.T) {
	const w, h = 640.0, 480.0
	for _, effects := range []EffectSet{Gradient(), Trails()} {
		t.Run(effects.Name, func(t *testing.T) {
			style := effects.Shapes
			style.Drift = 4
			shapes := NewShapes(int(w), int(h), style, NewSeededRand(5))
			initial := append([]Shape(nil), shapes...)
			m := style.Margin

			for tick := uint64(1); tick <= 5000; tick++ {
				for i := range shapes {
					sh := &shapes[i]
					sh.Update(w, h, tick, style)
					if sh.X < -m || sh.X > w+m || sh.Y < -m || sh.Y > h+m {
						t.Fatalf("Tick %d: shape %d at (%v, %v) beyond margin", tick, i, sh.X, sh.Y)
					}
				}
			}
			for i, sh := range shapes {
				if sh.Size != initial[i].Size || sh.Color != initial[i].Color || sh.Kind != initial[i].Kind {
					t.Errorf("Shape %d changed fixed fields", i)
				}
			}
		})
	}
}

func TestShapeTeleportsPastMargin(t *testing.T) {
	style := ShapeStyle{Margin: 100}
	sh := Shape{X: -100, Y: 50, DriftX: -1}
	sh.Update(500, 400, 0, style)
	if sh.X != 600 {
		t.Errorf("Expected shape to reappear at x=600, got %v", sh.X)
	}
}

func TestRibbonStaysWithinAmplitude(t *testing.T) {
	style := Trails().Ribbons
	ribbons := NewRibbons(800, 600, style, NewSeededRand(2))
	rb := &ribbons[0]
	rb.Amplitude = 50
	before := append([]RibbonPoint(nil), rb.Points...)

	for tick := 0; tick < 1000; tick++ {
		rb.Update(style)
		for i, pt := range rb.Points {
			if pt.Y < pt.RestY-50-1e-9 || pt.Y > pt.RestY+50+1e-9 {
				t.Fatalf("Tick %d: point %d y=%v outside rest %v +/- 50", tick, i, pt.Y, pt.RestY)
			}
		}
	}
	for i, pt := range rb.Points {
		if pt.X != before[i].X || pt.RestY != before[i].RestY {
			t.Errorf("Point %d moved its fixed coordinates", i)
		}
	}
}

func TestWaveBandAt(t *testing.T) {
	band := WaveBand{
		Base:       0.5,
		Components: []WaveComponent{{Amplitude: 10, Speed: 1, Frequency: math.Pi / 2}},
	}
	if got := band.At(0, 200, 0); got != 100 {
		t.Errorf("Expected y=100 at origin, got %v", got)
	}
	if got := band.At(1, 200, 0); math.Abs(got-110) > 1e-9 {
		t.Errorf("Expected y=110 at quarter period, got %v", got)
	}
	if got := band.At(0, 200, 1); math.Abs(got-110) > 1e-9 {
		t.Errorf("Expected the clock to shift the band, got %v", got)
	}
}

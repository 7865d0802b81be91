package scene

import (
	"math"
	"testing"
)

func TestNewParticlesViewport(t *testing.T) {
	style := Gradient().Particles
	style.Count = 80

	particles := NewParticles(1024, 768, style, NewSeededRand(1))
	if len(particles) != 80 {
		t.Fatalf("Expected 80 particles, got %d", len(particles))
	}
	for i, p := range particles {
		if p.X < 0 || p.X >= 1024 || p.Y < 0 || p.Y >= 768 {
			t.Errorf("Particle %d out of viewport: (%v, %v)", i, p.X, p.Y)
		}
		if p.Radius < style.MinRadius || p.Radius >= style.MaxRadius {
			t.Errorf("Particle %d radius %v outside [%v, %v)", i, p.Radius, style.MinRadius, style.MaxRadius)
		}
		if math.Abs(p.VX) > style.Speed || math.Abs(p.VY) > style.Speed {
			t.Errorf("Particle %d velocity (%v, %v) exceeds %v", i, p.VX, p.VY, style.Speed)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Errorf("Particle %d phase %v outside [0, 2pi)", i, p.Phase)
		}
		if p.Alpha < 0 || p.Alpha > 1 {
			t.Errorf("Particle %d alpha %v outside [0, 1]", i, p.Alpha)
		}
		found := false
		for _, c := range style.Palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Errorf("Particle %d colour %v not in palette", i, p.Color)
		}
	}
}

func TestRegenerationKeepsCounts(t *testing.T) {
	for _, name := range Variants() {
		t.Run(name, func(t *testing.T) {
			effects, _ := Lookup(name)
			s := New(effects, NewRand())

			s.Populate(1280, 720)
			first := []int{len(s.Particles), len(s.Shapes), len(s.Grid), len(s.Ribbons), len(s.Waves)}

			s.Populate(1280, 720)
			second := []int{len(s.Particles), len(s.Shapes), len(s.Grid), len(s.Ribbons), len(s.Waves)}
			for i := range first {
				if first[i] != second[i] {
					t.Errorf("Collection %d changed length: %d then %d", i, first[i], second[i])
				}
			}
			if s.Generation() != 2 {
				t.Errorf("Expected generation 2, got %d", s.Generation())
			}
		})
	}
}

func TestNewGridLinesCount(t *testing.T) {
	tests := []struct {
		name  string
		style GridStyle
		want  int
	}{
		// 13 vertical (0..960) and 10 horizontal (0..720) lines.
		{"orthogonal", Trails().Grid, 23},
		// diag = 1280, offsets -1280..1160 in steps of 120 for each direction.
		{"diagonal", Diagonal().Grid, 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewGridLines(1024, 768, tt.style, NewRand())
			b := NewGridLines(1024, 768, tt.style, NewRand())
			if len(a) != tt.want || len(b) != tt.want {
				t.Errorf("Expected %d lines, got %d and %d", tt.want, len(a), len(b))
			}
			for i, l := range a {
				if l.Phase < 0 || l.Phase >= 2*math.Pi {
					t.Errorf("Line %d phase %v outside [0, 2pi)", i, l.Phase)
				}
				if l.Offset != b[i].Offset || l.Orientation != b[i].Orientation {
					t.Errorf("Line %d layout differs between generations", i)
				}
			}
		})
	}
}

func TestNewRibbonsLayout(t *testing.T) {
	style := Trails().Ribbons
	ribbons := NewRibbons(1000, 500, style, NewSeededRand(7))
	if len(ribbons) != style.Count {
		t.Fatalf("Expected %d ribbons, got %d", style.Count, len(ribbons))
	}
	for _, rb := range ribbons {
		if len(rb.Points) != style.Segments {
			t.Fatalf("Expected %d points, got %d", style.Segments, len(rb.Points))
		}
		if rb.Amplitude < style.MinAmplitude || rb.Amplitude >= style.MaxAmplitude {
			t.Errorf("Amplitude %v outside [%v, %v)", rb.Amplitude, style.MinAmplitude, style.MaxAmplitude)
		}
		for j, pt := range rb.Points {
			wantX := float64(j) / float64(style.Segments) * 1000
			if pt.X != wantX {
				t.Errorf("Point %d x = %v, want %v", j, pt.X, wantX)
			}
		}
	}
}

func TestNewShapesKindColors(t *testing.T) {
	style := Trails().Shapes
	shapes := NewShapes(800, 600, style, NewSeededRand(3))
	if len(shapes) != style.Count {
		t.Fatalf("Expected %d shapes, got %d", style.Count, len(shapes))
	}
	for _, sh := range shapes {
		if sh.Color != style.KindColors[sh.Kind] {
			t.Errorf("%v shape has colour %v, want %v", sh.Kind, sh.Color, style.KindColors[sh.Kind])
		}
	}
}

func TestSeededRandIsRepeatable(t *testing.T) {
	style := Diagonal().Particles
	a := NewParticles(640, 480, style, NewSeededRand(99))
	b := NewParticles(640, 480, style, NewSeededRand(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Particle %d differs with identical seeds", i)
		}
	}
}

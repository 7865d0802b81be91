// Package scene holds the procedural backdrop: entity factories, per-tick
// update rules, draw routines and the state object that owns them.
package scene

// Scene is the single owner of all animation state for one mounted
// backdrop. It is not safe for concurrent use; the host calls it from one
// goroutine.
type Scene struct {
	Effects EffectSet

	Width, Height int
	Clock         uint64
	Pointer       Pointer

	Particles []Particle
	Shapes    []Shape
	Grid      []GridLine
	Ribbons   []Ribbon
	Waves     []WaveBand

	generation int
	rng        *Rand
}

func New(effects EffectSet, rng *Rand) *Scene {
	if rng == nil {
		rng = NewRand()
	}
	return &Scene{Effects: effects, rng: rng}
}

// Generation counts how many times the collections were populated.
func (s *Scene) Generation() int { return s.generation }

// Populate discards every collection and reseeds it for a w x h viewport.
// A non-positive size leaves the scene empty until the next call.
func (s *Scene) Populate(w, h int) {
	s.Width, s.Height = w, h
	s.generation++
	s.Particles, s.Shapes, s.Grid, s.Ribbons, s.Waves = nil, nil, nil, nil, nil
	if w <= 0 || h <= 0 {
		return
	}

	e := s.Effects
	if e.Has(LayerParticles) {
		s.Particles = NewParticles(w, h, e.Particles, s.rng)
	}
	if e.Has(LayerShapes) {
		s.Shapes = NewShapes(w, h, e.Shapes, s.rng)
	}
	if e.Has(LayerGrid) {
		s.Grid = NewGridLines(w, h, e.Grid, s.rng)
	}
	if e.Has(LayerRibbons) {
		s.Ribbons = NewRibbons(w, h, e.Ribbons, s.rng)
	}
	if e.Has(LayerWaves) {
		s.Waves = NewWaveBands(e.Waves)
	}
}

// SetPointer records the latest cursor position. Last write wins.
func (s *Scene) SetPointer(x, y float64) {
	s.Pointer = Pointer{X: x, Y: y, Active: true}
}

// Step runs exactly one tick: advance the clock, paint the background, then
// advance and render every entity layer by layer, back to front.
func (s *Scene) Step(c Canvas) {
	s.Clock++
	w, h := float64(s.Width), float64(s.Height)
	e := &s.Effects

	DrawBackground(c, w, h, e.Background, s.Clock)

	for _, layer := range e.Layers {
		switch layer {
		case LayerWaves:
			for i := range s.Waves {
				DrawWave(c, &s.Waves[i], w, h, s.Clock)
			}
		case LayerGrid:
			for i := range s.Grid {
				DrawGridLine(c, &s.Grid[i], w, h, e.Grid, s.Clock)
			}
		case LayerRibbons:
			for i := range s.Ribbons {
				rb := &s.Ribbons[i]
				rb.Update(e.Ribbons)
				DrawRibbon(c, rb, e.Ribbons)
			}
		case LayerShapes:
			for i := range s.Shapes {
				sh := &s.Shapes[i]
				sh.Update(w, h, s.Clock, e.Shapes)
				DrawShape(c, sh, e.Shapes, s.Clock)
			}
		case LayerParticles:
			for i := range s.Particles {
				p := &s.Particles[i]
				p.Update(w, h, e.Particles, s.Pointer)
				DrawParticle(c, p, e.Particles, s.Clock)
			}
		}
	}
}

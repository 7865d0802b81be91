package scene

import (
	"image/color"
	"math"
	"sort"

	"github.com/iburimskiy/backdrop/internal/config"
)

// Layer names one effect family in the back-to-front draw order.
type Layer int

const (
	LayerWaves Layer = iota
	LayerGrid
	LayerRibbons
	LayerShapes
	LayerParticles
)

func (l Layer) String() string {
	switch l {
	case LayerWaves:
		return "waves"
	case LayerGrid:
		return "grid"
	case LayerRibbons:
		return "ribbons"
	case LayerShapes:
		return "shapes"
	case LayerParticles:
		return "particles"
	}
	return "unknown"
}

type BackgroundMode int

const (
	// BackgroundGradient repaints the whole surface every frame.
	BackgroundGradient BackgroundMode = iota
	// BackgroundFade lays a translucent overlay so earlier frames leave trails.
	BackgroundFade
)

type BackgroundStyle struct {
	Mode BackgroundMode
	Fade color.NRGBA
	// Rings is how many concentric discs approximate the radial gradient.
	Rings int
}

type ParticleStyle struct {
	Count              int
	Speed              float64
	MinRadius          float64
	MaxRadius          float64
	MinAlpha, MaxAlpha float64
	PhaseStep          float64
	// Opacity modulation: PulseBase + PulseDepth*sin(clock*PulseRate + phase).
	PulseRate  float64
	PulseBase  float64
	PulseDepth float64
	Glow       bool
	Palette    Palette

	PointerRadius float64
	PointerPull   float64
	MaxSpeed      float64
}

type ShapeStyle struct {
	Count     int
	Kinds     []ShapeKind
	MinSize   float64
	MaxSize   float64
	SpinSpeed float64
	Drift     float64
	// FlowDrift adds a clock-driven sinusoidal drift of this magnitude.
	FlowDrift float64
	Alpha     float64
	// AlphaWobble modulates opacity by position and clock.
	AlphaWobble float64
	Margin      float64
	LineWidth   float64
	Palette     Palette
	// KindColors overrides Palette for specific kinds.
	KindColors map[ShapeKind]color.NRGBA
	Glow       bool
}

type GridStyle struct {
	Diagonal   bool
	Spacing    float64
	Alpha      float64
	PulseRate  float64
	PulseBase  float64
	PulseDepth float64
	FlowRate   float64
	FlowFreq   float64
	FlowBase   float64
	FlowDepth  float64
	LineWidth  float64
	Palette    Palette
}

type RibbonStyle struct {
	Count        int
	Segments     int
	MinAmplitude float64
	MaxAmplitude float64
	Alpha        float64
	WaveStep     float64
	Spatial      float64
	Width        float64
	Glow         bool
	Palette      Palette
}

// EffectSet is one complete variant: its constants and fixed layering order.
type EffectSet struct {
	Name        string
	Description string
	Background  BackgroundStyle
	Layers      []Layer
	Particles   ParticleStyle
	Shapes      ShapeStyle
	Grid        GridStyle
	Ribbons     RibbonStyle
	Waves       []WaveBand
}

// Has reports whether the set draws the given layer.
func (e EffectSet) Has(l Layer) bool {
	for _, layer := range e.Layers {
		if layer == l {
			return true
		}
	}
	return false
}

var (
	warmPalette   = MustPalette("#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57")
	accentPalette = MustPalette("#FF9FF3", "#54A0FF", "#5F27CD", "#00D2D3", "#FF9F43")
	neonPalette   = MustPalette("#00ffff", "#ff1493", "#ffd700", "#9400d3", "#00ff7f")
)

func pointerDefaults(s ParticleStyle) ParticleStyle {
	s.PointerRadius = config.PointerRadius
	s.PointerPull = config.PointerPull
	s.MaxSpeed = config.MaxSpeed
	return s
}

// Gradient repaints a hue-shifting radial gradient each frame, with
// outlined polygons, pulsing particles and energy waves.
func Gradient() EffectSet {
	waves := make([]WaveBand, 0, len(warmPalette))
	for i, c := range warmPalette {
		fi := float64(i)
		waves = append(waves, WaveBand{
			Base:  0.7 + fi*0.05,
			Color: c,
			Alpha: 0.3,
			Width: 3,
			Components: []WaveComponent{
				{Amplitude: 40, Speed: 3, Frequency: 0.008, Phase: fi * 100 * 0.008},
				{Amplitude: 25, Speed: 2, Frequency: 0.012, Phase: fi * 150 * 0.012},
			},
		})
	}
	return EffectSet{
		Name:        "gradient",
		Description: "radial gradient, outlined polygons, pulsing particles, energy waves",
		Background:  BackgroundStyle{Mode: BackgroundGradient, Rings: 48},
		Layers:      []Layer{LayerShapes, LayerParticles, LayerWaves},
		Particles: pointerDefaults(ParticleStyle{
			Count:      80,
			Speed:      0.4,
			MinRadius:  2,
			MaxRadius:  6,
			MinAlpha:   0.2,
			MaxAlpha:   1,
			PhaseStep:  0.03,
			PulseBase:  0.7,
			PulseDepth: 0.3,
			Palette:    warmPalette,
		}),
		Shapes: ShapeStyle{
			Count:       12,
			Kinds:       []ShapeKind{Triangle, Square, Hexagon},
			MinSize:     20,
			MaxSize:     60,
			SpinSpeed:   0.01,
			FlowDrift:   0.3,
			Alpha:       0.1,
			AlphaWobble: 0.05,
			Margin:      config.ShapeMargin,
			LineWidth:   2,
			Palette:     accentPalette,
		},
		Waves: waves,
	}
}

// Trails fades previous frames, layering neon waves, a pulsing grid,
// ribbons, wireframe solids and pointer-reactive particles.
func Trails() EffectSet {
	waves := make([]WaveBand, 0, 3)
	for i := 0; i < 3; i++ {
		fi := float64(i)
		waves = append(waves, WaveBand{
			Base:  0.7,
			Color: neonPalette[i],
			Alpha: 0.3,
			Width: 2,
			Components: []WaveComponent{
				{Amplitude: 80, Speed: 2, Frequency: 0.01, Phase: fi * math.Pi * 0.5},
				{Amplitude: 40, Speed: 1.5, Frequency: 0.005, Phase: fi * math.Pi * 0.3},
			},
		})
	}
	return EffectSet{
		Name:        "trails",
		Description: "fading trails, neon grid, ribbons, wireframe solids, pointer-reactive particles",
		Background: BackgroundStyle{
			Mode: BackgroundFade,
			Fade: color.NRGBA{R: 10, G: 10, B: 10, A: 13},
		},
		Layers: []Layer{LayerWaves, LayerGrid, LayerRibbons, LayerShapes, LayerParticles},
		Particles: pointerDefaults(ParticleStyle{
			Count:      100,
			Speed:      0.25,
			MinRadius:  1,
			MaxRadius:  4,
			MinAlpha:   0.2,
			MaxAlpha:   1,
			PhaseStep:  0.01,
			PulseRate:  0.005,
			PulseBase:  0.5,
			PulseDepth: 0.5,
			Glow:       true,
			Palette:    neonPalette,
		}),
		Shapes: ShapeStyle{
			Count:     6,
			Kinds:     []ShapeKind{Sphere, Cube, Origami},
			MinSize:   30,
			MaxSize:   90,
			SpinSpeed: 0.01,
			Drift:     0.15,
			Alpha:     0.3,
			Margin:    config.ShapeMargin,
			LineWidth: 1.5,
			Palette:   neonPalette,
			KindColors: map[ShapeKind]color.NRGBA{
				Sphere:  neonPalette[1],
				Cube:    neonPalette[0],
				Origami: neonPalette[2],
			},
			Glow: true,
		},
		Grid: GridStyle{
			Spacing:    80,
			Alpha:      0.1,
			PulseRate:  0.003,
			PulseBase:  0.5,
			PulseDepth: 0.5,
			FlowBase:   1,
			LineWidth:  1,
			Palette:    neonPalette[:1],
		},
		Ribbons: RibbonStyle{
			Count:        3,
			Segments:     20,
			MinAmplitude: 50,
			MaxAmplitude: 100,
			Alpha:        0.15,
			WaveStep:     0.02,
			Spatial:      0.3,
			Width:        3,
			Glow:         true,
			Palette:      neonPalette,
		},
		Waves: waves,
	}
}

// Diagonal fades previous frames over a flowing diagonal lattice with
// drifting dots and a cluster of waves near the bottom edge.
func Diagonal() EffectSet {
	bases := []float64{0.7, 0.75, 0.8, 0.85, 0.9}
	waves := make([]WaveBand, 0, len(neonPalette))
	for i, c := range neonPalette {
		fi := float64(i)
		waves = append(waves, WaveBand{
			Base:  bases[i],
			Color: c,
			Alpha: 0.4,
			Width: 2,
			Components: []WaveComponent{
				{Amplitude: 30, Speed: 0.8, Frequency: 0.01, Phase: fi * 50 * 0.01},
				{Amplitude: 20, Speed: 1.2, Frequency: 0.005, Phase: fi * 80 * 0.005},
			},
		})
	}
	return EffectSet{
		Name:        "diagonal",
		Description: "fading trails, flowing diagonal lattice, drifting dots, bottom waves",
		Background: BackgroundStyle{
			Mode: BackgroundFade,
			Fade: color.NRGBA{R: 5, G: 5, B: 10, A: 26},
		},
		Layers: []Layer{LayerGrid, LayerParticles, LayerWaves},
		Particles: pointerDefaults(ParticleStyle{
			Count:      60,
			Speed:      0.4,
			MinRadius:  2,
			MaxRadius:  6,
			MinAlpha:   0.3,
			MaxAlpha:   1,
			PhaseStep:  0.05,
			PulseBase:  0.7,
			PulseDepth: 0.3,
			Palette:    neonPalette,
		}),
		Grid: GridStyle{
			Diagonal:   true,
			Spacing:    120,
			Alpha:      0.08,
			PulseRate:  0.4,
			PulseBase:  0.6,
			PulseDepth: 0.4,
			FlowRate:   0.8,
			FlowFreq:   0.008,
			FlowBase:   0.7,
			FlowDepth:  0.3,
			LineWidth:  1,
			Palette:    neonPalette[:3],
		},
		Waves: waves,
	}
}

var variants = map[string]func() EffectSet{
	"gradient": Gradient,
	"trails":   Trails,
	"diagonal": Diagonal,
}

// Lookup returns a fresh copy of the named effect set.
func Lookup(name string) (EffectSet, bool) {
	f, ok := variants[name]
	if !ok {
		return EffectSet{}, false
	}
	return f(), true
}

// Variants lists the known effect set names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

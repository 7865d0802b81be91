package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/backdrop/internal/backdrop"
	"github.com/iburimskiy/backdrop/internal/config"
	"github.com/iburimskiy/backdrop/internal/scene"
)

// Game hosts a backdrop in an ebiten window. Ebiten calls Layout, Update
// and Draw from one goroutine, so listener dispatch needs no locking.
type Game struct {
	controller *backdrop.Controller
	queue      backdrop.FrameQueue

	screen *canvas

	viewW, viewH int
	surfW, surfH int

	nextListener int
	resizeFns    map[int]func(w, h int)
	pointerFns   map[int]func(x, y float64)

	cursorX, cursorY int
	cursorKnown      bool

	prevKey map[ebiten.Key]bool
}

func New(settings config.Settings, effects scene.EffectSet) *Game {
	rng := scene.NewRand()
	if settings.Seed != 0 {
		rng = scene.NewSeededRand(settings.Seed)
	}
	g := &Game{
		viewW:      settings.Width,
		viewH:      settings.Height,
		resizeFns:  map[int]func(w, h int){},
		pointerFns: map[int]func(x, y float64){},
		prevKey:    map[ebiten.Key]bool{},
		screen:     &canvas{},
	}
	g.controller = backdrop.NewController(g, scene.New(effects, rng))
	return g
}

func (g *Game) Update() error {
	if !g.controller.Mounted() {
		g.controller.Mount()
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorKnown || x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY, g.cursorKnown = x, y, true
		for _, fn := range g.pointerFns {
			fn(float64(x), float64(y))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.dst = screen
	g.queue.Flush()
	g.screen.dst = nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		for _, fn := range g.resizeFns {
			fn(outsideWidth, outsideHeight)
		}
	}
	if g.surfW <= 0 || g.surfH <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.surfW, g.surfH
}

func (g *Game) ViewportSize() (int, int) { return g.viewW, g.viewH }

func (g *Game) ResizeSurface(w, h int) {
	g.surfW, g.surfH = w, h
}

// Surface is only available while ebiten is inside Draw.
func (g *Game) Surface() (scene.Canvas, bool) {
	if g.screen.dst == nil {
		return nil, false
	}
	return g.screen, true
}

func (g *Game) RequestFrame(fn func()) backdrop.FrameID { return g.queue.Request(fn) }

func (g *Game) CancelFrame(id backdrop.FrameID) { g.queue.Cancel(id) }

func (g *Game) OnResize(fn func(w, h int)) func() {
	g.nextListener++
	id := g.nextListener
	g.resizeFns[id] = fn
	return func() { delete(g.resizeFns, id) }
}

func (g *Game) OnPointerMove(fn func(x, y float64)) func() {
	g.nextListener++
	id := g.nextListener
	g.pointerFns[id] = fn
	return func() { delete(g.pointerFns, id) }
}

// Close tears the backdrop down; no frame draws after it returns.
func (g *Game) Close() {
	g.controller.Unmount()
}

// Run opens the window and blocks until it is closed or Esc/Q is pressed.
func Run(settings config.Settings, effects scene.EffectSet) error {
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(settings.TPS)
	// Fade variants rely on the previous frame staying on screen.
	ebiten.SetScreenClearedEveryFrame(effects.Background.Mode != scene.BackgroundFade)

	g := New(settings, effects)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run backdrop window")
	}
	return nil
}

package backdrop

import (
	"log"
	"math"

	"github.com/iburimskiy/backdrop/internal/config"
	"github.com/iburimskiy/backdrop/internal/scene"
)

// Controller owns the scene for one mount: it populates it for the viewport,
// regenerates it on every resize, feeds it pointer positions and runs the
// frame driver until Unmount.
type Controller struct {
	host   Host
	scene  *scene.Scene
	driver *Driver

	mounted bool
	detach  []func()
}

func NewController(host Host, sc *scene.Scene) *Controller {
	return &Controller{
		host:   host,
		scene:  sc,
		driver: NewDriver(host, sc),
	}
}

func (c *Controller) Scene() *scene.Scene { return c.scene }

func (c *Controller) Driver() *Driver { return c.driver }

func (c *Controller) Mounted() bool { return c.mounted }

func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true

	w, h := c.host.ViewportSize()
	c.regenerate(w, h)
	log.Printf("Mounted %s backdrop at %dx%d", c.scene.Effects.Name, w, h)

	c.detach = append(c.detach,
		c.host.OnResize(c.handleResize),
		c.host.OnPointerMove(c.handlePointer),
	)
	c.driver.Start()
}

// Unmount stops the frame loop and detaches every listener. No drawing or
// handler work happens after it returns.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.driver.Stop()
	for _, detach := range c.detach {
		detach()
	}
	c.detach = nil
	log.Printf("Unmounted backdrop after %d frames", c.driver.Rendered())
}

func (c *Controller) handleResize(w, h int) {
	if !c.mounted {
		return
	}
	c.regenerate(w, h)
	log.Printf("Viewport resized to %dx%d, regenerated scene", w, h)
}

func (c *Controller) regenerate(w, h int) {
	c.host.ResizeSurface(w, h)
	c.scene.Populate(w, h)
}

func (c *Controller) handlePointer(x, y float64) {
	if !c.mounted {
		return
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	c.scene.SetPointer(clampPointer(x), clampPointer(y))
}

func clampPointer(v float64) float64 {
	return math.Max(-config.PointerLimit, math.Min(config.PointerLimit, v))
}

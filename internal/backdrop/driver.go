package backdrop

import "github.com/iburimskiy/backdrop/internal/scene"

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Driver runs one scene tick per host frame and keeps exactly one frame
// scheduled while running.
type Driver struct {
	host  Host
	scene *scene.Scene

	state State
	frame FrameID
	// run identifies the current Start; callbacks from an older run are stale.
	run uint64

	rendered uint64
	skipped  uint64
}

func NewDriver(host Host, sc *scene.Scene) *Driver {
	return &Driver{host: host, scene: sc}
}

func (d *Driver) State() State { return d.state }

// Rendered counts frames that reached the surface.
func (d *Driver) Rendered() uint64 { return d.rendered }

// Skipped counts frames aborted because no surface was available.
func (d *Driver) Skipped() uint64 { return d.skipped }

func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.state = Running
	d.run++
	d.schedule()
}

// Stop cancels the pending frame. A callback that still fires afterwards
// returns without drawing.
func (d *Driver) Stop() {
	if d.state == Idle {
		return
	}
	d.state = Idle
	d.host.CancelFrame(d.frame)
	d.frame = 0
}

func (d *Driver) schedule() {
	run := d.run
	d.frame = d.host.RequestFrame(func() { d.tick(run) })
}

func (d *Driver) tick(run uint64) {
	if d.state != Running || run != d.run {
		return
	}

	if surface, ok := d.host.Surface(); ok {
		d.scene.Step(surface)
		d.rendered++
	} else {
		d.skipped++
	}

	d.schedule()
}

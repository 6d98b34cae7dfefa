package cube

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/math3d"
)

var logger = log.WithFields(log.Fields{
	"pkg": "cube",
})

type Status int

const (
	Running Status = iota
	Stopped
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is shared between components each frame. Orientation sources write
// to it in their Tick; the renderer reads it afterwards.
type State struct {
	Orientation math3d.EulerAngles

	// Components can set this to true to indicate that the viewer should stop
	// after the current frame.
	Shutdown bool

	// Incremented after each frame is presented.
	Frame int
}

type Component interface {
	Boot() error

	// Tick is called once per frame, before the frame is drawn. Returning an
	// error stops the viewer.
	Tick(now time.Time, state *State) error
}

// Drawer draws a single frame.
type Drawer interface {
	Draw(ea math3d.EulerAngles) error
}

type Viewer struct {
	Components []Component
	Drawer     Drawer
	State      State

	status Status
}

// NewViewer creates a viewer which draws frames with d.
func NewViewer(d Drawer) *Viewer {
	return &Viewer{
		Components: []Component{},
		Drawer:     d,
		State: State{
			Orientation: math3d.IdentityOrientation,
		},
		status: Running,
	}
}

// Add registers a component to receive ticks every frame. Components are
// ticked in the order in which they were added.
func (v *Viewer) Add(c Component) {
	v.Components = append(v.Components, c)
}

// Boot calls Boot on each component.
func (v *Viewer) Boot() error {
	for _, c := range v.Components {
		err := c.Boot()
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *Viewer) Status() Status {
	return v.status
}

// Tick runs a single frame: update the orientation from every component,
// normalize it, draw it, then check whether anyone asked to stop. Once the
// viewer has stopped, Tick does nothing.
func (v *Viewer) Tick(now time.Time) error {
	if v.status == Stopped {
		return nil
	}

	for _, c := range v.Components {
		err := c.Tick(now, &v.State)
		if err != nil {
			v.stop()
			return err
		}
	}

	v.State.Orientation = v.State.Orientation.Normalize()

	err := v.Drawer.Draw(v.State.Orientation)
	if err != nil {
		v.stop()
		return fmt.Errorf("%s (while drawing frame %d)", err, v.State.Frame)
	}

	v.State.Frame++

	if v.State.Shutdown {
		v.stop()
	}

	return nil
}

// Run ticks the viewer at the given interval until it stops, or until ctx is
// cancelled. A cancelled context is a clean stop, and returns nil.
func (v *Viewer) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for v.status == Running {
		select {
		case <-ctx.Done():
			logger.Infof("context done, stopping")
			v.stop()

		case now := <-t.C:
			err := v.Tick(now)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *Viewer) stop() {
	if v.status != Stopped {
		logger.Infof("stopping after %d frames at %s", v.State.Frame, v.State.Orientation)
	}

	v.status = Stopped
}

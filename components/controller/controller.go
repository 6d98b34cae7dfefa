// Package controller rotates the orientation with the sticks of a gamepad.
// The pad's buttons are also keyboard.Keys, so reset, roll, quit and print go
// through the same priority chain as the keyboard.
package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/holoplot/go-evdev"
	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
)

const (

	// The default number of degrees to rotate per frame when a stick is fully
	// pressed.
	DefaultRotationSpeed = 1.5
)

var logger = log.WithFields(log.Fields{
	"pkg": "controller",
})

// Open opens the evdev node at path (e.g. /dev/input/event0) and returns a
// pad reading from it, and the device to close when done.
func Open(path string) (*Pad, io.Closer, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s (while opening gamepad %s)", err, path)
	}

	ranges, err := dev.AbsInfos()
	if err != nil {
		logger.Warnf("%s (while reading axis ranges of %s); assuming 0-255", err, path)
		ranges = nil
	}

	return NewPad(dev, ranges), dev, nil
}

// Controller is a component which applies the pad's sticks to the orientation
// every frame: left stick X to heading, left stick Y to pitch, right stick X
// to bank.
type Controller struct {
	pad   *Pad
	speed float64
}

func New(pad *Pad, speed float64) *Controller {
	return &Controller{
		pad:   pad,
		speed: speed,
	}
}

func (c *Controller) Boot() error {
	logger.Infof("controller: %.2f°/frame at full stick", c.speed)
	go c.pad.Run()
	return nil
}

func (c *Controller) Tick(now time.Time, state *cube.State) error {
	if err := c.pad.Err(); err != nil {
		return fmt.Errorf("%w (while reading gamepad)", err)
	}

	left, right := c.pad.Sticks()

	// Rotate with the sticks. Pushing the left stick up pitches forward.
	if left.X != 0 {
		state.Orientation.Heading += (float64(left.X) / 127.0) * c.speed
	}

	if left.Y != 0 {
		state.Orientation.Pitch += (float64(-left.Y) / 127.0) * c.speed
	}

	if right.X != 0 {
		state.Orientation.Bank += (float64(right.X) / 127.0) * c.speed
	}

	return nil
}

package keyboard

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
	"github.com/adammck/cube/math3d"
)

const (

	// The default number of degrees to rotate per frame while a key is held.
	DefaultRotateSpeed = 1.0
)

var logger = log.WithFields(log.Fields{
	"pkg": "keyboard",
})

type binding struct {
	action Action
	effect func(ea *math3d.EulerAngles, speed float64)
}

// Priority order. Only the first held action in this list has any effect in a
// given frame, so holding two keys doesn't combine them.
var bindings = []binding{
	{Reset, func(ea *math3d.EulerAngles, _ float64) { *ea = math3d.IdentityOrientation }},
	{YawUp, func(ea *math3d.EulerAngles, s float64) { ea.Heading += s }},
	{YawDown, func(ea *math3d.EulerAngles, s float64) { ea.Heading -= s }},
	{PitchUp, func(ea *math3d.EulerAngles, s float64) { ea.Pitch += s }},
	{PitchDown, func(ea *math3d.EulerAngles, s float64) { ea.Pitch -= s }},
	{RollDown, func(ea *math3d.EulerAngles, s float64) { ea.Bank -= s }},
	{RollUp, func(ea *math3d.EulerAngles, s float64) { ea.Bank += s }},
}

// Keyboard rotates the orientation while keys are held.
type Keyboard struct {
	keys     Keys
	speed    float64
	bindings []binding
	print    Latch
}

func New(keys Keys, speed float64) *Keyboard {
	return &Keyboard{
		keys:     keys,
		speed:    speed,
		bindings: bindings,
	}
}

// NewQuitter returns a keyboard which only responds to Quit and Print, for
// when something else owns the orientation.
func NewQuitter(keys Keys) *Keyboard {
	return &Keyboard{
		keys: keys,
	}
}

func (k *Keyboard) Boot() error {
	logger.Infof("keyboard: %d bindings, %.2f°/frame", len(k.bindings), k.speed)
	return nil
}

func (k *Keyboard) Tick(now time.Time, state *cube.State) error {
	for _, b := range k.bindings {
		if k.keys.Pressed(b.action) {
			b.effect(&state.Orientation, k.speed)
			break
		}
	}

	if k.print.Run(k.keys.Pressed(Print)) {
		logger.Infof("orientation=%s frame=%d", state.Orientation, state.Frame)
	}

	// At any time, pressing quit stops the viewer.
	if k.keys.Pressed(Quit) {
		logger.Infof("pressed %s, shutting down", Quit)
		state.Shutdown = true
	}

	return nil
}

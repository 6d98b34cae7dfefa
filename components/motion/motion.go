// Package motion generates a smoothly changing orientation, for demos and for
// simulating an IMU without hardware.
package motion

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
	"github.com/adammck/cube/math3d"
)

var logger = log.WithFields(log.Fields{
	"pkg": "motion",
})

// Wobble swings X and Y back and forth, and spins slowly around Z.
type Wobble struct {
	start time.Time
}

func New(start time.Time) *Wobble {
	return &Wobble{start: start}
}

// At returns the orientation at the given time.
func (w *Wobble) At(now time.Time) math3d.EulerAngles {
	elapsed := now.Sub(w.start).Seconds()

	return math3d.MakeEulerAngles(
		40*math.Sin(elapsed),
		30*math.Cos(elapsed*0.7),
		math.Mod(elapsed*30, 360),
	)
}

func (w *Wobble) Boot() error {
	logger.Infof("wobble from %s", w.start.Format(time.RFC3339))
	return nil
}

func (w *Wobble) Tick(now time.Time, state *cube.State) error {
	state.Orientation = w.At(now)
	return nil
}

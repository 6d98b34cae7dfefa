package stats

import (
	"time"

	"github.com/adammck/cube"
)

// Limit asks the viewer to stop once Max frames have been drawn. Zero means
// no limit.
type Limit struct {
	Max int
}

func (l *Limit) Boot() error {
	if l.Max > 0 {
		logger.Infof("stopping after %d frames", l.Max)
	}

	return nil
}

// Tick runs before the frame is drawn, so the frame about to be drawn is
// number state.Frame+1.
func (l *Limit) Tick(now time.Time, state *cube.State) error {
	if l.Max > 0 && state.Frame+1 >= l.Max {
		state.Shutdown = true
	}

	return nil
}

package stats

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
)

const (

	// The default number of seconds between reports.
	DefaultInterval = 5 * time.Second
)

var logger = log.WithFields(log.Fields{
	"pkg": "stats",
})

// FrameRate logs the achieved frame rate every interval. It never touches the
// orientation.
type FrameRate struct {
	interval time.Duration
	t        time.Time
	frame    int

	// The most recently measured rate, in frames per second.
	Last float64
}

func New(interval time.Duration) *FrameRate {
	return &FrameRate{
		interval: interval,
	}
}

func (fr *FrameRate) Boot() error {
	return nil
}

func (fr *FrameRate) Tick(now time.Time, state *cube.State) error {
	if fr.t.IsZero() {
		fr.t = now
		fr.frame = state.Frame
		return nil
	}

	if fr.NeedsReport(now) {
		fr.Report(now, state.Frame)
	}

	return nil
}

// NeedsReport returns true if it's been at least one interval since the last
// report.
func (fr *FrameRate) NeedsReport(now time.Time) bool {
	return now.Sub(fr.t) >= fr.interval
}

// Report logs the frame rate since the last report, and starts a new period.
func (fr *FrameRate) Report(now time.Time, frame int) {
	elapsed := now.Sub(fr.t).Seconds()
	if elapsed > 0 {
		fr.Last = float64(frame-fr.frame) / elapsed
	}

	logger.Infof("fps: %.1f", fr.Last)
	fr.t = now
	fr.frame = frame
}

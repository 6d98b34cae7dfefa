package display

import (
	"image/color"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fake/display",
})

type Line struct {
	X1, Y1, X2, Y2 float64
	Color          color.RGBA
}

// FakeDisplay records the lines of the frame being drawn, and keeps the last
// presented frame around for inspection.
type FakeDisplay struct {
	Pending   []Line
	Frame     []Line
	Cleared   color.RGBA
	Presented int
	Closed    bool

	// Returned from the next Present, if set.
	Err error
}

func New() *FakeDisplay {
	return &FakeDisplay{}
}

func (d *FakeDisplay) Clear(c color.RGBA) {
	d.Cleared = c
	d.Pending = d.Pending[:0]
}

func (d *FakeDisplay) DrawLine(x1, y1, x2, y2 float64, c color.RGBA) {
	d.Pending = append(d.Pending, Line{x1, y1, x2, y2, c})
}

func (d *FakeDisplay) Present() error {
	if d.Err != nil {
		return d.Err
	}

	d.Frame = append(d.Frame[:0], d.Pending...)
	d.Presented++
	logger.Debugf("present #%d: %d lines", d.Presented, len(d.Frame))
	return nil
}

func (d *FakeDisplay) Close() error {
	d.Closed = true
	return nil
}

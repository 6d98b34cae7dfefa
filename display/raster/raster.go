// Package raster draws frames into an in-memory image, for headless runs and
// snapshots. Drawing happens at a multiple of the output size, and each
// presented frame is scaled down to smooth the lines.
package raster

import (
	"image"
	"image/color"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/adammck/cube/render"
)

var logger = log.WithFields(log.Fields{
	"pkg": "raster",
})

type Display struct {
	ss    int
	img   *image.RGBA
	frame *image.RGBA

	// The number of frames presented so far.
	Frames int
}

// New returns a display of the given size in pixels. Lines are drawn at
// supersample times that size; values below 1 are treated as 1.
func New(width, height, supersample int) *Display {
	if supersample < 1 {
		supersample = 1
	}

	logger.Debugf("raster: %dx%d ss=%d", width, height, supersample)

	return &Display{
		ss:    supersample,
		img:   image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample)),
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (d *Display) Clear(c color.RGBA) {
	draw.Draw(d.img, d.img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// DrawLine plots a line roughly one output pixel wide. Anything outside the
// image is clipped.
func (d *Display) DrawLine(x1, y1, x2, y2 float64, c color.RGBA) {
	ss := float64(d.ss)
	b := d.img.Bounds()

	render.Walk(x1*ss, y1*ss, x2*ss, y2*ss, b, func(x, y int) {
		for dy := 0; dy < d.ss; dy++ {
			for dx := 0; dx < d.ss; dx++ {
				px, py := x+dx, y+dy
				if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
					continue
				}

				offset := d.img.PixOffset(px, py)
				d.img.Pix[offset] = c.R
				d.img.Pix[offset+1] = c.G
				d.img.Pix[offset+2] = c.B
				d.img.Pix[offset+3] = c.A
			}
		}
	})
}

func (d *Display) Present() error {
	if d.ss == 1 {
		copy(d.frame.Pix, d.img.Pix)
	} else {
		draw.CatmullRom.Scale(d.frame, d.frame.Bounds(), d.img, d.img.Bounds(), draw.Src, nil)
	}

	d.Frames++
	return nil
}

// Frame returns the most recently presented frame. It's overwritten by the
// next Present.
func (d *Display) Frame() *image.RGBA {
	return d.frame
}

func (d *Display) Close() error {
	logger.Debugf("closed after %d frames", d.Frames)
	return nil
}

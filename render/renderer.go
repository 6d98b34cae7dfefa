// Package render turns an orientation into draw calls: every vertex of each
// model is rotated, projected onto the XY plane, and mapped into screen space,
// then each edge is drawn as a line between its two mapped ends.
package render

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/math3d"
	"github.com/adammck/cube/model"
)

var logger = log.WithFields(log.Fields{
	"pkg": "render",
})

type Renderer struct {
	display   Display
	transform Transform
	models    []model.Model

	// Screen positions of the model currently being drawn. Reused between
	// models and frames.
	buf []math3d.Vector2
}

// New returns a renderer which draws the given models to the display. Every
// model is validated up front, so Draw never indexes out of range.
func New(d Display, t Transform, models ...model.Model) (*Renderer, error) {
	for _, m := range models {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%s (while creating renderer)", err)
		}
	}

	logger.Debugf("renderer: models=%d scale=%.2f offset=%.2f", len(models), t.Scale, t.Offset)

	return &Renderer{
		display:   d,
		transform: t,
		models:    models,
	}, nil
}

// Apply appends the screen position of each vertex to dst, rotating by rot
// then projecting and mapping through the transform.
func (t Transform) Apply(dst []math3d.Vector2, vertices []math3d.Vector3, rot math3d.Matrix33) []math3d.Vector2 {
	for _, v := range vertices {
		dst = append(dst, v.MultiplyByMatrix33(rot).Project().Map(t.Scale, t.Offset))
	}

	return dst
}

// Draw renders one complete frame at the given orientation: clear, draw every
// edge of every model, present. The models are always recomputed from their
// canonical vertices.
func (r *Renderer) Draw(ea math3d.EulerAngles) error {
	r.display.Clear(Black)
	rot := math3d.MakeRotation(ea)

	for _, m := range r.models {
		r.buf = r.transform.Apply(r.buf[:0], m.Vertices, rot)

		for _, e := range m.Edges {
			a, b := r.buf[e.A], r.buf[e.B]
			r.display.DrawLine(a.X, a.Y, b.X, b.Y, e.Color)
		}
	}

	return r.display.Present()
}

// Close closes the underlying display.
func (r *Renderer) Close() error {
	return r.display.Close()
}

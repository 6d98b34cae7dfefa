package render

import (
	"image"
	"math"
)

// Walk calls plot for each pixel on the line from (x1, y1) to (x2, y2) which
// falls inside r, by stepping along the longer axis one pixel at a time. The
// line is clipped to r first, so the work done is bounded by the size of r no
// matter how far away the ends are. Non-finite endpoints plot nothing.
func Walk(x1, y1, x2, y2 float64, r image.Rectangle, plot func(x, y int)) {
	for _, f := range []float64{x1, y1, x2, y2} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return
		}
	}

	x1, y1, x2, y2, ok := clip(x1, y1, x2, y2, r)
	if !ok {
		return
	}

	in := func(x, y int) {
		if image.Pt(x, y).In(r) {
			plot(x, y)
		}
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	if steps < 1 {
		in(int(math.Floor(x1)), int(math.Floor(y1)))
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := x1
	y := y1

	for i := 0; i <= int(steps); i++ {
		in(int(math.Floor(x)), int(math.Floor(y)))
		x += xInc
		y += yInc
	}
}

// clip trims the segment to the closed rectangle r (Liang-Barsky). It returns
// false if no part of the segment is inside.
func clip(x1, y1, x2, y2 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}

	dx := x2 - x1
	dy := y2 - y1

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		x1 - float64(r.Min.X),
		float64(r.Max.X) - x1,
		y1 - float64(r.Min.Y),
		float64(r.Max.Y) - y1,
	}

	t0, t1 := 0.0, 1.0

	for i := range p {
		if p[i] == 0 {

			// Parallel to this edge, and outside it.
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}

		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

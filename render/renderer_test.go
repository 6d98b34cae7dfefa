package render

import (
	"image"
	"testing"

	"github.com/adammck/cube/fake/display"
	"github.com/adammck/cube/math3d"
	"github.com/adammck/cube/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tr := Transform{Scale: 50, Offset: 100}
	rot := math3d.MakeRotation(math3d.IdentityOrientation)

	pts := tr.Apply(nil, model.Cube().Vertices, rot)
	require.Len(t, pts, 8)

	// Vertex 0 is (-1,-1,1).
	assert.Equal(t, math3d.Vector2{X: 50, Y: 50}, pts[0])
	assert.Equal(t, math3d.Vector2{X: 150, Y: 50}, pts[1])
	assert.Equal(t, math3d.Vector2{X: 150, Y: 150}, pts[2])

	// Front and back faces overlap exactly when looking straight down Z.
	for i := 0; i < 4; i++ {
		assert.Equal(t, pts[i], pts[i+4])
	}
}

func TestApplyRotated(t *testing.T) {
	tr := Transform{Scale: 50, Offset: 100}
	rot := math3d.MakeRotation(math3d.MakeEulerAngles(0, 0, 90))

	pts := tr.Apply(nil, model.Axes().Vertices, rot)
	require.Len(t, pts, 4)

	// The X marker swings onto +Y.
	assert.InDelta(t, 100, pts[1].X, 1e-9)
	assert.InDelta(t, 200, pts[1].Y, 1e-9)
}

func TestDraw(t *testing.T) {
	d := display.New()
	r, err := New(d, Transform{Scale: 50, Offset: 100}, model.Cube(), model.Axes())
	require.NoError(t, err)

	require.NoError(t, r.Draw(math3d.IdentityOrientation))
	assert.Equal(t, 1, d.Presented)
	assert.Equal(t, Black, d.Cleared)
	require.Len(t, d.Frame, 15)

	// Cube edges first, in model order.
	assert.Equal(t, display.Line{X1: 50, Y1: 50, X2: 150, Y2: 50, Color: model.White}, d.Frame[0])

	// Then the axes, from the center.
	for i, c := range []interface{}{model.Red, model.Green, model.Blue} {
		l := d.Frame[12+i]
		assert.Equal(t, c, l.Color)
		assert.Equal(t, 100.0, l.X1)
		assert.Equal(t, 100.0, l.Y1)
	}

	// Z points straight at the viewer, so its marker is a single point.
	assert.Equal(t, 100.0, d.Frame[14].X2)
	assert.Equal(t, 100.0, d.Frame[14].Y2)

	// Redrawing doesn't accumulate lines.
	require.NoError(t, r.Draw(math3d.MakeEulerAngles(10, 20, 30)))
	assert.Equal(t, 2, d.Presented)
	assert.Len(t, d.Frame, 15)
}

func TestNewRejectsBadModel(t *testing.T) {
	bad := model.Model{
		Name:     "bad",
		Vertices: []math3d.Vector3{{}},
		Edges:    []model.Edge{{A: 0, B: 1, Color: model.White}},
	}

	_, err := New(display.New(), Transform{Scale: 1}, bad)
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	type eg struct {
		x1, y1, x2, y2 float64
		exp            [][2]int
	}

	examples := []eg{
		{0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{0, 0, 0, -2, [][2]int{{0, 0}, {0, -1}, {0, -2}}},
		{0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{5.5, 5.5, 5.7, 5.2, [][2]int{{5, 5}}},
	}

	r := image.Rect(-10, -10, 10, 10)

	for i, x := range examples {
		var act [][2]int
		Walk(x.x1, x.y1, x.x2, x.y2, r, func(px, py int) {
			act = append(act, [2]int{px, py})
		})
		assert.Equal(t, x.exp, act, "example %d", i+1)
	}
}

func TestWalkClipped(t *testing.T) {
	type eg struct {
		x1, y1, x2, y2 float64
		min, max       int
	}

	r := image.Rect(0, 0, 10, 10)

	examples := []eg{

		// Far outside on both ends, crossing the target.
		{-1e8, 5, 1e8, 5, 9, 11},
		{5, -1e12, 5, 1e12, 9, 11},
		{-1e9, -1e9, 1e9, 1e9, 9, 11},

		// Partly inside.
		{-5, 2, 4, 2, 4, 5},

		// Entirely outside.
		{-1e8, -5, 1e8, -5, 0, 0},
		{20, 20, 30, 40, 0, 0},
		{-1e8, 20, 20, -1e8, 0, 0},
	}

	for i, x := range examples {
		calls := 0
		Walk(x.x1, x.y1, x.x2, x.y2, r, func(px, py int) {
			calls++
			assert.True(t, image.Pt(px, py).In(r), "example %d: (%d, %d)", i+1, px, py)
		})
		assert.GreaterOrEqual(t, calls, x.min, "example %d", i+1)
		assert.LessOrEqual(t, calls, x.max, "example %d", i+1)
	}

	calls := 0
	Walk(0, 0, 5, 5, image.Rectangle{}, func(int, int) { calls++ })
	assert.Equal(t, 0, calls)
}

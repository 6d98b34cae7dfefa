// Package model holds the fixed wireframes drawn by the viewer: a cube, and
// a triad marking the X, Y and Z axes.
package model

import (
	"fmt"
	"image/color"

	"github.com/adammck/cube/math3d"
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 255, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
)

// Edge is a line between two vertices, by index.
type Edge struct {
	A     int
	B     int
	Color color.RGBA
}

type Model struct {
	Name     string
	Vertices []math3d.Vector3
	Edges    []Edge
}

var (
	cubeVertices = [8]math3d.Vector3{
		{X: -1, Y: -1, Z: +1},
		{X: +1, Y: -1, Z: +1},
		{X: +1, Y: +1, Z: +1},
		{X: -1, Y: +1, Z: +1},
		{X: -1, Y: -1, Z: -1},
		{X: +1, Y: -1, Z: -1},
		{X: +1, Y: +1, Z: -1},
		{X: -1, Y: +1, Z: -1},
	}

	cubeEdges = [12]Edge{
		{0, 1, White},
		{0, 3, White},
		{0, 4, White},
		{1, 2, White},
		{1, 5, White},
		{2, 3, White},
		{2, 6, White},
		{3, 7, White},
		{4, 5, White},
		{4, 7, White},
		{5, 6, White},
		{6, 7, White},
	}

	// The origin, then one marker along each axis.
	axesVertices = [4]math3d.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}

	axesEdges = [3]Edge{
		{0, 1, Red},
		{0, 2, Green},
		{0, 3, Blue},
	}
)

// Cube returns the 2x2x2 cube centered on the origin. The returned slices
// share storage with every other call, and must not be modified.
func Cube() Model {
	return Model{
		Name:     "cube",
		Vertices: cubeVertices[:],
		Edges:    cubeEdges[:],
	}
}

// Axes returns the axis triad: a red line along X, green along Y and blue
// along Z, each two units long.
func Axes() Model {
	return Model{
		Name:     "axes",
		Vertices: axesVertices[:],
		Edges:    axesEdges[:],
	}
}

// Validate returns an error if any edge refers to a vertex which doesn't
// exist.
func (m Model) Validate() error {
	for i, e := range m.Edges {
		if e.A < 0 || e.A >= len(m.Vertices) || e.B < 0 || e.B >= len(m.Vertices) {
			return fmt.Errorf("%s: edge %d (%d-%d) out of range for %d vertices", m.Name, i, e.A, e.B, len(m.Vertices))
		}
	}

	return nil
}

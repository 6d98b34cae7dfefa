// Package window draws frames in an OpenGL window, and reads the keyboard
// state from it. All calls must be made from the main thread, which must be
// locked with runtime.LockOSThread before New.
package window

import (
	"fmt"
	"image/color"
	"unicode"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/components/keyboard"
)

var logger = log.WithFields(log.Fields{
	"pkg": "window",
})

// Each vertex is x, y, r, g, b.
const floatsPerVertex = 5

type Display struct {
	window *glfw.Window
	keymap keyboard.Keymap

	program uint32
	vao     uint32
	vbo     uint32

	// Line vertices for the frame being drawn.
	verts []float32
}

func New(width, height int, title string, keymap keyboard.Keymap) (*Display, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%s (while initializing glfw)", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%s (while creating window)", err)
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%s (while initializing gl)", err)
	}

	logger.Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)

	// Pixel coordinates, with the origin at the top left.
	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	d := &Display{
		window:  w,
		keymap:  keymap,
		program: program,
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	stride := int32(floatsPerVertex * 4)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	// High DPI displays have more pixels than the window has points.
	fbw, fbh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	return d, nil
}

func (d *Display) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	d.verts = d.verts[:0]
}

func (d *Display) DrawLine(x1, y1, x2, y2 float64, c color.RGBA) {
	r, g, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	d.verts = append(d.verts,
		float32(x1), float32(y1), r, g, b,
		float32(x2), float32(y2), r, g, b,
	)
}

func (d *Display) Present() error {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if len(d.verts) > 0 {
		gl.UseProgram(d.program)
		gl.BindVertexArray(d.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(d.verts)*4, gl.Ptr(d.verts), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(d.verts)/floatsPerVertex))
	}

	d.window.SwapBuffers()
	glfw.PollEvents()
	return nil
}

// Pressed returns true if the key mapped to the action is currently held.
// Closing the window counts as Quit.
func (d *Display) Pressed(a keyboard.Action) bool {
	if a == keyboard.Quit && d.window.ShouldClose() {
		return true
	}

	r, ok := d.keymap[a]
	if !ok {
		return false
	}

	return d.window.GetKey(keyOf(r)) == glfw.Press
}

// keyOf returns the glfw key for a rune. Letter and digit keys share their
// codes with uppercase ASCII.
func keyOf(r rune) glfw.Key {
	return glfw.Key(unicode.ToUpper(r))
}

func (d *Display) Close() error {
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.program)
	d.window.Destroy()
	glfw.Terminate()
	return nil
}

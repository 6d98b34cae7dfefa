// Package term draws frames in a terminal with tcell, one character cell per
// block of pixels, and reads the keyboard from the same screen.
package term

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/components/keyboard"
	"github.com/adammck/cube/render"
)

const (

	// Default number of pixels covered by each character cell. Cells are
	// about twice as tall as they are wide.
	DefaultCellWidth  = 4
	DefaultCellHeight = 8

	block = '█'
)

var logger = log.WithFields(log.Fields{
	"pkg": "term",
})

type Display struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	keymap keyboard.Keymap

	// Keys seen since the last frame was presented, by rune. Written by the
	// event goroutine.
	mu   sync.Mutex
	seen map[rune]bool
	quit bool
}

// New takes over the terminal.
func New(cellW, cellH float64, keymap keyboard.Keymap) (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%s (while creating screen)", err)
	}

	return NewWithScreen(s, cellW, cellH, keymap)
}

// NewWithScreen initializes s and draws to it.
func NewWithScreen(s tcell.Screen, cellW, cellH float64, keymap keyboard.Keymap) (*Display, error) {
	err := s.Init()
	if err != nil {
		return nil, fmt.Errorf("%s (while initializing screen)", err)
	}

	d := &Display{
		screen: s,
		cellW:  cellW,
		cellH:  cellH,
		keymap: keymap,
		seen:   map[rune]bool{},
	}

	go d.poll()
	return d, nil
}

// poll reads events until the screen is finalized.
func (d *Display) poll() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			d.mu.Lock()
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				d.quit = true
			case tcell.KeyRune:
				d.seen[unicode.ToLower(ev.Rune())] = true
			}
			d.mu.Unlock()

		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Pressed returns true if the key for the action was typed since the last
// frame. Terminals don't report key releases, so a held key shows up only as
// often as the terminal repeats it.
func (d *Display) Pressed(a keyboard.Action) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if a == keyboard.Quit && d.quit {
		return true
	}

	r, ok := d.keymap[a]
	if !ok {
		return false
	}

	return d.seen[r]
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}

func (d *Display) Clear(c color.RGBA) {
	d.screen.Fill(' ', tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
}

func (d *Display) DrawLine(x1, y1, x2, y2 float64, c color.RGBA) {
	w, h := d.screen.Size()
	st := style(c)

	render.Walk(x1/d.cellW, y1/d.cellH, x2/d.cellW, y2/d.cellH, image.Rect(0, 0, w, h), func(x, y int) {
		d.screen.SetContent(x, y, block, nil, st)
	})
}

func (d *Display) Present() error {
	d.screen.Show()

	d.mu.Lock()
	d.seen = map[rune]bool{}
	d.mu.Unlock()

	return nil
}

func (d *Display) Close() error {
	d.screen.Fini()
	return nil
}

package controller

import (
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/adammck/cube/components/keyboard"
)

const (

	// Stick deflection smaller than this (out of 127) reads as zero.
	deadZone = 8
)

// Stick positions run from -127 to 127 on each axis, with up being negative Y.
type Stick struct {
	X int
	Y int
}

// Device is the part of an evdev input device which a Pad reads.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Buttons which stand in for keyboard actions.
var buttons = map[keyboard.Action]evdev.EvCode{
	keyboard.Reset:    evdev.BTN_NORTH,
	keyboard.RollDown: evdev.BTN_TL,
	keyboard.RollUp:   evdev.BTN_TR,
	keyboard.Quit:     evdev.BTN_START,
	keyboard.Print:    evdev.BTN_SELECT,
}

// Pad tracks the state of a gamepad's sticks and buttons from the events its
// device sends. Run reads events on its own goroutine; everything else may be
// called from the loop.
type Pad struct {
	dev    Device
	ranges map[evdev.EvCode]evdev.AbsInfo

	mu    sync.Mutex
	left  Stick
	right Stick
	held  map[evdev.EvCode]bool
	err   error
}

// NewPad returns a pad reading from dev. ranges gives the raw range of each
// axis, as reported by the device; axes missing from it are assumed to run
// from 0 to 255, like a sixaxis.
func NewPad(dev Device, ranges map[evdev.EvCode]evdev.AbsInfo) *Pad {
	if ranges == nil {
		ranges = map[evdev.EvCode]evdev.AbsInfo{}
	}

	return &Pad{
		dev:    dev,
		ranges: ranges,
		held:   map[evdev.EvCode]bool{},
	}
}

// Run reads events until the device returns an error, which is kept for Err.
func (p *Pad) Run() {
	for {
		ev, err := p.dev.ReadOne()
		if err != nil {
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			return
		}

		p.apply(ev)
	}
}

func (p *Pad) apply(ev *evdev.InputEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Type {
	case evdev.EV_ABS:
		v := p.scale(ev.Code, ev.Value)

		switch ev.Code {
		case evdev.ABS_X:
			p.left.X = v
		case evdev.ABS_Y:
			p.left.Y = v
		case evdev.ABS_RX:
			p.right.X = v
		case evdev.ABS_RY:
			p.right.Y = v
		}

	case evdev.EV_KEY:

		// 0 is release, 1 press, 2 autorepeat.
		p.held[ev.Code] = ev.Value != 0
	}
}

// scale maps a raw axis value onto -127..127.
func (p *Pad) scale(code evdev.EvCode, raw int32) int {
	lo, hi := int32(0), int32(255)
	if info, ok := p.ranges[code]; ok && info.Maximum > info.Minimum {
		lo, hi = info.Minimum, info.Maximum
	}

	f := (float64(raw-lo)/float64(hi-lo))*254 - 127
	v := int(f + 0.5)
	if f < 0 {
		v = int(f - 0.5)
	}

	switch {
	case v > 127:
		v = 127
	case v < -127:
		v = -127
	case v > -deadZone && v < deadZone:
		v = 0
	}

	return v
}

// Sticks returns the current position of both sticks.
func (p *Pad) Sticks() (left Stick, right Stick) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.left, p.right
}

// Pressed returns true if the button standing in for the action is held. It
// makes the pad usable as keyboard.Keys.
func (p *Pad) Pressed(a keyboard.Action) bool {
	code, ok := buttons[a]
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.held[code]
}

// Err returns the error which stopped Run, if it has stopped.
func (p *Pad) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

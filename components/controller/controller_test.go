package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/cube"
	"github.com/adammck/cube/components/keyboard"
	"github.com/adammck/cube/fake/gamepad"
	"github.com/adammck/cube/math3d"
)

func TestScale(t *testing.T) {
	type eg struct {
		raw int32
		exp int
	}

	// Default range, like a sixaxis.
	p := NewPad(gamepad.New(), nil)

	for _, x := range []eg{{0, -127}, {255, 127}, {128, 0}, {124, 0}, {191, 63}, {64, -63}, {300, 127}, {-20, -127}} {
		assert.Equal(t, x.exp, p.scale(evdev.ABS_X, x.raw), "raw=%d", x.raw)
	}

	// Range reported by the device.
	p = NewPad(gamepad.New(), map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: {Minimum: -32768, Maximum: 32767},
	})

	for _, x := range []eg{{-32768, -127}, {32767, 127}, {0, 0}, {1000, 0}, {16384, 64}} {
		assert.Equal(t, x.exp, p.scale(evdev.ABS_X, x.raw), "raw=%d", x.raw)
	}
}

func TestApply(t *testing.T) {
	p := NewPad(gamepad.New(), nil)

	p.apply(gamepad.Abs(evdev.ABS_X, 255))
	p.apply(gamepad.Abs(evdev.ABS_Y, 0))
	p.apply(gamepad.Abs(evdev.ABS_RX, 0))
	p.apply(gamepad.Abs(evdev.ABS_RY, 128))
	p.apply(gamepad.Abs(evdev.ABS_Z, 255))

	left, right := p.Sticks()
	assert.Equal(t, Stick{X: 127, Y: -127}, left)
	assert.Equal(t, Stick{X: -127, Y: 0}, right)

	assert.False(t, p.Pressed(keyboard.Quit))
	p.apply(gamepad.Key(evdev.BTN_START, true))
	assert.True(t, p.Pressed(keyboard.Quit))
	p.apply(gamepad.Key(evdev.BTN_START, false))
	assert.False(t, p.Pressed(keyboard.Quit))

	// Unmapped actions are never pressed.
	p.apply(gamepad.Key(evdev.BTN_SOUTH, true))
	assert.False(t, p.Pressed(keyboard.YawUp))
}

func TestTick(t *testing.T) {
	type eg struct {
		events []*evdev.InputEvent
		exp    math3d.EulerAngles
	}

	start := math3d.MakeEulerAngles(10, 20, 30)

	examples := []eg{
		{nil, start},
		{[]*evdev.InputEvent{gamepad.Abs(evdev.ABS_X, 255)}, math3d.MakeEulerAngles(10, 22, 30)},
		{[]*evdev.InputEvent{gamepad.Abs(evdev.ABS_X, 0)}, math3d.MakeEulerAngles(10, 18, 30)},
		{[]*evdev.InputEvent{gamepad.Abs(evdev.ABS_Y, 0)}, math3d.MakeEulerAngles(12, 20, 30)},
		{[]*evdev.InputEvent{gamepad.Abs(evdev.ABS_RX, 255)}, math3d.MakeEulerAngles(10, 20, 32)},

		// The right stick's Y does nothing.
		{[]*evdev.InputEvent{gamepad.Abs(evdev.ABS_RY, 255)}, start},
	}

	for i, x := range examples {
		p := NewPad(gamepad.New(), nil)
		for _, ev := range x.events {
			p.apply(ev)
		}

		s := &cube.State{Orientation: start}
		require.NoError(t, New(p, 2).Tick(time.Now(), s))
		assert.InDelta(t, x.exp.Pitch, s.Orientation.Pitch, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.exp.Heading, s.Orientation.Heading, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.exp.Bank, s.Orientation.Bank, 1e-9, "example %d", i+1)
	}
}

// The pad's buttons drive the keyboard's priority chain: reset wins over the
// shoulder buttons, and start quits.
func TestButtons(t *testing.T) {
	p := NewPad(gamepad.New(), nil)
	k := keyboard.New(p, 1)
	s := &cube.State{Orientation: math3d.MakeEulerAngles(10, 20, 30)}

	p.apply(gamepad.Key(evdev.BTN_TR, true))
	require.NoError(t, k.Tick(time.Now(), s))
	assert.Equal(t, math3d.MakeEulerAngles(10, 20, 31), s.Orientation)

	p.apply(gamepad.Key(evdev.BTN_NORTH, true))
	require.NoError(t, k.Tick(time.Now(), s))
	assert.Equal(t, math3d.IdentityOrientation, s.Orientation)
	assert.False(t, s.Shutdown)

	p.apply(gamepad.Key(evdev.BTN_START, true))
	require.NoError(t, k.Tick(time.Now(), s))
	assert.True(t, s.Shutdown)
}

func TestRun(t *testing.T) {
	dev := gamepad.New(
		gamepad.Abs(evdev.ABS_X, 255),
		gamepad.Key(evdev.BTN_SELECT, true),
	)
	defer dev.Close()

	p := NewPad(dev, nil)
	c := New(p, 1)
	require.NoError(t, c.Boot())

	require.Eventually(t, func() bool {
		return p.Pressed(keyboard.Print)
	}, time.Second, time.Millisecond)

	left, _ := p.Sticks()
	assert.Equal(t, 127, left.X)

	s := &cube.State{}
	require.NoError(t, c.Tick(time.Now(), s))
	assert.Equal(t, 1.0, s.Orientation.Heading)
}

func TestRunError(t *testing.T) {
	unplugged := errors.New("no such device")
	dev := gamepad.New(gamepad.Abs(evdev.ABS_X, 255))
	dev.Err = unplugged

	c := New(NewPad(dev, nil), 1)
	require.NoError(t, c.Boot())

	s := &cube.State{}
	require.Eventually(t, func() bool {
		return c.Tick(time.Now(), s) != nil
	}, time.Second, time.Millisecond)

	err := c.Tick(time.Now(), s)
	assert.True(t, errors.Is(err, unplugged), "%v", err)
}

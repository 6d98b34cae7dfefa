package gamepad

import (
	"io"
	"sync"

	"github.com/holoplot/go-evdev"
)

// FakeDevice plays back scripted events, then blocks like an idle pad until
// Close is called (or returns Err straight away, if set).
type FakeDevice struct {
	mu     sync.Mutex
	events []*evdev.InputEvent
	done   chan struct{}
	once   sync.Once

	Err error
}

func New(events ...*evdev.InputEvent) *FakeDevice {
	return &FakeDevice{
		events: events,
		done:   make(chan struct{}),
	}
}

// Abs returns an axis event.
func Abs(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_ABS, Code: code, Value: value}
}

// Key returns a button event; down is a press, otherwise a release.
func Key(code evdev.EvCode, down bool) *evdev.InputEvent {
	ev := &evdev.InputEvent{Type: evdev.EV_KEY, Code: code}
	if down {
		ev.Value = 1
	}
	return ev
}

func (d *FakeDevice) ReadOne() (*evdev.InputEvent, error) {
	d.mu.Lock()
	if len(d.events) > 0 {
		ev := d.events[0]
		d.events = d.events[1:]
		d.mu.Unlock()
		return ev, nil
	}
	err := d.Err
	d.mu.Unlock()

	if err != nil {
		return nil, err
	}

	<-d.done
	return nil, io.EOF
}

func (d *FakeDevice) Close() error {
	d.once.Do(func() { close(d.done) })
	return nil
}

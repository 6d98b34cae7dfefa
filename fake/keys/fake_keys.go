package keys

import (
	"github.com/adammck/cube/components/keyboard"
)

// FakeKeys reports whichever actions the test says are held.
type FakeKeys struct {
	held map[keyboard.Action]bool
}

func New(held ...keyboard.Action) *FakeKeys {
	k := &FakeKeys{held: map[keyboard.Action]bool{}}
	k.Hold(held...)
	return k
}

func (k *FakeKeys) Hold(actions ...keyboard.Action) {
	for _, a := range actions {
		k.held[a] = true
	}
}

func (k *FakeKeys) Release(actions ...keyboard.Action) {
	for _, a := range actions {
		delete(k.held, a)
	}
}

func (k *FakeKeys) Pressed(a keyboard.Action) bool {
	return k.held[a]
}

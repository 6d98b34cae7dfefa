package keyboard

import (
	"fmt"
)

type Action int

const (
	Reset Action = iota
	YawUp
	YawDown
	PitchUp
	PitchDown
	RollDown
	RollUp
	Quit
	Print
)

var actionNames = map[Action]string{
	Reset:     "reset",
	YawUp:     "yaw+",
	YawDown:   "yaw-",
	PitchUp:   "pitch+",
	PitchDown: "pitch-",
	RollDown:  "roll-",
	RollUp:    "roll+",
	Quit:      "quit",
	Print:     "print",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction returns the action with the given name, as used in keymaps.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("unknown action: %q", s)
}

// Keymap maps each action to the physical key which triggers it. Keys are
// named by the character they type, lowercase.
type Keymap map[Action]rune

// DefaultKeymap is WASD plus Q/E for roll, R to reset.
func DefaultKeymap() Keymap {
	return Keymap{
		Reset:     'r',
		YawUp:     'a',
		YawDown:   'd',
		PitchUp:   'w',
		PitchDown: 's',
		RollDown:  'q',
		RollUp:    'e',
		Quit:      'x',
		Print:     'p',
	}
}

// Keys is anything which knows which actions are currently held down. It's
// polled once per frame.
type Keys interface {
	Pressed(a Action) bool
}

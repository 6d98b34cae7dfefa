// Package config holds the settings for a viewer run. Settings come from an
// optional JSON file, then command line flags override them, then anything
// still unset gets a default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/adammck/cube/components/imu"
	"github.com/adammck/cube/components/keyboard"
	"github.com/adammck/cube/components/stats"
	"github.com/adammck/cube/display/raster"
	"github.com/adammck/cube/display/term"
)

// Modes, which decide where the orientation comes from.
const (
	ModeKeyboard = "keyboard"
	ModeSerial   = "serial"
	ModeDemo     = "demo"
	ModeGamepad  = "gamepad"
)

// Displays, which decide where frames are drawn.
const (
	DisplayWindow = "window"
	DisplayTerm   = "term"
	DisplayImage  = "image"
)

type Config struct {
	Mode    string `json:"mode"`
	Display string `json:"display"`

	// The window is square, this many pixels on each side.
	Size int `json:"size"`

	// Model units to pixels. Offset defaults to the center of the window.
	Scale  float64  `json:"scale"`
	Offset *float64 `json:"offset"`

	// Frames per second. Zero picks a default for the mode.
	FPS int `json:"fps"`

	// Degrees per frame while a key is held.
	RotateSpeed float64 `json:"rotate_speed"`

	// Action name (e.g. "yaw+") to the key which triggers it.
	Keymap map[string]string `json:"keymap"`

	// Gamepad mode: the evdev node of the pad.
	Gamepad string `json:"gamepad"`

	// Serial mode. Port "-" reads stdin.
	Port          string `json:"port"`
	Baud          uint   `json:"baud"`
	ReadTimeoutMS int    `json:"read_timeout_ms"`

	// Image display.
	Supersample int    `json:"supersample"`
	Snapshot    string `json:"snapshot"`

	// Terminal display: pixels per character cell.
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`

	// Stop after this many frames. Zero runs until quit.
	Frames int `json:"frames"`

	// Seconds between frame rate reports. Zero disables them.
	StatsInterval int `json:"stats_interval"`
}

// Flags holds command line overrides. Zero values don't override anything.
// Scale is a pointer because zero is a valid scale.
type Flags struct {
	Mode     string
	Display  string
	Port     string
	Gamepad  string
	Baud     uint
	Size     int
	Scale    *float64
	FPS      int
	Snapshot string
	Frames   int
	Stats    int
}

// Default returns the settings used when nothing else is specified: a 200px
// window at 50px per unit, centered, rotated with WASD/QE.
func Default() Config {
	return Config{
		Mode:          ModeKeyboard,
		Display:       DisplayWindow,
		Size:          200,
		Scale:         50,
		RotateSpeed:   keyboard.DefaultRotateSpeed,
		Gamepad:       "/dev/input/event0",
		Port:          "/dev/ttyACM0",
		Baud:          9600,
		ReadTimeoutMS: int(imu.DefaultReadTimeout / time.Millisecond),
		Supersample:   2,
		CellWidth:     term.DefaultCellWidth,
		CellHeight:    term.DefaultCellHeight,
		StatsInterval: int(stats.DefaultInterval / time.Second),
	}
}

// Load reads a JSON config file on top of the defaults. Fields missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies the flag overrides and fills in derived defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Display != "" {
		c.Display = flags.Display
	}
	if flags.Port != "" {
		c.Port = flags.Port
	}
	if flags.Gamepad != "" {
		c.Gamepad = flags.Gamepad
	}
	if flags.Baud > 0 {
		c.Baud = flags.Baud
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Scale != nil {
		c.Scale = *flags.Scale
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Snapshot != "" {
		c.Snapshot = flags.Snapshot
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Stats > 0 {
		c.StatsInterval = flags.Stats
	}

	if c.Offset == nil {
		half := float64(c.Size) / 2
		c.Offset = &half
	}

	// The serial link delivers about ten lines per second; there's no point
	// drawing faster than that.
	if c.FPS == 0 {
		switch c.Mode {
		case ModeSerial:
			c.FPS = 10
		default:
			c.FPS = 60
		}
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeKeyboard, ModeSerial, ModeDemo, ModeGamepad:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}

	switch c.Display {
	case DisplayWindow, DisplayTerm, DisplayImage:
	default:
		return fmt.Errorf("config: unknown display %q", c.Display)
	}

	if c.Size <= 0 {
		return fmt.Errorf("config: size must be positive, got %d", c.Size)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("config: stats_interval must not be negative, got %d", c.StatsInterval)
	}
	if c.ReadTimeoutMS < 0 {
		return fmt.Errorf("config: read_timeout_ms must not be negative, got %d", c.ReadTimeoutMS)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	}

	if c.Snapshot != "" {
		if c.Display != DisplayImage {
			return fmt.Errorf("config: snapshot needs the %s display", DisplayImage)
		}
		if _, err := raster.FormatOf(c.Snapshot); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	if _, err := c.Keys(); err != nil {
		return err
	}

	return nil
}

// Interval returns the time between frames.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// Keys returns the default keymap with the configured overrides applied.
func (c *Config) Keys() (keyboard.Keymap, error) {
	km := keyboard.DefaultKeymap()

	for name, key := range c.Keymap {
		a, err := keyboard.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("config: keymap: %w", err)
		}

		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("config: keymap: %s: want a single character, got %q", name, key)
		}

		km[a] = r
	}

	return km, nil
}

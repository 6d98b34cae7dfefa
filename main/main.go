package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
	"github.com/adammck/cube/components/controller"
	"github.com/adammck/cube/components/keyboard"
	"github.com/adammck/cube/components/motion"
	"github.com/adammck/cube/components/stats"
	"github.com/adammck/cube/config"
	"github.com/adammck/cube/display/raster"
	"github.com/adammck/cube/display/term"
	"github.com/adammck/cube/display/window"
	"github.com/adammck/cube/model"
	"github.com/adammck/cube/render"
)

var (
	configPath  = flag.String("config", "", "path to a JSON config file")
	mode        = flag.String("mode", "", "where the orientation comes from: keyboard, serial, gamepad, or demo")
	displayName = flag.String("display", "", "where frames are drawn: window, term, or image")
	portName    = flag.String("port", "", "the serial port path, a file to replay, or - for stdin")
	baud        = flag.Uint("baud", 0, "the serial baud rate")
	gamepadPath = flag.String("gamepad", "", "the evdev node of the gamepad")
	size        = flag.Int("size", 0, "the window size in pixels")
	scale       = flag.Float64("scale", 0, "pixels per model unit (default 50; 0 and negative are allowed)")
	fps         = flag.Int("fps", 0, "frames per second")
	snapshot    = flag.String("snapshot", "", "write the last frame to this file (.png, .webp, or .tga)")
	frames      = flag.Int("frames", 0, "stop after this many frames")
	statsEvery  = flag.Int("stats", 0, "seconds between frame rate reports")
	logPath     = flag.String("log", "", "write logs to this file instead of stderr")
	debug       = flag.Bool("debug", false, "log every line read, and more")
)

var logger = log.WithFields(log.Fields{
	"pkg": "main",
})

// GLFW must be called from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	os.Exit(start())
}

// start returns the exit code, so that deferred closes run before exiting.
func start() int {
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("error opening log file: %s\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	err = run(cfg)
	if err != nil {
		logger.Errorf("%s", err)
		return 1
	}

	return 0
}

// isSet returns true if the named flag was given on the command line.
func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	flags := config.Flags{
		Mode:     *mode,
		Display:  *displayName,
		Port:     *portName,
		Gamepad:  *gamepadPath,
		Baud:     *baud,
		Size:     *size,
		FPS:      *fps,
		Snapshot: *snapshot,
		Frames:   *frames,
		Stats:    *statsEvery,
	}

	// Zero is a valid scale, so only an explicit -scale overrides.
	if isSet("scale") {
		flags.Scale = scale
	}

	cfg.Resolve(flags)

	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), and stop after
	// the current frame.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	km, err := cfg.Keys()
	if err != nil {
		return err
	}

	logger.Infof("opening %s display...", cfg.Display)
	d, keys, img, err := openDisplay(cfg, km)
	if err != nil {
		return err
	}

	t := render.Transform{Scale: cfg.Scale, Offset: *cfg.Offset}
	r, err := render.New(d, t, model.Cube(), model.Axes())
	if err != nil {
		d.Close()
		return err
	}
	defer r.Close()

	v := cube.NewViewer(r)

	logger.Infof("creating components for %s mode...", cfg.Mode)
	switch cfg.Mode {
	case config.ModeKeyboard:
		if keys == nil {
			logger.Warnf("the %s display has no keyboard; the cube won't move", cfg.Display)
		} else {
			v.Add(keyboard.New(keys, cfg.RotateSpeed))
		}

	case config.ModeSerial:
		s, c, err := openStream(cfg)
		if err != nil {
			return err
		}
		defer c.Close()
		v.Add(s)

	case config.ModeGamepad:
		pad, c, err := controller.Open(cfg.Gamepad)
		if err != nil {
			return err
		}
		defer c.Close()

		// Sticks first, then the buttons through the keyboard chain, so a
		// held reset wins.
		v.Add(controller.New(pad, controller.DefaultRotationSpeed))
		v.Add(keyboard.New(pad, cfg.RotateSpeed))

	case config.ModeDemo:
		v.Add(motion.New(time.Now()))
	}

	// Keyboard mode already handles quit and print.
	if keys != nil && cfg.Mode != config.ModeKeyboard {
		v.Add(keyboard.NewQuitter(keys))
	}

	if cfg.StatsInterval > 0 {
		v.Add(stats.New(time.Duration(cfg.StatsInterval) * time.Second))
	}

	v.Add(&stats.Limit{Max: cfg.Frames})

	logger.Infof("booting components...")
	err = v.Boot()
	if err != nil {
		return fmt.Errorf("%s (while booting)", err)
	}

	logger.Infof("starting loop at %d fps...", cfg.FPS)
	err = v.Run(ctx, cfg.Interval())

	// A replayed file or a closed pipe runs out; that's the end of the run,
	// not a failure.
	if errors.Is(err, io.EOF) {
		logger.Infof("end of stream")
		err = nil
	}

	if img != nil && cfg.Snapshot != "" && img.Frames > 0 {
		serr := raster.Save(cfg.Snapshot, img.Frame())
		if serr != nil && err == nil {
			err = serr
		}
	}

	return err
}

// openDisplay returns the configured display, and the keys it can read (nil
// when it has none). img is non-nil for the image display.
func openDisplay(cfg config.Config, km keyboard.Keymap) (d render.Display, keys keyboard.Keys, img *raster.Display, err error) {
	switch cfg.Display {
	case config.DisplayWindow:
		w, err := window.New(cfg.Size, cfg.Size, "cube", km)
		if err != nil {
			return nil, nil, nil, err
		}
		return w, w, nil, nil

	case config.DisplayTerm:
		t, err := term.New(cfg.CellWidth, cfg.CellHeight, km)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t, nil, nil

	case config.DisplayImage:
		img := raster.New(cfg.Size, cfg.Size, cfg.Supersample)
		return img, nil, img, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown display: %s", cfg.Display)
}

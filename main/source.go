package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adammck/cube/components/imu"
	"github.com/adammck/cube/config"
)

// openStream returns an orientation stream reading from the configured port,
// and the thing to close when done. The port can also be a regular file (a
// recorded session, replayed until it ends) or "-" for stdin.
func openStream(cfg config.Config) (*imu.Stream, io.Closer, error) {
	opts := imu.Options{ReadTimeout: cfg.ReadTimeout()}

	if cfg.Port == "-" {
		logger.Infof("reading orientation from stdin")
		return imu.New(os.Stdin, opts), io.NopCloser(os.Stdin), nil
	}

	fi, err := os.Stat(cfg.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("%s (while opening %s)", err, cfg.Port)
	}

	if fi.Mode().IsRegular() {
		f, err := os.Open(cfg.Port)
		if err != nil {
			return nil, nil, fmt.Errorf("%s (while opening %s)", err, cfg.Port)
		}

		logger.Infof("replaying orientation from %s", cfg.Port)
		return imu.New(f, opts), f, nil
	}

	port, err := imu.OpenPort(cfg.Port, cfg.Baud, cfg.ReadTimeout())
	if err != nil {
		return nil, nil, err
	}

	opts.IgnoreEOF = true
	return imu.New(port, opts), port, nil
}

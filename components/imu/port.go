package imu

import (
	"fmt"
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"
)

// OpenPort opens a serial port in 8N1 mode. Reads return after timeout (which
// is rounded to tenths of a second) even when nothing has arrived, which
// shows up as io.EOF, so Streams reading from a port should set IgnoreEOF.
func OpenPort(name string, baud uint, timeout time.Duration) (io.ReadWriteCloser, error) {
	ms := uint(timeout / time.Millisecond)
	if ms < 100 {
		ms = 100
	}

	opts := serial.OpenOptions{
		PortName:              name,
		BaudRate:              baud,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: ms,
	}

	logger.Infof("opening %s at %d baud", name, baud)
	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%s (while opening serial port %s)", err, name)
	}

	return port, nil
}

// Package imu reads orientation from a stream of text lines, as written by an
// IMU over a serial link. Each line carries the X and Y angles; Z is left
// alone.
package imu

import (
	"bufio"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube"
)

const (

	// How long Tick waits for a line before drawing the frame with the old
	// orientation.
	DefaultReadTimeout = 50 * time.Millisecond
)

var logger = log.WithFields(log.Fields{
	"pkg": "imu",
})

type Options struct {

	// Zero means don't wait at all.
	ReadTimeout time.Duration

	// Keep reading after io.EOF. Serial ports report a read timeout as EOF.
	IgnoreEOF bool
}

// Stream is a component which sets the orientation from the newest complete
// line read from r. Lines are read on a separate goroutine, and handed over
// through a single slot: if more than one line arrives between frames, only
// the newest is used.
type Stream struct {
	r    io.Reader
	opts Options

	lines chan string
	errs  chan error

	// A read error which arrived along with a final line. Returned on the
	// next tick.
	err error
}

func New(r io.Reader, opts Options) *Stream {
	return &Stream{
		r:     r,
		opts:  opts,
		lines: make(chan string, 1),
		errs:  make(chan error, 1),
	}
}

func (s *Stream) Boot() error {
	logger.Infof("stream: timeout=%s ignoreEOF=%v", s.opts.ReadTimeout, s.opts.IgnoreEOF)
	go s.run()
	return nil
}

func (s *Stream) run() {
	br := bufio.NewReader(s.r)
	partial := ""

	for {
		chunk, err := br.ReadString('\n')
		partial += chunk

		if err == nil {
			s.put(partial)
			partial = ""
			continue
		}

		if err == io.EOF && s.opts.IgnoreEOF {
			continue
		}

		if partial != "" {
			s.put(partial)
		}

		s.errs <- err
		return
	}
}

// put replaces whatever is in the slot with line. There's only one writer, so
// the send never blocks.
func (s *Stream) put(line string) {
	select {
	case <-s.lines:
	default:
	}

	s.lines <- line
}

func (s *Stream) Tick(now time.Time, state *cube.State) error {
	if s.err != nil {
		return s.fatal(s.err)
	}

	if s.opts.ReadTimeout <= 0 {
		select {
		case line := <-s.lines:
			s.apply(line, state)
		case err := <-s.errs:
			return s.failed(err, state)
		default:
		}

		return nil
	}

	t := time.NewTimer(s.opts.ReadTimeout)
	defer t.Stop()

	select {
	case line := <-s.lines:
		s.apply(line, state)

	case err := <-s.errs:
		return s.failed(err, state)

	case <-t.C:
		logger.Debugf("no line within %s", s.opts.ReadTimeout)
	}

	return nil
}

// failed is called when the reader has stopped. A final line which raced
// with the error is still applied, and the error is returned next frame.
func (s *Stream) failed(err error, state *cube.State) error {
	select {
	case line := <-s.lines:
		s.apply(line, state)
		s.err = err
		return nil
	default:
	}

	return s.fatal(err)
}

func (s *Stream) fatal(err error) error {
	return fmt.Errorf("%w (while reading orientation stream)", err)
}

// apply parses the line and, if it's valid, overwrites the X and Y angles. A
// malformed line leaves the orientation alone.
func (s *Stream) apply(line string, state *cube.State) {
	logger.Debugf("line: %q", line)

	x, y, err := ParseLine(line)
	if err != nil {
		logger.Warnf("%s", err)
		return
	}

	state.Orientation.Pitch = x
	state.Orientation.Heading = y
}

package serial

import (
	"bytes"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fake/serial",
})

// FakeSerial plays back a fixed script to readers, one chunk per Read, then
// returns Err (io.EOF if unset). Writes are kept.
type FakeSerial struct {
	mu      sync.Mutex
	chunks  [][]byte
	written bytes.Buffer
	closed  bool

	Err error
}

func New(chunks ...string) *FakeSerial {
	s := &FakeSerial{}
	for _, c := range chunks {
		s.chunks = append(s.chunks, []byte(c))
	}
	return s
}

func (s *FakeSerial) Read(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chunks) == 0 {
		if s.Err != nil {
			return 0, s.Err
		}
		return 0, io.EOF
	}

	n = copy(p, s.chunks[0])
	s.chunks[0] = s.chunks[0][n:]
	if len(s.chunks[0]) == 0 {
		s.chunks = s.chunks[1:]
	}

	logger.Debugf("read %d bytes", n)
	return n, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Debugf("write: %q", p)
	return s.written.Write(p)
}

// Written returns everything written so far.
func (s *FakeSerial) Written() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.written.String()
}

func (s *FakeSerial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Debugf("close")
	s.closed = true
	return nil
}

func (s *FakeSerial) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

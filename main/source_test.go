package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/cube"
	"github.com/adammck/cube/config"
)

func TestOpenStreamReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte("45\t90\n"), 0o644))

	cfg := config.Default()
	cfg.Resolve(config.Flags{Mode: config.ModeSerial, Port: path})
	cfg.ReadTimeoutMS = 1000

	s, c, err := openStream(cfg)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, s.Boot())

	state := &cube.State{}
	require.NoError(t, s.Tick(time.Now(), state))
	assert.Equal(t, 45.0, state.Orientation.Pitch)
	assert.Equal(t, 90.0, state.Orientation.Heading)
}

func TestOpenStreamMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Resolve(config.Flags{Port: filepath.Join(t.TempDir(), "nope")})

	_, _, err := openStream(cfg)
	assert.Error(t, err)
}

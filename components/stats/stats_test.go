package stats

import (
	"testing"
	"time"

	"github.com/adammck/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRate(t *testing.T) {
	fr := New(time.Second)
	require.NoError(t, fr.Boot())

	start := time.Now()
	s := &cube.State{}

	// 60 frames over one second.
	for i := 0; i <= 60; i++ {
		s.Frame = i
		now := start.Add(time.Duration(i) * time.Second / 60)
		require.NoError(t, fr.Tick(now, s))
	}

	assert.InDelta(t, 60, fr.Last, 0.001)
	assert.False(t, fr.NeedsReport(start.Add(1500*time.Millisecond)))
	assert.True(t, fr.NeedsReport(start.Add(2*time.Second)))
}

func TestLimit(t *testing.T) {
	type eg struct {
		max   int
		frame int
		stop  bool
	}

	examples := []eg{
		{0, 0, false},
		{0, 1000, false},
		{1, 0, true},
		{3, 1, false},
		{3, 2, true},
	}

	for _, x := range examples {
		l := &Limit{Max: x.max}
		require.NoError(t, l.Boot())

		s := &cube.State{Frame: x.frame}
		require.NoError(t, l.Tick(time.Now(), s))
		assert.Equal(t, x.stop, s.Shutdown, "max=%d frame=%d", x.max, x.frame)
	}
}

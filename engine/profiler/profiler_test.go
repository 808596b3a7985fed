package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsOnlyAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(50 * time.Millisecond)

	assert.False(t, p.Tick())

	time.Sleep(60 * time.Millisecond)
	assert.True(t, p.Tick())

	// Frame counter resets after a logged tick.
	assert.False(t, p.Tick())
}

func TestSetUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(0)
	p.SetUpdateInterval(-time.Second)

	assert.Equal(t, time.Second, p.updateInterval)
}

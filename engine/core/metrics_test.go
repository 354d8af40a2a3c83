package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	MetricsReset()
	t.Cleanup(MetricsReset)

	assert.Equal(t, time.Duration(0), MetricsAverage())

	MetricsUpdate(10 * time.Millisecond)
	MetricsUpdate(20 * time.Millisecond)
	assert.Equal(t, int64(2), MetricsCount())
	assert.Equal(t, 15*time.Millisecond, MetricsAverage())
	assert.Equal(t, 20*time.Millisecond, MetricsLast())

	// Only the last AVG_COUNT samples count toward the average.
	for i := 0; i < AVG_COUNT; i++ {
		MetricsUpdate(time.Millisecond)
	}
	assert.Equal(t, int64(AVG_COUNT+2), MetricsCount())
	assert.Equal(t, time.Millisecond, MetricsAverage())
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Equal(t, time.Duration(0), c.Elapsed(), "not started")

	c.Start()
	time.Sleep(2 * time.Millisecond)
	c.Update()
	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 2*time.Millisecond)

	c.Stop()
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed(), "stopped clocks keep their reading")
}

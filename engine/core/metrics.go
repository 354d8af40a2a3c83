package core

import (
	"sync"
	"time"

	"github.com/spaghettifunk/extramath/engine/containers"
)

const AVG_COUNT = 30

// MetricsState tracks how long rig evaluations take, averaged over the last
// AVG_COUNT samples.
type MetricsState struct {
	mu          sync.Mutex
	samples     *containers.RingQueue[time.Duration]
	total       int64
	lastElapsed time.Duration
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			samples: containers.NewRingQueue[time.Duration](AVG_COUNT),
		}
	})
}

// MetricsUpdate records one evaluation.
func MetricsUpdate(elapsed time.Duration) {
	MetricsInitialize()
	metricsState.mu.Lock()
	defer metricsState.mu.Unlock()

	metricsState.samples.Push(elapsed)
	metricsState.total++
	metricsState.lastElapsed = elapsed
}

// MetricsAverage returns the rolling average evaluation time.
func MetricsAverage() time.Duration {
	MetricsInitialize()
	metricsState.mu.Lock()
	defer metricsState.mu.Unlock()

	n := metricsState.samples.Len()
	if n == 0 {
		return 0
	}
	var sum time.Duration
	metricsState.samples.Each(func(d time.Duration) { sum += d })
	return sum / time.Duration(n)
}

// MetricsCount returns the number of evaluations recorded so far.
func MetricsCount() int64 {
	MetricsInitialize()
	metricsState.mu.Lock()
	defer metricsState.mu.Unlock()
	return metricsState.total
}

// MetricsReset forgets every sample.
func MetricsReset() {
	MetricsInitialize()
	metricsState.mu.Lock()
	defer metricsState.mu.Unlock()
	metricsState.samples.Clear()
	metricsState.total = 0
	metricsState.lastElapsed = 0
}

// MetricsLast returns the duration of the most recent evaluation.
func MetricsLast() time.Duration {
	MetricsInitialize()
	metricsState.mu.Lock()
	defer metricsState.mu.Unlock()
	return metricsState.lastElapsed
}

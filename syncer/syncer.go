// Package syncer aligns independently timestamped single-sensor streams into
// the composite measurements downstream fusion consumes.
//
// Platform sensors deliver each kind on its own cadence, so readings that
// belong to the same instant arrive separately. A syncer buffers the intake
// of each stream, pairs samples whose timestamps fall within a configurable
// window, and emits the matched set as one synced composite. Samples that
// can never be matched, because their counterpart stream has moved past them
// or because they have gone stale on the monotonic clock, are dropped with a
// debug log rather than held forever.
package syncer

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

const (
	// DefaultWindow allows samples up to 5ms apart to be paired, half a
	// period at a typical 100Hz sensor rate.
	DefaultWindow = int64(5_000_000)
	// DefaultStaleThreshold evicts samples buffered for over half a second.
	DefaultStaleThreshold = int64(500_000_000)
	// DefaultCapacity bounds each intake buffer.
	DefaultCapacity = 100
)

// ErrClosed is returned by Offer calls made after Stop.
var ErrClosed = errors.New("syncer is closed")

// Config tunes a syncer. Zero fields take the package defaults, so the zero
// value is usable as-is.
type Config struct {
	// Window is how far apart, in nanoseconds, two samples may be and still
	// be paired into one synced measurement.
	Window int64
	// StaleThreshold evicts buffered samples older than this many
	// nanoseconds on the monotonic clock. Negative disables eviction.
	StaleThreshold int64
	// AccelerometerCapacity and GyroscopeCapacity bound the intake buffers;
	// on overflow the oldest buffered sample of that stream is dropped.
	AccelerometerCapacity int
	GyroscopeCapacity     int
	// Clock supplies "now" for staleness checks and must tick the same
	// source measurements are stamped with. The wall clock when nil; tests
	// inject a mock.
	Clock clock.Clock
}

// Validate checks the config and fills defaults in place.
func (c *Config) Validate() error {
	if c.Window < 0 {
		return errors.New("window must not be negative")
	}
	if c.AccelerometerCapacity < 0 || c.GyroscopeCapacity < 0 {
		return errors.New("buffer capacities must not be negative")
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.StaleThreshold == 0 {
		c.StaleThreshold = DefaultStaleThreshold
	}
	if c.AccelerometerCapacity == 0 {
		c.AccelerometerCapacity = DefaultCapacity
	}
	if c.GyroscopeCapacity == 0 {
		c.GyroscopeCapacity = DefaultCapacity
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// lastError latches the most recent worker-side failure until Stop asks for
// it. Get clears the latch.
type lastError struct {
	mu  sync.Mutex
	err error
}

func (le *lastError) Set(err error) {
	le.mu.Lock()
	le.err = err
	le.mu.Unlock()
}

func (le *lastError) Get() error {
	le.mu.Lock()
	defer le.mu.Unlock()
	err := le.err
	le.err = nil
	return err
}

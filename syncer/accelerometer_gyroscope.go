package syncer

import (
	"context"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/synced"
)

// AccelerometerGyroscope pairs an accelerometer stream with a gyroscope
// stream by timestamp and emits synced.AccelerometerGyroscope composites.
// The synced timestamp is the accelerometer sample's.
type AccelerometerGyroscope struct {
	cfg    Config
	logger golog.Logger
	emit   func(*synced.AccelerometerGyroscope) error

	mu     sync.Mutex
	accel  []*measurement.Accelerometer
	gyro   []*measurement.Gyroscope
	closed bool

	lastErr lastError

	wake                    chan struct{}
	cancelCtx               context.Context
	cancelFunc              func()
	running                 bool
	activeBackgroundWorkers sync.WaitGroup
}

// NewAccelerometerGyroscope builds a syncer that hands matched pairs to
// emit. When Start is used, emit runs on the syncer's worker goroutine and
// an error it returns is latched and reported by Stop.
func NewAccelerometerGyroscope(
	cfg Config,
	emit func(*synced.AccelerometerGyroscope) error,
	logger golog.Logger,
) (*AccelerometerGyroscope, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid syncer config")
	}
	if emit == nil {
		return nil, errors.New("emit callback is required")
	}
	if logger == nil {
		logger = golog.Global()
	}
	cancelCtx, cancelFunc := context.WithCancel(context.Background())
	return &AccelerometerGyroscope{
		cfg:        cfg,
		logger:     logger,
		emit:       emit,
		wake:       make(chan struct{}, 1),
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// OfferAccelerometer buffers a copy of m for pairing; the syncer never
// retains m itself. When the buffer is full the oldest sample is dropped.
func (s *AccelerometerGyroscope) OfferAccelerometer(m *measurement.Accelerometer) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if len(s.accel) >= s.cfg.AccelerometerCapacity {
		s.accel = s.accel[1:]
		s.logger.Warnf("accelerometer buffer full, dropping oldest sample")
	}
	s.accel = append(s.accel, m.Copy())
	s.mu.Unlock()
	s.signal()
	return nil
}

// OfferGyroscope buffers a copy of m for pairing; the gyroscope counterpart
// of OfferAccelerometer.
func (s *AccelerometerGyroscope) OfferGyroscope(m *measurement.Gyroscope) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if len(s.gyro) >= s.cfg.GyroscopeCapacity {
		s.gyro = s.gyro[1:]
		s.logger.Warnf("gyroscope buffer full, dropping oldest sample")
	}
	s.gyro = append(s.gyro, m.Copy())
	s.mu.Unlock()
	s.signal()
	return nil
}

func (s *AccelerometerGyroscope) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Start launches the background matching worker. Calling it more than once
// is a no-op.
func (s *AccelerometerGyroscope) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.closed {
		return
	}
	s.running = true
	s.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer s.activeBackgroundWorkers.Done()
		for {
			select {
			case <-s.cancelCtx.Done():
				return
			case <-s.wake:
			}
			for _, out := range s.pending() {
				if err := s.emit(out); err != nil {
					s.lastErr.Set(err)
					s.logger.Errorw("emit failed", "error", err)
				}
			}
		}
	})
}

// Flush synchronously matches and emits whatever is currently pairable. It
// is how callers running without Start drive the syncer, and it returns the
// first emit error directly.
func (s *AccelerometerGyroscope) Flush() error {
	for _, out := range s.pending() {
		if err := s.emit(out); err != nil {
			return err
		}
	}
	return nil
}

// Stop rejects further offers, cancels the worker, waits for it to exit and
// returns the last error the emit callback produced, if any.
func (s *AccelerometerGyroscope) Stop() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancelFunc()
	s.activeBackgroundWorkers.Wait()
	return s.lastErr.Get()
}

// pending pops every currently matchable pair off the buffers. Both streams
// arrive in timestamp order, so whenever the heads of the two buffers are
// further apart than the window the older head can never be matched and is
// dropped.
func (s *AccelerometerGyroscope) pending() []*synced.AccelerometerGyroscope {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictStale()
	var outs []*synced.AccelerometerGyroscope
	for len(s.accel) > 0 && len(s.gyro) > 0 {
		a, g := s.accel[0], s.gyro[0]
		dt := a.Timestamp - g.Timestamp
		if dt < -s.cfg.Window {
			s.accel = s.accel[1:]
			s.logger.Debugf("dropping unmatched accelerometer sample at %d", a.Timestamp)
			continue
		}
		if dt > s.cfg.Window {
			s.gyro = s.gyro[1:]
			s.logger.Debugf("dropping unmatched gyroscope sample at %d", g.Timestamp)
			continue
		}
		s.accel, s.gyro = s.accel[1:], s.gyro[1:]
		out := synced.NewAccelerometerGyroscope()
		out.Accelerometer = a
		out.Gyroscope = g
		out.Timestamp = a.Timestamp
		outs = append(outs, out)
	}
	return outs
}

func (s *AccelerometerGyroscope) evictStale() {
	if s.cfg.StaleThreshold < 0 {
		return
	}
	now := s.cfg.Clock.Now().UnixNano()
	evicted := 0
	for len(s.accel) > 0 && now-s.accel[0].Timestamp > s.cfg.StaleThreshold {
		s.accel = s.accel[1:]
		evicted++
	}
	for len(s.gyro) > 0 && now-s.gyro[0].Timestamp > s.cfg.StaleThreshold {
		s.gyro = s.gyro[1:]
		evicted++
	}
	if evicted > 0 {
		s.logger.Debugf("evicted %d stale samples", evicted)
	}
}

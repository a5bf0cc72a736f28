package syncer

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"
	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/synced"
)

func enuAccelerometer(ts int64) *measurement.Accelerometer {
	return &measurement.Accelerometer{
		Raw:       frames.Triad{X: 0.5, Y: -9.75, Z: 1.25},
		Timestamp: ts,
	}
}

func enuGyroscope(ts int64) *measurement.Gyroscope {
	return &measurement.Gyroscope{
		Raw:       frames.Triad{X: 0.25, Y: -0.5, Z: 0.75},
		Timestamp: ts,
	}
}

func TestConfigValidate(t *testing.T) {
	var c Config
	test.That(t, c.Validate(), test.ShouldBeNil)
	test.That(t, c.Window, test.ShouldEqual, DefaultWindow)
	test.That(t, c.StaleThreshold, test.ShouldEqual, DefaultStaleThreshold)
	test.That(t, c.AccelerometerCapacity, test.ShouldEqual, DefaultCapacity)
	test.That(t, c.GyroscopeCapacity, test.ShouldEqual, DefaultCapacity)
	test.That(t, c.Clock, test.ShouldNotBeNil)

	bad := Config{Window: -1}
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
	bad = Config{AccelerometerCapacity: -1}
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
}

func TestNewRequiresEmit(t *testing.T) {
	_, err := NewAccelerometerGyroscope(Config{}, nil, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func newTestSyncer(t *testing.T, cfg Config) (*AccelerometerGyroscope, *[]*synced.AccelerometerGyroscope) {
	t.Helper()
	outs := &[]*synced.AccelerometerGyroscope{}
	s, err := NewAccelerometerGyroscope(cfg, func(out *synced.AccelerometerGyroscope) error {
		*outs = append(*outs, out)
		return nil
	}, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return s, outs
}

func TestSyncerPairsWithinWindow(t *testing.T) {
	mock := clock.NewMock()
	s, outs := newTestSyncer(t, Config{Window: 10, StaleThreshold: -1, Clock: mock})

	a := enuAccelerometer(100)
	g := enuGyroscope(105)
	test.That(t, s.OfferAccelerometer(a), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(g), test.ShouldBeNil)
	test.That(t, s.Flush(), test.ShouldBeNil)

	test.That(t, len(*outs), test.ShouldEqual, 1)
	out := (*outs)[0]
	test.That(t, out.Timestamp, test.ShouldEqual, int64(100))
	test.That(t, out.Accelerometer.Equal(a), test.ShouldBeTrue)
	test.That(t, out.Gyroscope.Equal(g), test.ShouldBeTrue)

	// the offered samples were copied on intake
	test.That(t, out.Accelerometer == a, test.ShouldBeFalse)
	test.That(t, out.Gyroscope == g, test.ShouldBeFalse)
}

func TestSyncerDropsUnmatchable(t *testing.T) {
	mock := clock.NewMock()
	s, outs := newTestSyncer(t, Config{Window: 10, StaleThreshold: -1, Clock: mock})

	test.That(t, s.OfferGyroscope(enuGyroscope(100)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(200)), test.ShouldBeNil)
	test.That(t, s.OfferAccelerometer(enuAccelerometer(195)), test.ShouldBeNil)
	test.That(t, s.Flush(), test.ShouldBeNil)

	// the gyroscope sample at 100 fell outside the window and was dropped;
	// 195/200 paired up
	test.That(t, len(*outs), test.ShouldEqual, 1)
	test.That(t, (*outs)[0].Gyroscope.Timestamp, test.ShouldEqual, int64(200))
	test.That(t, (*outs)[0].Accelerometer.Timestamp, test.ShouldEqual, int64(195))
}

func TestSyncerEvictsStale(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(time.Second)
	s, outs := newTestSyncer(t, Config{Window: 10, StaleThreshold: 100, Clock: mock})

	test.That(t, s.OfferAccelerometer(enuAccelerometer(5)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(mock.Now().UnixNano())), test.ShouldBeNil)
	test.That(t, s.Flush(), test.ShouldBeNil)

	// the accelerometer sample went stale long ago; nothing pairs
	test.That(t, len(*outs), test.ShouldEqual, 0)
}

func TestSyncerOverflowDropsOldest(t *testing.T) {
	mock := clock.NewMock()
	s, outs := newTestSyncer(t, Config{
		Window:                10,
		StaleThreshold:        -1,
		AccelerometerCapacity: 2,
		GyroscopeCapacity:     2,
		Clock:                 mock,
	})

	test.That(t, s.OfferAccelerometer(enuAccelerometer(1)), test.ShouldBeNil)
	test.That(t, s.OfferAccelerometer(enuAccelerometer(2)), test.ShouldBeNil)
	test.That(t, s.OfferAccelerometer(enuAccelerometer(3)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(1)), test.ShouldBeNil)
	test.That(t, s.Flush(), test.ShouldBeNil)

	// capacity 2 dropped the sample at 1, so the gyroscope pairs with 2
	test.That(t, len(*outs), test.ShouldEqual, 1)
	test.That(t, (*outs)[0].Accelerometer.Timestamp, test.ShouldEqual, int64(2))
}

func TestSyncerFlushReturnsEmitError(t *testing.T) {
	mock := clock.NewMock()
	boom := errors.New("downstream full")
	s, err := NewAccelerometerGyroscope(
		Config{Window: 10, StaleThreshold: -1, Clock: mock},
		func(*synced.AccelerometerGyroscope) error { return boom },
		golog.NewTestLogger(t),
	)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, s.OfferAccelerometer(enuAccelerometer(100)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(100)), test.ShouldBeNil)
	test.That(t, s.Flush(), test.ShouldBeError, boom)
}

func TestSyncerBackgroundWorker(t *testing.T) {
	mock := clock.NewMock()
	ch := make(chan *synced.AccelerometerGyroscope, 1)
	s, err := NewAccelerometerGyroscope(
		Config{Window: 10, StaleThreshold: -1, Clock: mock},
		func(out *synced.AccelerometerGyroscope) error {
			ch <- out
			return nil
		},
		golog.NewTestLogger(t),
	)
	test.That(t, err, test.ShouldBeNil)

	s.Start()
	test.That(t, s.OfferAccelerometer(enuAccelerometer(100)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(102)), test.ShouldBeNil)

	select {
	case out := <-ch:
		test.That(t, out.Timestamp, test.ShouldEqual, int64(100))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for synced measurement")
	}
	test.That(t, s.Stop(), test.ShouldBeNil)
}

func TestSyncerStopLatchesEmitError(t *testing.T) {
	mock := clock.NewMock()
	boom := errors.New("downstream full")
	emitted := make(chan struct{}, 1)
	s, err := NewAccelerometerGyroscope(
		Config{Window: 10, StaleThreshold: -1, Clock: mock},
		func(*synced.AccelerometerGyroscope) error {
			emitted <- struct{}{}
			return boom
		},
		golog.NewTestLogger(t),
	)
	test.That(t, err, test.ShouldBeNil)

	s.Start()
	test.That(t, s.OfferAccelerometer(enuAccelerometer(100)), test.ShouldBeNil)
	test.That(t, s.OfferGyroscope(enuGyroscope(100)), test.ShouldBeNil)

	select {
	case <-emitted:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for emit")
	}
	test.That(t, s.Stop(), test.ShouldBeError, boom)
}

func TestSyncerClosed(t *testing.T) {
	s, _ := newTestSyncer(t, Config{})
	s.Start()
	test.That(t, s.Stop(), test.ShouldBeNil)

	err := s.OfferAccelerometer(enuAccelerometer(1))
	test.That(t, errors.Is(err, ErrClosed), test.ShouldBeTrue)
	err = s.OfferGyroscope(enuGyroscope(1))
	test.That(t, errors.Is(err, ErrClosed), test.ShouldBeTrue)
}

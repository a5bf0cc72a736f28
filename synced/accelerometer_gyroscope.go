package synced

import (
	"github.com/pkg/errors"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
)

// AccelerometerGyroscope pairs time-aligned accelerometer and gyroscope
// samples, the minimum input for strapdown integration.
type AccelerometerGyroscope struct {
	Accelerometer *measurement.Accelerometer
	Gyroscope     *measurement.Gyroscope
	// Timestamp is the shared nanosecond timestamp of the pair.
	Timestamp int64
}

// NewAccelerometerGyroscope returns an empty composite: no readings,
// timestamp 0.
func NewAccelerometerGyroscope() *AccelerometerGyroscope {
	return &AccelerometerGyroscope{}
}

// Copy returns an independent clone of s, constituents included.
func (s *AccelerometerGyroscope) Copy() *AccelerometerGyroscope {
	c := NewAccelerometerGyroscope()
	s.CopyTo(c)
	return c
}

// CopyFrom overwrites s with src's values.
func (s *AccelerometerGyroscope) CopyFrom(src *AccelerometerGyroscope) {
	src.CopyTo(s)
}

// CopyTo overwrites dst with s's values. Present constituents are
// deep-copied; absent ones clear the corresponding slot in dst.
func (s *AccelerometerGyroscope) CopyTo(dst *AccelerometerGyroscope) {
	dst.Accelerometer = nil
	if s.Accelerometer != nil {
		dst.Accelerometer = s.Accelerometer.Copy()
	}
	dst.Gyroscope = nil
	if s.Gyroscope != nil {
		dst.Gyroscope = s.Gyroscope.Copy()
	}
	dst.Timestamp = s.Timestamp
}

// Equal reports whether s and other hold the same values, constituent by
// constituent. Two absent slots compare equal; absent versus present does
// not.
func (s *AccelerometerGyroscope) Equal(other *AccelerometerGyroscope) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return s.Accelerometer.Equal(other.Accelerometer) &&
		s.Gyroscope.Equal(other.Gyroscope) &&
		s.Timestamp == other.Timestamp
}

// ToNED converts every present constituent from ENU into NED. Constituents
// convert into temporaries and commit only once all of them succeed, so a
// wrong-frame constituent leaves dst untouched, even when dst aliases s.
// Absent constituents stay absent and the timestamp passes through.
func (s *AccelerometerGyroscope) ToNED(dst *AccelerometerGyroscope) (*AccelerometerGyroscope, error) {
	var (
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
		err error
	)
	if s.Accelerometer != nil {
		if acc, err = s.Accelerometer.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "accelerometer")
		}
	}
	if s.Gyroscope != nil {
		if gyr, err = s.Gyroscope.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "gyroscope")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGyroscope()
	}
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// ToENU converts every present constituent from NED into ENU; otherwise
// identical to ToNED.
func (s *AccelerometerGyroscope) ToENU(dst *AccelerometerGyroscope) (*AccelerometerGyroscope, error) {
	var (
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
		err error
	)
	if s.Accelerometer != nil {
		if acc, err = s.Accelerometer.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "accelerometer")
		}
	}
	if s.Gyroscope != nil {
		if gyr, err = s.Gyroscope.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "gyroscope")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGyroscope()
	}
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// InNED expresses every present constituent in NED, each one independently
// copying or converting as its own frame requires. Mixed-frame composites
// are fine here; this form never fails.
func (s *AccelerometerGyroscope) InNED(dst *AccelerometerGyroscope) *AccelerometerGyroscope {
	var (
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InNED(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InNED(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGyroscope()
	}
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst
}

// InENU expresses every present constituent in ENU; the counterpart of
// InNED.
func (s *AccelerometerGyroscope) InENU(dst *AccelerometerGyroscope) *AccelerometerGyroscope {
	var (
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InENU(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InENU(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGyroscope()
	}
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst
}

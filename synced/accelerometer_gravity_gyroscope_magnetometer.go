package synced

import (
	"github.com/pkg/errors"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
)

// AccelerometerGravityGyroscopeMagnetometer is the widest composite: the
// full sensor set a self-contained attitude estimator consumes in one cycle.
type AccelerometerGravityGyroscopeMagnetometer struct {
	Accelerometer *measurement.Accelerometer
	Gravity       *measurement.Gravity
	Gyroscope     *measurement.Gyroscope
	Magnetometer  *measurement.Magnetometer
	// Timestamp is the shared nanosecond timestamp of the set.
	Timestamp int64
}

// NewAccelerometerGravityGyroscopeMagnetometer returns an empty composite:
// no readings, timestamp 0.
func NewAccelerometerGravityGyroscopeMagnetometer() *AccelerometerGravityGyroscopeMagnetometer {
	return &AccelerometerGravityGyroscopeMagnetometer{}
}

// Copy returns an independent clone of s, constituents included.
func (s *AccelerometerGravityGyroscopeMagnetometer) Copy() *AccelerometerGravityGyroscopeMagnetometer {
	c := NewAccelerometerGravityGyroscopeMagnetometer()
	s.CopyTo(c)
	return c
}

// CopyFrom overwrites s with src's values.
func (s *AccelerometerGravityGyroscopeMagnetometer) CopyFrom(src *AccelerometerGravityGyroscopeMagnetometer) {
	src.CopyTo(s)
}

// CopyTo overwrites dst with s's values. Present constituents are
// deep-copied; absent ones clear the corresponding slot in dst.
func (s *AccelerometerGravityGyroscopeMagnetometer) CopyTo(dst *AccelerometerGravityGyroscopeMagnetometer) {
	dst.Accelerometer = nil
	if s.Accelerometer != nil {
		dst.Accelerometer = s.Accelerometer.Copy()
	}
	dst.Gravity = nil
	if s.Gravity != nil {
		dst.Gravity = s.Gravity.Copy()
	}
	dst.Gyroscope = nil
	if s.Gyroscope != nil {
		dst.Gyroscope = s.Gyroscope.Copy()
	}
	dst.Magnetometer = nil
	if s.Magnetometer != nil {
		dst.Magnetometer = s.Magnetometer.Copy()
	}
	dst.Timestamp = s.Timestamp
}

// Equal reports whether s and other hold the same values, constituent by
// constituent.
func (s *AccelerometerGravityGyroscopeMagnetometer) Equal(other *AccelerometerGravityGyroscopeMagnetometer) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return s.Accelerometer.Equal(other.Accelerometer) &&
		s.Gravity.Equal(other.Gravity) &&
		s.Gyroscope.Equal(other.Gyroscope) &&
		s.Magnetometer.Equal(other.Magnetometer) &&
		s.Timestamp == other.Timestamp
}

// ToNED converts every present constituent from ENU into NED. Constituents
// convert into temporaries and commit only once all of them succeed, so a
// wrong-frame constituent leaves dst untouched, even when dst aliases s.
func (s *AccelerometerGravityGyroscopeMagnetometer) ToNED(dst *AccelerometerGravityGyroscopeMagnetometer) (*AccelerometerGravityGyroscopeMagnetometer, error) {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		gyr *measurement.Gyroscope
		mag *measurement.Magnetometer
		err error
	)
	if s.Accelerometer != nil {
		if acc, err = s.Accelerometer.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "accelerometer")
		}
	}
	if s.Gravity != nil {
		if grv, err = s.Gravity.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "gravity")
		}
	}
	if s.Gyroscope != nil {
		if gyr, err = s.Gyroscope.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "gyroscope")
		}
	}
	if s.Magnetometer != nil {
		if mag, err = s.Magnetometer.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "magnetometer")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGravityGyroscopeMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Gyroscope = gyr
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// ToENU converts every present constituent from NED into ENU; otherwise
// identical to ToNED.
func (s *AccelerometerGravityGyroscopeMagnetometer) ToENU(dst *AccelerometerGravityGyroscopeMagnetometer) (*AccelerometerGravityGyroscopeMagnetometer, error) {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		gyr *measurement.Gyroscope
		mag *measurement.Magnetometer
		err error
	)
	if s.Accelerometer != nil {
		if acc, err = s.Accelerometer.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "accelerometer")
		}
	}
	if s.Gravity != nil {
		if grv, err = s.Gravity.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "gravity")
		}
	}
	if s.Gyroscope != nil {
		if gyr, err = s.Gyroscope.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "gyroscope")
		}
	}
	if s.Magnetometer != nil {
		if mag, err = s.Magnetometer.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "magnetometer")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGravityGyroscopeMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Gyroscope = gyr
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// InNED expresses every present constituent in NED, each one independently
// copying or converting as its own frame requires. This form never fails.
func (s *AccelerometerGravityGyroscopeMagnetometer) InNED(dst *AccelerometerGravityGyroscopeMagnetometer) *AccelerometerGravityGyroscopeMagnetometer {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		gyr *measurement.Gyroscope
		mag *measurement.Magnetometer
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InNED(nil)
	}
	if s.Gravity != nil {
		grv = s.Gravity.InNED(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InNED(nil)
	}
	if s.Magnetometer != nil {
		mag = s.Magnetometer.InNED(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGravityGyroscopeMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Gyroscope = gyr
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst
}

// InENU expresses every present constituent in ENU; the counterpart of
// InNED.
func (s *AccelerometerGravityGyroscopeMagnetometer) InENU(dst *AccelerometerGravityGyroscopeMagnetometer) *AccelerometerGravityGyroscopeMagnetometer {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		gyr *measurement.Gyroscope
		mag *measurement.Magnetometer
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InENU(nil)
	}
	if s.Gravity != nil {
		grv = s.Gravity.InENU(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InENU(nil)
	}
	if s.Magnetometer != nil {
		mag = s.Magnetometer.InENU(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGravityGyroscopeMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Gyroscope = gyr
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst
}

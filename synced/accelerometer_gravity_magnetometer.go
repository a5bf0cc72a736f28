package synced

import (
	"github.com/pkg/errors"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
)

// AccelerometerGravityMagnetometer bundles the three samples a leveled
// magnetic heading estimate needs.
type AccelerometerGravityMagnetometer struct {
	Accelerometer *measurement.Accelerometer
	Gravity       *measurement.Gravity
	Magnetometer  *measurement.Magnetometer
	// Timestamp is the shared nanosecond timestamp of the set.
	Timestamp int64
}

// NewAccelerometerGravityMagnetometer returns an empty composite: no
// readings, timestamp 0.
func NewAccelerometerGravityMagnetometer() *AccelerometerGravityMagnetometer {
	return &AccelerometerGravityMagnetometer{}
}

// Copy returns an independent clone of s, constituents included.
func (s *AccelerometerGravityMagnetometer) Copy() *AccelerometerGravityMagnetometer {
	c := NewAccelerometerGravityMagnetometer()
	s.CopyTo(c)
	return c
}

// CopyFrom overwrites s with src's values.
func (s *AccelerometerGravityMagnetometer) CopyFrom(src *AccelerometerGravityMagnetometer) {
	src.CopyTo(s)
}

// CopyTo overwrites dst with s's values. Present constituents are
// deep-copied; absent ones clear the corresponding slot in dst.
func (s *AccelerometerGravityMagnetometer) CopyTo(dst *AccelerometerGravityMagnetometer) {
	dst.Accelerometer = nil
	if s.Accelerometer != nil {
		dst.Accelerometer = s.Accelerometer.Copy()
	}
	dst.Gravity = nil
	if s.Gravity != nil {
		dst.Gravity = s.Gravity.Copy()
	}
	dst.Magnetometer = nil
	if s.Magnetometer != nil {
		dst.Magnetometer = s.Magnetometer.Copy()
	}
	dst.Timestamp = s.Timestamp
}

// Equal reports whether s and other hold the same values, constituent by
// constituent.
func (s *AccelerometerGravityMagnetometer) Equal(other *AccelerometerGravityMagnetometer) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return s.Accelerometer.Equal(other.Accelerometer) &&
		s.Gravity.Equal(other.Gravity) &&
		s.Magnetometer.Equal(other.Magnetometer) &&
		s.Timestamp == other.Timestamp
}

// ToNED converts every present constituent from ENU into NED. Constituents
// convert into temporaries and commit only once all of them succeed, so a
// wrong-frame constituent leaves dst untouched, even when dst aliases s.
func (s *AccelerometerGravityMagnetometer) ToNED(dst *AccelerometerGravityMagnetometer) (*AccelerometerGravityMagnetometer, error) {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
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
	if s.Magnetometer != nil {
		if mag, err = s.Magnetometer.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "magnetometer")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGravityMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// ToENU converts every present constituent from NED into ENU; otherwise
// identical to ToNED.
func (s *AccelerometerGravityMagnetometer) ToENU(dst *AccelerometerGravityMagnetometer) (*AccelerometerGravityMagnetometer, error) {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
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
	if s.Magnetometer != nil {
		if mag, err = s.Magnetometer.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "magnetometer")
		}
	}
	if dst == nil {
		dst = NewAccelerometerGravityMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// InNED expresses every present constituent in NED, each one independently
// copying or converting as its own frame requires. This form never fails.
func (s *AccelerometerGravityMagnetometer) InNED(dst *AccelerometerGravityMagnetometer) *AccelerometerGravityMagnetometer {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		mag *measurement.Magnetometer
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InNED(nil)
	}
	if s.Gravity != nil {
		grv = s.Gravity.InNED(nil)
	}
	if s.Magnetometer != nil {
		mag = s.Magnetometer.InNED(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGravityMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst
}

// InENU expresses every present constituent in ENU; the counterpart of
// InNED.
func (s *AccelerometerGravityMagnetometer) InENU(dst *AccelerometerGravityMagnetometer) *AccelerometerGravityMagnetometer {
	var (
		acc *measurement.Accelerometer
		grv *measurement.Gravity
		mag *measurement.Magnetometer
	)
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InENU(nil)
	}
	if s.Gravity != nil {
		grv = s.Gravity.InENU(nil)
	}
	if s.Magnetometer != nil {
		mag = s.Magnetometer.InENU(nil)
	}
	if dst == nil {
		dst = NewAccelerometerGravityMagnetometer()
	}
	dst.Accelerometer = acc
	dst.Gravity = grv
	dst.Magnetometer = mag
	dst.Timestamp = s.Timestamp
	return dst
}

package synced

import (
	"github.com/pkg/errors"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/measurement"
)

// AttitudeAccelerometerGyroscope bundles an orientation sample with the
// inertial pair, the input shape attitude-aided filters consume.
type AttitudeAccelerometerGyroscope struct {
	Attitude      *measurement.Attitude
	Accelerometer *measurement.Accelerometer
	Gyroscope     *measurement.Gyroscope
	// Timestamp is the shared nanosecond timestamp of the set.
	Timestamp int64
}

// NewAttitudeAccelerometerGyroscope returns an empty composite: no readings,
// timestamp 0.
func NewAttitudeAccelerometerGyroscope() *AttitudeAccelerometerGyroscope {
	return &AttitudeAccelerometerGyroscope{}
}

// Copy returns an independent clone of s, constituents included.
func (s *AttitudeAccelerometerGyroscope) Copy() *AttitudeAccelerometerGyroscope {
	c := NewAttitudeAccelerometerGyroscope()
	s.CopyTo(c)
	return c
}

// CopyFrom overwrites s with src's values.
func (s *AttitudeAccelerometerGyroscope) CopyFrom(src *AttitudeAccelerometerGyroscope) {
	src.CopyTo(s)
}

// CopyTo overwrites dst with s's values. Present constituents are
// deep-copied; absent ones clear the corresponding slot in dst.
func (s *AttitudeAccelerometerGyroscope) CopyTo(dst *AttitudeAccelerometerGyroscope) {
	dst.Attitude = nil
	if s.Attitude != nil {
		dst.Attitude = s.Attitude.Copy()
	}
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
// constituent.
func (s *AttitudeAccelerometerGyroscope) Equal(other *AttitudeAccelerometerGyroscope) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return s.Attitude.Equal(other.Attitude) &&
		s.Accelerometer.Equal(other.Accelerometer) &&
		s.Gyroscope.Equal(other.Gyroscope) &&
		s.Timestamp == other.Timestamp
}

// ToNED converts every present constituent from ENU into NED. Constituents
// convert into temporaries and commit only once all of them succeed, so a
// wrong-frame constituent leaves dst untouched, even when dst aliases s.
func (s *AttitudeAccelerometerGyroscope) ToNED(dst *AttitudeAccelerometerGyroscope) (*AttitudeAccelerometerGyroscope, error) {
	var (
		att *measurement.Attitude
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
		err error
	)
	if s.Attitude != nil {
		if att, err = s.Attitude.ToNED(nil); err != nil {
			return nil, errors.Wrap(err, "attitude")
		}
	}
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
		dst = NewAttitudeAccelerometerGyroscope()
	}
	dst.Attitude = att
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// ToENU converts every present constituent from NED into ENU; otherwise
// identical to ToNED.
func (s *AttitudeAccelerometerGyroscope) ToENU(dst *AttitudeAccelerometerGyroscope) (*AttitudeAccelerometerGyroscope, error) {
	var (
		att *measurement.Attitude
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
		err error
	)
	if s.Attitude != nil {
		if att, err = s.Attitude.ToENU(nil); err != nil {
			return nil, errors.Wrap(err, "attitude")
		}
	}
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
		dst = NewAttitudeAccelerometerGyroscope()
	}
	dst.Attitude = att
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst, nil
}

// InNED expresses every present constituent in NED, each one independently
// copying or converting as its own frame requires. This form never fails.
func (s *AttitudeAccelerometerGyroscope) InNED(dst *AttitudeAccelerometerGyroscope) *AttitudeAccelerometerGyroscope {
	var (
		att *measurement.Attitude
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
	)
	if s.Attitude != nil {
		att = s.Attitude.InNED(nil)
	}
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InNED(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InNED(nil)
	}
	if dst == nil {
		dst = NewAttitudeAccelerometerGyroscope()
	}
	dst.Attitude = att
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst
}

// InENU expresses every present constituent in ENU; the counterpart of
// InNED.
func (s *AttitudeAccelerometerGyroscope) InENU(dst *AttitudeAccelerometerGyroscope) *AttitudeAccelerometerGyroscope {
	var (
		att *measurement.Attitude
		acc *measurement.Accelerometer
		gyr *measurement.Gyroscope
	)
	if s.Attitude != nil {
		att = s.Attitude.InENU(nil)
	}
	if s.Accelerometer != nil {
		acc = s.Accelerometer.InENU(nil)
	}
	if s.Gyroscope != nil {
		gyr = s.Gyroscope.InENU(nil)
	}
	if dst == nil {
		dst = NewAttitudeAccelerometerGyroscope()
	}
	dst.Attitude = att
	dst.Accelerometer = acc
	dst.Gyroscope = gyr
	dst.Timestamp = s.Timestamp
	return dst
}

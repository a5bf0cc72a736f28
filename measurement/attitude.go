package measurement

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"
)

// Attitude is one orientation sample from the platform's rotation-vector
// sensor: a unit quaternion rotating the body frame into System, plus the
// platform's heading error estimate when it reports one.
type Attitude struct {
	// Orientation rotates the body frame into System.
	Orientation quat.Number
	// HeadingAccuracy is the platform's heading error estimate in radians,
	// nil when the platform does not report one.
	HeadingAccuracy *float64
	// Timestamp is nanoseconds on the platform's monotonic clock.
	Timestamp int64
	// Accuracy is the platform's accuracy report, nil when unknown.
	Accuracy *Accuracy
	Variant  AttitudeVariant
	System   frames.System
}

// NewAttitude returns a zero sample: ENU, absolute, timestamp 0. Note the
// zero quaternion is not a rotation; collectors overwrite Orientation before
// the sample is used.
func NewAttitude() *Attitude {
	return &Attitude{}
}

// Copy returns an independent clone of m.
func (m *Attitude) Copy() *Attitude {
	c := NewAttitude()
	m.CopyTo(c)
	return c
}

// CopyFrom overwrites every field of m with src's values.
func (m *Attitude) CopyFrom(src *Attitude) {
	src.CopyTo(m)
}

// CopyTo overwrites every field of dst with m's values. An absent heading
// accuracy stays absent in dst even when dst previously held one.
func (m *Attitude) CopyTo(dst *Attitude) {
	dst.Orientation = m.Orientation
	dst.HeadingAccuracy = cloneFloat64(m.HeadingAccuracy)
	dst.Timestamp = m.Timestamp
	dst.Accuracy = cloneAccuracy(m.Accuracy)
	dst.Variant = m.Variant
	dst.System = m.System
}

// Equal reports whether m and other hold the same values field by field.
// Quaternion components compare exactly; q and -q are distinct values here
// even though they encode the same rotation.
func (m *Attitude) Equal(other *Attitude) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.Orientation == other.Orientation &&
		float64Equal(m.HeadingAccuracy, other.HeadingAccuracy) &&
		m.Timestamp == other.Timestamp &&
		accuracyEqual(m.Accuracy, other.Accuracy) &&
		m.Variant == other.Variant &&
		m.System == other.System
}

// ToNED converts an ENU sample into NED by applying the frame change to the
// orientation quaternion. When dst is non-nil it is used as the output and
// returned, otherwise a new sample is allocated. The receiver is never
// modified and dst may alias it. A sample already in NED is an
// InvalidCoordinateSystemError; use InNED when the source frame may vary.
func (m *Attitude) ToNED(dst *Attitude) (*Attitude, error) {
	if err := frames.RequireENU(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewAttitude()
	}
	convertAttitude(m, dst)
	return dst, nil
}

// ToENU converts a NED sample into ENU; otherwise identical to ToNED.
func (m *Attitude) ToENU(dst *Attitude) (*Attitude, error) {
	if err := frames.RequireNED(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewAttitude()
	}
	convertAttitude(m, dst)
	return dst, nil
}

// InNED returns the sample expressed in NED: a deep copy when it already is,
// a conversion when it is in ENU. It never fails.
func (m *Attitude) InNED(dst *Attitude) *Attitude {
	if m.System == frames.NED {
		if dst == nil {
			dst = NewAttitude()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToNED(dst)
	return out
}

// InENU returns the sample expressed in ENU; the counterpart of InNED.
func (m *Attitude) InENU(dst *Attitude) *Attitude {
	if m.System == frames.ENU {
		if dst == nil {
			dst = NewAttitude()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToENU(dst)
	return out
}

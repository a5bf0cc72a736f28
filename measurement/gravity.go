package measurement

import "github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"

// Gravity is one gravity sample: the gravity direction the platform has
// already isolated from linear motion. It carries no bias terms and has no
// calibrated/uncalibrated variants.
type Gravity struct {
	// Raw is the sampled gravity in m/s².
	Raw frames.Triad
	// Timestamp is nanoseconds on the platform's monotonic clock.
	Timestamp int64
	// Accuracy is the platform's accuracy report, nil when unknown.
	Accuracy *Accuracy
	System   frames.System
}

// NewGravity returns a zero sample: ENU, timestamp 0.
func NewGravity() *Gravity {
	return &Gravity{}
}

// Copy returns an independent clone of m.
func (m *Gravity) Copy() *Gravity {
	c := NewGravity()
	m.CopyTo(c)
	return c
}

// CopyFrom overwrites every field of m with src's values.
func (m *Gravity) CopyFrom(src *Gravity) {
	src.CopyTo(m)
}

// CopyTo overwrites every field of dst with m's values.
func (m *Gravity) CopyTo(dst *Gravity) {
	dst.Raw = m.Raw
	dst.Timestamp = m.Timestamp
	dst.Accuracy = cloneAccuracy(m.Accuracy)
	dst.System = m.System
}

// Equal reports whether m and other hold the same values field by field.
func (m *Gravity) Equal(other *Gravity) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.Raw == other.Raw &&
		m.Timestamp == other.Timestamp &&
		accuracyEqual(m.Accuracy, other.Accuracy) &&
		m.System == other.System
}

// Triad returns the sampled gravity vector.
func (m *Gravity) Triad() frames.Triad {
	return m.Raw
}

// TriadInto writes the sampled gravity vector into dst.
func (m *Gravity) TriadInto(dst *frames.Triad) {
	*dst = m.Triad()
}

// Norm returns the magnitude of the sampled gravity in m/s².
func (m *Gravity) Norm() float64 {
	return m.Triad().Norm()
}

// ToNED converts an ENU sample into NED. When dst is non-nil it is used as
// the output and returned, otherwise a new sample is allocated. The receiver
// is never modified and dst may alias it. A sample already in NED is an
// InvalidCoordinateSystemError; use InNED when the source frame may vary.
func (m *Gravity) ToNED(dst *Gravity) (*Gravity, error) {
	if err := frames.RequireENU(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewGravity()
	}
	convertGravity(m, dst)
	return dst, nil
}

// ToENU converts a NED sample into ENU; otherwise identical to ToNED.
func (m *Gravity) ToENU(dst *Gravity) (*Gravity, error) {
	if err := frames.RequireNED(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewGravity()
	}
	convertGravity(m, dst)
	return dst, nil
}

// InNED returns the sample expressed in NED: a deep copy when it already is,
// a conversion when it is in ENU. It never fails.
func (m *Gravity) InNED(dst *Gravity) *Gravity {
	if m.System == frames.NED {
		if dst == nil {
			dst = NewGravity()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToNED(dst)
	return out
}

// InENU returns the sample expressed in ENU; the counterpart of InNED.
func (m *Gravity) InENU(dst *Gravity) *Gravity {
	if m.System == frames.ENU {
		if dst == nil {
			dst = NewGravity()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToENU(dst)
	return out
}

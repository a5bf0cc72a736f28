package measurement

import "github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"

// Gyroscope is one gyroscope sample: angular rate about each axis, and the
// drift bias estimate the uncalibrated platform sensor reports when it has
// one.
type Gyroscope struct {
	// Raw is the sampled angular rate in rad/s.
	Raw frames.Triad
	// Bias is the platform's drift estimate in rad/s, nil until the
	// platform reports one.
	Bias *frames.Triad
	// Timestamp is nanoseconds on the platform's monotonic clock.
	Timestamp int64
	// Accuracy is the platform's accuracy report, nil when unknown.
	Accuracy *Accuracy
	Variant  Variant
	System   frames.System
}

// NewGyroscope returns a zero sample: ENU, uncalibrated, timestamp 0.
func NewGyroscope() *Gyroscope {
	return &Gyroscope{}
}

// Copy returns an independent clone of m.
func (m *Gyroscope) Copy() *Gyroscope {
	c := NewGyroscope()
	m.CopyTo(c)
	return c
}

// CopyFrom overwrites every field of m with src's values.
func (m *Gyroscope) CopyFrom(src *Gyroscope) {
	src.CopyTo(m)
}

// CopyTo overwrites every field of dst with m's values. An absent bias stays
// absent in dst even when dst previously held one.
func (m *Gyroscope) CopyTo(dst *Gyroscope) {
	dst.Raw = m.Raw
	dst.Bias = cloneTriad(m.Bias)
	dst.Timestamp = m.Timestamp
	dst.Accuracy = cloneAccuracy(m.Accuracy)
	dst.Variant = m.Variant
	dst.System = m.System
}

// Equal reports whether m and other hold the same values field by field.
func (m *Gyroscope) Equal(other *Gyroscope) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.Raw == other.Raw &&
		triadEqual(m.Bias, other.Bias) &&
		m.Timestamp == other.Timestamp &&
		accuracyEqual(m.Accuracy, other.Accuracy) &&
		m.Variant == other.Variant &&
		m.System == other.System
}

// Triad returns the physical angular rate: Raw plus Bias when a bias is
// present, Raw alone otherwise.
func (m *Gyroscope) Triad() frames.Triad {
	if m.Bias == nil {
		return m.Raw
	}
	return m.Raw.Add(*m.Bias)
}

// TriadInto writes the physical angular rate into dst.
func (m *Gyroscope) TriadInto(dst *frames.Triad) {
	*dst = m.Triad()
}

// Norm returns the magnitude of the physical angular rate in rad/s.
func (m *Gyroscope) Norm() float64 {
	return m.Triad().Norm()
}

// ToNED converts an ENU sample into NED. When dst is non-nil it is used as
// the output and returned, otherwise a new sample is allocated. The receiver
// is never modified and dst may alias it. A sample already in NED is an
// InvalidCoordinateSystemError; use InNED when the source frame may vary.
func (m *Gyroscope) ToNED(dst *Gyroscope) (*Gyroscope, error) {
	if err := frames.RequireENU(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewGyroscope()
	}
	convertGyroscope(m, dst)
	return dst, nil
}

// ToENU converts a NED sample into ENU; otherwise identical to ToNED.
func (m *Gyroscope) ToENU(dst *Gyroscope) (*Gyroscope, error) {
	if err := frames.RequireNED(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewGyroscope()
	}
	convertGyroscope(m, dst)
	return dst, nil
}

// InNED returns the sample expressed in NED: a deep copy when it already is,
// a conversion when it is in ENU. It never fails.
func (m *Gyroscope) InNED(dst *Gyroscope) *Gyroscope {
	if m.System == frames.NED {
		if dst == nil {
			dst = NewGyroscope()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToNED(dst)
	return out
}

// InENU returns the sample expressed in ENU; the counterpart of InNED.
func (m *Gyroscope) InENU(dst *Gyroscope) *Gyroscope {
	if m.System == frames.ENU {
		if dst == nil {
			dst = NewGyroscope()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToENU(dst)
	return out
}

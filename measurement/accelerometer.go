package measurement

import "github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"

// Accelerometer is one accelerometer sample: the specific force sensed along
// each axis plus the bias estimate the uncalibrated platform sensor reports
// with it. Unlike the gyroscope and magnetometer offsets, the bias triad is
// always present and stays zero until the platform provides one; the
// physical signal is always Raw plus Bias.
type Accelerometer struct {
	// Raw is the sampled specific force in m/s².
	Raw frames.Triad
	// Bias is the platform's bias estimate in m/s².
	Bias frames.Triad
	// Timestamp is nanoseconds on the platform's monotonic clock.
	Timestamp int64
	// Accuracy is the platform's accuracy report, nil when unknown.
	Accuracy *Accuracy
	Variant  Variant
	System   frames.System
}

// NewAccelerometer returns a zero sample: ENU, uncalibrated, timestamp 0.
func NewAccelerometer() *Accelerometer {
	return &Accelerometer{}
}

// Copy returns an independent clone of m.
func (m *Accelerometer) Copy() *Accelerometer {
	c := NewAccelerometer()
	m.CopyTo(c)
	return c
}

// CopyFrom overwrites every field of m with src's values.
func (m *Accelerometer) CopyFrom(src *Accelerometer) {
	src.CopyTo(m)
}

// CopyTo overwrites every field of dst with m's values. Optional fields are
// reallocated, never shared, so later writes to either side stay private.
func (m *Accelerometer) CopyTo(dst *Accelerometer) {
	dst.Raw = m.Raw
	dst.Bias = m.Bias
	dst.Timestamp = m.Timestamp
	dst.Accuracy = cloneAccuracy(m.Accuracy)
	dst.Variant = m.Variant
	dst.System = m.System
}

// Equal reports whether m and other hold the same values field by field.
func (m *Accelerometer) Equal(other *Accelerometer) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.Raw == other.Raw &&
		m.Bias == other.Bias &&
		m.Timestamp == other.Timestamp &&
		accuracyEqual(m.Accuracy, other.Accuracy) &&
		m.Variant == other.Variant &&
		m.System == other.System
}

// Triad returns the physical specific force, Raw plus Bias.
func (m *Accelerometer) Triad() frames.Triad {
	return m.Raw.Add(m.Bias)
}

// TriadInto writes the physical specific force into dst.
func (m *Accelerometer) TriadInto(dst *frames.Triad) {
	*dst = m.Triad()
}

// Norm returns the magnitude of the physical specific force in m/s².
func (m *Accelerometer) Norm() float64 {
	return m.Triad().Norm()
}

// ToNED converts an ENU sample into NED. When dst is non-nil it is used as
// the output and returned, otherwise a new sample is allocated. The receiver
// is never modified and dst may alias it. A sample already in NED is an
// InvalidCoordinateSystemError; use InNED when the source frame may vary.
func (m *Accelerometer) ToNED(dst *Accelerometer) (*Accelerometer, error) {
	if err := frames.RequireENU(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewAccelerometer()
	}
	convertAccelerometer(m, dst)
	return dst, nil
}

// ToENU converts a NED sample into ENU; otherwise identical to ToNED.
func (m *Accelerometer) ToENU(dst *Accelerometer) (*Accelerometer, error) {
	if err := frames.RequireNED(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewAccelerometer()
	}
	convertAccelerometer(m, dst)
	return dst, nil
}

// InNED returns the sample expressed in NED: a deep copy when it already is,
// a conversion when it is in ENU. It never fails.
func (m *Accelerometer) InNED(dst *Accelerometer) *Accelerometer {
	if m.System == frames.NED {
		if dst == nil {
			dst = NewAccelerometer()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToNED(dst)
	return out
}

// InENU returns the sample expressed in ENU; the counterpart of InNED.
func (m *Accelerometer) InENU(dst *Accelerometer) *Accelerometer {
	if m.System == frames.ENU {
		if dst == nil {
			dst = NewAccelerometer()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToENU(dst)
	return out
}

package measurement

import "github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"

// Magnetometer is one magnetometer sample: magnetic flux density along each
// axis, and the hard-iron offset the uncalibrated platform sensor reports
// when it has one.
type Magnetometer struct {
	// Raw is the sampled magnetic flux density in µT.
	Raw frames.Triad
	// HardIron is the platform's hard-iron estimate in µT, nil until the
	// platform reports one.
	HardIron *frames.Triad
	// Timestamp is nanoseconds on the platform's monotonic clock.
	Timestamp int64
	// Accuracy is the platform's accuracy report, nil when unknown.
	Accuracy *Accuracy
	Variant  Variant
	System   frames.System
}

// NewMagnetometer returns a zero sample: ENU, uncalibrated, timestamp 0.
func NewMagnetometer() *Magnetometer {
	return &Magnetometer{}
}

// Copy returns an independent clone of m.
func (m *Magnetometer) Copy() *Magnetometer {
	c := NewMagnetometer()
	m.CopyTo(c)
	return c
}

// CopyFrom overwrites every field of m with src's values.
func (m *Magnetometer) CopyFrom(src *Magnetometer) {
	src.CopyTo(m)
}

// CopyTo overwrites every field of dst with m's values. An absent hard-iron
// offset stays absent in dst even when dst previously held one.
func (m *Magnetometer) CopyTo(dst *Magnetometer) {
	dst.Raw = m.Raw
	dst.HardIron = cloneTriad(m.HardIron)
	dst.Timestamp = m.Timestamp
	dst.Accuracy = cloneAccuracy(m.Accuracy)
	dst.Variant = m.Variant
	dst.System = m.System
}

// Equal reports whether m and other hold the same values field by field.
func (m *Magnetometer) Equal(other *Magnetometer) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.Raw == other.Raw &&
		triadEqual(m.HardIron, other.HardIron) &&
		m.Timestamp == other.Timestamp &&
		accuracyEqual(m.Accuracy, other.Accuracy) &&
		m.Variant == other.Variant &&
		m.System == other.System
}

// Triad returns the physical flux density: Raw plus HardIron when the offset
// is present, Raw alone otherwise.
func (m *Magnetometer) Triad() frames.Triad {
	if m.HardIron == nil {
		return m.Raw
	}
	return m.Raw.Add(*m.HardIron)
}

// TriadInto writes the physical flux density into dst.
func (m *Magnetometer) TriadInto(dst *frames.Triad) {
	*dst = m.Triad()
}

// Norm returns the magnitude of the physical flux density in µT.
func (m *Magnetometer) Norm() float64 {
	return m.Triad().Norm()
}

// ToNED converts an ENU sample into NED. When dst is non-nil it is used as
// the output and returned, otherwise a new sample is allocated. The receiver
// is never modified and dst may alias it. A sample already in NED is an
// InvalidCoordinateSystemError; use InNED when the source frame may vary.
func (m *Magnetometer) ToNED(dst *Magnetometer) (*Magnetometer, error) {
	if err := frames.RequireENU(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewMagnetometer()
	}
	convertMagnetometer(m, dst)
	return dst, nil
}

// ToENU converts a NED sample into ENU; otherwise identical to ToNED.
func (m *Magnetometer) ToENU(dst *Magnetometer) (*Magnetometer, error) {
	if err := frames.RequireNED(m.System); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = NewMagnetometer()
	}
	convertMagnetometer(m, dst)
	return dst, nil
}

// InNED returns the sample expressed in NED: a deep copy when it already is,
// a conversion when it is in ENU. It never fails.
func (m *Magnetometer) InNED(dst *Magnetometer) *Magnetometer {
	if m.System == frames.NED {
		if dst == nil {
			dst = NewMagnetometer()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToNED(dst)
	return out
}

// InENU returns the sample expressed in ENU; the counterpart of InNED.
func (m *Magnetometer) InENU(dst *Magnetometer) *Magnetometer {
	if m.System == frames.ENU {
		if dst == nil {
			dst = NewMagnetometer()
		}
		m.CopyTo(dst)
		return dst
	}
	out, _ := m.ToENU(dst)
	return out
}

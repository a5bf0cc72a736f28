package measurement

import (
	"testing"

	"go.viam.com/test"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"
)

func sampleMagnetometer() *Magnetometer {
	return &Magnetometer{
		Raw:       frames.Triad{X: 21.5, Y: -3.25, Z: 44.75},
		HardIron:  &frames.Triad{X: 1.5, Y: -0.25, Z: 2.125},
		Timestamp: 31337,
		Accuracy:  accuracyPtr(AccuracyLow),
		Variant:   Uncalibrated,
		System:    frames.ENU,
	}
}

func TestMagnetometerConvert(t *testing.T) {
	m := sampleMagnetometer()
	ned, err := m.ToNED(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ned.Raw, test.ShouldResemble, frames.Triad{X: -3.25, Y: 21.5, Z: -44.75})
	test.That(t, *ned.HardIron, test.ShouldResemble, frames.Triad{X: -0.25, Y: 1.5, Z: -2.125})
	test.That(t, ned.System, test.ShouldEqual, frames.NED)

	back, err := ned.ToENU(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.Equal(m), test.ShouldBeTrue)
}

func TestMagnetometerConvertPrecondition(t *testing.T) {
	m := sampleMagnetometer()
	_, err := m.ToENU(nil)
	test.That(t, frames.IsInvalidCoordinateSystem(err), test.ShouldBeTrue)

	m.System = frames.NED
	_, err = m.ToNED(nil)
	test.That(t, frames.IsInvalidCoordinateSystem(err), test.ShouldBeTrue)
}

func TestMagnetometerInFrame(t *testing.T) {
	m := sampleMagnetometer()
	enu := m.InENU(nil)
	test.That(t, enu == m, test.ShouldBeFalse)
	test.That(t, enu.Equal(m), test.ShouldBeTrue)

	ned := m.InNED(nil)
	want, err := m.ToNED(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ned.Equal(want), test.ShouldBeTrue)
}

func TestMagnetometerTriad(t *testing.T) {
	m := sampleMagnetometer()
	test.That(t, m.Triad(), test.ShouldResemble, frames.Triad{X: 23, Y: -3.5, Z: 46.875})

	m.HardIron = nil
	test.That(t, m.Triad(), test.ShouldResemble, m.Raw)
}

func TestMagnetometerEqual(t *testing.T) {
	a := sampleMagnetometer()
	test.That(t, a.Equal(sampleMagnetometer()), test.ShouldBeTrue)
	test.That(t, a.Equal(nil), test.ShouldBeFalse)

	for _, mutate := range []func(*Magnetometer){
		func(m *Magnetometer) { m.Raw.Z++ },
		func(m *Magnetometer) { m.HardIron = nil },
		func(m *Magnetometer) { m.HardIron.Y++ },
		func(m *Magnetometer) { m.Timestamp++ },
		func(m *Magnetometer) { m.Accuracy = accuracyPtr(AccuracyHigh) },
		func(m *Magnetometer) { m.Variant = Calibrated },
		func(m *Magnetometer) { m.System = frames.NED },
	} {
		c := sampleMagnetometer()
		mutate(c)
		test.That(t, a.Equal(c), test.ShouldBeFalse)
	}
}

func TestMagnetometerCopy(t *testing.T) {
	a := sampleMagnetometer()
	c := a.Copy()
	test.That(t, c == a, test.ShouldBeFalse)
	test.That(t, c.Equal(a), test.ShouldBeTrue)
	test.That(t, c.HardIron == a.HardIron, test.ShouldBeFalse)

	c.HardIron.Z = -1
	test.That(t, a.HardIron.Z, test.ShouldEqual, float32(2.125))

	b := sampleMagnetometer()
	b.HardIron = nil
	c.CopyFrom(b)
	test.That(t, c.HardIron, test.ShouldBeNil)
}

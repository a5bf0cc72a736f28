package frames

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestSystem(t *testing.T) {
	test.That(t, ENU.String(), test.ShouldEqual, "ENU")
	test.That(t, NED.String(), test.ShouldEqual, "NED")
	test.That(t, System(7).String(), test.ShouldEqual, "System(7)")
	test.That(t, ENU.Opposite(), test.ShouldEqual, NED)
	test.That(t, NED.Opposite(), test.ShouldEqual, ENU)

	var zero System
	test.That(t, zero, test.ShouldEqual, ENU)
}

func TestRequire(t *testing.T) {
	test.That(t, RequireENU(ENU), test.ShouldBeNil)
	test.That(t, RequireNED(NED), test.ShouldBeNil)

	err := RequireENU(NED)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "requires ENU")
	test.That(t, IsInvalidCoordinateSystem(err), test.ShouldBeTrue)

	err = RequireNED(ENU)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "requires NED")
	test.That(t, IsInvalidCoordinateSystem(err), test.ShouldBeTrue)

	wrapped := errors.Wrap(RequireENU(NED), "gyroscope")
	test.That(t, IsInvalidCoordinateSystem(wrapped), test.ShouldBeTrue)

	test.That(t, IsInvalidCoordinateSystem(errors.New("unrelated")), test.ShouldBeFalse)
	test.That(t, IsInvalidCoordinateSystem(nil), test.ShouldBeFalse)
}

func TestTriadSwap(t *testing.T) {
	tr := Triad{X: 1.5, Y: -2.25, Z: 3.125}
	test.That(t, tr.Swapped(), test.ShouldResemble, Triad{X: -2.25, Y: 1.5, Z: -3.125})
	test.That(t, tr.Swapped().Swapped(), test.ShouldResemble, tr)
}

func TestTriadMath(t *testing.T) {
	tr := Triad{X: 1, Y: 2, Z: 2}
	test.That(t, tr.Norm(), test.ShouldAlmostEqual, 3)
	test.That(t, tr.Add(Triad{X: 1, Y: -2, Z: 0.5}), test.ShouldResemble, Triad{X: 2, Y: 0, Z: 2.5})
	test.That(t, tr.Vector(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 2})
}

func TestSwapQuaternion(t *testing.T) {
	q := quat.Number{Real: 0.5, Imag: -0.5, Jmag: 0.25, Kmag: 0.125}
	test.That(t, SwapQuaternion(q), test.ShouldResemble,
		quat.Number{Real: 0.5, Imag: 0.25, Jmag: -0.5, Kmag: -0.125})
	test.That(t, SwapQuaternion(SwapQuaternion(q)), test.ShouldResemble, q)
}

// Changing frames after rotating must agree with rotating by the converted
// quaternion after changing frames.
func TestSwapQuaternionRotationConsistency(t *testing.T) {
	th := math.Pi / 3
	q := quat.Number{
		Real: math.Cos(th / 2),
		Imag: 0.6 * math.Sin(th/2),
		Jmag: 0.8 * math.Sin(th/2),
	}
	v := quat.Number{Imag: 0.3, Jmag: -1.2, Kmag: 2.5}

	rotated := quat.Mul(quat.Mul(q, v), quat.Conj(q))
	want := quat.Number{Imag: rotated.Jmag, Jmag: rotated.Imag, Kmag: -rotated.Kmag}

	qSwapped := SwapQuaternion(q)
	vSwapped := quat.Number{Imag: v.Jmag, Jmag: v.Imag, Kmag: -v.Kmag}
	got := quat.Mul(quat.Mul(qSwapped, vSwapped), quat.Conj(qSwapped))

	test.That(t, got.Real, test.ShouldAlmostEqual, 0)
	test.That(t, got.Imag, test.ShouldAlmostEqual, want.Imag)
	test.That(t, got.Jmag, test.ShouldAlmostEqual, want.Jmag)
	test.That(t, got.Kmag, test.ShouldAlmostEqual, want.Kmag)
}

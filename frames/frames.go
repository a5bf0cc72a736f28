// Package frames defines the reference frames raw inertial measurements are
// expressed in and the exact transforms between them.
//
// Platform sensor events arrive in ENU (x east, y north, z up). Navigation
// code downstream works in NED (x north, y east, z down). Both frames are
// right-handed and the map between them is a pure axis permutation with one
// sign flip, so every conversion in this package is bit-exact and its own
// inverse.
package frames

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// System identifies the reference frame the axis values of a measurement are
// expressed in. The zero value is ENU, the frame platform sensors report in.
type System uint8

const (
	// ENU is the East-North-Up right-handed frame.
	ENU System = iota
	// NED is the North-East-Down right-handed frame.
	NED
)

func (s System) String() string {
	switch s {
	case ENU:
		return "ENU"
	case NED:
		return "NED"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Opposite returns the other frame.
func (s System) Opposite() System {
	if s == ENU {
		return NED
	}
	return ENU
}

// InvalidCoordinateSystemError is returned when a conversion demands a source
// frame the measurement is not in. It signals a contract violation in the
// caller rather than a recoverable condition; the lenient In* conversion
// forms exist for callers whose source frame varies.
type InvalidCoordinateSystemError struct {
	Want System
	Got  System
}

func (e *InvalidCoordinateSystemError) Error() string {
	return fmt.Sprintf("invalid coordinate system: measurement is in %s, conversion requires %s", e.Got, e.Want)
}

// RequireENU errors unless s is ENU. Every strict ENU→NED conversion calls
// this before touching its output, so a failed conversion can never leave a
// partially written result.
func RequireENU(s System) error {
	if s != ENU {
		return &InvalidCoordinateSystemError{Want: ENU, Got: s}
	}
	return nil
}

// RequireNED errors unless s is NED.
func RequireNED(s System) error {
	if s != NED {
		return &InvalidCoordinateSystemError{Want: NED, Got: s}
	}
	return nil
}

// IsInvalidCoordinateSystem reports whether err is an
// InvalidCoordinateSystemError, however deeply wrapped.
func IsInvalidCoordinateSystem(err error) bool {
	var icse *InvalidCoordinateSystemError
	return errors.As(err, &icse)
}

// SwapQuaternion maps an orientation quaternion between ENU and NED. The
// frame change is the half-turn about (1,1,0)/√2, and conjugating by it
// reduces to swapping the i and j components and negating k. Like Swapped on
// a Triad, the result is exact and self-inverse.
func SwapQuaternion(q quat.Number) quat.Number {
	return quat.Number{Real: q.Real, Imag: q.Jmag, Jmag: q.Imag, Kmag: -q.Kmag}
}

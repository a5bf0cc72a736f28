// Package measurement holds the single-sensor measurement value types a
// platform sensor collector populates and downstream fusion consumes.
//
// Each type bundles the raw axis samples of one sensor kind with the bias
// terms the platform estimates alongside them, a monotonic nanosecond
// timestamp, the platform's accuracy report and the reference frame the
// samples are expressed in. All of them are plain value records: copies are
// always deep, equality is field by field, and conversion between ENU and
// NED never mutates the receiver.
package measurement

import (
	"fmt"

	"github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"
)

// Accuracy is the platform's own confidence report for a sample. It is
// carried as a pointer on measurements; nil means the platform did not
// report one.
type Accuracy uint8

const (
	// AccuracyLow marks a sample the platform trusts least.
	AccuracyLow Accuracy = iota
	// AccuracyMedium marks a sample of intermediate confidence.
	AccuracyMedium
	// AccuracyHigh marks a sample the platform trusts most.
	AccuracyHigh
)

func (a Accuracy) String() string {
	switch a {
	case AccuracyLow:
		return "low"
	case AccuracyMedium:
		return "medium"
	case AccuracyHigh:
		return "high"
	}
	return fmt.Sprintf("Accuracy(%d)", int(a))
}

// Variant distinguishes the calibrated and uncalibrated flavors a platform
// exposes for the same physical sensor. Uncalibrated variants report bias
// estimates alongside the raw sample; calibrated ones have the bias already
// removed. The zero value is Uncalibrated, which is what collectors default
// to.
type Variant uint8

const (
	// Uncalibrated is the raw sensor variant.
	Uncalibrated Variant = iota
	// Calibrated is the platform-compensated sensor variant.
	Calibrated
)

func (v Variant) String() string {
	switch v {
	case Uncalibrated:
		return "uncalibrated"
	case Calibrated:
		return "calibrated"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// AttitudeVariant distinguishes absolute attitude, referenced to magnetic
// north, from attitude relative to an arbitrary starting orientation.
type AttitudeVariant uint8

const (
	// AbsoluteAttitude is referenced to magnetic north and gravity.
	AbsoluteAttitude AttitudeVariant = iota
	// RelativeAttitude is referenced to the orientation at sensor start.
	RelativeAttitude
)

func (v AttitudeVariant) String() string {
	switch v {
	case AbsoluteAttitude:
		return "absolute"
	case RelativeAttitude:
		return "relative"
	}
	return fmt.Sprintf("AttitudeVariant(%d)", int(v))
}

func cloneAccuracy(a *Accuracy) *Accuracy {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func accuracyEqual(a, b *Accuracy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneTriad(t *frames.Triad) *frames.Triad {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func triadEqual(a, b *frames.Triad) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func swapTriad(t *frames.Triad) *frames.Triad {
	if t == nil {
		return nil
	}
	s := t.Swapped()
	return &s
}

func cloneFloat64(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func float64Equal(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

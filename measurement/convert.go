package measurement

import "github.com/albertoirurueta/irurueta-android-navigation-inertial-sub015/frames"

// The convert* routines below are the conversion core shared by both
// directions: the ENU↔NED map is its own inverse, so one routine per sensor
// kind swaps the axes and flips the frame tag. They do not validate the
// source frame; the exported To*/In* methods do that before calling in here.
// src and dst may alias, since every component is read before it is written.

func convertAccelerometer(src, dst *Accelerometer) {
	dst.Raw = src.Raw.Swapped()
	dst.Bias = src.Bias.Swapped()
	dst.Timestamp = src.Timestamp
	dst.Accuracy = cloneAccuracy(src.Accuracy)
	dst.Variant = src.Variant
	dst.System = src.System.Opposite()
}

func convertGyroscope(src, dst *Gyroscope) {
	dst.Raw = src.Raw.Swapped()
	dst.Bias = swapTriad(src.Bias)
	dst.Timestamp = src.Timestamp
	dst.Accuracy = cloneAccuracy(src.Accuracy)
	dst.Variant = src.Variant
	dst.System = src.System.Opposite()
}

func convertMagnetometer(src, dst *Magnetometer) {
	dst.Raw = src.Raw.Swapped()
	dst.HardIron = swapTriad(src.HardIron)
	dst.Timestamp = src.Timestamp
	dst.Accuracy = cloneAccuracy(src.Accuracy)
	dst.Variant = src.Variant
	dst.System = src.System.Opposite()
}

func convertGravity(src, dst *Gravity) {
	dst.Raw = src.Raw.Swapped()
	dst.Timestamp = src.Timestamp
	dst.Accuracy = cloneAccuracy(src.Accuracy)
	dst.System = src.System.Opposite()
}

func convertAttitude(src, dst *Attitude) {
	dst.Orientation = frames.SwapQuaternion(src.Orientation)
	dst.HeadingAccuracy = cloneFloat64(src.HeadingAccuracy)
	dst.Timestamp = src.Timestamp
	dst.Accuracy = cloneAccuracy(src.Accuracy)
	dst.Variant = src.Variant
	dst.System = src.System.Opposite()
}

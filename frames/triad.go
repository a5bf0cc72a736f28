package frames

import "github.com/golang/geo/r3"

// Triad is a three-component sensor sample at the float32 precision platform
// sensors report. The meaning of the components depends on the sensor kind
// (m/s², rad/s or µT) and on the System tag of the measurement carrying it.
type Triad struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of t and o.
func (t Triad) Add(o Triad) Triad {
	return Triad{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z}
}

// Vector widens the sample to an r3.Vector for downstream math.
func (t Triad) Vector() r3.Vector {
	return r3.Vector{X: float64(t.X), Y: float64(t.Y), Z: float64(t.Z)}
}

// Norm returns the Euclidean norm of the sample.
func (t Triad) Norm() float64 {
	return t.Vector().Norm()
}

// Swapped maps the triad between ENU and NED axis order: (x,y,z) → (y,x,-z).
// The east and north components trade places and the vertical component
// changes sign. The transform is exact in float32 and its own inverse.
func (t Triad) Swapped() Triad {
	return Triad{X: t.Y, Y: t.X, Z: -t.Z}
}

package vectors

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func NewGonumMath() Math {
	return &gonumMath{}
}

type gonumMath struct{}

// RotationMatrix returns the matrix rotating by angle (radians) about
// axis, counter-clockwise when looking down the axis.
func (gonumMath) RotationMatrix(axis r3.Vec, angle float64) *r3.Mat {
	if angle == 0 || r3.Norm(axis) == 0 {
		return r3.Eye()
	}

	return r3.NewRotation(angle, axis).Mat()
}

// AngleBetween returns the unsigned angle in [0, π] between a and b.
func (gonumMath) AngleBetween(a, b r3.Vec) float64 {
	return angleBetween(a, b)
}

func angleBetween(a, b r3.Vec) float64 {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}

	cos := r3.Dot(a, b) / (na * nb)

	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// ColWiseAngles returns the angle between each pair a[i], b[i].
func ColWiseAngles(a, b []r3.Vec) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	angles := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		angles[idx] = angleBetween(a[idx], b[idx])
	}

	return angles
}

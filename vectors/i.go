package vectors

import "gonum.org/v1/gonum/spatial/r3"

// Math is the vector collaborator the geometry builders rotate with.
type Math interface {
	RotationMatrix(axis r3.Vec, angle float64) *r3.Mat
	AngleBetween(a, b r3.Vec) float64
}

package vectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVecInDelta(t *testing.T, expected, actual r3.Vec) {
	t.Helper()

	assert.InDelta(t, expected.X, actual.X, 1e-12)
	assert.InDelta(t, expected.Y, actual.Y, 1e-12)
	assert.InDelta(t, expected.Z, actual.Z, 1e-12)
}

func TestRotationMatrix(t *testing.T) {
	vm := NewGonumMath()

	m := vm.RotationMatrix(r3.Vec{Z: 1}, math.Pi/2)
	assertVecInDelta(t, r3.Vec{Y: 1}, m.MulVec(r3.Vec{X: 1}))

	m = vm.RotationMatrix(r3.Vec{X: 1}, math.Pi)
	assertVecInDelta(t, r3.Vec{Z: -1}, m.MulVec(r3.Vec{Z: 1}))

	m = vm.RotationMatrix(r3.Vec{X: 1}, 0)
	assertVecInDelta(t, r3.Vec{X: 1, Y: 2, Z: 3}, m.MulVec(r3.Vec{X: 1, Y: 2, Z: 3}))
}

func TestAngleBetween(t *testing.T) {
	vm := NewGonumMath()

	assert.InDelta(t, math.Pi/2, vm.AngleBetween(r3.Vec{X: 1}, r3.Vec{Y: 3}), 1e-12)
	assert.InDelta(t, math.Pi, vm.AngleBetween(r3.Vec{Z: 1}, r3.Vec{Z: -2}), 1e-12)
	assert.InDelta(t, 0, vm.AngleBetween(r3.Vec{X: 1, Y: 1}, r3.Vec{X: 2, Y: 2}), 1e-7)
	assert.EqualValues(t, 0, vm.AngleBetween(r3.Vec{}, r3.Vec{X: 1}))
}

func TestColWiseAngles(t *testing.T) {
	angles := ColWiseAngles(
		[]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
		[]r3.Vec{{Y: 1}, {Y: -1}},
	)
	assert.Len(t, angles, 2)
	assert.InDelta(t, math.Pi/2, angles[0], 1e-12)
	assert.InDelta(t, math.Pi, angles[1], 1e-12)
}

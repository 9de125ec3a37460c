package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const quadMinPoints = 3

// FitQuad fits x and y to a quadratic by least squares and returns the
// polynomial with the position and value of its turning point.
func FitQuad(x, y []float64) (p Poly, minX, minY float64, err error) {
	if len(x) != len(y) {
		err = newValidationError("x and y must have the same length")

		return
	}

	if len(x) < quadMinPoints {
		err = newValidationError("x and y must be of at least length 3")

		return
	}

	if distinctCount(x, quadMinPoints) < quadMinPoints {
		err = newValidationError("x must hold at least 3 distinct values")

		return
	}

	// fit in t = (x - centre) / scale, where t spans [-1, 1]
	centre, scale := centreScale(x)

	t := make([]float64, len(x))
	copy(t, x)
	floats.AddConst(-centre, t)
	floats.Scale(1/scale, t)

	q, err := polyFit(t, y, 2)
	if err != nil {
		return
	}

	dq := q.Deriv()
	tMin := -dq[1] / dq[0]

	p = substitute(q, centre, scale)
	minX = centre + scale*tMin
	minY = q.Eval(tMin)

	return
}

func distinctCount(x []float64, limit int) int {
	seen := make(map[float64]struct{}, limit)

	for _, v := range x {
		seen[v] = struct{}{}

		if len(seen) >= limit {
			break
		}
	}

	return len(seen)
}

func centreScale(x []float64) (centre, scale float64) {
	lo, hi := floats.Min(x), floats.Max(x)

	centre = lo + (hi-lo)/2
	scale = (hi - lo) / 2

	if scale == 0 || math.IsInf(scale, 0) {
		scale = 1
	}

	return
}

// substitute returns r with r(x) = q((x - centre) / scale).
func substitute(q Poly, centre, scale float64) Poly {
	lin := Poly{1 / scale, -centre / scale}

	r := Poly{q[0]}

	for _, c := range q[1:] {
		next := make(Poly, len(r)+1)

		for idx, v := range r {
			next[idx] += v * lin[0]
			next[idx+1] += v * lin[1]
		}

		next[len(r)] += c
		r = next
	}

	return r
}

func polyFit(x, y []float64, degree int) (Poly, error) {
	cols := degree + 1

	vander := mat.NewDense(len(x), cols, nil)

	for r, v := range x {
		pw := 1.0

		for c := cols - 1; c >= 0; c-- {
			vander.Set(r, c, pw)
			pw *= v
		}
	}

	var coeffs mat.VecDense

	err := coeffs.SolveVec(vander, mat.NewVecDense(len(y), append([]float64(nil), y...)))
	if err != nil {
		// a finite condition number still leaves the least squares solution in coeffs
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, err
		}
	}

	p := make(Poly, cols)
	for idx := range p {
		p[idx] = coeffs.AtVec(idx)
	}

	return p, nil
}

package curve

// Poly holds polynomial coefficients, highest power first.
type Poly []float64

func (p Poly) Degree() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

func (p Poly) Coeffs() []float64 {
	return append([]float64(nil), p...)
}

// Eval evaluates p at x with Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	var v float64

	for _, c := range p {
		v = v*x + c
	}

	return v
}

func (p Poly) Deriv() Poly {
	if len(p) <= 1 {
		return Poly{0}
	}

	n := len(p) - 1
	d := make(Poly, n)

	for idx := 0; idx < n; idx++ {
		d[idx] = p[idx] * float64(n-idx)
	}

	return d
}

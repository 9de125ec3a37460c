package curve

import "math"

// exponent arguments beyond this magnitude saturate the logistic term
const sigmoidClampArg = 50

// SigmoidAt evaluates a * (1/(1+exp(-b*(x-c))) - d).
//
//	a scales the curve along y
//	b sharpness of the S bend
//	c displaces the curve along x
//	d displaces the curve along y
func SigmoidAt(x, a, b, c, d float64) float64 {
	return a * (logistic(-b*(x-c)) - d)
}

func logistic(eArg float64) float64 {
	switch {
	case eArg < -sigmoidClampArg:
		return 1
	case eArg > sigmoidClampArg:
		return 0
	default:
		return 1 / (1 + math.Exp(eArg))
	}
}

// Sigmoid applies SigmoidAt to every sample of x.
func Sigmoid(x []float64, a, b, c, d float64) []float64 {
	y := make([]float64, len(x))

	for idx, v := range x {
		y[idx] = SigmoidAt(v, a, b, c, d)
	}

	return y
}

// SingleSigmoid is one S curve centred at width/2.
func SingleSigmoid(x []float64, a, b, width float64) []float64 {
	return Sigmoid(x, a, b, width/2, 0)
}

// DoubleSigmoid stitches three logistic pieces into a rise-plateau-rise
// curve over [0, width]. Band boundaries sit at width/4 and 3*width/4,
// the pieces are centred at 0, width/2 and width and shifted so they
// meet at the boundaries.
func DoubleSigmoid(x []float64, a, b, width float64) []float64 {
	lowX := width * (1.0 / 4)
	highX := width * (3.0 / 4)

	y := make([]float64, len(x))

	for idx, v := range x {
		switch {
		case v < lowX:
			y[idx] = SigmoidAt(v, a, b, 0, 0.5)
		case v < highX:
			y[idx] = SigmoidAt(v, a, b, width/2, -0.5)
		default:
			y[idx] = SigmoidAt(v, a, b, width, -1.5)
		}
	}

	return y
}

package curve

const (
	DefaultSlope     = 1.0
	DefaultIntercept = 0.0
)

func Linear(x, m, c float64) float64 {
	return m*x + c
}

func LinearSlice(x []float64, m, c float64) []float64 {
	y := make([]float64, len(x))

	for idx, v := range x {
		y[idx] = Linear(v, m, c)
	}

	return y
}

package plotting

import (
	"github.com/sgostarter/libplotting/trace"
	"gonum.org/v1/gonum/spatial/r2"
)

type gridOptions struct {
	origin r2.Vec
	line   trace.Line
	marker *trace.Marker
}

type GridOption func(o *gridOptions)

// WithGridOrigin sets where grid position (0, 0) is drawn.
func WithGridOrigin(origin r2.Vec) GridOption {
	return func(o *gridOptions) {
		o.origin = origin
	}
}

// WithGridLine lays the set fields of line over the default grid line.
func WithGridLine(line trace.Line) GridOption {
	return func(o *gridOptions) {
		o.line = o.line.Merge(line)
	}
}

// WithGridMarkers adds a marker at every grid line intersection.
func WithGridMarkers(marker trace.Marker) GridOption {
	return func(o *gridOptions) {
		o.marker = &marker
	}
}

// GridTraces returns line traces forming a parallelogram grid of
// gridSize[0] x gridSize[1] cells. basis holds the two cell edge vectors.
// Lines parallel to basis[0] come first, then lines parallel to basis[1],
// then the optional marker trace.
func (p *Plotter) GridTraces(basis [2]r2.Vec, gridSize [2]int, opts ...GridOption) []*trace.Scatter {
	o := &gridOptions{
		line: p.cfg.GridLine,
	}

	for _, opt := range opts {
		opt(o)
	}

	nx, ny := gridSize[0], gridSize[1]
	if nx < 0 {
		nx = 0
	}

	if ny < 0 {
		ny = 0
	}

	at := func(i, j float64) r2.Vec {
		return r2.Add(o.origin, r2.Add(r2.Scale(i, basis[0]), r2.Scale(j, basis[1])))
	}

	newLine := func(from, to r2.Vec) *trace.Scatter {
		line := o.line

		s := trace.NewScatter([]float64{from.X, to.X}, []float64{from.Y, to.Y})
		s.Mode = trace.ModeLines
		s.ShowLegend = trace.Bool(false)
		s.HoverInfo = trace.HoverNone
		s.Line = &line

		return s
	}

	traces := make([]*trace.Scatter, 0, nx+ny+3)

	for j := 0; j <= ny; j++ {
		traces = append(traces, newLine(at(0, float64(j)), at(float64(nx), float64(j))))
	}

	for i := 0; i <= nx; i++ {
		traces = append(traces, newLine(at(float64(i), 0), at(float64(i), float64(ny))))
	}

	if o.marker != nil {
		xs := make([]float64, 0, (nx+1)*(ny+1))
		ys := make([]float64, 0, (nx+1)*(ny+1))

		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				v := at(float64(i), float64(j))
				xs = append(xs, v.X)
				ys = append(ys, v.Y)
			}
		}

		marker := *o.marker

		s := trace.NewScatter(xs, ys)
		s.Mode = trace.ModeMarkers
		s.ShowLegend = trace.Bool(false)
		s.HoverInfo = trace.HoverNone
		s.Marker = &marker

		traces = append(traces, s)
	}

	return traces
}

func GridTraces(basis [2]r2.Vec, gridSize [2]int, opts ...GridOption) []*trace.Scatter {
	return Default().GridTraces(basis, gridSize, opts...)
}

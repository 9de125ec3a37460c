package plotting

import (
	"fmt"
	"math"

	"github.com/sgostarter/libplotting/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

type circleShapeOptions struct {
	origin    r2.Vec
	fillColor string
	line      *trace.Line
	text      string
}

type CircleShapeOption func(o *circleShapeOptions)

func WithShapeOrigin(origin r2.Vec) CircleShapeOption {
	return func(o *circleShapeOptions) {
		o.origin = origin
	}
}

func WithShapeFillColor(color string) CircleShapeOption {
	return func(o *circleShapeOptions) {
		o.fillColor = color
	}
}

func WithShapeLine(line trace.Line) CircleShapeOption {
	return func(o *circleShapeOptions) {
		o.line = &line
	}
}

// WithShapeText sets the hover text shown at the circle centre.
func WithShapeText(text string) CircleShapeOption {
	return func(o *circleShapeOptions) {
		o.text = text
	}
}

// CircleShape returns a layout shape bounding the circle and an invisible
// marker trace at its centre which carries the hover text, since layout
// shapes do not hover.
func (p *Plotter) CircleShape(radius float64, opts ...CircleShapeOption) (*trace.Scatter, *trace.Shape) {
	o := &circleShapeOptions{}

	for _, opt := range opts {
		opt(o)
	}

	shape := &trace.Shape{
		Type:      trace.ShapeCircle,
		X0:        o.origin.X - radius,
		X1:        o.origin.X + radius,
		Y0:        o.origin.Y - radius,
		Y1:        o.origin.Y + radius,
		FillColor: o.fillColor,
		Line:      o.line,
	}

	s := trace.NewScatter([]float64{o.origin.X}, []float64{o.origin.Y})
	s.Text = trace.PointTexts(o.text)
	s.Mode = trace.ModeMarkers
	s.Opacity = trace.Float(0)
	s.ShowLegend = trace.Bool(false)

	return s, shape
}

func CircleShape(radius float64, opts ...CircleShapeOption) (*trace.Scatter, *trace.Shape) {
	return Default().CircleShape(radius, opts...)
}

type circleOptions struct {
	origin  r2.Vec
	start   float64
	stop    float64
	radians bool
	line    trace.Line
	fill    trace.Fill
	segment bool
	samples int
}

type CircleOption func(o *circleOptions)

func WithCircleOrigin(origin r2.Vec) CircleOption {
	return func(o *circleOptions) {
		o.origin = origin
	}
}

// WithAngles sets the arc, measured from the positive x-axis, in degrees
// unless WithRadians is given.
func WithAngles(start, stop float64) CircleOption {
	return func(o *circleOptions) {
		o.start = start
		o.stop = stop
	}
}

func WithRadians() CircleOption {
	return func(o *circleOptions) {
		o.radians = true
	}
}

func WithCircleLine(line trace.Line) CircleOption {
	return func(o *circleOptions) {
		o.line = o.line.Merge(line)
	}
}

func WithCircleFill(fill trace.Fill) CircleOption {
	return func(o *circleOptions) {
		o.fill = o.fill.Merge(fill)
	}
}

// WithSegment outlines the chord-bounded segment instead of the sector,
// so the centre is not part of the outline.
func WithSegment() CircleOption {
	return func(o *circleOptions) {
		o.segment = true
	}
}

func WithCircleSamples(n int) CircleOption {
	return func(o *circleOptions) {
		if n >= 2 {
			o.samples = n
		}
	}
}

// CircleTrace returns a scatter trace outlining a circle, sector or
// segment. A sector outline starts and ends at the centre; a full circle
// never does.
func (p *Plotter) CircleTrace(radius float64, opts ...CircleOption) *trace.Scatter {
	o := &circleOptions{
		stop:    360,
		fill:    p.cfg.CircleFill,
		samples: p.cfg.CircleSamples,
	}

	for _, opt := range opts {
		opt(o)
	}

	start, stop := o.start, o.stop
	if !o.radians {
		start = start * math.Pi / 180
		stop = stop * math.Pi / 180
	}

	theta := floats.Span(make([]float64, o.samples), start, stop)

	closeThroughCentre := !o.segment && !isClose(math.Abs(start-stop), 2*math.Pi)

	n := len(theta)
	if closeThroughCentre {
		n += 2
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)

	if closeThroughCentre {
		xs = append(xs, o.origin.X)
		ys = append(ys, o.origin.Y)
	}

	for _, t := range theta {
		sin, cos := math.Sincos(t)
		xs = append(xs, radius*cos+o.origin.X)
		ys = append(ys, radius*sin+o.origin.Y)
	}

	if closeThroughCentre {
		xs = append(xs, o.origin.X)
		ys = append(ys, o.origin.Y)
	}

	s := trace.NewScatter(xs, ys)
	s.HoverOn = trace.HoverFills
	s.Text = trace.SingleText(fmt.Sprintf("(%.3f, %.3f)", o.origin.X, o.origin.Y))
	s.SetFill(o.fill)

	if !o.line.IsZero() {
		line := o.line
		s.Line = &line
	}

	return s
}

func CircleTrace(radius float64, opts ...CircleOption) *trace.Scatter {
	return Default().CircleTrace(radius, opts...)
}

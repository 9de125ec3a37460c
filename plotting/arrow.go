package plotting

import (
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotting/trace"
	"gonum.org/v1/gonum/spatial/r3"
)

type arrowOptions struct {
	headLength *float64
	headRadius *float64
	stem       trace.Line
	points     int
	color      string
	opacity    float64
}

type ArrowOption func(o *arrowOptions)

// WithHeadLength sets the tip-to-base length of the head. Default is
// 10% of the arrow length.
func WithHeadLength(v float64) ArrowOption {
	return func(o *arrowOptions) {
		o.headLength = &v
	}
}

// WithHeadRadius sets the radius of the head base. Default is 5% of the
// arrow length.
func WithHeadRadius(v float64) ArrowOption {
	return func(o *arrowOptions) {
		o.headRadius = &v
	}
}

func WithStemLine(line trace.Line) ArrowOption {
	return func(o *arrowOptions) {
		o.stem = o.stem.Merge(line)
	}
}

// WithArrowPoints sets how many points approximate the head base circle.
func WithArrowPoints(n int) ArrowOption {
	return func(o *arrowOptions) {
		if n >= 3 {
			o.points = n
		}
	}
}

func WithArrowColor(color string) ArrowOption {
	return func(o *arrowOptions) {
		o.color = color
	}
}

func WithArrowOpacity(opacity float64) ArrowOption {
	return func(o *arrowOptions) {
		o.opacity = opacity
	}
}

// Arrow3D returns the traces of a 3D arrow: the head base disc, the head
// cone and the stem. The stem starts at origin; the tip ends length away
// along dir.
func (p *Plotter) Arrow3D(dir, origin r3.Vec, length float64, opts ...ArrowOption) ([]trace.Trace, error) {
	norm := r3.Norm(dir)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		p.logger.WithFields(l.ErrorField(ErrDegenerateDirection)).Error("arrow direction")

		return nil, ErrDegenerateDirection
	}

	o := &arrowOptions{
		points:  p.cfg.ArrowPoints,
		color:   p.cfg.ArrowColor,
		opacity: p.cfg.ArrowOpacity,
	}

	for _, opt := range opts {
		opt(o)
	}

	headLength := length * p.cfg.ArrowHeadLengthRatio
	if o.headLength != nil {
		headLength = *o.headLength
	}

	headRadius := length * p.cfg.ArrowHeadRadiusRatio
	if o.headRadius != nil {
		headRadius = *o.headRadius
	}

	if o.stem.Width == 0 {
		o.stem.Width = headRadius * p.cfg.ArrowStemWidthRatio
	}

	if o.stem.Color == "" {
		o.stem.Color = o.color
	}

	// head is built pointing along +z with its base centred on (0,0,0);
	// vertex 0 is the base centre for the disc and the tip for the cone
	rt := p.ring(o.points)

	base := make([]r3.Vec, o.points+1)
	for idx := 0; idx < o.points; idx++ {
		base[idx+1] = r3.Vec{X: headRadius * rt.cos[idx], Y: headRadius * rt.sin[idx]}
	}

	cone := make([]r3.Vec, len(base))
	copy(cone, base)
	cone[0] = r3.Vec{Z: headLength}

	dirUnit := r3.Scale(1/norm, dir)
	rot := p.vm.RotationMatrix(p.alignZ(dirUnit))

	translate := r3.Add(origin, r3.Scale(length-headLength, dirUnit))

	i := make([]int, o.points)
	j := make([]int, o.points)
	k := make([]int, o.points)

	for idx := 0; idx < o.points; idx++ {
		j[idx] = idx + 1
		k[idx] = (idx+o.points-1)%o.points + 1
	}

	newHead := func(vs []r3.Vec) *trace.Mesh3D {
		xs, ys, zs := transform(vs, rot, translate)

		m := trace.NewMesh3D(xs, ys, zs,
			append([]int(nil), i...), append([]int(nil), j...), append([]int(nil), k...))
		m.HoverInfo = trace.HoverNone
		m.Color = o.color
		m.Opacity = trace.Float(o.opacity)

		return m
	}

	stemLine := o.stem

	stem := trace.NewScatter3D(
		[]float64{origin.X, translate.X},
		[]float64{origin.Y, translate.Y},
		[]float64{origin.Z, translate.Z},
	)
	stem.HoverInfo = trace.HoverNone
	stem.Mode = trace.ModeLines
	stem.Line = &stemLine
	stem.Projection = &trace.Projection{}

	return []trace.Trace{newHead(base), newHead(cone), stem}, nil
}

// alignZ returns the axis and angle rotating +z onto the unit vector d.
// The parallel and anti-parallel cases are fixed up front, where z x d
// vanishes.
func (p *Plotter) alignZ(d r3.Vec) (axis r3.Vec, angle float64) {
	zUnit := r3.Vec{Z: 1}

	switch {
	case allClose(zUnit, d):
		return r3.Vec{X: 1}, 0
	case allClose(r3.Scale(-1, zUnit), d):
		return r3.Vec{X: 1}, math.Pi
	}

	return r3.Cross(zUnit, d), p.vm.AngleBetween(d, zUnit)
}

func allClose(a, b r3.Vec) bool {
	return isClose(a.X, b.X) && isClose(a.Y, b.Y) && isClose(a.Z, b.Z)
}

func transform(vs []r3.Vec, rot *r3.Mat, translate r3.Vec) (xs, ys, zs []float64) {
	xs = make([]float64, len(vs))
	ys = make([]float64, len(vs))
	zs = make([]float64, len(vs))

	for idx, v := range vs {
		w := r3.Add(rot.MulVec(v), translate)
		xs[idx], ys[idx], zs[idx] = w.X, w.Y, w.Z
	}

	return
}

func Arrow3D(dir, origin r3.Vec, length float64, opts ...ArrowOption) ([]trace.Trace, error) {
	return Default().Arrow3D(dir, origin, length, opts...)
}

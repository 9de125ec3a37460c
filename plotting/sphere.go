package plotting

import (
	"math"

	"github.com/sgostarter/libplotting/trace"
	"gonum.org/v1/gonum/spatial/r3"
)

type sphereOptions struct {
	color     string
	segments  int
	lighting  trace.Lighting
	thetaMax  float64
	phiMax    float64
	label     *string
	wireframe bool
	origin    r3.Vec
}

type SphereOption func(o *sphereOptions)

func WithSphereColor(color string) SphereOption {
	return func(o *sphereOptions) {
		o.color = color
	}
}

// WithSphereSegments sets the number of samples along each angle.
func WithSphereSegments(n int) SphereOption {
	return func(o *sphereOptions) {
		if n >= 2 {
			o.segments = n
		}
	}
}

func WithSphereLighting(lighting trace.Lighting) SphereOption {
	return func(o *sphereOptions) {
		o.lighting = lighting
	}
}

// WithPolarMax limits the polar angle θ to [0, thetaMax].
func WithPolarMax(thetaMax float64) SphereOption {
	return func(o *sphereOptions) {
		o.thetaMax = thetaMax
	}
}

// WithAzimuthMax limits the azimuthal angle φ to [0, phiMax].
func WithAzimuthMax(phiMax float64) SphereOption {
	return func(o *sphereOptions) {
		o.phiMax = phiMax
	}
}

func WithSphereLabel(label string) SphereOption {
	return func(o *sphereOptions) {
		o.label = &label
	}
}

// WithWireframe hides the surface and draws its contour lines instead.
func WithWireframe() SphereOption {
	return func(o *sphereOptions) {
		o.wireframe = true
	}
}

func WithSphereOrigin(origin r3.Vec) SphereOption {
	return func(o *sphereOptions) {
		o.origin = origin
	}
}

// Sphere returns a surface trace of a (segment of a) sphere, using the
// physics convention: θ is polar, φ azimuthal. Row i of the grids runs
// at φ[i], column j at θ[j].
func (p *Plotter) Sphere(radius float64, opts ...SphereOption) []*trace.Surface {
	o := &sphereOptions{
		color:    p.cfg.SphereColor,
		segments: p.cfg.SphereSegments,
		lighting: p.cfg.SphereLighting,
		thetaMax: math.Pi,
		phiMax:   2 * math.Pi,
	}

	for _, opt := range opts {
		opt(o)
	}

	n := o.segments
	st := p.sphereAngles(n, o.thetaMax, o.phiMax)

	x := newGrid(n)
	y := newGrid(n)
	z := newGrid(n)
	surfaceColor := newGrid(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x[i][j] = radius*st.cosPhi[i]*st.sinTheta[j] + o.origin.X
			y[i][j] = radius*st.sinPhi[i]*st.sinTheta[j] + o.origin.Y
			z[i][j] = radius*st.cosTheta[j] + o.origin.Z
		}
	}

	lighting := o.lighting

	s := trace.NewSurface(x, y, z)
	s.SurfaceColor = surfaceColor
	s.CAuto = trace.Bool(false)
	s.ColorScale = trace.UniformColorScale(o.color)
	s.ShowScale = trace.Bool(false)
	s.Contours = &trace.Contours{}
	s.Lighting = &lighting
	s.HoverInfo = trace.HoverNone

	if o.wireframe {
		s.HideSurface = true
		s.Contours.X.Show = true
		s.Contours.Y.Show = true
		s.Contours.Z.Show = true
	}

	if o.label != nil {
		s.HoverInfo = trace.HoverText
		s.Text = make([][]string, n)

		for i := range s.Text {
			s.Text[i] = make([]string, n)
			for j := range s.Text[i] {
				s.Text[i][j] = *o.label
			}
		}
	}

	return []*trace.Surface{s}
}

func newGrid(n int) [][]float64 {
	g := make([][]float64, n)
	for idx := range g {
		g[idx] = make([]float64, n)
	}

	return g
}

func Sphere(radius float64, opts ...SphereOption) []*trace.Surface {
	return Default().Sphere(radius, opts...)
}

package trace

const (
	TypeScatter   = "scatter"
	TypeScatter3D = "scatter3d"
	TypeMesh3D    = "mesh3d"
	TypeSurface   = "surface"
)

const (
	ShapeCircle = "circle"
)

const (
	ModeLines   = "lines"
	ModeMarkers = "markers"

	HoverNone  = "none"
	HoverText  = "text"
	HoverFills = "fills"

	FillToZeroX = "tozerox"
	FillToSelf  = "toself"
	FillNone    = "none"
)

// Trace is one renderable element of a figure's data list.
type Trace interface {
	TraceType() string

	TraceUID() string
	SetTraceUID(uid string)
}

func newTrace(typ string) (Trace, error) {
	switch typ {
	case TypeScatter:
		return &Scatter{}, nil
	case TypeScatter3D:
		return &Scatter3D{}, nil
	case TypeMesh3D:
		return &Mesh3D{}, nil
	case TypeSurface:
		return &Surface{}, nil
	}

	return nil, unknownTraceType(typ)
}

func Bool(v bool) *bool {
	return &v
}

func Float(v float64) *float64 {
	return &v
}

package trace

type Scatter struct {
	Type       string    `json:"type" yaml:"type"`
	UID        string    `json:"uid,omitempty" yaml:"uid,omitempty"`
	X          []float64 `json:"x" yaml:"x"`
	Y          []float64 `json:"y" yaml:"y"`
	Mode       string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	ShowLegend *bool     `json:"showlegend,omitempty" yaml:"showlegend,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty" yaml:"hoverinfo,omitempty"`
	HoverOn    string    `json:"hoveron,omitempty" yaml:"hoveron,omitempty"`
	Text       *Text     `json:"text,omitempty" yaml:"text,omitempty"`
	Opacity    *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Line       *Line     `json:"line,omitempty" yaml:"line,omitempty"`
	Marker     *Marker   `json:"marker,omitempty" yaml:"marker,omitempty"`
	Fill       string    `json:"fill,omitempty" yaml:"fill,omitempty"`
	FillColor  string    `json:"fillcolor,omitempty" yaml:"fillcolor,omitempty"`
}

func NewScatter(x, y []float64) *Scatter {
	return &Scatter{
		Type: TypeScatter,
		X:    x,
		Y:    y,
	}
}

func (s *Scatter) TraceType() string      { return TypeScatter }
func (s *Scatter) TraceUID() string       { return s.UID }
func (s *Scatter) SetTraceUID(uid string) { s.UID = uid }

func (s *Scatter) SetFill(f Fill) {
	s.Fill = f.Fill
	s.FillColor = f.FillColor
}

type Scatter3D struct {
	Type       string      `json:"type" yaml:"type"`
	UID        string      `json:"uid,omitempty" yaml:"uid,omitempty"`
	X          []float64   `json:"x" yaml:"x"`
	Y          []float64   `json:"y" yaml:"y"`
	Z          []float64   `json:"z" yaml:"z"`
	Mode       string      `json:"mode,omitempty" yaml:"mode,omitempty"`
	HoverInfo  string      `json:"hoverinfo,omitempty" yaml:"hoverinfo,omitempty"`
	Line       *Line       `json:"line,omitempty" yaml:"line,omitempty"`
	Projection *Projection `json:"projection,omitempty" yaml:"projection,omitempty"`
}

func NewScatter3D(x, y, z []float64) *Scatter3D {
	return &Scatter3D{
		Type: TypeScatter3D,
		X:    x,
		Y:    y,
		Z:    z,
	}
}

func (s *Scatter3D) TraceType() string      { return TypeScatter3D }
func (s *Scatter3D) TraceUID() string       { return s.UID }
func (s *Scatter3D) SetTraceUID(uid string) { s.UID = uid }

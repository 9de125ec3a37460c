package trace

type Surface struct {
	Type         string      `json:"type" yaml:"type"`
	UID          string      `json:"uid,omitempty" yaml:"uid,omitempty"`
	X            [][]float64 `json:"x" yaml:"x"`
	Y            [][]float64 `json:"y" yaml:"y"`
	Z            [][]float64 `json:"z" yaml:"z"`
	SurfaceColor [][]float64 `json:"surfacecolor,omitempty" yaml:"surfacecolor,omitempty"`
	CAuto        *bool       `json:"cauto,omitempty" yaml:"cauto,omitempty"`
	ColorScale   []ColorStop `json:"colorscale,omitempty" yaml:"colorscale,omitempty"`
	ShowScale    *bool       `json:"showscale,omitempty" yaml:"showscale,omitempty"`
	Contours     *Contours   `json:"contours,omitempty" yaml:"contours,omitempty"`
	Lighting     *Lighting   `json:"lighting,omitempty" yaml:"lighting,omitempty"`
	HoverInfo    string      `json:"hoverinfo,omitempty" yaml:"hoverinfo,omitempty"`
	HideSurface  bool        `json:"hidesurface,omitempty" yaml:"hidesurface,omitempty"`
	Text         [][]string  `json:"text,omitempty" yaml:"text,omitempty"`
}

func NewSurface(x, y, z [][]float64) *Surface {
	return &Surface{
		Type: TypeSurface,
		X:    x,
		Y:    y,
		Z:    z,
	}
}

func (s *Surface) TraceType() string      { return TypeSurface }
func (s *Surface) TraceUID() string       { return s.UID }
func (s *Surface) SetTraceUID(uid string) { s.UID = uid }

package trace

// Shape is an entry of a layout's shapes list.
type Shape struct {
	Type      string  `json:"type" yaml:"type"`
	XRef      string  `json:"xref,omitempty" yaml:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty" yaml:"yref,omitempty"`
	X0        float64 `json:"x0" yaml:"x0"`
	X1        float64 `json:"x1" yaml:"x1"`
	Y0        float64 `json:"y0" yaml:"y0"`
	Y1        float64 `json:"y1" yaml:"y1"`
	FillColor string  `json:"fillcolor,omitempty" yaml:"fillcolor,omitempty"`
	Line      *Line   `json:"line,omitempty" yaml:"line,omitempty"`
}

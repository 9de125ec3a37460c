package trace

type Line struct {
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Dash  string  `json:"dash,omitempty" yaml:"dash,omitempty"`
}

// Merge returns l with every set field of o laid over it.
func (l Line) Merge(o Line) Line {
	if o.Color != "" {
		l.Color = o.Color
	}

	if o.Width != 0 {
		l.Width = o.Width
	}

	if o.Dash != "" {
		l.Dash = o.Dash
	}

	return l
}

func (l Line) IsZero() bool {
	return l == Line{}
}

type Marker struct {
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	Size    float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Symbol  string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// Fill is flattened into a scatter trace as fill/fillcolor.
type Fill struct {
	Fill      string `json:"fill,omitempty" yaml:"fill,omitempty"`
	FillColor string `json:"fillcolor,omitempty" yaml:"fillcolor,omitempty"`
}

func (f Fill) Merge(o Fill) Fill {
	if o.Fill != "" {
		f.Fill = o.Fill
	}

	if o.FillColor != "" {
		f.FillColor = o.FillColor
	}

	return f
}

// Lighting mirrors plotly's surface lighting. Zero fields are left to the
// renderer's defaults.
type Lighting struct {
	Ambient   float64 `json:"ambient,omitempty" yaml:"ambient,omitempty"`
	Roughness float64 `json:"roughness,omitempty" yaml:"roughness,omitempty"`
	Diffuse   float64 `json:"diffuse,omitempty" yaml:"diffuse,omitempty"`
	Specular  float64 `json:"specular,omitempty" yaml:"specular,omitempty"`
	Fresnel   float64 `json:"fresnel,omitempty" yaml:"fresnel,omitempty"`
}

type ContourAxis struct {
	Show      bool `json:"show,omitempty" yaml:"show,omitempty"`
	Highlight bool `json:"highlight" yaml:"highlight"`
}

type Contours struct {
	X ContourAxis `json:"x" yaml:"x"`
	Y ContourAxis `json:"y" yaml:"y"`
	Z ContourAxis `json:"z" yaml:"z"`
}

type ProjectionAxis struct {
	Show bool `json:"show" yaml:"show"`
}

type Projection struct {
	X ProjectionAxis `json:"x" yaml:"x"`
}

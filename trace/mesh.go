package trace

// Mesh3D is a triangle mesh; triangle n joins vertices I[n], J[n], K[n].
type Mesh3D struct {
	Type      string    `json:"type" yaml:"type"`
	UID       string    `json:"uid,omitempty" yaml:"uid,omitempty"`
	X         []float64 `json:"x" yaml:"x"`
	Y         []float64 `json:"y" yaml:"y"`
	Z         []float64 `json:"z" yaml:"z"`
	I         []int     `json:"i" yaml:"i"`
	J         []int     `json:"j" yaml:"j"`
	K         []int     `json:"k" yaml:"k"`
	HoverInfo string    `json:"hoverinfo,omitempty" yaml:"hoverinfo,omitempty"`
	Color     string    `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity   *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

func NewMesh3D(x, y, z []float64, i, j, k []int) *Mesh3D {
	return &Mesh3D{
		Type: TypeMesh3D,
		X:    x,
		Y:    y,
		Z:    z,
		I:    i,
		J:    j,
		K:    k,
	}
}

func (m *Mesh3D) TraceType() string      { return TypeMesh3D }
func (m *Mesh3D) TraceUID() string       { return m.UID }
func (m *Mesh3D) SetTraceUID(uid string) { m.UID = uid }

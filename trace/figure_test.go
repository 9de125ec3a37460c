package trace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func utFigure() *Figure {
	fig := NewFigure()

	scatter := NewScatter([]float64{0, 1}, []float64{2, 3})
	scatter.Mode = ModeLines
	scatter.ShowLegend = Bool(false)
	scatter.Line = &Line{Color: "silver", Width: 1}
	scatter.Text = SingleText("(0.000, 0.000)")
	scatter.SetFill(Fill{Fill: FillToZeroX})

	stem := NewScatter3D([]float64{0, 1}, []float64{0, 1}, []float64{0, 1})
	stem.Projection = &Projection{}

	mesh := NewMesh3D([]float64{0, 1, 0}, []float64{0, 0, 1}, []float64{0, 0, 0}, []int{0}, []int{1}, []int{2})
	mesh.Opacity = Float(0.5)

	surface := NewSurface([][]float64{{0, 1}}, [][]float64{{1, 0}}, [][]float64{{0, 0}})
	surface.ColorScale = UniformColorScale("blue")
	surface.Text = [][]string{{"a", "a"}}

	fig.Add(scatter, stem, mesh, surface)
	fig.AddShapes(&Shape{Type: ShapeCircle, X0: -1, X1: 1, Y0: -1, Y1: 1}, nil)

	return fig
}

func TestFigureAdd(t *testing.T) {
	fig := utFigure()
	assert.Len(t, fig.Data, 4)
	assert.Len(t, fig.Layout.Shapes, 1)

	uids := make(map[string]bool)

	for _, tr := range fig.Data {
		assert.NotEmpty(t, tr.TraceUID())
		uids[tr.TraceUID()] = true
	}

	assert.Len(t, uids, 4)

	s := NewScatter(nil, nil)
	s.UID = "keep"
	fig.Add(s, nil)
	assert.Len(t, fig.Data, 5)
	assert.Equal(t, "keep", fig.Data[4].TraceUID())
}

func TestFigureJSON(t *testing.T) {
	fig := utFigure()

	d, err := json.Marshal(fig)
	require.Nil(t, err)
	assert.Contains(t, string(d), `"colorscale":[[0,"blue"],[1,"blue"]]`)
	assert.Contains(t, string(d), `"text":"(0.000, 0.000)"`)
	assert.Contains(t, string(d), `"showlegend":false`)

	var fig2 Figure

	err = json.Unmarshal(d, &fig2)
	require.Nil(t, err)
	assert.EqualValues(t, fig, &fig2)
}

func TestFigureYAML(t *testing.T) {
	fig := utFigure()

	d, err := yaml.Marshal(fig)
	require.Nil(t, err)

	var fig2 Figure

	err = yaml.Unmarshal(d, &fig2)
	require.Nil(t, err)
	assert.EqualValues(t, fig, &fig2)
}

func TestFigureUnknownType(t *testing.T) {
	var fig Figure

	err := json.Unmarshal([]byte(`{"data":[{"type":"bar"}]}`), &fig)
	assert.ErrorIs(t, err, ErrUnknownTraceType)
}

func TestText(t *testing.T) {
	d, err := json.Marshal(PointTexts("a", "b"))
	assert.Nil(t, err)
	assert.Equal(t, `["a","b"]`, string(d))

	var txt Text

	assert.Nil(t, json.Unmarshal([]byte(`"x"`), &txt))
	assert.False(t, txt.PerPoint)
	assert.Equal(t, "x", txt.String())

	assert.Equal(t, "", Text{}.String())
}

func TestColorStop(t *testing.T) {
	var cs ColorStop

	assert.Nil(t, json.Unmarshal([]byte(`["0.5", "red"]`), &cs))
	assert.EqualValues(t, ColorStop{Pos: 0.5, Color: "red"}, cs)

	assert.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &cs), ErrBadColorStop)
}

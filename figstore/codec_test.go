package figstore

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libplotting/plotting"
	"github.com/sgostarter/libplotting/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func utFigure(t *testing.T) *trace.Figure {
	fig := trace.NewFigure()

	arrow, err := plotting.Arrow3D(r3.Vec{X: 1}, r3.Vec{}, 2, plotting.WithArrowPoints(6))
	require.Nil(t, err)

	fig.Add(arrow...)
	fig.Add(plotting.CircleTrace(1, plotting.WithAngles(0, 45), plotting.WithCircleSamples(5)))
	fig.Add(plotting.Sphere(1, plotting.WithSphereSegments(3), plotting.WithSphereLabel("O"))[0])

	s, shape := plotting.CircleShape(1, plotting.WithShapeText("C"))
	fig.Add(s)
	fig.AddShapes(shape)

	return fig
}

func TestCodecs(t *testing.T) {
	fig := utFigure(t)

	for _, codec := range []Codec{JSONCodec{}, JSONCodec{MarshalIndent: true}, YAMLCodec{}} {
		d, err := codec.Marshal(fig)
		require.Nil(t, err)

		fig2, err := codec.Unmarshal(d)
		require.Nil(t, err)
		assert.EqualValues(t, fig, fig2)
	}
}

func TestClone(t *testing.T) {
	fig := utFigure(t)

	fig2, err := Clone(fig)
	require.Nil(t, err)
	assert.EqualValues(t, fig, fig2)
	assert.NotSame(t, fig.Data[0], fig2.Data[0])

	_, err = Clone(nil)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

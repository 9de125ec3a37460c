package yamlfigstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libplotting/plotting"
	"github.com/sgostarter/libplotting/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestYAMLFigStorage(t *testing.T) {
	ctx := context.Background()

	s := NewYAMLFigStorage(utRoot)

	keys, err := s.Keys(ctx)
	assert.Nil(t, err)
	assert.Empty(t, keys)

	fig := trace.NewFigure()

	arrow, err := plotting.Arrow3D(r3.Vec{Z: 1}, r3.Vec{X: 1}, 1)
	require.Nil(t, err)
	fig.Add(arrow...)

	require.Nil(t, s.Save(ctx, "arrow", fig))
	require.Nil(t, s.Save(ctx, "empty", trace.NewFigure()))

	_, err = os.Stat(filepath.Join(utRoot, "arrow.yaml"))
	assert.Nil(t, err)

	fig2, err := s.Load(ctx, "arrow")
	assert.Nil(t, err)
	assert.EqualValues(t, fig, fig2)

	keys, err = s.Keys(ctx)
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"arrow", "empty"}, keys)

	_, err = s.Load(ctx, "none")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	assert.ErrorIs(t, s.Save(ctx, "../x", fig), commerr.ErrInvalidArgument)
	assert.ErrorIs(t, s.Save(ctx, "", fig), commerr.ErrInvalidArgument)

	assert.Nil(t, s.Delete(ctx, "arrow"))
	assert.ErrorIs(t, s.Delete(ctx, "arrow"), commerr.ErrNotFound)
}

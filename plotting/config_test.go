package plotting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgostarter/libplotting/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plotting.yaml")

	err := os.WriteFile(file, []byte(`
gridLine:
  color: grey
arrowColor: red
sphereSegments: 20
sampleCacheExpiration: 1m
`), 0600)
	require.Nil(t, err)

	cfg, err := LoadConfig(file)
	require.Nil(t, err)

	assert.Equal(t, "grey", cfg.GridLine.Color)
	assert.EqualValues(t, 1, cfg.GridLine.Width)
	assert.Equal(t, "red", cfg.ArrowColor)
	assert.Equal(t, 20, cfg.SphereSegments)
	assert.Equal(t, 100, cfg.CircleSamples)
	assert.Equal(t, time.Minute, cfg.SampleCacheExpiration)

	p := NewPlotter(cfg, nil, nil)
	assert.Len(t, p.Sphere(1)[0].X, 20)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestNewPlotterFillsDefaults(t *testing.T) {
	cfg := &Config{
		GridLine:   trace.Line{Width: 3},
		CircleFill: trace.Fill{FillColor: "red"},
	}

	p := NewPlotter(cfg, nil, nil)
	pc := p.Config()

	assert.EqualValues(t, trace.Line{Color: "silver", Width: 3}, pc.GridLine)
	assert.EqualValues(t, trace.Fill{Fill: trace.FillToZeroX, FillColor: "red"}, pc.CircleFill)
	assert.Equal(t, 100, pc.ArrowPoints)
	assert.Equal(t, DefaultConfig().SphereLighting, pc.SphereLighting)

	// caller's config is not modified
	assert.Equal(t, 0, cfg.ArrowPoints)
}

func TestSampleCache(t *testing.T) {
	p := NewPlotter(nil, nil, nil)

	rt := p.ring(8)
	assert.Same(t, rt, p.ring(8))
	assert.NotSame(t, rt, p.ring(9))
	assert.InDelta(t, 1, rt.sin[2], 1e-12)

	st := p.sphereAngles(5, 1, 2)
	assert.Same(t, st, p.sphereAngles(5, 1, 2))
}

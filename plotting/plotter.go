package plotting

import (
	"fmt"
	"math"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotting/vectors"
	"gonum.org/v1/gonum/floats"
)

// Plotter builds trace descriptors. The sample cache holds read-only
// trigonometric tables keyed by sample count.
type Plotter struct {
	logger l.Wrapper
	cfg    *Config
	vm     vectors.Math

	samples *cache.Cache
}

func NewPlotter(cfg *Config, vm vectors.Math, logger l.Wrapper) *Plotter {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		c := *cfg
		cfg = &c
	}

	cfg.fillDefaults()

	if vm == nil {
		vm = vectors.NewGonumMath()
	}

	return &Plotter{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "plotter")),
		cfg:     cfg,
		vm:      vm,
		samples: cache.New(cfg.SampleCacheExpiration, cfg.SampleCacheExpiration*2),
	}
}

func (p *Plotter) Config() Config {
	return *p.cfg
}

var (
	defaultPlotter     *Plotter
	defaultPlotterOnce sync.Once
)

// Default returns the plotter behind the package level builders, created
// on first use.
func Default() *Plotter {
	defaultPlotterOnce.Do(func() {
		defaultPlotter = NewPlotter(nil, nil, nil)
	})

	return defaultPlotter
}

type ringTable struct {
	cos []float64
	sin []float64
}

// ring returns cos/sin of n angles evenly spaced on [0, 2π), end excluded.
func (p *Plotter) ring(n int) *ringTable {
	key := fmt.Sprintf("ring:%d", n)

	if v, ok := p.samples.Get(key); ok {
		if rt, ok := v.(*ringTable); ok {
			return rt
		}
	}

	p.logger.WithFields(l.IntField("n", n)).Debug("build ring table")

	step := 2 * math.Pi / float64(n)

	rt := &ringTable{
		cos: make([]float64, n),
		sin: make([]float64, n),
	}

	for idx := 0; idx < n; idx++ {
		rt.sin[idx], rt.cos[idx] = math.Sincos(float64(idx) * step)
	}

	p.samples.Set(key, rt, cache.DefaultExpiration)

	return rt
}

type sphereTable struct {
	sinTheta []float64
	cosTheta []float64
	sinPhi   []float64
	cosPhi   []float64
}

func (p *Plotter) sphereAngles(n int, thetaMax, phiMax float64) *sphereTable {
	key := fmt.Sprintf("sphere:%d:%v:%v", n, thetaMax, phiMax)

	if v, ok := p.samples.Get(key); ok {
		if st, ok := v.(*sphereTable); ok {
			return st
		}
	}

	p.logger.WithFields(l.IntField("n", n)).Debug("build sphere table")

	theta := floats.Span(make([]float64, n), 0, thetaMax)
	phi := floats.Span(make([]float64, n), 0, phiMax)

	st := &sphereTable{
		sinTheta: make([]float64, n),
		cosTheta: make([]float64, n),
		sinPhi:   make([]float64, n),
		cosPhi:   make([]float64, n),
	}

	for idx := 0; idx < n; idx++ {
		st.sinTheta[idx], st.cosTheta[idx] = math.Sincos(theta[idx])
		st.sinPhi[idx], st.cosPhi[idx] = math.Sincos(phi[idx])
	}

	p.samples.Set(key, st, cache.DefaultExpiration)

	return st
}

// isClose follows numpy's isclose: |a-b| <= atol + rtol*|b|.
func isClose(a, b float64) bool {
	const (
		rtol = 1e-5
		atol = 1e-8
	)

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

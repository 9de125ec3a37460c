package plotting

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlotterOnce(t *testing.T) {
	var wg sync.WaitGroup

	plotters := make([]*Plotter, 8)

	for idx := range plotters {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			plotters[idx] = Default()
		}(idx)
	}

	wg.Wait()

	for _, p := range plotters {
		assert.NotNil(t, p)
		assert.Same(t, plotters[0], p)
	}
}

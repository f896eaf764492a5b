package arma

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosax/timeseries"
)

const (
	// DefaultSeed is the seed used when none is configured.
	DefaultSeed uint64 = 12345

	// DefaultLength is the number of samples generated when none is configured.
	DefaultLength = 100
)

// Generator draws reproducible sample paths from a Process.
// A Generator holds no mutable state; Generate may be called concurrently.
type Generator struct {
	process Process
	seed    uint64
}

// NewGenerator returns a generator for process seeded with seed.
func NewGenerator(process Process, seed uint64) (*Generator, error) {
	if err := process.Validate(); err != nil {
		return nil, err
	}
	return &Generator{process: process, seed: seed}, nil
}

// Process returns the process the generator samples from.
func (g *Generator) Process() Process {
	return g.process
}

// Seed returns the generator seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate returns length samples of the process. The innovation stream is
// restarted from the seed on every call, so equal lengths give bit-identical
// values.
func (g *Generator) Generate(length int) (*timeseries.Series, error) {
	if err := timeseries.CheckMin("length", length, 1); err != nil {
		return nil, err
	}

	noise := distuv.Normal{
		Mu:    0,
		Sigma: g.process.Sigma,
		Src:   rand.NewPCG(g.seed, g.seed),
	}
	innovations := make([]float64, length)
	for i := range innovations {
		innovations[i] = noise.Rand()
	}

	series := timeseries.New(g.process.Filter(innovations))
	series.Name = g.process.String()
	return series, nil
}

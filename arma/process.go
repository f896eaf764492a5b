// Package arma samples synthetic series from ARMA(p,q) processes.
package arma

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProcess is returned for processes with non-finite coefficients
// or a non-positive innovation standard deviation.
var ErrInvalidProcess = errors.New("arma: invalid process")

// Process is an ARMA(p,q) process
//
//	y[t] = AR[0]*y[t-1] + ... + AR[p-1]*y[t-p] + e[t] + MA[0]*e[t-1] + ... + MA[q-1]*e[t-q]
//
// with Gaussian innovations e ~ N(0, Sigma^2).
type Process struct {
	AR    []float64 `yaml:"ar"`    // autoregressive coefficients (phi)
	MA    []float64 `yaml:"ma"`    // moving average coefficients (theta)
	Sigma float64   `yaml:"sigma"` // innovation standard deviation
}

// Default returns the ARMA(1,1) process with phi = 0.0 and theta = 0.5.
func Default() Process {
	return Process{
		AR:    []float64{0.0},
		MA:    []float64{0.5},
		Sigma: 1,
	}
}

// String returns the order, e.g. "ARMA(1,1)".
func (p Process) String() string {
	return fmt.Sprintf("ARMA(%d,%d)", len(p.AR), len(p.MA))
}

// Validate checks that every coefficient is finite and Sigma is positive.
func (p Process) Validate() error {
	for i, c := range p.AR {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: AR[%d] = %v", ErrInvalidProcess, i, c)
		}
	}
	for i, c := range p.MA {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: MA[%d] = %v", ErrInvalidProcess, i, c)
		}
	}
	if !(p.Sigma > 0) || math.IsInf(p.Sigma, 0) {
		return fmt.Errorf("%w: sigma must be positive and finite, got %v", ErrInvalidProcess, p.Sigma)
	}
	return nil
}

// Filter runs innovations through the process recursion. Values before the
// first sample are taken as zero, so there is no burn-in.
func (p Process) Filter(innovations []float64) []float64 {
	n := len(innovations)
	y := make([]float64, n)

	for t := 0; t < n; t++ {
		v := innovations[t]

		// AR component
		for i := 0; i < len(p.AR) && t-i-1 >= 0; i++ {
			v += p.AR[i] * y[t-i-1]
		}

		// MA component
		for i := 0; i < len(p.MA) && t-i-1 >= 0; i++ {
			v += p.MA[i] * innovations[t-i-1]
		}

		y[t] = v
	}

	return y
}

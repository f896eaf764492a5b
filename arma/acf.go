package arma

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// psiHorizon is the number of MA(inf) weights summed for the theoretical ACF.
const psiHorizon = 1000

// Psi returns the first n weights of the MA(inf) representation
// y[t] = sum psi[j]*e[t-j], with psi[0] = 1.
func (p Process) Psi(n int) []float64 {
	if n <= 0 {
		return nil
	}
	psi := make([]float64, n)
	psi[0] = 1
	for j := 1; j < n; j++ {
		if j <= len(p.MA) {
			psi[j] = p.MA[j-1]
		}
		for i := 1; i <= len(p.AR) && i <= j; i++ {
			psi[j] += p.AR[i-1] * psi[j-i]
		}
	}
	return psi
}

// ACF returns the theoretical autocorrelation of a stationary process for
// lags 0 to maxLag. It returns nil when maxLag is negative or the weights
// do not converge.
func (p Process) ACF(maxLag int) []float64 {
	if maxLag < 0 {
		return nil
	}
	psi := p.Psi(psiHorizon + maxLag)

	gamma := make([]float64, maxLag+1)
	for k := range gamma {
		for j := 0; j+k < len(psi); j++ {
			gamma[k] += psi[j] * psi[j+k]
		}
	}
	if gamma[0] == 0 || math.IsNaN(gamma[0]) || math.IsInf(gamma[0], 0) {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = gamma[k] / gamma[0]
	}
	return acf
}

// SampleACF calculates the sample autocorrelation of values for lags 0 to
// maxLag. It returns nil for constant input or a negative maxLag.
func SampleACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	denom := 0.0
	for _, v := range values {
		denom += (v - mean) * (v - mean)
	}
	if denom == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / denom
	}
	return acf
}

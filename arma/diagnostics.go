package arma

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // degrees of freedom
}

// Correlated reports whether the test rejects white noise at level alpha.
func (r *LjungBoxResult) Correlated(alpha float64) bool {
	return r.PValue < alpha
}

// LjungBox tests values for autocorrelation up to lag h. The null hypothesis
// is that there is none. fitdf is the number of estimated parameters to
// subtract from the degrees of freedom (p + q for a fitted ARMA model, 0 for
// a raw series). lags is capped at n-1.
// It returns nil for fewer than 10 values, lags < 1 or constant input.
func LjungBox(values []float64, lags, fitdf int) *LjungBoxResult {
	n := len(values)
	if n < 10 || lags < 1 {
		return nil
	}
	lags = min(lags, n-1)

	acf := SampleACF(values, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k] / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := max(lags-fitdf, 1)
	return &LjungBoxResult{
		Statistic: q,
		PValue:    distuv.ChiSquared{K: float64(dof)}.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// ConfidenceBound returns the approximate 95% bound 1.96/sqrt(n) outside
// which a sample autocorrelation of n values is significant.
func ConfidenceBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags >= 1 whose autocorrelation in acf lies
// outside ±bound.
func SignificantLags(acf []float64, bound float64) []int {
	var lags []int
	for k := 1; k < len(acf); k++ {
		if math.Abs(acf[k]) > bound {
			lags = append(lags, k)
		}
	}
	return lags
}

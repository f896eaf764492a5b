// Package sax implements Symbolic Aggregate approXimation.
package sax

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosax/timeseries"
)

// AlphabetSizeName names the alphabet size in parameter errors.
const AlphabetSizeName = "alphabet size"

// Breakpoints returns the alphabetSize-1 cut points that split the standard
// normal distribution into alphabetSize equiprobable intervals: the
// quantiles at i/alphabetSize for i = 1..alphabetSize-1, in increasing order.
// An alphabet of one symbol has no breakpoints.
func Breakpoints(alphabetSize int) ([]float64, error) {
	if err := timeseries.CheckMin(AlphabetSizeName, alphabetSize, 1); err != nil {
		return nil, err
	}

	bps := make([]float64, alphabetSize-1)
	for i := range bps {
		p := float64(i+1) / float64(alphabetSize)
		bps[i] = distuv.UnitNormal.Quantile(p)
	}
	return bps, nil
}
